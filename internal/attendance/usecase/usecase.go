package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sirumat/record-service/internal/attendance"
	"github.com/sirumat/record-service/internal/attendance/dto"
	"github.com/sirumat/record-service/internal/model"
	"github.com/sirumat/record-service/internal/report"
	"github.com/sirumat/record-service/internal/sheet"
	"github.com/sirumat/record-service/pkg/logger"
)

type attendanceUseCase struct {
	store  sheet.Store
	logger logger.ZapLogger
}

func NewAttendanceUseCase(store sheet.Store, log logger.ZapLogger) attendance.UseCase {
	return &attendanceUseCase{
		store:  store,
		logger: log,
	}
}

func (uc *attendanceUseCase) CheckIn(ctx context.Context, input *dto.CheckInInput) (*model.AttendanceRecord, error) {
	if input.Evidence == "" || input.Evidence == model.NoEvidence {
		return nil, attendance.ErrEvidenceRequired
	}

	rec := model.AttendanceRecord{
		Timestamp: time.Now().Format(model.TimeLayout),
		Employee:  input.Employee,
		Status:    input.Status,
		Note:      input.Note,
		Evidence:  input.Evidence,
	}
	if err := uc.store.AppendRow(ctx, sheet.Attendance.Sheet, sheet.EncodeAttendanceRecord(rec)); err != nil {
		return nil, err
	}
	uc.logger.Info("attendance recorded",
		zap.String("employee", rec.Employee),
		zap.String("status", rec.Status))
	return &rec, nil
}

func (uc *attendanceUseCase) ListByDate(ctx context.Context, date string) ([]model.AttendanceRecord, error) {
	rows, err := uc.store.LoadAll(ctx, sheet.Attendance.Sheet)
	if err != nil {
		return nil, err
	}
	recs, short := sheet.DecodeAttendanceRecords(rows)
	if short > 0 {
		uc.logger.Debug("short rows padded", zap.String("sheet", sheet.Attendance.Sheet), zap.Int("rows", short))
	}
	return report.AttendanceOn(recs, date), nil
}

func (uc *attendanceUseCase) LogCleaning(ctx context.Context, input *dto.CleaningInput) (*model.CleaningChecklist, error) {
	evidence := input.Evidence
	if evidence == "" {
		evidence = model.NoEvidence
	}

	entry := model.CleaningChecklist{
		Timestamp: time.Now().Format(model.TimeLayout),
		Officer:   input.Officer,
		Area:      input.Area,
		Condition: input.Condition,
		Evidence:  evidence,
	}
	if err := uc.store.AppendRow(ctx, sheet.Cleaning.Sheet, sheet.EncodeCleaningChecklist(entry)); err != nil {
		return nil, err
	}
	uc.logger.Info("cleaning checklist saved",
		zap.String("officer", entry.Officer),
		zap.String("area", entry.Area))
	return &entry, nil
}

func (uc *attendanceUseCase) ListCleaning(ctx context.Context) ([]model.CleaningChecklist, error) {
	rows, err := uc.store.LoadAll(ctx, sheet.Cleaning.Sheet)
	if err != nil {
		return nil, err
	}
	entries, short := sheet.DecodeCleaningChecklists(rows)
	if short > 0 {
		uc.logger.Debug("short rows padded", zap.String("sheet", sheet.Cleaning.Sheet), zap.Int("rows", short))
	}
	return entries, nil
}
