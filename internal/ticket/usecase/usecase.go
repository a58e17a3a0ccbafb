package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sirumat/record-service/internal/model"
	"github.com/sirumat/record-service/internal/sheet"
	"github.com/sirumat/record-service/internal/ticket"
	"github.com/sirumat/record-service/internal/ticket/dto"
	"github.com/sirumat/record-service/pkg/logger"
)

type ticketUseCase struct {
	store  sheet.Store
	logger logger.ZapLogger
}

func NewTicketUseCase(store sheet.Store, log logger.ZapLogger) ticket.UseCase {
	return &ticketUseCase{
		store:  store,
		logger: log,
	}
}

func (uc *ticketUseCase) SubmitDamageReport(ctx context.Context, input *dto.SubmitDamageReportInput) (*model.DamageReport, error) {
	now := time.Now()

	evidence := input.Evidence
	if evidence == "" {
		evidence = model.NoEvidence
	}

	report := model.DamageReport{
		Timestamp:   now.Format(model.TimeLayout),
		Reporter:    input.Reporter,
		Location:    input.Location,
		Description: input.Description,
		Evidence:    evidence,
		TicketID:    ticket.NewID(now),
		Status:      model.StatusPending,
	}

	if err := uc.store.AppendRow(ctx, sheet.DamageReports.Sheet, sheet.EncodeDamageReport(report)); err != nil {
		return nil, err
	}

	uc.logger.Info("damage report submitted",
		zap.String("ticket_id", report.TicketID),
		zap.String("location", report.Location))
	return &report, nil
}

func (uc *ticketUseCase) ListDamageReports(ctx context.Context) ([]model.DamageReport, error) {
	rows, err := uc.store.LoadAll(ctx, sheet.DamageReports.Sheet)
	if err != nil {
		return nil, err
	}
	reports, short := sheet.DecodeDamageReports(rows)
	if short > 0 {
		uc.logger.Debug("short rows padded", zap.String("sheet", sheet.DamageReports.Sheet), zap.Int("rows", short))
	}
	return reports, nil
}

func (uc *ticketUseCase) ListOpenTickets(ctx context.Context) ([]model.DamageReport, error) {
	reports, err := uc.ListDamageReports(ctx)
	if err != nil {
		return nil, err
	}
	open := make([]model.DamageReport, 0, len(reports))
	for _, r := range reports {
		if r.Status == model.StatusPending {
			open = append(open, r)
		}
	}
	return open, nil
}

func (uc *ticketUseCase) ListRepairs(ctx context.Context) ([]model.RepairRecord, error) {
	rows, err := uc.store.LoadAll(ctx, sheet.Repairs.Sheet)
	if err != nil {
		return nil, err
	}
	repairs, short := sheet.DecodeRepairRecords(rows)
	if short > 0 {
		uc.logger.Debug("short rows padded", zap.String("sheet", sheet.Repairs.Sheet), zap.Int("rows", short))
	}
	return repairs, nil
}

// FileRepair appends the repair record and, when a real ticket was referenced,
// closes that ticket. The two writes are not atomic: if the status update
// fails after the append succeeded, the repair stays in the store, the ticket
// stays Pending, and the caller gets ErrTicketNotClosed alongside the partial
// result. There is no rollback.
func (uc *ticketUseCase) FileRepair(ctx context.Context, input *dto.FileRepairInput) (*dto.FileRepairResult, error) {
	ticketID := input.TicketID
	if ticketID == "" {
		ticketID = ticket.ManualTicket
	}

	evidence := input.Evidence
	if evidence == "" {
		evidence = model.NoEvidence
	}

	repair := model.RepairRecord{
		Timestamp:  time.Now().Format(model.TimeLayout),
		Technician: input.Technician,
		Location:   input.Location,
		Action:     input.Action,
		Evidence:   evidence,
		TicketID:   ticketID,
	}

	if err := uc.store.AppendRow(ctx, sheet.Repairs.Sheet, sheet.EncodeRepairRecord(repair)); err != nil {
		return nil, err
	}

	result := &dto.FileRepairResult{Repair: repair}
	if ticketID == ticket.ManualTicket {
		return result, nil
	}

	row, err := uc.store.FindRowByValue(ctx, sheet.DamageReports.Sheet, ticketID)
	if err != nil {
		uc.logger.Error("repair saved but ticket row not found",
			zap.String("ticket_id", ticketID), zap.Error(err))
		return result, fmt.Errorf("%w: %v", ticket.ErrTicketNotClosed, err)
	}

	col := sheet.DamageReports.Col("Status")
	if err := uc.store.UpdateCell(ctx, sheet.DamageReports.Sheet, row, col, model.StatusDone); err != nil {
		uc.logger.Error("repair saved but status update failed",
			zap.String("ticket_id", ticketID), zap.Int("row", row), zap.Error(err))
		return result, fmt.Errorf("%w: %v", ticket.ErrTicketNotClosed, err)
	}

	result.TicketClosed = true
	uc.logger.Info("ticket closed", zap.String("ticket_id", ticketID))
	return result, nil
}
