package attendance

import (
	"context"

	"github.com/sirumat/record-service/internal/attendance/dto"
	"github.com/sirumat/record-service/internal/model"
)

type UseCase interface {
	CheckIn(ctx context.Context, input *dto.CheckInInput) (*model.AttendanceRecord, error)
	ListByDate(ctx context.Context, date string) ([]model.AttendanceRecord, error)
	LogCleaning(ctx context.Context, input *dto.CleaningInput) (*model.CleaningChecklist, error)
	ListCleaning(ctx context.Context) ([]model.CleaningChecklist, error)
}
