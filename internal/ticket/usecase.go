package ticket

import (
	"context"

	"github.com/sirumat/record-service/internal/model"
	"github.com/sirumat/record-service/internal/ticket/dto"
)

type UseCase interface {
	SubmitDamageReport(ctx context.Context, input *dto.SubmitDamageReportInput) (*model.DamageReport, error)
	ListDamageReports(ctx context.Context) ([]model.DamageReport, error)
	ListOpenTickets(ctx context.Context) ([]model.DamageReport, error)
	ListRepairs(ctx context.Context) ([]model.RepairRecord, error)
	FileRepair(ctx context.Context, input *dto.FileRepairInput) (*dto.FileRepairResult, error)
}
