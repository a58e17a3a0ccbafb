package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/sirumat/record-service/internal/content"
	"github.com/sirumat/record-service/internal/content/dto"
	"github.com/sirumat/record-service/internal/model"
	"github.com/sirumat/record-service/internal/sheet"
	"github.com/sirumat/record-service/pkg/logger"
)

type contentUseCase struct {
	store  sheet.Store
	logger logger.ZapLogger
}

func NewContentUseCase(store sheet.Store, log logger.ZapLogger) content.UseCase {
	return &contentUseCase{
		store:  store,
		logger: log,
	}
}

func (uc *contentUseCase) AddPlan(ctx context.Context, input *dto.AddPlanInput) (*model.ContentPlan, error) {
	plan := model.ContentPlan{
		Date:     input.Date,
		Caption:  input.Caption,
		Platform: strings.Join(input.Platforms, ", "),
		Status:   input.Status,
	}
	if err := uc.store.AppendRow(ctx, sheet.ContentPlans.Sheet, sheet.EncodeContentPlan(plan)); err != nil {
		return nil, err
	}
	uc.logger.Info("content plan saved",
		zap.String("date", plan.Date),
		zap.String("status", plan.Status))
	return &plan, nil
}

func (uc *contentUseCase) ListPlans(ctx context.Context) ([]model.ContentPlan, error) {
	rows, err := uc.store.LoadAll(ctx, sheet.ContentPlans.Sheet)
	if err != nil {
		return nil, err
	}
	plans, short := sheet.DecodeContentPlans(rows)
	if short > 0 {
		uc.logger.Debug("short rows padded", zap.String("sheet", sheet.ContentPlans.Sheet), zap.Int("rows", short))
	}
	return plans, nil
}
