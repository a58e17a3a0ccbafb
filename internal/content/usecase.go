package content

import (
	"context"

	"github.com/sirumat/record-service/internal/content/dto"
	"github.com/sirumat/record-service/internal/model"
)

type UseCase interface {
	AddPlan(ctx context.Context, input *dto.AddPlanInput) (*model.ContentPlan, error)
	ListPlans(ctx context.Context) ([]model.ContentPlan, error)
}
