package inventory

import (
	"context"

	"github.com/sirumat/record-service/internal/inventory/dto"
	"github.com/sirumat/record-service/internal/model"
)

type UseCase interface {
	List(ctx context.Context) ([]model.InventoryItem, error)
	ListLowStock(ctx context.Context) ([]model.InventoryItem, error)
	Adjust(ctx context.Context, input *dto.AdjustStockInput) (int, error)
	AddItem(ctx context.Context, input *dto.AddItemInput) (*model.InventoryItem, error)
}
