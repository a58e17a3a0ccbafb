package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/sirumat/record-service/internal/inventory"
	"github.com/sirumat/record-service/internal/inventory/dto"
	"github.com/sirumat/record-service/internal/model"
	"github.com/sirumat/record-service/internal/sheet"
	"github.com/sirumat/record-service/pkg/logger"
)

type inventoryUseCase struct {
	store  sheet.Store
	logger logger.ZapLogger
}

func NewInventoryUseCase(store sheet.Store, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		store:  store,
		logger: log,
	}
}

func (uc *inventoryUseCase) List(ctx context.Context) ([]model.InventoryItem, error) {
	items, _, err := uc.load(ctx)
	return items, err
}

func (uc *inventoryUseCase) ListLowStock(ctx context.Context) ([]model.InventoryItem, error) {
	items, _, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]model.InventoryItem, 0, len(items))
	for _, it := range items {
		if it.LowStock() {
			low = append(low, it)
		}
	}
	return low, nil
}

// Adjust applies a signed delta to an item's stock. The target is located by
// name with first-match semantics: when two rows share a name, the earlier one
// wins, same as a linear scan would. The stock cell and the last-updated cell
// are written as two separate calls; a failure between them leaves the stock
// correct and the timestamp stale, surfaced as ErrTimestampStale.
func (uc *inventoryUseCase) Adjust(ctx context.Context, input *dto.AdjustStockInput) (int, error) {
	rows, err := uc.store.LoadAll(ctx, sheet.Inventory.Sheet)
	if err != nil {
		return 0, err
	}
	items, short := sheet.DecodeInventoryItems(rows)
	if short > 0 {
		uc.logger.Debug("short rows padded", zap.String("sheet", sheet.Inventory.Sheet), zap.Int("rows", short))
	}

	// Name → sheet row, first occurrence kept. Data row i sits at sheet row
	// i+2 (1-indexed, header on row 1).
	rowOf := make(map[string]int, len(items))
	for i, it := range items {
		if _, ok := rowOf[it.Name]; !ok {
			rowOf[it.Name] = i + 2
		}
	}

	row, ok := rowOf[input.Name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", inventory.ErrItemNotFound, input.Name)
	}

	current := items[row-2].Stock
	newStock := current + input.Delta
	if newStock < 0 {
		return 0, fmt.Errorf("%w: %q has %d, delta %d", inventory.ErrNegativeStock, input.Name, current, input.Delta)
	}

	header := rows[0]
	stockCol := sheet.ColIn(header, "Stok")
	updatedCol := sheet.ColIn(header, "Terakhir Update")

	if err := uc.store.UpdateCell(ctx, sheet.Inventory.Sheet, row, stockCol, strconv.Itoa(newStock)); err != nil {
		return 0, err
	}

	now := time.Now().Format(model.TimeLayout)
	if err := uc.store.UpdateCell(ctx, sheet.Inventory.Sheet, row, updatedCol, now); err != nil {
		uc.logger.Error("stock written but timestamp update failed",
			zap.String("item", input.Name), zap.Int("row", row), zap.Error(err))
		return newStock, fmt.Errorf("%w: %v", inventory.ErrTimestampStale, err)
	}

	uc.logger.Info("stock adjusted",
		zap.String("item", input.Name),
		zap.Int("delta", input.Delta),
		zap.Int("stock", newStock))
	return newStock, nil
}

// AddItem appends a new row. There is no uniqueness check against existing
// names; a duplicate name is legal and later lookups resolve to the first row.
func (uc *inventoryUseCase) AddItem(ctx context.Context, input *dto.AddItemInput) (*model.InventoryItem, error) {
	item := model.InventoryItem{
		Name:        input.Name,
		Category:    input.Category,
		Stock:       input.Stock,
		Unit:        input.Unit,
		MinStock:    input.MinStock,
		LastUpdated: time.Now().Format(model.TimeLayout),
	}
	if err := uc.store.AppendRow(ctx, sheet.Inventory.Sheet, sheet.EncodeInventoryItem(item)); err != nil {
		return nil, err
	}
	uc.logger.Info("item added", zap.String("item", item.Name), zap.Int("stock", item.Stock))
	return &item, nil
}

func (uc *inventoryUseCase) load(ctx context.Context) ([]model.InventoryItem, int, error) {
	rows, err := uc.store.LoadAll(ctx, sheet.Inventory.Sheet)
	if err != nil {
		return nil, 0, err
	}
	items, short := sheet.DecodeInventoryItems(rows)
	if short > 0 {
		uc.logger.Debug("short rows padded", zap.String("sheet", sheet.Inventory.Sheet), zap.Int("rows", short))
	}
	return items, short, nil
}
