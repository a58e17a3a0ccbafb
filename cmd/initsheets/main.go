package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sirumat/record-service/config"
	"github.com/sirumat/record-service/internal/sheet"
	"github.com/sirumat/record-service/internal/sheet/repository"
	"github.com/sirumat/record-service/pkg/logger"
)

// Starter inventory written when Inventaris_Barang is created for the first
// time, so the ledger has something to adjust against.
var seedItems = [][]string{
	{"Sabun Cuci Tangan", "Kebersihan", "10", "Botol", "5", "-"},
	{"Tisu Toilet", "Kebersihan", "50", "Roll", "20", "-"},
	{"Kertas A4", "ATK", "5", "Rim", "2", "-"},
}

// initsheets is the administrative setup path: it creates every missing
// worksheet with its header row. Unlike normal interactions, a store that
// cannot be opened is fatal here.
func main() {
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	appLogger := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment: true,
		Encoding:      "console",
		Level:         "info",
	})
	defer appLogger.Sync()

	ctx := context.Background()
	store, err := repository.Resolve(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("could not open store", zap.Error(err))
	}

	for _, schema := range sheet.Schemas {
		rows, err := store.LoadAll(ctx, schema.Sheet)
		if err != nil {
			appLogger.Fatal("could not inspect worksheet", zap.String("sheet", schema.Sheet), zap.Error(err))
		}
		existed := len(rows) > 0

		if err := store.EnsureSheet(ctx, schema.Sheet, schema.Header); err != nil {
			appLogger.Fatal("could not create worksheet", zap.String("sheet", schema.Sheet), zap.Error(err))
		}

		if existed {
			appLogger.Info("worksheet exists", zap.String("sheet", schema.Sheet))
			continue
		}
		appLogger.Info("worksheet created", zap.String("sheet", schema.Sheet))

		if schema.Sheet == sheet.Inventory.Sheet {
			for _, row := range seedItems {
				if err := store.AppendRow(ctx, schema.Sheet, row); err != nil {
					appLogger.Fatal("could not seed inventory", zap.Error(err))
				}
			}
			appLogger.Info("inventory seeded", zap.Int("items", len(seedItems)))
		}
	}

	fmt.Fprintln(os.Stdout, "Setup selesai.")
}
