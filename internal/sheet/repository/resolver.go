package repository

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/sirumat/record-service/config"
	"github.com/sirumat/record-service/internal/sheet"
	"github.com/sirumat/record-service/pkg/logger"
)

// Resolve produces a store handle for one interaction. There is deliberately
// no cached singleton behind this: every interaction resolves afresh so a
// rotated credential takes effect on the next action, at the cost of a little
// setup work per call.
func Resolve(ctx context.Context, cfg *config.Config, log logger.ZapLogger) (sheet.Store, error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		return NewSQLiteStore(cfg.Storage.SQLitePath)
	default:
		return resolveGoogle(ctx, cfg, log)
	}
}

func resolveGoogle(ctx context.Context, cfg *config.Config, log logger.ZapLogger) (sheet.Store, error) {
	creds, err := loadCredentials(&cfg.Sheets)
	if err != nil {
		return nil, err
	}

	jwtCfg, err := google.JWTConfigFromJSON(creds, sheets.SpreadsheetsScope, drive.DriveMetadataReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("%w: parse service account: %v", sheet.ErrNoCredentials, err)
	}
	client := jwtCfg.Client(ctx)

	driveSvc, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("drive client: %w", err)
	}
	sheetsSvc, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}

	id, err := findSpreadsheet(ctx, driveSvc, cfg.Sheets.SpreadsheetName)
	if errors.Is(err, sheet.ErrStoreNotFound) && cfg.Sheets.AltName != "" {
		// Historical naming drift: the document exists under two casings in the
		// wild. Try the alternate once before giving up.
		log.Warn("spreadsheet not found, trying alternate name",
			zap.String("name", cfg.Sheets.SpreadsheetName),
			zap.String("alt", cfg.Sheets.AltName))
		id, err = findSpreadsheet(ctx, driveSvc, cfg.Sheets.AltName)
	}
	if err != nil {
		return nil, err
	}

	return NewGoogleStore(sheetsSvc, id), nil
}

// loadCredentials tries the injected secret bundle first, then the local
// service-account file. It never prompts.
func loadCredentials(cfg *config.SheetsConfig) ([]byte, error) {
	if v, ok := os.LookupEnv(cfg.SecretEnv); ok && v != "" {
		return []byte(v), nil
	}
	data, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: no secret in %s and no file at %s", sheet.ErrNoCredentials, cfg.SecretEnv, cfg.CredentialsFile)
	}
	return data, nil
}

func findSpreadsheet(ctx context.Context, svc *drive.Service, name string) (string, error) {
	q := fmt.Sprintf("name = '%s' and mimeType = 'application/vnd.google-apps.spreadsheet' and trashed = false", name)
	list, err := svc.Files.List().Q(q).PageSize(1).Fields("files(id, name)").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("search spreadsheet %q: %w", name, err)
	}
	if len(list.Files) == 0 {
		return "", fmt.Errorf("%w: %q", sheet.ErrStoreNotFound, name)
	}
	return list.Files[0].Id, nil
}
