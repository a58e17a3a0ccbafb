package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirumat/record-service/config"
	"github.com/sirumat/record-service/internal/sheet"
	"github.com/sirumat/record-service/pkg/logger"
)

func TestLoadCredentialsPrefersSecretEnv(t *testing.T) {
	t.Setenv("TEST_SA_JSON", `{"type":"service_account"}`)

	cfg := &config.SheetsConfig{
		SecretEnv:       "TEST_SA_JSON",
		CredentialsFile: "does-not-exist.json",
	}
	data, err := loadCredentials(cfg)
	if err != nil {
		t.Fatalf("expected secret env to win: %v", err)
	}
	if string(data) != `{"type":"service_account"}` {
		t.Fatalf("unexpected credentials: %s", data)
	}
}

func TestLoadCredentialsFallsBackToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sa.json")
	if err := os.WriteFile(path, []byte(`{"type":"service_account"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := &config.SheetsConfig{
		SecretEnv:       "TEST_SA_JSON_UNSET",
		CredentialsFile: path,
	}
	data, err := loadCredentials(cfg)
	if err != nil {
		t.Fatalf("expected file fallback: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected file contents")
	}
}

func TestLoadCredentialsNoneAvailable(t *testing.T) {
	cfg := &config.SheetsConfig{
		SecretEnv:       "TEST_SA_JSON_UNSET",
		CredentialsFile: filepath.Join(t.TempDir(), "missing.json"),
	}
	_, err := loadCredentials(cfg)
	if !errors.Is(err, sheet.ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials, got %v", err)
	}
}

func TestResolveSQLiteBackend(t *testing.T) {
	cfg := config.LoadEnv()
	cfg.Storage.Backend = "sqlite"
	cfg.Storage.SQLitePath = filepath.Join(t.TempDir(), "uji.db")

	store, err := Resolve(context.Background(), cfg, logger.NewNop())
	if err != nil {
		t.Fatalf("resolve sqlite: %v", err)
	}
	s, ok := store.(*SQLiteStore)
	if !ok {
		t.Fatalf("expected *SQLiteStore, got %T", store)
	}
	s.Close()
}
