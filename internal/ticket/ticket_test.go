package ticket

import (
	"testing"
	"time"
)

func TestNewID(t *testing.T) {
	at := time.Date(2026, 8, 30, 9, 15, 42, 0, time.Local)
	if got := NewID(at); got != "TKT-20260830091542" {
		t.Fatalf("expected TKT-20260830091542, got %q", got)
	}
}
