package engine

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"medtrack/internal/storage"
)

func newTestService(t *testing.T) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	svc, err := NewService(ctx, db)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

// setClock pins the service clock to a fixed instant.
func setClock(svc *Service, at time.Time) {
	svc.now = func() time.Time { return at }
}

func dateStr(at time.Time) string {
	return at.Format(time.DateOnly)
}
