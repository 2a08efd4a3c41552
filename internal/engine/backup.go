package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"medtrack/internal/catalog"
)

// ExportJSON serializes the full document, pretty-printed.
func (s *Service) ExportJSON() ([]byte, error) {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export marshal: %w", err)
	}
	return raw, nil
}

// BackupFilename returns the conventional export name for the given day,
// e.g. medprep-backup-2026-08-29.json.
func BackupFilename(now time.Time) string {
	return fmt.Sprintf("medprep-backup-%s.json", now.Format(time.DateOnly))
}

// ExportToDir writes the backup file into dir and returns its path.
func (s *Service) ExportToDir(dir string) (string, error) {
	raw, err := s.ExportJSON()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, BackupFilename(s.now()))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("export write: %w", err)
	}
	return path, nil
}

// Import replaces the document with the parsed payload, backfilling any
// missing top-level field from defaults. A structurally invalid payload
// (malformed JSON or a non-object) is rejected with ErrBadDocument and the
// current store is left untouched. Achievements are re-evaluated against
// the imported state.
func (s *Service) Import(ctx context.Context, raw []byte) ([]catalog.Achievement, error) {
	var head any
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	if _, ok := head.(map[string]any); !ok {
		return nil, fmt.Errorf("%w: payload is not an object", ErrBadDocument)
	}

	d := DefaultData()
	if err := json.Unmarshal(raw, d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	normalize(d)

	s.data = d
	unlocked := s.unlockNew()
	s.flush(ctx)
	return unlocked, nil
}

// ImportFile reads a user-selected backup file and applies Import.
func (s *Service) ImportFile(ctx context.Context, path string) ([]catalog.Achievement, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("import read: %w", err)
	}
	return s.Import(ctx, raw)
}
