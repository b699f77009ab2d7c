package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/dieta/internal/model"
)

// JSON-backed draft storage. Single file, human-readable, portable.
// One wizard at a time; no locking.

const DefaultFileName = "draft.json"

// Load reads the draft at path. A missing file is an empty draft.
func Load(path string) (model.Draft, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Draft{}, nil
		}
		return model.Draft{}, fmt.Errorf("read file: %w", err)
	}
	var d model.Draft
	if err := json.Unmarshal(b, &d); err != nil {
		return model.Draft{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return d, nil
}

func Save(path string, d model.Draft) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Remove deletes the draft file; a missing file is not an error.
func Remove(path string) error {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}
