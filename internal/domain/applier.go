package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/mouse-blink/dbgc/internal/adapter"
	m "github.com/mouse-blink/dbgc/internal/model"
)

// ErrSourceChanged is returned when a file was modified on disk after it was
// analyzed.
var ErrSourceChanged = errors.New("source changed since it was analyzed")

// Applier writes a change back to its source file.
type Applier interface {
	Apply(ctx context.Context, change m.Change) error
}

type applier struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewApplier constructs an Applier backed by the provided filesystem adapter.
func NewApplier(fsAdapter adapter.SourceFSAdapter) Applier {
	return &applier{fsAdapter: fsAdapter}
}

// Apply refuses to write when the file no longer has the content the change
// was computed from.
func (a *applier) Apply(ctx context.Context, change m.Change) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := change.Source.File.Path

	current, err := a.fsAdapter.HashFile(path)
	if err != nil {
		return fmt.Errorf("failed to hash %s: %w", path, err)
	}

	if current != change.Source.File.Hash {
		return fmt.Errorf("%s: %w", path, ErrSourceChanged)
	}

	if err := a.fsAdapter.WriteFile(path, []byte(change.After)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
