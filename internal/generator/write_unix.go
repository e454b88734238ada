//go:build !windows

package generator

import (
	"fmt"
	"log/slog"

	"github.com/google/renameio/v2"

	"github.com/necroplankton/sitecfg/internal/logfields"
)

// writeAtomic replaces path with data via fsync and rename.
func writeAtomic(path string, data []byte) error {
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			slog.Debug("Cleanup pending file", logfields.Path(path), logfields.Error(err))
		}
	}()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("write pending file: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace: %w", err)
	}
	return nil
}
