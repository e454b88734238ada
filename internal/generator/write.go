package generator

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/necroplankton/sitecfg/internal/logfields"
	"github.com/necroplankton/sitecfg/internal/siteconfig"
)

// Write renders cfg in each format and replaces the files in dir
// atomically. It returns the written paths in format order.
func Write(cfg *siteconfig.Config, dir string, formats ...Format) ([]string, error) {
	if len(formats) == 0 {
		formats = []Format{FormatJS, FormatJSON}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		data, err := Render(cfg, f)
		if err != nil {
			return paths, err
		}
		p := filepath.Join(dir, f.FileName())
		if err := writeAtomic(p, data); err != nil {
			return paths, fmt.Errorf("write %s: %w", p, err)
		}
		slog.Info("Exported site configuration", logfields.Path(p), logfields.Format(string(f)))
		paths = append(paths, p)
	}
	return paths, nil
}
