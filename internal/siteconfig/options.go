package siteconfig

import (
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/necroplankton/sitecfg/internal/metrics"
)

// DocumentSet lists the content documents header links may point at.
// content.Catalog implements it.
type DocumentSet interface {
	HasDocument(id string) bool
}

// Option customizes Load and New.
type Option func(*settings)

type settings struct {
	documents DocumentSet
	assets    fs.FS
	now       func() time.Time
	themes    map[string]struct{}
	recorder  metrics.Recorder
	logger    *slog.Logger
}

func newSettings(opts []Option) *settings {
	s := &settings{
		now:      time.Now,
		themes:   themeSet(HighlightThemes),
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithDocuments enables header link checks against docs.
func WithDocuments(docs DocumentSet) Option {
	return func(s *settings) { s.documents = docs }
}

// WithAssets resolves icon and image paths inside fsys.
func WithAssets(fsys fs.FS) Option {
	return func(s *settings) { s.assets = fsys }
}

// WithAssetsDir resolves icon and image paths relative to dir.
func WithAssetsDir(dir string) Option {
	return func(s *settings) { s.assets = os.DirFS(dir) }
}

// WithClock overrides the clock read for the copyright year.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

// WithHighlightThemes replaces the accepted highlight theme names, for
// generators bundling a different highlighter release.
func WithHighlightThemes(names []string) Option {
	return func(s *settings) { s.themes = themeSet(names) }
}

// WithRecorder reports load outcomes to r.
func WithRecorder(r metrics.Recorder) Option {
	return func(s *settings) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithLogger sets the logger used for normalization warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}
