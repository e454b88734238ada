package siteconfig

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/necroplankton/sitecfg/internal/logfields"
	"github.com/necroplankton/sitecfg/internal/metrics"
)

// Load reads the YAML configuration at configPath and builds the record.
//
// The first of `.env` or `.env.local` next to the file is loaded first
// (existing environment variables win) and `${VAR}` references in the file are expanded.
func Load(configPath string, opts ...Option) (*Config, error) {
	s := newSettings(opts)
	start := time.Now()

	doc, err := readDocument(configPath, s.logger)
	if err != nil {
		s.recorder.ObserveLoadDuration(time.Since(start))
		if ce, ok := AsConfigurationError(err); ok {
			s.recorder.IncValidationFailure(ce.Field)
			s.recorder.IncLoadOutcome(metrics.OutcomeInvalid)
		} else {
			s.recorder.IncLoadOutcome(metrics.OutcomeError)
		}
		return nil, err
	}
	return build(doc, s, start)
}

// New builds the record from an in-memory document: normalize, apply
// defaults, validate, then render the copyright for the current year. doc is
// not modified.
func New(doc Config, opts ...Option) (*Config, error) {
	return build(doc, newSettings(opts), time.Now())
}

func build(doc Config, s *settings, start time.Time) (*Config, error) {
	cfg := doc.Clone()

	for _, w := range NormalizeConfig(cfg).Warnings {
		s.logger.Warn("Configuration normalized", slog.String("detail", w))
	}
	applyDefaults(cfg)

	if verr := newConfigurationValidator(cfg, s).validate(); verr != nil {
		s.recorder.ObserveLoadDuration(time.Since(start))
		s.recorder.IncValidationFailure(verr.Field)
		s.recorder.IncLoadOutcome(metrics.OutcomeInvalid)
		s.logger.Debug("Site configuration rejected", logfields.Field(verr.Field), logfields.Value(verr.Value))
		return nil, verr
	}

	cfg.Copyright = renderCopyright(cfg.Copyright, s.now().Year())

	s.recorder.ObserveLoadDuration(time.Since(start))
	s.recorder.IncLoadOutcome(metrics.OutcomeSuccess)
	s.logger.Debug("Site configuration loaded",
		slog.String("title", cfg.Title),
		slog.Int("header_links", len(cfg.HeaderLinks)),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return cfg, nil
}

func readDocument(configPath string, logger *slog.Logger) (Config, error) {
	if err := loadEnvFile(filepath.Dir(configPath)); err != nil {
		logger.Debug("No .env file loaded", logfields.Error(err))
	}

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(expanded), &root); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config %s: %w", configPath, err)
	}
	var doc Config
	if root.Kind != 0 {
		if err := root.Decode(&doc); err != nil {
			var terr *yaml.TypeError
			if errors.As(err, &terr) {
				return Config{}, typeFieldError(&root, terr)
			}
			return Config{}, fmt.Errorf("failed to decode config %s: %w", configPath, err)
		}
	}
	logger.Debug("Read configuration file", logfields.Path(configPath))
	return doc, nil
}

// loadEnvFile loads the first of .env/.env.local found in dir.
func loadEnvFile(dir string) error {
	for _, name := range []string{".env", ".env.local"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
		return nil
	}
	return errors.New("no .env file found")
}
