package pdf

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/formlay/pdf-form-server/internal/forms"
	"github.com/formlay/pdf-form-server/internal/store"
)

// ConfigSource is the slice of the form store the resolver needs.
type ConfigSource interface {
	Get(key string) (forms.FormConfig, error)
}

// Resolver produces, for a form key, its effective configuration and the
// bytes of its background template.
//
// Configuration resolution order: store record, then the static defaults
// table, then NotFound. Template resolution order: the configured custom
// upload (a read failure here is fatal), then the conventional
// templates/{key}.pdf location, then a synthesized placeholder.
type Resolver struct {
	source  ConfigSource
	dataDir string
	logger  *slog.Logger
}

// NewResolver creates a resolver over a config source and the data
// directory that template paths are relative to.
func NewResolver(source ConfigSource, dataDir string, logger *slog.Logger) *Resolver {
	return &Resolver{source: source, dataDir: dataDir, logger: logger}
}

// ResolveForm returns the effective configuration for a form key.
func (r *Resolver) ResolveForm(key string) (forms.FormConfig, error) {
	cfg, err := r.source.Get(key)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return forms.FormConfig{}, fmt.Errorf("cannot load form %s: %w", key, err)
	}
	if cfg, ok := forms.DefaultForm(key); ok {
		r.logger.Debug("form resolved from static defaults", "key", key)
		return cfg, nil
	}
	return forms.FormConfig{}, fmt.Errorf("form configuration %s: %w", key, store.ErrNotFound)
}

// ResolveTemplate returns the background bytes for a form configuration.
func (r *Resolver) ResolveTemplate(cfg forms.FormConfig) ([]byte, error) {
	if cfg.TemplatePath != "" {
		path := filepath.Join(r.dataDir, filepath.FromSlash(cfg.TemplatePath))
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &TemplateMissingError{Path: path, Err: err}
		}
		return data, nil
	}

	defaultPath := r.defaultTemplatePath(cfg.Key)
	if data, err := os.ReadFile(defaultPath); err == nil {
		return data, nil
	}

	placeholder, err := GeneratePlaceholder()
	if err != nil {
		return nil, err
	}

	// Persist so the editor preview and later renders see a stable asset.
	// Purely best effort.
	if err := os.MkdirAll(filepath.Dir(defaultPath), 0o750); err == nil {
		if err := os.WriteFile(defaultPath, placeholder, 0o640); err != nil {
			r.logger.Warn("cannot persist placeholder template", "path", defaultPath, "error", err)
		}
	}
	r.logger.Info("using placeholder template", "key", cfg.Key)
	return placeholder, nil
}

func (r *Resolver) defaultTemplatePath(key string) string {
	return filepath.Join(r.dataDir, "templates", filepath.Base(key)+".pdf")
}
