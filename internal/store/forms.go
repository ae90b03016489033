package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/formlay/pdf-form-server/internal/forms"
)

// FormStore keeps one JSON record per form key under {dir}/forms.
type FormStore struct {
	dir    string
	logger *slog.Logger
	mu     sync.Mutex
}

// NewFormStore creates a form store rooted at the given data directory.
func NewFormStore(dataDir string, logger *slog.Logger) (*FormStore, error) {
	dir := filepath.Join(dataDir, "forms")
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("cannot create form store directory: %w", err)
	}
	return &FormStore{dir: dir, logger: logger}, nil
}

// Get returns the stored configuration for a form key, or ErrNotFound.
func (s *FormStore) Get(key string) (forms.FormConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(key)
}

// Put replaces a form's fields mapping wholesale. The mapping is validated
// field by field before anything is written; the key must already exist.
func (s *FormStore) Put(key string, fields forms.FieldsConfig) (forms.FormConfig, error) {
	if err := forms.ValidateFields(fields); err != nil {
		return forms.FormConfig{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.read(key)
	if err != nil {
		return forms.FormConfig{}, err
	}

	cfg.FieldsConfig = fields.Clone()
	if err := s.write(cfg); err != nil {
		return forms.FormConfig{}, err
	}
	s.logger.Info("form fields replaced", "key", key, "fields", len(fields))
	return cfg, nil
}

// SetTemplatePath records the template reference for a form key. Field
// edits never touch this; uploads never touch the fields.
func (s *FormStore) SetTemplatePath(key, templatePath string) (forms.FormConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.read(key)
	if err != nil {
		return forms.FormConfig{}, err
	}

	cfg.TemplatePath = templatePath
	if err := s.write(cfg); err != nil {
		return forms.FormConfig{}, err
	}
	s.logger.Info("form template updated", "key", key, "template_path", templatePath)
	return cfg, nil
}

// Seed creates empty records for statically configured forms that have no
// record yet. Existing records are never overwritten.
func (s *FormStore) Seed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range forms.DefaultFormKeys() {
		if _, err := s.read(key); err == nil {
			continue
		}
		cfg := forms.FormConfig{Key: key, FieldsConfig: forms.FieldsConfig{}}
		if err := s.write(cfg); err != nil {
			return fmt.Errorf("cannot seed form %s: %w", key, err)
		}
		s.logger.Info("seeded form record", "key", key)
	}
	return nil
}

func (s *FormStore) read(key string) (forms.FormConfig, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return forms.FormConfig{}, ErrNotFound
	}
	if err != nil {
		return forms.FormConfig{}, fmt.Errorf("cannot read form record %s: %w", key, err)
	}

	var cfg forms.FormConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return forms.FormConfig{}, fmt.Errorf("corrupt form record %s: %w", key, err)
	}
	if cfg.FieldsConfig == nil {
		cfg.FieldsConfig = forms.FieldsConfig{}
	}
	return cfg, nil
}

func (s *FormStore) write(cfg forms.FormConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode form record %s: %w", cfg.Key, err)
	}
	return WriteFileAtomic(s.path(cfg.Key), data)
}

func (s *FormStore) path(key string) string {
	// Keys are external input; keep them from escaping the store directory.
	safe := strings.ReplaceAll(filepath.Base(key), string(filepath.Separator), "_")
	return filepath.Join(s.dir, safe+".json")
}
