// Package editor holds the operator-facing working copy of a form's field
// configuration: add, rename, update and remove fields, save back to the
// store wholesale, and request preview renders with placeholder data.
package editor

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/formlay/pdf-form-server/internal/forms"
)

// State is the session's lifecycle position. Previewing is tracked
// separately because a preview can run while the config is simply Ready.
type State int

const (
	StateLoading State = iota
	StateReady
	StateSaving
)

// String returns a string representation of the State
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateSaving:
		return "saving"
	default:
		return "unknown"
	}
}

var (
	// ErrNameConflict is reported when a rename targets a taken name.
	ErrNameConflict = errors.New("field name already in use")
	// ErrBlankName is reported when a rename targets a blank name.
	ErrBlankName = errors.New("field name cannot be blank")
	// ErrFieldNotFound is reported when an edit targets an unknown field.
	ErrFieldNotFound = errors.New("no such field")
)

// ConfigStore is the slice of the form store the session needs.
type ConfigStore interface {
	Get(key string) (forms.FormConfig, error)
	Put(key string, fields forms.FieldsConfig) (forms.FormConfig, error)
}

// Renderer produces filled documents for previewing.
type Renderer interface {
	Render(key string, data forms.DataMapping) ([]byte, error)
}

// Session is an in-memory working copy of one form's configuration. It is
// not safe for concurrent use; one operator drives one session.
type Session struct {
	key        string
	store      ConfigStore
	renderer   Renderer
	logger     *slog.Logger
	state      State
	previewing bool
	fields     forms.FieldsConfig
	preview    []byte
}

// NewSession creates a session for a form key. It starts in Loading until
// Load pulls the stored configuration.
func NewSession(key string, store ConfigStore, renderer Renderer, logger *slog.Logger) *Session {
	return &Session{
		key:      key,
		store:    store,
		renderer: renderer,
		logger:   logger,
		state:    StateLoading,
		fields:   forms.FieldsConfig{},
	}
}

// Load pulls the stored configuration into the working copy.
func (s *Session) Load() error {
	cfg, err := s.store.Get(s.key)
	if err != nil {
		return fmt.Errorf("cannot load session for %s: %w", s.key, err)
	}
	s.fields = cfg.FieldsConfig.Clone()
	s.state = StateReady
	return nil
}

// State returns the session's current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Previewing reports whether a preview render is in flight.
func (s *Session) Previewing() bool {
	return s.previewing
}

// Fields returns the current working copy of the field mapping.
func (s *Session) Fields() forms.FieldsConfig {
	return s.fields.Clone()
}

// AddField inserts a new field at the given position with an
// auto-generated name and returns that name. The generated pattern can
// collide with manually chosen names; that is accepted.
func (s *Session) AddField(x, y float64, page int) string {
	name := fmt.Sprintf("field_%d", len(s.fields)+1)
	s.fields[name] = forms.FieldConfig{
		X:    x,
		Y:    y,
		Page: page,
		Font: "Arial",
		Size: 12,
	}
	s.logger.Debug("field added", "key", s.key, "name", name, "x", x, "y", y, "page", page)
	return name
}

// RenameField atomically moves a field to a new name. Blank or taken
// target names are rejected and the configuration is left untouched.
func (s *Session) RenameField(oldName, newName string) error {
	if strings.TrimSpace(newName) == "" {
		return ErrBlankName
	}
	if newName == oldName {
		return nil
	}
	if _, taken := s.fields[newName]; taken {
		return ErrNameConflict
	}
	field, ok := s.fields[oldName]
	if !ok {
		return ErrFieldNotFound
	}
	s.fields[newName] = field
	delete(s.fields, oldName)
	return nil
}

// FieldAttribute names one editable attribute of a field.
type FieldAttribute string

const (
	AttrX    FieldAttribute = "x"
	AttrY    FieldAttribute = "y"
	AttrPage FieldAttribute = "page"
	AttrFont FieldAttribute = "font"
	AttrSize FieldAttribute = "size"
)

// UpdateFieldNumber mutates a numeric attribute in place. There is no
// cross-field validation; two fields may share a position.
func (s *Session) UpdateFieldNumber(name string, attr FieldAttribute, value float64) error {
	field, ok := s.fields[name]
	if !ok {
		return ErrFieldNotFound
	}
	switch attr {
	case AttrX:
		field.X = value
	case AttrY:
		field.Y = value
	case AttrPage:
		field.Page = int(value)
	case AttrSize:
		field.Size = value
	default:
		return fmt.Errorf("attribute %s is not numeric", attr)
	}
	s.fields[name] = field
	return nil
}

// UpdateFieldFont mutates the font attribute in place.
func (s *Session) UpdateFieldFont(name, font string) error {
	field, ok := s.fields[name]
	if !ok {
		return ErrFieldNotFound
	}
	field.Font = font
	s.fields[name] = field
	return nil
}

// RemoveField deletes a field from the working copy. There is no undo.
func (s *Session) RemoveField(name string) error {
	if _, ok := s.fields[name]; !ok {
		return ErrFieldNotFound
	}
	delete(s.fields, name)
	return nil
}

// Save replaces the stored field mapping with the working copy in one
// atomic put. On failure the working copy is untouched and stays current.
func (s *Session) Save() error {
	s.state = StateSaving
	defer func() { s.state = StateReady }()

	if _, err := s.store.Put(s.key, s.fields); err != nil {
		return fmt.Errorf("save failed for %s: %w", s.key, err)
	}
	return nil
}

// Preview renders the form with bracketed placeholder values derived from
// the current field names. The previous preview bytes are released when a
// new render succeeds.
func (s *Session) Preview() ([]byte, error) {
	s.previewing = true
	defer func() { s.previewing = false }()

	data := make(forms.DataMapping, len(s.fields))
	for name := range s.fields {
		data[name] = placeholderValue(name)
	}

	out, err := s.renderer.Render(s.key, data)
	if err != nil {
		return nil, fmt.Errorf("preview failed for %s: %w", s.key, err)
	}
	s.preview = out
	return out, nil
}

// TemplateUploaded clears the working fields after a new background was
// uploaded; placements are meaningless against an unknown layout. Nothing
// is saved until the operator does so explicitly.
func (s *Session) TemplateUploaded() {
	s.fields = forms.FieldsConfig{}
}

// placeholderValue derives the bracketed title-case preview value for a
// field name: "full_name" becomes "[Full Name]".
func placeholderValue(name string) string {
	words := strings.Fields(strings.ReplaceAll(name, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return "[" + strings.Join(words, " ") + "]"
}
