package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/formlay/pdf-form-server/internal/forms"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"ok":        true,
		"service":   s.cfg.ServerName,
		"version":   s.cfg.Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	cfg, err := s.forms.Get(key)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, cfg)
}

type updateTemplateRequest struct {
	FieldsConfig forms.FieldsConfig `json:"fields_config"`
}

func (s *Server) handleUpdateTemplate(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	var req updateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: "malformed request body: " + err.Error()})
		return
	}
	if req.FieldsConfig == nil {
		s.respondJSON(w, http.StatusUnprocessableEntity, errorBody{
			Error:  "validation failed",
			Issues: []issue{{Field: "fields_config", Message: "fields_config is required"}},
		})
		return
	}

	cfg, err := s.forms.Put(key, req.FieldsConfig)
	if err != nil {
		s.respondError(w, err)
		return
	}

	// Descriptive side output only; its failure never fails the update.
	if err := s.writeFieldsSummary(key, cfg.FieldsConfig); err != nil {
		s.logger.Warn("cannot write fields summary", "key", key, "error", err)
	}

	s.respondJSON(w, http.StatusOK, cfg)
}

// writeFieldsSummary rewrites the human-readable Markdown description of a
// form's active field configuration. Nothing reads it back.
func (s *Server) writeFieldsSummary(key string, fields forms.FieldsConfig) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# Fields Configuration for %s\n\n", key)

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		field := fields[name]
		fmt.Fprintf(&b, "## %s\n", name)
		fmt.Fprintf(&b, "- **Page**: %d\n", field.TargetPage())
		fmt.Fprintf(&b, "- **X**: %g\n", field.X)
		fmt.Fprintf(&b, "- **Y**: %g\n", field.Y)
		fmt.Fprintf(&b, "- **Font**: %s\n", field.Font)
		fmt.Fprintf(&b, "- **Size**: %g\n\n", field.Size)
	}

	dir := s.cfg.TemplatesDirectory()
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, filepath.Base(key)+".md"), []byte(b.String()), 0o640)
}
