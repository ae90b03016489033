package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/formlay/pdf-form-server/internal/forms"
	"github.com/formlay/pdf-form-server/internal/pdf"
	"github.com/formlay/pdf-form-server/internal/store"
)

// issue is the wire shape for one validation problem.
type issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorBody struct {
	Error  string  `json:"error"`
	Issues []issue `json:"issues,omitempty"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("cannot encode response", "error", err)
	}
}

func (s *Server) respondPDF(w http.ResponseWriter, filename string, doc []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		s.logger.Error("cannot write pdf response", "error", err)
	}
}

// respondError maps domain errors onto HTTP statuses. Every failure comes
// back as a structured diagnostic, never as partial output.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	var verr *forms.ValidationError
	if errors.As(err, &verr) {
		issues := make([]issue, 0, len(verr.Issues))
		for _, fi := range verr.Issues {
			issues = append(issues, issue{Field: fi.Field + "." + fi.Attribute, Message: fi.Message})
		}
		s.respondJSON(w, http.StatusUnprocessableEntity, errorBody{Error: "validation failed", Issues: issues})
		return
	}

	if errors.Is(err, store.ErrNotFound) {
		s.respondJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
		return
	}

	var missing *pdf.TemplateMissingError
	if errors.As(err, &missing) {
		s.logger.Error("template missing", "path", missing.Path)
		s.respondJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
		return
	}

	var comp *pdf.CompositionError
	if errors.As(err, &comp) {
		s.logger.Error("composition failed", "op", comp.Op, "error", comp.Err)
		s.respondJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
		return
	}

	s.logger.Error("request failed", "error", err)
	s.respondJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
}
