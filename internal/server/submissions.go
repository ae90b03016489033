package server

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"
)

type createSubmissionRequest struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Email string `json:"email"`
}

func (r createSubmissionRequest) validate() []issue {
	var issues []issue
	if strings.TrimSpace(r.Name) == "" {
		issues = append(issues, issue{Field: "name", Message: "name is required"})
	}
	if r.Age <= 0 {
		issues = append(issues, issue{Field: "age", Message: "age must be a positive integer"})
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		issues = append(issues, issue{Field: "email", Message: "email must be a valid address"})
	}
	return issues
}

func (s *Server) handleListSubmissions(w http.ResponseWriter, _ *http.Request) {
	list, err := s.submissions.List()
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateSubmission(w http.ResponseWriter, r *http.Request) {
	var req createSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: "malformed request body: " + err.Error()})
		return
	}

	if issues := req.validate(); len(issues) > 0 {
		s.respondJSON(w, http.StatusUnprocessableEntity, errorBody{Error: "validation failed", Issues: issues})
		return
	}

	sub, err := s.submissions.Create(req.Name, req.Age, req.Email)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, sub)
}
