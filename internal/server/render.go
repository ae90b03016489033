package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/formlay/pdf-form-server/internal/forms"
)

// demoFormKey is the form the interactive demo and submission renders
// fill. Fields the data mapping does not cover are simply skipped.
const demoFormKey = "user_profile"

// handleDemoRender fills the demo form from query parameters, so the
// editor preview can pass arbitrary field values without a schema.
func (s *Server) handleDemoRender(w http.ResponseWriter, r *http.Request) {
	data := forms.DataMapping{}
	for name, values := range r.URL.Query() {
		if len(values) > 0 {
			data[name] = values[0]
		}
	}
	delete(data, "t") // cache-buster, not field data
	data["date"] = time.Now().Format("2006-01-02")

	doc, err := s.renderer.Render(demoFormKey, data)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondPDF(w, "document.pdf", doc)
}

func (s *Server) handleSubmissionRender(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: "submission id must be an integer"})
		return
	}

	sub, err := s.submissions.Get(id)
	if err != nil {
		s.respondError(w, err)
		return
	}

	data := forms.DataMapping{
		"name":  sub.Name,
		"age":   strconv.Itoa(sub.Age),
		"email": sub.Email,
		"date":  time.Now().Format("2006-01-02"),
	}

	doc, err := s.renderer.Render(demoFormKey, data)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondPDF(w, fmt.Sprintf("submission_%d.pdf", id), doc)
}
