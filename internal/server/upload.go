package server

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/formlay/pdf-form-server/internal/pdf"
	"github.com/formlay/pdf-form-server/internal/store"
)

var pdfMagic = []byte("%PDF-")

func (s *Server) handleUploadTemplate(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	// The key must exist before any bytes are accepted.
	if _, err := s.forms.Get(key); err != nil {
		s.respondError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadSize)
	file, header, err := r.FormFile("pdf")
	if err != nil {
		s.respondJSON(w, http.StatusUnprocessableEntity, errorBody{
			Error:  "validation failed",
			Issues: []issue{{Field: "pdf", Message: "a PDF file upload is required"}},
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.respondJSON(w, http.StatusInternalServerError, errorBody{Error: "cannot read upload: " + err.Error()})
		return
	}
	if len(data) == 0 || !bytes.HasPrefix(data, pdfMagic) {
		s.respondJSON(w, http.StatusUnprocessableEntity, errorBody{
			Error:  "validation failed",
			Issues: []issue{{Field: "pdf", Message: "uploaded file is not a PDF"}},
		})
		return
	}

	s.logger.Info("template upload received", "key", key,
		"filename", header.Filename, "bytes", len(data))

	// Best-effort rewrite for importer compatibility. The upload stands
	// either way.
	if normalized, err := pdf.Normalize(data); err != nil {
		s.logger.Warn("upload normalization failed, keeping original bytes", "key", key, "error", err)
	} else {
		data = normalized
	}

	filename := fmt.Sprintf("%s_%d_%s.pdf", filepath.Base(key), time.Now().Unix(), uuid.NewString())
	absPath := filepath.Join(s.cfg.TemplatesDirectory(), filename)
	if err := store.WriteFileAtomic(absPath, data); err != nil {
		s.respondJSON(w, http.StatusInternalServerError, errorBody{Error: "cannot persist upload: " + err.Error()})
		return
	}

	cfg, err := s.forms.SetTemplatePath(key, "templates/"+filename)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, cfg)
}
