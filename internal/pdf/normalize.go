package pdf

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Normalize rewrites a document without object streams or cross-reference
// streams so the page importer can always parse it. Callers treat failure
// as non-fatal: the upload already succeeded with the original bytes.
func Normalize(doc []byte) ([]byte, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	conf.WriteObjectStream = false
	conf.WriteXRefStream = false

	var buf bytes.Buffer
	if err := api.Optimize(bytes.NewReader(doc), &buf, conf); err != nil {
		return nil, fmt.Errorf("normalization rewrite failed: %w", err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("normalization produced an empty document")
	}
	return buf.Bytes(), nil
}
