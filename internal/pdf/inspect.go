package pdf

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// pageCount parses the document far enough to count its pages. Relaxed
// validation keeps slightly out-of-spec uploads workable.
func pageCount(doc []byte) (int, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(doc), conf)
	if err != nil {
		return 0, fmt.Errorf("failed to read PDF context: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return 0, fmt.Errorf("failed to determine page count: %w", err)
	}
	return ctx.PageCount, nil
}

// IsReadable reports whether the bytes parse as a PDF document.
func IsReadable(doc []byte) bool {
	_, err := pageCount(doc)
	return err == nil
}
