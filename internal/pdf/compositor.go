// Package pdf implements the composition side of the system: resolving a
// form's background template, overlaying positioned field values onto its
// pages and producing the filled document.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"

	"github.com/formlay/pdf-form-server/internal/coords"
	"github.com/formlay/pdf-form-server/internal/forms"
)

// Compositor overlays field values onto template pages. Output pages are
// A4 portrait in millimetres with the origin at the top-left corner, the
// same convention the coordinate mapper uses.
type Compositor struct {
	logger *slog.Logger
}

// NewCompositor creates a compositor that reports through the given logger.
func NewCompositor(logger *slog.Logger) *Compositor {
	return &Compositor{logger: logger}
}

// Compose imports every page of the template, writes onto page p the value
// of each field configured for p that has a data entry, and returns the
// serialized result. Fields without a data entry are skipped. Unreadable
// template bytes yield a CompositionError.
func (c *Compositor) Compose(template []byte, fields forms.FieldsConfig, data forms.DataMapping) (out []byte, err error) {
	pages, countErr := pageCount(template)
	if countErr != nil {
		return nil, &CompositionError{Op: "open", Err: countErr}
	}

	// The page importer panics on input it cannot parse.
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = &CompositionError{Op: "import", Err: fmt.Errorf("%v", r)}
		}
	}()

	doc := fpdf.New("P", "mm", coords.A4.Name, "")
	importer := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(template))

	// Sorted placement order keeps occlusion between overlapping fields
	// deterministic across renders.
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for page := 1; page <= pages; page++ {
		tpl := importer.ImportPageFromStream(doc, &rs, page, "/MediaBox")
		doc.AddPage()
		importer.UseImportedTemplate(doc, tpl, 0, 0, coords.A4.Width, 0)

		for _, name := range names {
			field := fields[name]
			if field.TargetPage() != page {
				continue
			}
			value, ok := data.Lookup(name)
			if !ok {
				continue
			}
			doc.SetFont(resolveFontFamily(field.Font), "", field.Size)
			doc.Text(field.X, field.Y, value)
		}
	}

	if doc.Err() {
		return nil, &CompositionError{Op: "render", Err: doc.Error()}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, &CompositionError{Op: "output", Err: err}
	}

	c.logger.Debug("composed document", "pages", pages, "fields", len(fields))
	return buf.Bytes(), nil
}

// resolveFontFamily maps a configured font name onto one of the built-in
// families. Unknown names fall back to Helvetica rather than failing the
// whole render over a styling attribute.
func resolveFontFamily(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "arial":
		return "Arial"
	case "times", "times new roman":
		return "Times"
	case "courier":
		return "Courier"
	case "symbol":
		return "Symbol"
	case "zapfdingbats":
		return "ZapfDingbats"
	default:
		return "Helvetica"
	}
}
