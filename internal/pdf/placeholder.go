package pdf

import (
	"bytes"
	"fmt"

	"codeberg.org/go-pdf/fpdf"
)

// GeneratePlaceholder synthesizes the single-page stand-in template used
// when a form has no uploaded asset: fixed labels plus two bordered boxes
// where the seeded name and email fields land.
func GeneratePlaceholder() ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Arial", "B", 16)
	doc.Text(50, 50, "Full Name:")
	doc.Text(50, 70, "Email:")
	doc.Text(150, 20, "Date:")
	doc.Rect(48, 55, 100, 10, "D")
	doc.Rect(48, 75, 100, 10, "D")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("cannot generate placeholder template: %w", err)
	}
	return buf.Bytes(), nil
}
