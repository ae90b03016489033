// Package coords converts between preview pixel space and document
// millimetre space. Both directions assume the rendered preview keeps the
// template's aspect ratio; no aspect correction is applied.
package coords

import "math"

// PageSize is a logical page in millimetres.
type PageSize struct {
	Name   string
	Width  float64
	Height float64
}

// A4 is the only page size the editor and compositor work in.
var A4 = PageSize{Name: "A4", Width: 210, Height: 297}

// DocumentPoint is a position in document space, millimetres from the
// page's top-left corner.
type DocumentPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// OverlayPosition places a marker over the rendered preview as percentages
// of the page element, so markers track the page at any zoom.
type OverlayPosition struct {
	LeftPercent float64 `json:"left_percent"`
	TopPercent  float64 `json:"top_percent"`
}

// Mapper converts pointer offsets over a rendered page element into
// document coordinates and back.
type Mapper struct {
	page PageSize
}

// NewMapper returns a mapper for the given logical page size.
func NewMapper(page PageSize) *Mapper {
	return &Mapper{page: page}
}

// ToDocument maps a pointer offset (px, py), relative to the top-left of a
// page element rendered at renderW x renderH pixels, to whole-millimetre
// document coordinates.
func (m *Mapper) ToDocument(px, py, renderW, renderH float64) DocumentPoint {
	return DocumentPoint{
		X: math.Round(px * m.page.Width / renderW),
		Y: math.Round(py * m.page.Height / renderH),
	}
}

// ToOverlay maps document coordinates to an overlay position. Values
// outside the page are passed through unchanged; a field may legally sit
// off the visible page.
func (m *Mapper) ToOverlay(x, y float64) OverlayPosition {
	return OverlayPosition{
		LeftPercent: x / m.page.Width * 100,
		TopPercent:  y / m.page.Height * 100,
	}
}

// OverlayToPixels resolves an overlay position back to pixel offsets for a
// page element rendered at renderW x renderH.
func (m *Mapper) OverlayToPixels(pos OverlayPosition, renderW, renderH float64) (px, py float64) {
	return pos.LeftPercent / 100 * renderW, pos.TopPercent / 100 * renderH
}
