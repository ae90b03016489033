// Package forms defines the field configuration model shared by the store,
// the editor session and the PDF compositor.
package forms

// FieldConfig describes one placeable text field on a template page.
// Coordinates are millimetres in document space with the origin at the
// page's top-left corner.
type FieldConfig struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Page int     `json:"page,omitempty"`
	Font string  `json:"font"`
	Size float64 `json:"size"`
}

// TargetPage returns the page the field renders on, defaulting to 1 when
// the page was never set.
func (f FieldConfig) TargetPage() int {
	if f.Page < 1 {
		return 1
	}
	return f.Page
}

// FieldsConfig maps a field name to its placement. Field names double as
// lookup keys into submitted data.
type FieldsConfig map[string]FieldConfig

// Clone returns an independent copy of the mapping.
func (fc FieldsConfig) Clone() FieldsConfig {
	out := make(FieldsConfig, len(fc))
	for name, field := range fc {
		out[name] = field
	}
	return out
}

// FormConfig is one named form: its stable key, its field placements and a
// reference to the uploaded background template (empty until an upload).
type FormConfig struct {
	Key          string       `json:"key"`
	TemplatePath string       `json:"template_path"`
	FieldsConfig FieldsConfig `json:"fields_config"`
}

// DataMapping carries submitted values keyed by field name. Keys with no
// matching field are ignored; fields with no matching key are skipped.
type DataMapping map[string]string

// Lookup returns the value for a field name and whether one was supplied.
func (d DataMapping) Lookup(name string) (string, bool) {
	v, ok := d[name]
	return v, ok
}
