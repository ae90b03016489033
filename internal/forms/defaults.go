package forms

// Static fallback table for forms that have no stored record yet. This is
// the second stop in the resolution order (store record, then this table,
// then NotFound) and also drives first-run seeding of the record store.
var defaultForms = map[string]FormConfig{
	"user_profile": {
		Key:          "user_profile",
		TemplatePath: "",
		FieldsConfig: FieldsConfig{
			"full_name": {X: 50, Y: 60, Font: "Helvetica", Size: 12},
			"email":     {X: 50, Y: 80, Font: "Helvetica", Size: 12},
			"date":      {X: 150, Y: 30, Font: "Helvetica", Size: 10},
		},
	},
}

// DefaultForm returns the static configuration for a form key, if one is
// defined.
func DefaultForm(key string) (FormConfig, bool) {
	cfg, ok := defaultForms[key]
	if !ok {
		return FormConfig{}, false
	}
	cfg.FieldsConfig = cfg.FieldsConfig.Clone()
	return cfg, true
}

// DefaultFormKeys lists every statically configured form key.
func DefaultFormKeys() []string {
	keys := make([]string, 0, len(defaultForms))
	for key := range defaultForms {
		keys = append(keys, key)
	}
	return keys
}
