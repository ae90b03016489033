package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldConfig_TargetPage(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		expected int
	}{
		{name: "unset page defaults to 1", page: 0, expected: 1},
		{name: "explicit page 1", page: 1, expected: 1},
		{name: "explicit page 3", page: 3, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := FieldConfig{Page: tt.page}
			if got := field.TargetPage(); got != tt.expected {
				t.Errorf("TargetPage() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestValidateFields(t *testing.T) {
	tests := []struct {
		name       string
		fields     FieldsConfig
		wantIssues []FieldIssue
	}{
		{
			name: "valid fields",
			fields: FieldsConfig{
				"full_name": {X: 50, Y: 60, Page: 1, Font: "Helvetica", Size: 12},
				"email":     {X: 50, Y: 80, Font: "Helvetica", Size: 12},
			},
		},
		{
			name:   "empty mapping is valid",
			fields: FieldsConfig{},
		},
		{
			name: "negative coordinates",
			fields: FieldsConfig{
				"a": {X: -1, Y: -2, Font: "Helvetica", Size: 12},
			},
			wantIssues: []FieldIssue{
				{Field: "a", Attribute: "x", Message: "must be >= 0"},
				{Field: "a", Attribute: "y", Message: "must be >= 0"},
			},
		},
		{
			name: "missing font and zero size",
			fields: FieldsConfig{
				"a": {X: 10, Y: 10},
			},
			wantIssues: []FieldIssue{
				{Field: "a", Attribute: "font", Message: "font is required"},
				{Field: "a", Attribute: "size", Message: "must be > 0"},
			},
		},
		{
			name: "blank name",
			fields: FieldsConfig{
				" ": {X: 10, Y: 10, Font: "Helvetica", Size: 12},
			},
			wantIssues: []FieldIssue{
				{Field: " ", Attribute: "name", Message: "field name cannot be blank"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFields(tt.fields)
			if len(tt.wantIssues) == 0 {
				require.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantIssues, verr.Issues)
		})
	}
}

func TestValidateFields_CollectsAcrossFields(t *testing.T) {
	fields := FieldsConfig{
		"b": {X: -1, Y: 10, Font: "Helvetica", Size: 12},
		"a": {X: 10, Y: 10, Font: "", Size: 12},
	}

	var verr *ValidationError
	require.ErrorAs(t, ValidateFields(fields), &verr)
	require.Len(t, verr.Issues, 2)
	// Issues come out in sorted field order so responses are stable.
	assert.Equal(t, "a", verr.Issues[0].Field)
	assert.Equal(t, "b", verr.Issues[1].Field)
}

func TestDefaultForm(t *testing.T) {
	cfg, ok := DefaultForm("user_profile")
	require.True(t, ok)
	assert.Equal(t, "user_profile", cfg.Key)
	assert.Contains(t, cfg.FieldsConfig, "full_name")
	assert.Contains(t, cfg.FieldsConfig, "email")
	assert.Contains(t, cfg.FieldsConfig, "date")

	// Mutating the returned copy must not leak into the table.
	cfg.FieldsConfig["full_name"] = FieldConfig{X: 1, Y: 1, Font: "Courier", Size: 8}
	again, ok := DefaultForm("user_profile")
	require.True(t, ok)
	assert.Equal(t, 50.0, again.FieldsConfig["full_name"].X)

	_, ok = DefaultForm("unknown_form")
	assert.False(t, ok)
}

func TestDataMapping_Lookup(t *testing.T) {
	data := DataMapping{"full_name": "TestUser"}

	v, ok := data.Lookup("full_name")
	assert.True(t, ok)
	assert.Equal(t, "TestUser", v)

	_, ok = data.Lookup("missing")
	assert.False(t, ok)
}
