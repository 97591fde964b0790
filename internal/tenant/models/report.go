package models

import "barbershop/pkg/platform/validation"

// FieldResult is the outcome of checking one form field.
type FieldResult struct {
	Field     string `json:"field"`
	Valid     bool   `json:"valid"`
	Formatted string `json:"formatted,omitempty"`
}

// Report is the live feedback for a sign-up form. Formatted previews are
// filled for phone and tax ID even when the field is rejected.
type Report struct {
	Fields           []FieldResult               `json:"fields"`
	PasswordStrength validation.PasswordStrength `json:"password_strength"`
}

// Valid reports whether every field passed.
func (r Report) Valid() bool {
	for _, f := range r.Fields {
		if !f.Valid {
			return false
		}
	}
	return true
}

// Field returns the result for name.
func (r Report) Field(name string) (FieldResult, bool) {
	for _, f := range r.Fields {
		if f.Field == name {
			return f, true
		}
	}
	return FieldResult{}, false
}
