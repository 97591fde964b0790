//go:build go1.18

package domain

import (
	"testing"
	"unicode/utf8"
)

// FuzzParseTenantID checks that parsing never panics and that accepted IDs
// round-trip through String.
func FuzzParseTenantID(f *testing.F) {
	f.Add("")
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("00000000-0000-0000-0000-000000000000")
	f.Add("not-a-uuid")
	f.Add(string([]byte{0x00, 0x01, 0x02}))

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParseTenantID(input)
		if err == nil {
			roundTrip, err2 := ParseTenantID(id.String())
			if err2 != nil {
				t.Errorf("valid ID failed round-trip: %v", err2)
			}
			if roundTrip != id {
				t.Error("round-trip changed ID value")
			}
		}
		if !utf8.ValidString(input) && err == nil {
			t.Error("non-UTF8 input was accepted")
		}
	})
}

// FuzzParseVocabulary ensures role and status parsing accept only the closed sets.
func FuzzParseVocabulary(f *testing.F) {
	f.Add("owner")
	f.Add("trial")
	f.Add("")
	f.Add("OWNER")

	f.Fuzz(func(t *testing.T, input string) {
		if r, err := ParseRole(input); err == nil && !r.IsValid() {
			t.Errorf("ParseRole accepted %q outside the closed set", input)
		}
		if s, err := ParseTenantStatus(input); err == nil && !s.IsValid() {
			t.Errorf("ParseTenantStatus accepted %q outside the closed set", input)
		}
	})
}
