// Package validation holds the field validators used by sign-up and account
// forms.
//
// Every function here is pure and total: any string, including the empty
// string and invalid UTF-8, yields a definite answer and never panics.
// Acceptance (IsValid*) and formatting (Format*) are independent so callers
// can show a formatted preview of a value that is still being rejected.
//
// Lengths are counted in Unicode code points, so a character outside the
// Basic Multilingual Plane (an emoji, say) counts once, not as two UTF-16
// units. Digits and upper-case letters are ASCII only.
package validation
