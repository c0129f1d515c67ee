package validator

import "strings"

// falseLike lists submitted values that form layers use for "nothing selected".
var falseLike = map[string]struct{}{
	"0":         {},
	"false":     {},
	"off":       {},
	"null":      {},
	"undefined": {},
}

// Truthy reports whether a raw form value counts as present/selected:
// non-blank and not one of 0, false, off, null, undefined (case-insensitive).
func Truthy(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return false
	}
	_, isFalse := falseLike[v]
	return !isFalse
}

func Checkbox(field, value string) Rule {
	return newFieldRule(field, TypeCheckbox, func() bool {
		return Truthy(value)
	})
}

func Dropdown(field, value string) Rule {
	return newFieldRule(field, TypeDropdown, func() bool {
		return Truthy(value)
	})
}
