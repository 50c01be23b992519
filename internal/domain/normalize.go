package domain

import "strings"

// NormalizeEmail prepares an email address for storage and comparison:
// trimmed and lowercased. Uniqueness within a company is checked against the
// normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeName trims surrounding whitespace and compresses internal runs of
// spaces, so "  Main   Warehouse " and "Main Warehouse" are the same
// department.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))
	prevSpace := false
	for _, r := range name {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
