// Package permission resolves staff capabilities from a permission set and
// classifies a set against the predefined templates.
//
// Nothing here returns an error: absent or malformed input denies a check and
// classifies as TemplateCustom.
package permission

import "strings"

// HasPermission reports whether the capability at "category.key" is granted.
func HasPermission(set Set, path string) bool {
	if set == nil {
		return false
	}
	parts := strings.Split(path, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}
	value, ok := set.Lookup(Category(parts[0]), parts[1])
	return ok && value
}

// IdentifyTemplate returns the first template whose full matrix equals set,
// or TemplateCustom.
func IdentifyTemplate(set Set) TemplateID {
	for _, category := range categories {
		if _, ok := set[category]; !ok {
			return TemplateCustom
		}
	}

	for _, t := range catalog {
		if t.ID == TemplateCustom {
			continue
		}
		if sameCapabilities(set, t.Permissions) {
			return t.ID
		}
	}
	return TemplateCustom
}

// sameCapabilities compares the catalog fields one by one. Keys outside the
// catalog are ignored.
func sameCapabilities(a, b Set) bool {
	for _, f := range fields {
		av, aok := a.Lookup(f.Category, f.Key)
		bv, bok := b.Lookup(f.Category, f.Key)
		if !aok || !bok || av != bv {
			return false
		}
	}
	return true
}
