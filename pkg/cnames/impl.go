/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package cnames

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ToID converts a schema name into a lower-case C identifier.
// Accents are stripped, every other character outside [a-z0-9_]
// becomes an underscore and a leading digit gets an underscore prefix.
func ToID(name string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded) + 1)
	for i, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r == '_':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// ToDef converts a schema name into an upper-case C macro name.
func ToDef(name string) string {
	return strings.ToUpper(ToID(name))
}

// ID joins name parts into one C identifier: ID("smpl", "sample") == "smpl_sample".
func ID(parts ...string) string {
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			ids = append(ids, ToID(p))
		}
	}
	return strings.Join(ids, "_")
}

// Def joins name parts into one macro name: Def("smpl", "sample") == "SMPL_SAMPLE".
func Def(parts ...string) string {
	return strings.ToUpper(ID(parts...))
}

// Guard returns the include guard macro for a module.
func Guard(module string) string {
	return "_" + ToDef(module) + "_H"
}
