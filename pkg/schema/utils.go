/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package schema

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

var cIdentRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsCIdent returns true if s may be used verbatim as a C identifier.
func IsCIdent(s string) bool {
	return cIdentRegexp.MatchString(s)
}

// ParseTypeRef splits "prefix:name" into a reference.
func ParseTypeRef(s string, pos lexer.Position) TypeRef {
	if prefix, name, ok := strings.Cut(s, ":"); ok {
		return TypeRef{Pos: pos, Prefix: prefix, Name: name}
	}
	return TypeRef{Pos: pos, Name: s}
}

func (r TypeRef) IsZero() bool { return r.Name == "" }

func (r TypeRef) String() string {
	if r.Prefix == "" {
		return r.Name
	}
	return r.Prefix + ":" + r.Name
}

// Missing returns the binding attributes left empty, in declaration order.
// The optional copy function is never reported.
func (b Binding) Missing() (missed []string) {
	for _, a := range []struct {
		name, value string
	}{
		{BindingInclude, b.Include},
		{BindingType, b.CType},
		{BindingPack, b.Pack},
		{BindingUnpack, b.Unpack},
		{BindingMin, b.Min},
		{BindingMax, b.Max},
	} {
		if a.value == "" {
			missed = append(missed, a.name)
		}
	}
	return missed
}

func (b Binding) IsEmpty() bool { return b == Binding{} }

func (c Constraints) IsEmpty() bool {
	return len(c.Ranges) == 0 && len(c.Length) == 0 && len(c.Patterns) == 0
}

// ValueLimit returns a limit holding v.
func ValueLimit(v int64) Limit {
	return Limit{Kind: LimitKind_Value, Value: big.NewInt(v)}
}

// Resolve returns the numeric value of the limit for a type spanning [lo, hi].
func (l Limit) Resolve(lo, hi *big.Int) *big.Int {
	switch l.Kind {
	case LimitKind_Min:
		return lo
	case LimitKind_Max:
		return hi
	default:
		return l.Value
	}
}

func (l Limit) String() string {
	switch l.Kind {
	case LimitKind_Min:
		return KeywordMin
	case LimitKind_Max:
		return KeywordMax
	default:
		return l.Value.String()
	}
}

func (r Range) String() string {
	return r.Lo.String() + ".." + r.Hi.String()
}

// IsMandatoryObsolete returns true for fields still sent on the wire although
// no accessor is generated for them.
func (f *Field) IsMandatoryObsolete() bool {
	return f.Mandatory && f.Status == Status_Obsolete
}

func (f *Field) IsList() bool {
	return f.Cardinality == Cardinality_BoundedList
}
