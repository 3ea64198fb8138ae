/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package typedesc

import (
	"math/big"
	"regexp"

	"github.com/voedger/dpackgen/pkg/schema"
)

// Kind selects the payload of a Descriptor.
type Kind uint8

//go:generate stringer -type=Kind -output=kind_string.go

const (
	Kind_null Kind = iota

	// Fixed-width integer. Payload: Unit, Ranges
	Kind_Scalar

	// Payload: none
	Kind_Boolean

	// Heap-allocated, NUL-terminated string. Payload: Length, LenMin, LenMax, Patterns
	Kind_String

	// 64-bit mask. Payload: none
	Kind_BitSet

	// Caller-declared native type. Payload: Binding
	Kind_External

	// Named alias of another type. Payload: Inner, SizeMacros
	Kind_Alias

	// Nested struct. Payload: Record
	Kind_Record

	Kind_Count
)

// Unit is the width and signedness of a scalar.
type Unit uint8

//go:generate stringer -type=Unit -output=unit_string.go

const (
	Unit_null Unit = iota
	Unit_U8
	Unit_U16
	Unit_U32
	Unit_U64
	Unit_S8
	Unit_S16
	Unit_S32
	Unit_S64

	Unit_Count
)

// Bound is a wire size bound: the C expression emitted into generated code
// and, when every term is a known constant, its numeric value.
type Bound struct {
	Expr  string
	Value uint64
	Known bool
}

// Bounds is a [Min, Max] pair of wire size bounds.
type Bounds struct {
	Min Bound
	Max Bound
}

// Interval is a closed numeric interval [Lo, Hi].
type Interval struct {
	Lo *big.Int
	Hi *big.Int
}

// RangeSet is a sorted list of disjoint, non-adjacent intervals.
type RangeSet []Interval

// Descriptor describes how values of one type are stored, encoded, decoded,
// bounded on the wire and validated. Descriptors are immutable once built;
// named ones are shared by every field referring to them.
type Descriptor struct {
	Kind Kind

	// Qualified name for named types ("module:name"), built-in name otherwise
	Name string

	// Storage type as written in a struct member declaration
	CType string

	// Header declaring CType, Encode and Decode
	Include string

	Encode string
	Decode string
	Size   Bounds

	Unit   Unit
	Ranges RangeSet

	Length   RangeSet
	LenMin   Bound
	LenMax   Bound
	Patterns []schema.Pattern

	Binding schema.Binding

	Inner      *Descriptor
	SizeMacros [2]string
	Typedef    *schema.Typedef

	// Restricted marks an anonymous narrowing of a named alias by field constraints.
	// It shares storage and codec with the alias.
	Restricted bool

	Record *schema.Record

	regexps []*regexp.Regexp
}

// Options configure a Resolver.
type Options struct {
	// Numeric value of DPACK_STRLEN_MAX
	StringMaxLen uint64
}
