/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package schema

import (
	"math/big"

	"github.com/alecthomas/participle/v2/lexer"
)

// Module is the root of a resolved schema tree.
type Module struct {
	Pos         lexer.Position
	Name        string
	Prefix      string
	Description string
	Typedefs    []*Typedef
	Imports     []*Import
	Records     []*Record
}

// Import lists the types a module borrows from another module.
// Imported types are referenced as `prefix:name`.
type Import struct {
	Pos      lexer.Position
	Prefix   string
	Module   string
	Typedefs []*Typedef
}

// Typedef declares a named type. Either Binding is complete (a native type
// the generated code does not know how to encode) or Type names the
// underlying type the typedef aliases.
type Typedef struct {
	Pos         lexer.Position
	Module      string
	Name        string
	Type        TypeRef
	Binding     Binding
	Description string
	Constraints
}

// Binding is a caller-supplied native type: C type, header, codec functions
// and wire size bounds.
type Binding struct {
	Include string
	CType   string
	Pack    string
	Unpack  string
	Min     string
	Max     string
	Copy    string
}

// TypeRef names a type, optionally qualified by an import prefix.
type TypeRef struct {
	Pos    lexer.Position
	Prefix string
	Name   string
}

// Constraints restrict the value space of a type or a field.
type Constraints struct {
	Ranges   []Range
	Length   []Range
	Patterns []Pattern
}

type LimitKind uint8

//go:generate stringer -type=LimitKind -output=limit-kind_string.go

const (
	LimitKind_Value LimitKind = iota
	LimitKind_Min
	LimitKind_Max

	LimitKind_Count
)

// Limit is one end of a range: a literal value or the type's own limit.
type Limit struct {
	Kind  LimitKind
	Value *big.Int
}

// Range is a closed interval [Lo, Hi].
type Range struct {
	Pos lexer.Position
	Lo  Limit
	Hi  Limit
}

// Pattern is a regular expression the whole string value must (or, when
// inverted, must not) match.
type Pattern struct {
	Pos    lexer.Position
	Regexp string
	Invert bool
}

type Status uint8

//go:generate stringer -type=Status -output=status_string.go

const (
	Status_Current Status = iota
	Status_Deprecated
	Status_Obsolete

	Status_Count
)

type Cardinality uint8

//go:generate stringer -type=Cardinality -output=cardinality_string.go

const (
	Cardinality_Single Cardinality = iota
	Cardinality_BoundedList

	Cardinality_Count
)

// Validator is a named, user-supplied C predicate.
type Validator struct {
	Pos  lexer.Position
	Name string
}

// Field is a record member. Exactly one of Type and Record is set.
type Field struct {
	Pos         lexer.Position
	Name        string
	Description string
	Type        TypeRef
	Record      *Record
	Cardinality Cardinality
	MinElements uint
	MaxElements *uint
	Mandatory   bool
	Default     *string
	Status      Status
	Must        []Validator
	Constraints
}

// Record is a container with ordered fields. The same *Record may be
// referenced from several fields.
type Record struct {
	Pos         lexer.Position
	Name        string
	Description string
	Fields      []*Field
	Must        []Validator
}
