/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package structdesc

import (
	"github.com/voedger/dpackgen/pkg/schema"
	"github.com/voedger/dpackgen/pkg/typedesc"
)

// Resolver supplies field value descriptors.
type Resolver interface {
	ResolveField(f *schema.Field) (*typedesc.Descriptor, error)
}

// OpKind is an operation generated for a struct or one of its fields.
type OpKind uint8

//go:generate stringer -type=OpKind -output=op-kind_string.go

const (
	OpKind_null OpKind = iota

	OpKind_FieldCheck
	OpKind_FieldHas
	OpKind_FieldGet
	OpKind_FieldSet
	OpKind_FieldPack
	OpKind_FieldUnpack
	OpKind_FieldFini

	OpKind_Init
	OpKind_Fini
	OpKind_Alloc
	OpKind_Free
	OpKind_Create
	OpKind_Destroy
	OpKind_Check
	OpKind_Pack
	OpKind_Unpack

	OpKind_Count
)

// Op is one operation to generate.
type Op struct {
	Kind  OpKind
	Field *Field

	// Accessor of a deprecated field
	Deprecated bool

	// Not visible outside the definitions file
	Internal bool
}

// List describes a bounded list field.
type List struct {
	Min     uint
	Max     uint
	NrMacro string
}

// Field is a struct member with its wire identity.
type Field struct {
	Schema *schema.Field

	// Zero-based position, also the wire field id
	ID int

	// Member name
	Name string

	// Enum item holding ID
	IDMacro string

	// Descriptor of the value, or of one element for lists
	Type *typedesc.Descriptor

	Mandatory bool
	Status    schema.Status
	List      *List

	// Parsed default, nil if none
	Default      any
	DefaultMacro string

	// Value packed for obsolete mandatory fields
	Placeholder any

	// Custom validator function names
	Validators []string

	// Wire size of the whole map entry: field id and value
	Size typedesc.Bounds
}

// Struct is the immutable layout of a record.
type Struct struct {
	Schema *schema.Record

	// C struct tag, also the prefix of every operation name
	Name string

	// Prefix of every macro
	Macro string

	Fields []*Field

	MandatoryCount        int
	ValidMask             uint32
	MandatoryMask         uint32
	ObsoleteMask          uint32
	ObsoleteMandatoryMask uint32

	// Terms summed into Size
	MinTerms []typedesc.Bound
	MaxTerms []typedesc.Bound
	Size     typedesc.Bounds

	Validators []string
	Ops        []Op
}
