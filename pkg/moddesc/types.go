/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package moddesc

import (
	"github.com/voedger/dpackgen/pkg/schema"
	"github.com/voedger/dpackgen/pkg/structdesc"
	"github.com/voedger/dpackgen/pkg/typedesc"
)

// Bucket decides where and how a function is emitted.
type Bucket uint8

//go:generate stringer -type=Bucket -output=bucket_string.go

const (
	Bucket_null Bucket = iota

	// Declared in the declarations file, defined in the definitions file
	Bucket_Extern

	// Defined in the definitions file only
	Bucket_Static

	// Defined in the declarations file
	Bucket_Inline

	Bucket_Count
)

type FuncKind uint8

//go:generate stringer -type=FuncKind -output=func-kind_string.go

const (
	FuncKind_null FuncKind = iota

	// Struct or field operation. See Func.Op
	FuncKind_Op

	// Named alias codec. See Func.Type
	FuncKind_AliasEncode
	FuncKind_AliasDecode

	// Regular expression matcher shared by pattern checks
	FuncKind_MatchPattern

	FuncKind_Count
)

// Func is one function to emit.
type Func struct {
	Kind   FuncKind
	Bucket Bucket
	Name   string

	Struct *structdesc.Struct
	Op     structdesc.Op

	Type *typedesc.Descriptor
}

// Define is a macro. Terms are summed when there are several of them.
type Define struct {
	Name  string
	Terms []string
}

// Typedef declares a named alias storage type.
type Typedef struct {
	Name  string
	CType string
}

type EnumItem struct {
	Name  string
	Value string
}

type Enum struct {
	Name  string
	Items []EnumItem
}

// Validator is a custom validation function the generated code calls.
type Validator struct {
	Name   string
	Params string
}

// Module is everything generated for one schema module.
type Module struct {
	Schema *schema.Module
	Name   string
	Prefix string
	Guard  string

	// Module-local assertion macro and the runtime macro it expands to
	Assert      string
	AssertMacro string

	// Generated unpack calls check before returning
	Validate bool

	Includes   []string
	Typedefs   []Typedef
	Defines    []Define
	Enums      []Enum
	Structs    []*structdesc.Struct
	Validators []Validator

	Extern []*Func
	Static []*Func
	Inline []*Func
}

// Options configure module building.
type Options struct {
	StringMaxLen uint64
	Validate     bool
	AssertMacro  string
}
