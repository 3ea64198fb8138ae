/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package refcodec

import (
	"github.com/voedger/dpackgen/pkg/schema"
	"github.com/voedger/dpackgen/pkg/structdesc"
)

// Validator is a custom validation function. Field validators receive the
// field value ([]any for lists), record validators the *Value.
type Validator func(value any) error

// Options configure a Codec.
type Options struct {
	// Unpack checks every decoded value
	Validate bool

	// Custom validators by name. Unknown names pass.
	Validators map[string]Validator
}

// Codec packs, unpacks and checks values the way generated code does.
type Codec struct {
	opts    Options
	structs map[*schema.Record]*structdesc.Struct
	names   map[string]*structdesc.Struct
}

// Value is an instance of a struct: presence bitmap and field values
// indexed by field id. Values are uint64 or int64 for scalars, bool,
// uint64 for bit sets, string, []any for lists and *Value for records.
type Value struct {
	Struct *structdesc.Struct
	Filled uint32
	Fields []any

	codec *Codec
}
