/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package typedesc

// Built-in type names
const (
	TypeUint8  = "uint8"
	TypeUint16 = "uint16"
	TypeUint32 = "uint32"
	TypeUint64 = "uint64"
	TypeInt8   = "int8"
	TypeInt16  = "int16"
	TypeInt32  = "int32"
	TypeInt64  = "int64"
	TypeBool   = "bool"
	TypeString = "string"
	TypeBits   = "bits"
)

// DefaultStringMaxLen is the value of DPACK_STRLEN_MAX the runtime ships with
const DefaultStringMaxLen = 255

// String length limits
const (
	stringLenMin     = 1
	stringLenMaxExpr = "DPACK_STRLEN_MAX"
)

// Runtime headers
const (
	IncludeScalar = "dpack/scalar.h"
	IncludeString = "dpack/string.h"
)

// Encoded size of a boolean
const (
	boolSizeExpr = "DPACK_BOOL_SIZE"
	boolSize     = 1
)
