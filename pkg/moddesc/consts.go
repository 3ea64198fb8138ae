/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package moddesc

// DefaultAssertMacro is the runtime assertion generated code expands to
const DefaultAssertMacro = "dpack_assert"

// Headers every declarations file includes
var baseIncludes = []string{
	"dpack/codec.h",
	"dpack/map.h",
	"errno.h",
	"stdbool.h",
	"stdint.h",
	"stdlib.h",
}

const includeArray = "dpack/array.h"

// Inline list setters copy elements with memcpy
const includeString = "string.h"
