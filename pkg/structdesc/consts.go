/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package structdesc

// MaxFields is the number of bits in the presence bitmap (DPACK_MAP_FLDNR_MAX)
const MaxFields = 32

// MaxListElements is DPACK_ARRAY_NR_MAX
const MaxListElements = 1024
