/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package compile

import "github.com/voedger/dpackgen/pkg/typedesc"

// FormatDPack is the only known output format: C structs with dpack codecs.
const FormatDPack = "dpack"

const DefaultStringMaxLen = typedesc.DefaultStringMaxLen

const (
	dirPerm  = 0o755
	filePerm = 0o644
)
