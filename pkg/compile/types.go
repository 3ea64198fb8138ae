/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package compile

import (
	"github.com/voedger/dpackgen/pkg/emitter"
	"github.com/voedger/dpackgen/pkg/moddesc"
	"github.com/voedger/dpackgen/pkg/schema"
)

// Options configure a compilation.
type Options struct {
	// Output format, FormatDPack if empty
	Format string

	// Value of DPACK_STRLEN_MAX used for numeric size bounds
	StringMaxLen uint64

	// Generated unpack functions check decoded values
	Validate bool

	// Runtime assertion macro generated code expands to
	AssertMacro string

	// Text inserted at the top of every artifact
	HeaderContent string

	// Directory receiving <module>.h and <module>.c. Artifacts are streamed
	// to a single writer if empty
	OutputDir string
}

// Unit is one compiled schema module.
type Unit struct {
	Source    string
	Schema    *schema.Module
	Module    *moddesc.Module
	Artifacts *emitter.Artifacts
}

// IErrUnwrapper is implemented by errors joined with errors.Join.
type IErrUnwrapper interface {
	Unwrap() []error
}
