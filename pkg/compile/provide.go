/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package compile

import (
	"context"
	"io"

	"github.com/voedger/dpackgen/pkg/schema"
)

// DefaultOptions returns options generating validating dpack code.
func DefaultOptions() Options {
	return Options{
		Format:       FormatDPack,
		StringMaxLen: DefaultStringMaxLen,
		Validate:     true,
	}
}

// Compile builds and renders one loaded module.
func Compile(m *schema.Module, opts Options) (*Unit, error) {
	return compile(m, opts)
}

// CompileFiles loads and compiles schema files in parallel.
func CompileFiles(ctx context.Context, paths []string, opts Options) ([]*Unit, error) {
	return compileFiles(ctx, paths, opts)
}

// WriteArtifacts writes the files of every unit into opts.OutputDir, or
// streams declarations then definitions of each unit to w.
func WriteArtifacts(units []*Unit, opts Options, w io.Writer) error {
	return writeArtifacts(units, opts, w)
}
