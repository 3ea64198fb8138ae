/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package emitter

import "github.com/voedger/dpackgen/pkg/moddesc"

// Render produces the declarations and definitions files of a module.
func Render(m *moddesc.Module, opts Options) (*Artifacts, error) {
	return render(m, opts)
}
