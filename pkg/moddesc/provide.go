/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package moddesc

import "github.com/voedger/dpackgen/pkg/schema"

// Build resolves the types and lays out the records of m. Nested records are
// built before the records containing them; a record reached twice is built
// once.
func Build(m *schema.Module, opts Options) (*Module, error) {
	return build(m, opts)
}
