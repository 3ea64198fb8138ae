/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package structdesc

import "github.com/voedger/dpackgen/pkg/schema"

// Build lays out record rec. Every field error is reported; no struct is
// returned if any field fails.
func Build(rec *schema.Record, prefix string, r Resolver) (*Struct, error) {
	return build(rec, prefix, r)
}
