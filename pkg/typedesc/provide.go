/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package typedesc

import (
	"github.com/voedger/dpackgen/pkg/cnames"
	"github.com/voedger/dpackgen/pkg/schema"
)

// NewResolver returns a resolver scoped to one compilation of module m.
func NewResolver(m *schema.Module, opts Options) *Resolver {
	return newResolver(m, opts)
}

// Resolve returns the descriptor of a type reference.
func (r *Resolver) Resolve(ref schema.TypeRef) (*Descriptor, error) {
	return r.resolve(ref)
}

// ResolveField returns the descriptor of a field value (of one element for
// lists), narrowed by the field constraints.
func (r *Resolver) ResolveField(f *schema.Field) (*Descriptor, error) {
	return r.field(f)
}

// BindRecord registers the descriptor fields of record type resolve to.
func (r *Resolver) BindRecord(rec *schema.Record, d *Descriptor) {
	r.records[rec] = d
}

// Aliases returns named aliases in resolution order: an alias always
// follows the aliases it is built on.
func (r *Resolver) Aliases() []*Descriptor {
	return r.aliases
}

// Prefix returns the C prefix of the module being resolved.
func (r *Resolver) Prefix() string {
	return cnames.ToID(r.module.Prefix)
}

// NewRecord returns the descriptor of a nested struct named structName whose
// macros start with macro.
func NewRecord(rec *schema.Record, structName, macro string, size Bounds) *Descriptor {
	return &Descriptor{
		Kind:   Kind_Record,
		Name:   rec.Name,
		CType:  "struct " + structName,
		Encode: structName + "_pack",
		Decode: structName + "_unpack",
		Size: Bounds{
			Min: Bound{Expr: macro + "_PACKED_SIZE_MIN", Value: size.Min.Value, Known: size.Min.Known},
			Max: Bound{Expr: macro + "_PACKED_SIZE_MAX", Value: size.Max.Value, Known: size.Max.Known},
		},
		Record: rec,
	}
}
