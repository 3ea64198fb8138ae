/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package structdesc

import "github.com/voedger/dpackgen/pkg/schema"

// Bit returns the presence bit of the field.
func (f *Field) Bit() uint32 {
	return uint32(1) << f.ID
}

func (f *Field) IsObsolete() bool {
	return f.Status == schema.Status_Obsolete
}

// IsPacked returns true if the field may appear in packed messages.
func (f *Field) IsPacked() bool {
	return !f.IsObsolete() || f.Mandatory
}

// Field returns the field with the given schema name, nil if none.
func (s *Struct) Field(name string) *Field {
	for _, f := range s.Fields {
		if f.Schema.Name == name {
			return f
		}
	}
	return nil
}

// FieldOps returns the field operations of f in generation order.
func (s *Struct) FieldOps(f *Field) (ops []Op) {
	for _, op := range s.Ops {
		if op.Field == f {
			ops = append(ops, op)
		}
	}
	return ops
}

// HasOp returns true if an operation of kind k is generated for f.
func (s *Struct) HasOp(k OpKind, f *Field) bool {
	for _, op := range s.Ops {
		if op.Kind == k && op.Field == f {
			return true
		}
	}
	return false
}
