/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package moddesc

import (
	"fmt"

	"github.com/voedger/dpackgen/pkg/cnames"
	"github.com/voedger/dpackgen/pkg/structdesc"
)

// OpName returns the C function name of a struct or field operation.
func OpName(s *structdesc.Struct, op structdesc.Op) string {
	var verb string
	switch op.Kind {
	case structdesc.OpKind_FieldCheck, structdesc.OpKind_Check:
		verb = "check"
	case structdesc.OpKind_FieldHas:
		verb = "has"
	case structdesc.OpKind_FieldGet:
		verb = "get"
	case structdesc.OpKind_FieldSet:
		verb = "set"
	case structdesc.OpKind_FieldPack, structdesc.OpKind_Pack:
		verb = "pack"
	case structdesc.OpKind_FieldUnpack, structdesc.OpKind_Unpack:
		verb = "unpack"
	case structdesc.OpKind_FieldFini, structdesc.OpKind_Fini:
		verb = "fini"
	case structdesc.OpKind_Init:
		verb = "init"
	case structdesc.OpKind_Alloc:
		verb = "alloc"
	case structdesc.OpKind_Free:
		verb = "free"
	case structdesc.OpKind_Create:
		verb = "create"
	case structdesc.OpKind_Destroy:
		verb = "destroy"
	}
	if op.Field == nil {
		return cnames.ID(s.Name, verb)
	}
	return cnames.ID(s.Name, verb, op.Field.Name)
}

// FieldOpName returns the name of operation k of field f.
func FieldOpName(s *structdesc.Struct, k structdesc.OpKind, f *structdesc.Field) string {
	return OpName(s, structdesc.Op{Kind: k, Field: f})
}

// ValueParams returns the C parameter list taking one value of the field:
// a single value, or an array and an element count for lists.
func ValueParams(f *structdesc.Field) string {
	if f.List != nil {
		return fmt.Sprintf("const %s * values, unsigned int nr", f.Type.CType)
	}
	return ParamDecl(f.Type.ParamType(), "value")
}

// ParamDecl joins a C type and a name, keeping pointer stars detached.
func ParamDecl(ctype, name string) string {
	return ctype + " " + name
}

// Funcs returns every function of the module: extern, static, then inline.
func (m *Module) Funcs() []*Func {
	ff := make([]*Func, 0, len(m.Extern)+len(m.Static)+len(m.Inline))
	ff = append(ff, m.Extern...)
	ff = append(ff, m.Static...)
	return append(ff, m.Inline...)
}

// Func returns the function named name, nil if none.
func (m *Module) Func(name string) *Func {
	for _, f := range m.Funcs() {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// UsesPatterns returns true if some field checks a regular expression.
func (m *Module) UsesPatterns() bool {
	for _, f := range m.Static {
		if f.Kind == FuncKind_MatchPattern {
			return true
		}
	}
	return false
}
