/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package emitter

import (
	"fmt"

	"github.com/voedger/dpackgen/pkg/moddesc"
	"github.com/voedger/dpackgen/pkg/structdesc"
	"github.com/voedger/dpackgen/pkg/typedesc"
)

func (r *renderer) assert(b *block, expr string) {
	b.line("%s(%s);", r.mod.Assert, expr)
}

func (r *renderer) fieldHas(s *structdesc.Struct, f *structdesc.Field, fn *cfunc) {
	var b block
	r.assert(&b, dataParam)
	b.blank()
	b.line("return !!(%s);", isSet(f))
	fn.setBody(&b)
}

func (r *renderer) fieldGet(s *structdesc.Struct, f *structdesc.Field, fn *cfunc) {
	var b block
	u := f.Type.Underlying()
	r.assert(&b, dataParam)
	if f.List != nil {
		r.assert(&b, "values")
		r.assert(&b, "nr")
	} else {
		r.assert(&b, "value")
	}
	b.blank()
	if f.Mandatory {
		r.assert(&b, isSet(f))
	} else {
		b.line("if (!(%s))", isSet(f))
		b.stmt("return %s;", codeNotSet)
	}
	b.blank()
	switch {
	case f.List != nil:
		b.line("*values = %s;", memberOf(f))
		b.line("*nr = %s;", nrOf(f))
	case u.Kind == typedesc.Kind_Record:
		b.line("*value = &%s;", memberOf(f))
	case u.Kind == typedesc.Kind_External && u.Binding.Copy != "":
		b.line("return %s(value, &%s);", u.Binding.Copy, memberOf(f))
		fn.setBody(&b)
		return
	default:
		b.line("*value = %s;", memberOf(f))
	}
	b.blank()
	b.line("return 0;")
	fn.setBody(&b)
}

func (r *renderer) fieldSet(s *structdesc.Struct, f *structdesc.Field, fn *cfunc) {
	var b block
	u := f.Type.Underlying()
	check := moddesc.FieldOpName(s, structdesc.OpKind_FieldCheck, f)
	copyFn := ""
	if u.Kind == typedesc.Kind_External {
		copyFn = u.Binding.Copy
	}
	if copyFn != "" {
		b.vars([2]string{"int", "err"})
	}

	r.assert(&b, dataParam)
	switch {
	case f.List != nil:
		r.assert(&b, "!nr || values")
	case u.Kind == typedesc.Kind_String, u.Kind == typedesc.Kind_Record:
		r.assert(&b, "value")
	}
	b.blank()
	if f.List != nil {
		b.line("if (%s(values, nr))", check)
	} else {
		b.line("if (%s(value))", check)
	}
	b.stmt("return %s;", codeInvalidValue)
	b.blank()

	switch {
	case f.List != nil:
		b.line("if (nr)")
		b.stmt("memcpy(%s, values, nr * sizeof(%s[0]));", memberOf(f), memberOf(f))
		b.line("%s = nr;", nrOf(f))
	case u.Kind == typedesc.Kind_String:
		b.line("if (%s)", isSet(f))
		b.stmt("free(%s);", memberOf(f))
		b.blank()
		b.line("%s = value;", memberOf(f))
	case u.Kind == typedesc.Kind_Record:
		b.line("if (%s)", isSet(f))
		b.stmt("%s(&%s);", recordFunc(u, "fini"), memberOf(f))
		b.blank()
		b.line("%s = *value;", memberOf(f))
		b.line("value->%s = 0;", presenceMember)
	case copyFn != "":
		b.call("%s(&%s, &value)", copyFn, memberOf(f))
	default:
		b.line("%s = value;", memberOf(f))
	}
	b.line("%s->%s |= %s;", dataParam, presenceMember, bitOf(f))
	b.blank()
	b.line("return 0;")
	fn.setBody(&b)
}

// encodeCall returns the call encoding value of type d. Native types and
// nested structs are passed by address.
func encodeCall(d *typedesc.Descriptor, value string) string {
	switch d.Kind {
	case typedesc.Kind_External, typedesc.Kind_Record:
		return fmt.Sprintf("%s(encoder, &%s)", d.Encode, value)
	}
	return fmt.Sprintf("%s(encoder, %s)", d.Encode, value)
}

// placeholder returns the C expression packed for an obsolete mandatory field.
func placeholder(f *structdesc.Field) string {
	if f.DefaultMacro != "" {
		return f.DefaultMacro
	}
	return f.Type.CLiteral(f.Placeholder)
}

func (r *renderer) fieldPack(s *structdesc.Struct, f *structdesc.Field, fn *cfunc) {
	var b block
	stub := f.IsObsolete()

	switch {
	case f.List != nil && !stub:
		b.vars([2]string{"unsigned int", "n"}, [2]string{"int", "err"})
	case f.Type.Kind == typedesc.Kind_External && stub:
		b.vars([2]string{"const " + f.Type.CType, "value = " + placeholder(f)}, [2]string{"int", "err"})
	default:
		b.vars([2]string{"int", "err"})
	}

	b.call("dpack_map_encode_fldid(encoder, %s)", f.IDMacro)
	b.blank()

	switch {
	case f.List != nil:
		nr := nrOf(f)
		if stub {
			nr = "0"
		}
		b.line("dpack_array_begin_encode(encoder, %s);", nr)
		b.blank()
		if !stub {
			b.line("for (n = 0; n < %s; n++) {", nr)
			b.indent()
			b.call(encodeCall(f.Type, memberOf(f)+"[n]"))
			b.dedent()
			b.line("}")
			b.blank()
		}
		b.line("dpack_array_end_encode(encoder);")
		b.blank()
		b.line("return 0;")
	case stub && f.Type.Kind == typedesc.Kind_External:
		b.line("return %s;", encodeCall(f.Type, "value"))
	case stub:
		b.line("return %s;", encodeCall(f.Type, placeholder(f)))
	default:
		b.line("return %s;", encodeCall(f.Type, memberOf(f)))
	}
	fn.setBody(&b)
}

// decode emits the statements decoding a value of type d into dst, an lvalue.
// Strings decoded without an alias report their length, others an error code.
func decode(b *block, d *typedesc.Descriptor, dst string) {
	if d.Kind == typedesc.Kind_String {
		b.line("len = %s(decoder, %s, %s, &%s);", d.Decode, d.LenMin.Expr, d.LenMax.Expr, dst)
		b.line("if (len < 0)")
		b.stmt("return (int)len;")
		return
	}
	b.call("%s(decoder, &%s)", d.Decode, dst)
}

func (r *renderer) fieldUnpack(s *structdesc.Struct, f *structdesc.Field, fn *cfunc) {
	var b block
	switch {
	case f.List != nil:
		b.vars([2]string{"unsigned int", "nr"}, [2]string{"unsigned int", "n"}, [2]string{"int", "err"})
	case f.Type.Kind == typedesc.Kind_String:
		b.vars([2]string{"ssize_t", "len"})
	default:
		b.vars([2]string{"int", "err"})
	}

	b.line("if (%s)", isSet(f))
	b.stmt("return %s;", codeDuplicateField)
	b.blank()

	if f.List != nil {
		if f.List.Min > 0 {
			b.call("dpack_array_begin_decode_range(decoder, %dU, %s, &nr)", f.List.Min, f.List.NrMacro)
		} else {
			b.call("dpack_array_begin_decode_max(decoder, %s, &nr)", f.List.NrMacro)
		}
		b.blank()
		b.line("for (n = 0; n < nr; n++) {")
		b.indent()
		decode(&b, f.Type, memberOf(f)+"[n]")
		b.dedent()
		b.line("}")
		b.blank()
		b.line("dpack_array_end_decode(decoder);")
		b.blank()
		b.line("%s = nr;", nrOf(f))
	} else {
		decode(&b, f.Type, memberOf(f))
		b.blank()
	}
	b.line("%s->%s |= %s;", dataParam, presenceMember, bitOf(f))
	b.blank()
	b.line("return 0;")
	fn.setBody(&b)
}

func (r *renderer) fieldFini(s *structdesc.Struct, f *structdesc.Field, fn *cfunc) {
	var b block
	r.assert(&b, dataParam)
	b.blank()
	b.line("if (!(%s))", isSet(f))
	b.stmt("return;")
	b.blank()
	if f.Type.Underlying().Kind == typedesc.Kind_Record {
		b.line("%s(&%s);", recordFunc(f.Type.Underlying(), "fini"), memberOf(f))
	} else {
		b.line("free(%s);", memberOf(f))
	}
	b.line("%s->%s &= ~%s;", dataParam, presenceMember, bitOf(f))
	fn.setBody(&b)
}
