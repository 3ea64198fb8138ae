/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package emitter

import (
	"fmt"

	"github.com/voedger/dpackgen/pkg/moddesc"
	"github.com/voedger/dpackgen/pkg/structdesc"
)

func structParam(s *structdesc.Struct, readOnly bool) string {
	if readOnly {
		return fmt.Sprintf("const struct %s * %s", s.Name, dataParam)
	}
	return fmt.Sprintf("struct %s * %s", s.Name, dataParam)
}

// mandatoryTest compares the mandatory bits of the presence bitmap against
// the mandatory mask with op. Obsolete mandatory fields count as present.
func mandatoryTest(s *structdesc.Struct, op string) string {
	filled := dataParam + "->" + presenceMember
	if s.ObsoleteMandatoryMask != 0 {
		filled = fmt.Sprintf("(%s | %s_OBS_MAND_FLD_MSK)", filled, s.Macro)
	}
	return fmt.Sprintf("(%s & %s_MAND_FLD_MSK) %s %s_MAND_FLD_MSK", filled, s.Macro, op, s.Macro)
}

// entryCount returns the number of map entries pack emits.
func entryCount(s *structdesc.Struct) string {
	filled := dataParam + "->" + presenceMember
	if s.ObsoleteMask != 0 {
		filled = fmt.Sprintf("(%s & ~%s_OBS_FLD_MSK) | %s_OBS_MAND_FLD_MSK", filled, s.Macro, s.Macro)
	}
	return fmt.Sprintf("(unsigned int)__builtin_popcount(%s)", filled)
}

func (r *renderer) validBits(b *block, s *structdesc.Struct) {
	r.assert(b, fmt.Sprintf("!(%s->%s & ~%s_VALID_FLD_MSK)", dataParam, presenceMember, s.Macro))
}

func (r *renderer) structInit(s *structdesc.Struct, fn *cfunc) {
	var b block
	var nested []*structdesc.Field
	for _, f := range s.Fields {
		if f.List == nil && f.Type.NeedsInit() {
			nested = append(nested, f)
		}
	}
	if len(nested) > 0 {
		b.vars([2]string{"int", "err"})
	}
	r.assert(&b, dataParam)
	b.blank()
	for _, f := range nested {
		b.call("%s(&%s)", recordFunc(f.Type, "init"), memberOf(f))
		b.blank()
	}
	b.line("%s->%s = 0;", dataParam, presenceMember)
	b.blank()
	b.line("return 0;")
	fn.setBody(&b)
}

func (r *renderer) structFini(s *structdesc.Struct, fn *cfunc) {
	var b block
	r.assert(&b, dataParam)
	b.blank()
	for _, f := range s.Fields {
		if !s.HasOp(structdesc.OpKind_FieldFini, f) {
			continue
		}
		b.line("if (%s)", isSet(f))
		b.stmt("%s(%s);", moddesc.FieldOpName(s, structdesc.OpKind_FieldFini, f), dataParam)
	}
	fn.setBody(&b)
}

func (r *renderer) structAlloc(s *structdesc.Struct, fn *cfunc) {
	var b block
	b.line("return malloc(sizeof(struct %s));", s.Name)
	fn.setBody(&b)
}

func (r *renderer) structFree(s *structdesc.Struct, fn *cfunc) {
	var b block
	b.line("free(%s);", dataParam)
	fn.setBody(&b)
}

func (r *renderer) structCreate(s *structdesc.Struct, fn *cfunc) {
	var b block
	b.vars([2]string{"struct " + s.Name + " *", dataParam})
	b.line("%s = %s();", dataParam, opName(s, structdesc.OpKind_Alloc))
	b.line("if (!%s)", dataParam)
	b.stmt("return NULL;")
	b.blank()
	b.line("if (%s(%s)) {", opName(s, structdesc.OpKind_Init), dataParam)
	b.indent()
	b.line("%s(%s);", opName(s, structdesc.OpKind_Free), dataParam)
	b.line("return NULL;")
	b.dedent()
	b.line("}")
	b.blank()
	b.line("return %s;", dataParam)
	fn.setBody(&b)
}

func (r *renderer) structDestroy(s *structdesc.Struct, fn *cfunc) {
	var b block
	r.assert(&b, dataParam)
	b.blank()
	b.line("%s(%s);", opName(s, structdesc.OpKind_Fini), dataParam)
	b.line("%s(%s);", opName(s, structdesc.OpKind_Free), dataParam)
	fn.setBody(&b)
}

func (r *renderer) structCheck(s *structdesc.Struct, fn *cfunc) {
	var b block
	var checked []*structdesc.Field
	for _, f := range s.Fields {
		if !f.IsObsolete() {
			checked = append(checked, f)
		}
	}
	if len(checked) > 0 || len(s.Validators) > 0 {
		b.vars([2]string{"int", "err"})
	}
	r.assert(&b, dataParam)
	r.validBits(&b, s)
	b.blank()
	if s.MandatoryMask != 0 {
		b.line("if (%s)", mandatoryTest(s, "!="))
		b.stmt("return %s;", codeMissingMandatory)
		b.blank()
	}
	for _, f := range checked {
		b.line("if (%s) {", isSet(f))
		b.indent()
		b.call("%s(%s)", moddesc.FieldOpName(s, structdesc.OpKind_FieldCheck, f), checkArgs(f))
		b.dedent()
		b.line("}")
		b.blank()
	}
	for _, v := range s.Validators {
		b.call("%s(%s)", v, dataParam)
		b.blank()
	}
	b.line("return 0;")
	fn.setBody(&b)
}

func (r *renderer) structPack(s *structdesc.Struct, fn *cfunc) {
	var b block
	for _, f := range s.Fields {
		if f.IsPacked() {
			b.vars([2]string{"int", "err"})
			break
		}
	}
	r.assert(&b, "encoder")
	r.assert(&b, fmt.Sprintf("dpack_encoder_space_left(encoder) >= %s_PACKED_SIZE_MIN", s.Macro))
	r.assert(&b, dataParam)
	r.validBits(&b, s)
	if s.MandatoryMask != 0 {
		r.assert(&b, mandatoryTest(s, "=="))
	}
	b.blank()
	b.line("dpack_map_begin_encode(encoder, %s);", entryCount(s))
	b.blank()
	for _, f := range s.Fields {
		if !f.IsPacked() {
			continue
		}
		name := moddesc.FieldOpName(s, structdesc.OpKind_FieldPack, f)
		if f.Mandatory {
			b.call("%s(encoder, %s)", name, dataParam)
			b.blank()
			continue
		}
		b.line("if (%s) {", isSet(f))
		b.indent()
		b.call("%s(encoder, %s)", name, dataParam)
		b.dedent()
		b.line("}")
		b.blank()
	}
	b.line("dpack_map_end_encode(encoder);")
	b.blank()
	b.line("return 0;")
	fn.setBody(&b)
}

func (r *renderer) structUnpack(s *structdesc.Struct, fn *cfunc) {
	var b block
	b.vars([2]string{"unsigned int", "nr"}, [2]string{"unsigned int", "fid"}, [2]string{"int", "err"})
	r.assert(&b, "decoder")
	r.assert(&b, fmt.Sprintf("dpack_decoder_data_left(decoder) >= %s_PACKED_SIZE_MIN", s.Macro))
	r.assert(&b, dataParam)
	r.assert(&b, fmt.Sprintf("!%s->%s", dataParam, presenceMember))
	b.blank()
	b.call("dpack_map_begin_decode(decoder, &nr)")
	b.blank()
	if s.MandatoryCount > 0 {
		b.line("if ((nr < %s_MAND_FLD_NR) || (nr > %s_FLD_NR))", s.Macro, s.Macro)
	} else {
		b.line("if (nr > %s_FLD_NR)", s.Macro)
	}
	b.stmt("return %s;", codeMalformedMessage)
	b.blank()
	b.line("while (nr--) {")
	b.indent()
	b.call("dpack_map_decode_fldid(decoder, &fid)")
	b.blank()
	b.line("switch (fid) {")
	for _, f := range s.Fields {
		b.line("case %s:", f.IDMacro)
		b.indent()
		b.line("err = %s(decoder, %s);", moddesc.FieldOpName(s, structdesc.OpKind_FieldUnpack, f), dataParam)
		b.line("break;")
		b.dedent()
	}
	b.line("default:")
	b.stmt("return %s;", codeMalformedMessage)
	b.line("}")
	b.blank()
	b.returnOnErr()
	b.dedent()
	b.line("}")
	b.blank()
	b.line("dpack_map_end_decode(decoder);")
	b.blank()
	if r.mod.Validate {
		b.line("return %s(%s);", opName(s, structdesc.OpKind_Check), dataParam)
	} else {
		b.line("return 0;")
	}
	fn.setBody(&b)
}

func opName(s *structdesc.Struct, k structdesc.OpKind) string {
	return moddesc.OpName(s, structdesc.Op{Kind: k})
}
