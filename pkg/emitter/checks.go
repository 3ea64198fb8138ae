/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package emitter

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/voedger/dpackgen/pkg/cnames"
	"github.com/voedger/dpackgen/pkg/moddesc"
	"github.com/voedger/dpackgen/pkg/structdesc"
	"github.com/voedger/dpackgen/pkg/typedesc"
)

// rangeCheck returns -ERANGE when expr, whose values lie in [lo, hi], is
// outside set. Nothing is emitted when set covers [lo, hi].
func rangeCheck(b *block, expr string, set typedesc.RangeSet, lo, hi *big.Int, lit func(*big.Int) string) {
	if set.Covers(lo, hi) {
		return
	}
	if len(set) == 1 {
		var cc []string
		if set[0].Lo.Cmp(lo) > 0 {
			cc = append(cc, fmt.Sprintf("(%s < %s)", expr, lit(set[0].Lo)))
		}
		if set[0].Hi.Cmp(hi) < 0 {
			cc = append(cc, fmt.Sprintf("(%s > %s)", expr, lit(set[0].Hi)))
		}
		cond := strings.Join(cc, " || ")
		if len(cc) == 1 {
			cond = strings.TrimSuffix(strings.TrimPrefix(cond, "("), ")")
		}
		b.line("if (%s)", cond)
		b.stmt("return %s;", codeRangeViolation)
		return
	}
	b.line("switch (%s) {", expr)
	for _, iv := range set {
		if iv.Lo.Cmp(iv.Hi) == 0 {
			b.line("case %s:", lit(iv.Lo))
			continue
		}
		b.line("case %s ... %s:", lit(iv.Lo), lit(iv.Hi))
	}
	b.stmt("break;")
	b.line("default:")
	b.stmt("return %s;", codeRangeViolation)
	b.line("}")
}

// scalarCheck emits the range check of a scalar value.
func scalarCheck(b *block, expr string, u *typedesc.Descriptor) {
	rangeCheck(b, expr, u.Ranges, u.Unit.Min(), u.Unit.Max(), u.Unit.Literal)
}

// lengthCheck emits the length check of a string value held in len.
func lengthCheck(b *block, u *typedesc.Descriptor) {
	lit := func(v *big.Int) string {
		if v.IsUint64() && v.Uint64() == u.LenMax.Value {
			return u.LenMax.Expr
		}
		return fmt.Sprintf("%sU", v)
	}
	b.line("len = strnlen(value, %s + 1);", u.LenMax.Expr)
	hi := new(big.Int).SetUint64(u.LenMax.Value + 1)
	rangeCheck(b, "len", u.Length, big.NewInt(0), hi, lit)
}

func patternCheck(b *block, m *moddesc.Module, u *typedesc.Descriptor) {
	for _, p := range u.Patterns {
		b.call("%s(value, %s, %t)", patternFuncName(m), cnames.Quote(typedesc.AnchoredPattern(p.Regexp)), p.Invert)
	}
}

func patternFuncName(m *moddesc.Module) string {
	return cnames.ID(m.Prefix, "match_pattern")
}

// recordFunc returns the name of operation verb of a nested struct.
func recordFunc(d *typedesc.Descriptor, verb string) string {
	return cnames.ID(strings.TrimPrefix(d.CType, "struct "), verb)
}

// fieldCheck renders the validity check of one field value, or of a list of them.
func (r *renderer) fieldCheck(s *structdesc.Struct, f *structdesc.Field, fn *cfunc) {
	u := f.Type.Underlying()
	var b block

	var vars [][2]string
	switch {
	case f.List != nil:
		if f.Type.HasConstraints() {
			vars = append(vars, [2]string{"unsigned int", "n"})
		}
	case u.Kind == typedesc.Kind_String:
		vars = append(vars, [2]string{"size_t", "len"})
	}
	if len(f.Validators) > 0 || (f.List == nil && (len(u.Patterns) > 0 || u.Kind == typedesc.Kind_Record)) {
		vars = append(vars, [2]string{"int", "err"})
	}
	b.vars(vars...)

	switch {
	case f.List != nil:
		r.assert(&b, "!nr || values")
		b.blank()
		if f.List.Min > 0 {
			b.line("if ((nr < %dU) || (nr > %s))", f.List.Min, f.List.NrMacro)
		} else {
			b.line("if (nr > %s)", f.List.NrMacro)
		}
		b.stmt("return %s;", codeRangeViolation)
		if f.Type.HasConstraints() {
			b.blank()
			b.line("for (n = 0; n < nr; n++) {")
			b.indent()
			scalarCheck(&b, "values[n]", u)
			b.dedent()
			b.line("}")
		}
		b.blank()
		for _, v := range f.Validators {
			b.call("%s(values, nr)", v)
		}
		b.blank()
		b.line("return 0;")
		fn.setBody(&b)
		return
	case u.Kind == typedesc.Kind_String:
		r.assert(&b, "value")
		b.blank()
		lengthCheck(&b, u)
		b.blank()
		patternCheck(&b, r.mod, u)
	case u.Kind == typedesc.Kind_Record:
		r.assert(&b, "value")
		b.blank()
		b.call("%s(value)", recordFunc(u, "check"))
	case u.Kind == typedesc.Kind_Scalar:
		scalarCheck(&b, "value", u)
	}
	b.blank()
	for _, v := range f.Validators {
		b.call("%s(value)", v)
	}
	if len(b.lines) == 0 {
		b.line("(void)value;")
	}
	b.blank()
	b.line("return 0;")
	fn.setBody(&b)
}

// checkArgs returns the arguments passing the stored value of f to its check.
func checkArgs(f *structdesc.Field) string {
	switch {
	case f.List != nil:
		return fmt.Sprintf("%s, %s", memberOf(f), nrOf(f))
	case f.Type.ByRef():
		return "&" + memberOf(f)
	}
	return memberOf(f)
}

func memberOf(f *structdesc.Field) string {
	return dataParam + "->" + f.Name
}

func nrOf(f *structdesc.Field) string {
	return memberOf(f) + listNrSuffix
}

func bitOf(f *structdesc.Field) string {
	return fmt.Sprintf("(1U << %s)", f.IDMacro)
}

// isSet returns the condition testing the presence bit of f.
func isSet(f *structdesc.Field) string {
	return fmt.Sprintf("%s->%s & %s", dataParam, presenceMember, bitOf(f))
}
