/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package emitter

import (
	"github.com/voedger/dpackgen/pkg/typedesc"
)

func (r *renderer) aliasEncode(d *typedesc.Descriptor, fn *cfunc) {
	var b block
	r.assert(&b, "encoder")
	r.assert(&b, "dpack_encoder_space_left(encoder) >= "+d.SizeMacros[0])
	b.blank()
	b.line("return %s;", encodeCall(d.Inner, "value"))
	fn.setBody(&b)
}

func (r *renderer) aliasDecode(d *typedesc.Descriptor, fn *cfunc) {
	var b block
	inner := d.Inner
	if inner.Kind == typedesc.Kind_String {
		b.vars([2]string{"ssize_t", "len"})
	}
	r.assert(&b, "decoder")
	r.assert(&b, "value")
	b.blank()
	if inner.Kind == typedesc.Kind_String {
		b.line("len = %s(decoder, %s, %s, value);", inner.Decode, inner.LenMin.Expr, inner.LenMax.Expr)
		b.blank()
		b.line("return (len < 0) ? (int)len : 0;")
	} else {
		b.line("return %s(decoder, value);", inner.Decode)
	}
	fn.setBody(&b)
}

// matchPattern renders the helper matching a value against an anchored
// POSIX extended regular expression.
func (r *renderer) matchPattern(fn *cfunc) {
	var b block
	b.vars([2]string{"regex_t", "regex"}, [2]string{"int", "err"})
	r.assert(&b, "value")
	r.assert(&b, "pattern")
	b.blank()
	b.line("err = regcomp(&regex, pattern, REG_EXTENDED | REG_NOSUB);")
	b.line("if (err)")
	b.stmt("return -ENOMEM;")
	b.blank()
	b.line("err = regexec(&regex, value, 0, NULL, 0);")
	b.line("regfree(&regex);")
	b.blank()
	b.line("if (!err == invert)")
	b.stmt("return %s;", codePatternViolation)
	b.blank()
	b.line("return 0;")
	fn.setBody(&b)
}
