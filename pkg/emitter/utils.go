/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package emitter

import (
	"fmt"
	"strings"
)

func (b *block) line(format string, args ...any) {
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	b.lines = append(b.lines, strings.Repeat("\t", b.depth)+format)
}

// blank separates statement groups. Leading and repeated blank lines are dropped.
func (b *block) blank() {
	if n := len(b.lines); n == 0 || b.lines[n-1] == "" {
		return
	}
	b.lines = append(b.lines, "")
}

func (b *block) indent() { b.depth++ }
func (b *block) dedent() { b.depth-- }

// stmt emits a statement that is the single body line of the preceding if, for or case.
func (b *block) stmt(format string, args ...any) {
	b.indent()
	b.line(format, args...)
	b.dedent()
}

// returnOnErr emits "if (err) return err;" after a call assigned to err.
func (b *block) returnOnErr() {
	b.line("if (err)")
	b.stmt("return err;")
}

// call emits "err = call;" followed by an early return.
func (b *block) call(format string, args ...any) {
	b.line("err = "+format+";", args...)
	b.returnOnErr()
}

// vars declares local variables with their names aligned.
func (b *block) vars(decls ...[2]string) {
	width := 0
	for _, d := range decls {
		width = max(width, len(d[0]))
	}
	for _, d := range decls {
		b.line("%-*s %s;", width, d[0], d[1])
	}
	if len(decls) > 0 {
		b.blank()
	}
}

// String returns the lines with a trailing blank line removed.
func (b *block) String() string {
	lines := b.lines
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// signature renders "name(params)", wrapping parameters under the opening
// parenthesis when the line is too long.
func signature(name string, params []string) []string {
	if len(params) == 0 {
		params = []string{"void"}
	}
	single := name + "(" + strings.Join(params, ", ") + ")"
	if len(single) <= lineWidth || len(params) == 1 {
		return []string{single}
	}
	pad := strings.Repeat(" ", len(name)+1)
	lines := make([]string, 0, len(params))
	for i, p := range params {
		switch i {
		case 0:
			lines = append(lines, name+"("+p+",")
		case len(params) - 1:
			lines = append(lines, pad+p+")")
		default:
			lines = append(lines, pad+p+",")
		}
	}
	return lines
}

func (f *cfunc) retLine() string {
	ret := f.ret
	if f.deprecated {
		ret += " " + attrDeprecated
	}
	if f.storage != "" {
		ret = f.storage + " " + ret
	}
	return ret
}

// prototype renders an extern declaration.
func (f *cfunc) prototype() string {
	lines := append([]string{"extern " + f.retLine()}, signature(f.name, f.params)...)
	lines[len(lines)-1] += ";"
	return strings.Join(lines, "\n")
}

// definition renders the function with its body.
func (f *cfunc) definition() string {
	lines := append([]string{f.retLine()}, signature(f.name, f.params)...)
	lines = append(lines, "{")
	if body := f.body.String(); body != "" {
		for _, l := range strings.Split(body, "\n") {
			if l != "" {
				l = "\t" + l
			}
			lines = append(lines, l)
		}
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

// pointerSplit splits "char *" into "char" and true.
func pointerSplit(ctype string) (string, bool) {
	if base, ok := strings.CutSuffix(ctype, "*"); ok {
		return strings.TrimSpace(base), true
	}
	return ctype, false
}

// declare joins a type and a name, keeping pointer stars next to the type.
func declare(ctype, name string) string {
	return ctype + " " + name
}

func (f *cfunc) setBody(b *block) *cfunc {
	f.body = *b
	return f
}
