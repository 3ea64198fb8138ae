/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package emitter

import (
	"fmt"
	"strings"

	"github.com/voedger/dpackgen/pkg/moddesc"
	"github.com/voedger/dpackgen/pkg/structdesc"
)

func assertMacro(m *moddesc.Module) string {
	return fmt.Sprintf("#define %s(_expr) \\\n\t%s(_expr)", m.Assert, m.AssertMacro)
}

func typedefs(tt []moddesc.Typedef) string {
	lines := make([]string, 0, len(tt))
	for _, t := range tt {
		lines = append(lines, fmt.Sprintf("typedef %s;", declare(t.CType, t.Name)))
	}
	return strings.Join(lines, "\n")
}

// define renders a macro. Several terms are summed, one per line.
func define(d moddesc.Define) string {
	head := "#define " + d.Name
	switch len(d.Terms) {
	case 0:
		return head
	case 1:
		if line := head + " " + d.Terms[0]; len(line) <= lineWidth {
			return line
		}
		return head + " \\\n\t" + d.Terms[0]
	}
	lines := []string{head + " \\"}
	for i, t := range d.Terms {
		switch i {
		case 0:
			lines = append(lines, "\t("+t+" + \\")
		case len(d.Terms) - 1:
			lines = append(lines, "\t "+t+")")
		default:
			lines = append(lines, "\t "+t+" + \\")
		}
	}
	return strings.Join(lines, "\n")
}

func defines(dd []moddesc.Define) string {
	out := make([]string, 0, len(dd))
	for _, d := range dd {
		out = append(out, define(d))
	}
	return strings.Join(out, "\n\n")
}

func enum(e moddesc.Enum) string {
	width := 0
	for _, it := range e.Items {
		if it.Value != "" {
			width = max(width, len(it.Name))
		}
	}
	var b block
	b.line("enum %s {", e.Name)
	b.indent()
	for _, it := range e.Items {
		if it.Value == "" {
			b.line("%s", it.Name)
			continue
		}
		b.line("%-*s = %s,", width, it.Name, it.Value)
	}
	b.dedent()
	b.line("};")
	return b.String()
}

type member struct {
	ctype string
	name  string
}

func members(s *structdesc.Struct) []member {
	mm := make([]member, 0, len(s.Fields)+1)
	for _, f := range s.Fields {
		if f.List != nil {
			mm = append(mm,
				member{ctype: listNrType, name: f.Name + listNrSuffix},
				member{ctype: f.Type.CType, name: fmt.Sprintf("%s[%s]", f.Name, f.List.NrMacro)},
			)
			continue
		}
		mm = append(mm, member{ctype: f.Type.CType, name: f.Name})
	}
	return append(mm, member{ctype: presenceType, name: presenceMember})
}

// structDecl renders the struct with member names aligned in one column.
// Pointer stars stay in front of the name column.
func structDecl(s *structdesc.Struct) string {
	mm := members(s)
	width := 0
	for _, m := range mm {
		base, _ := pointerSplit(m.ctype)
		width = max(width, len(base))
	}
	var b block
	b.line("struct %s {", s.Name)
	b.indent()
	for _, m := range mm {
		base, ptr := pointerSplit(m.ctype)
		star := " "
		if ptr {
			star = "*"
		}
		b.line("%-*s %s %s;", width, base, star, m.name)
	}
	b.dedent()
	b.line("};")
	return b.String()
}

func validatorProto(v moddesc.Validator) string {
	f := &cfunc{ret: "int", name: v.Name, params: splitParams(v.Params)}
	return f.prototype()
}

// splitParams splits a parameter list rendered by moddesc.
func splitParams(params string) []string {
	return strings.Split(params, ", ")
}
