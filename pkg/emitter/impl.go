/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package emitter

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/untillpro/goutils/logger"
	"github.com/valyala/bytebufferpool"

	"github.com/voedger/dpackgen/pkg/moddesc"
	"github.com/voedger/dpackgen/pkg/structdesc"
	"github.com/voedger/dpackgen/pkg/typedesc"
)

var (
	declarationsTmpl = template.Must(template.New("declarations").Parse(declarationsTemplate))
	definitionsTmpl  = template.Must(template.New("definitions").Parse(definitionsTemplate))
)

type renderer struct {
	mod *moddesc.Module
}

func render(m *moddesc.Module, opts Options) (*Artifacts, error) {
	r := &renderer{mod: m}
	header := strings.TrimRight(opts.HeaderContent, "\n")

	decls, err := r.declarations()
	if err != nil {
		return nil, err
	}
	defs, err := r.definitions()
	if err != nil {
		return nil, err
	}

	a := &Artifacts{Name: m.Name}
	a.Declarations, err = execute(declarationsTmpl, fileData{
		HeaderContent: header,
		Guard:         m.Guard,
		Includes:      m.Includes,
		Body:          strings.Join(decls, "\n\n"),
	})
	if err != nil {
		return nil, err
	}
	includes := []string{includeString}
	if m.UsesPatterns() {
		includes = append(includes, includeRegex)
	}
	a.Definitions, err = execute(definitionsTmpl, fileData{
		HeaderContent: header,
		Declarations:  m.Name + HeaderSuffix,
		Includes:      includes,
		Body:          strings.Join(defs, "\n\n"),
	})
	if err != nil {
		return nil, err
	}

	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("module %s: rendered %d + %d bytes", m.Name, len(a.Declarations), len(a.Definitions)))
	}
	return a, nil
}

func execute(t *template.Template, data fileData) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := t.Execute(buf, data); err != nil {
		return nil, fmt.Errorf("%s: %w", t.Name(), err)
	}
	return append([]byte(nil), buf.B...), nil
}

func (r *renderer) declarations() ([]string, error) {
	m := r.mod
	ss := []string{assertMacro(m)}
	if len(m.Typedefs) > 0 {
		ss = append(ss, typedefs(m.Typedefs))
	}
	if len(m.Defines) > 0 {
		ss = append(ss, defines(m.Defines))
	}
	for _, e := range m.Enums {
		ss = append(ss, enum(e))
	}
	for _, s := range m.Structs {
		ss = append(ss, structDecl(s))
	}
	for _, v := range m.Validators {
		ss = append(ss, validatorProto(v))
	}
	for _, f := range m.Extern {
		fn, err := r.function(f)
		if err != nil {
			return nil, err
		}
		ss = append(ss, fn.prototype())
	}
	for _, f := range m.Inline {
		fn, err := r.function(f)
		if err != nil {
			return nil, err
		}
		ss = append(ss, fn.definition())
	}
	return ss, nil
}

func (r *renderer) definitions() ([]string, error) {
	ss := make([]string, 0, len(r.mod.Static)+len(r.mod.Extern))
	for _, ff := range [][]*moddesc.Func{r.mod.Static, r.mod.Extern} {
		for _, f := range ff {
			fn, err := r.function(f)
			if err != nil {
				return nil, err
			}
			ss = append(ss, fn.definition())
		}
	}
	return ss, nil
}

func storage(b moddesc.Bucket) string {
	switch b {
	case moddesc.Bucket_Inline:
		return "static inline"
	case moddesc.Bucket_Static:
		return "static"
	}
	return ""
}

// function builds the signature and the body of f.
func (r *renderer) function(f *moddesc.Func) (*cfunc, error) {
	fn := &cfunc{storage: storage(f.Bucket), name: f.Name, ret: "int"}
	switch f.Kind {
	case moddesc.FuncKind_AliasEncode:
		fn.params = []string{encoderParam, declare(f.Type.CType, "value")}
		r.aliasEncode(f.Type, fn)
	case moddesc.FuncKind_AliasDecode:
		fn.params = []string{decoderParam, declare(f.Type.CType+" *", "value")}
		r.aliasDecode(f.Type, fn)
	case moddesc.FuncKind_MatchPattern:
		fn.params = []string{"const char * value", "const char * pattern", "bool invert"}
		r.matchPattern(fn)
	case moddesc.FuncKind_Op:
		if err := r.op(f.Struct, f.Op, fn); err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnsupportedConstruct("function «%s» of kind %s", f.Name, f.Kind)
	}
	return fn, nil
}

func (r *renderer) op(s *structdesc.Struct, op structdesc.Op, fn *cfunc) error {
	f := op.Field
	fn.deprecated = op.Deprecated
	switch op.Kind {
	case structdesc.OpKind_FieldCheck:
		fn.params = splitParams(moddesc.ValueParams(f))
		r.fieldCheck(s, f, fn)
	case structdesc.OpKind_FieldHas:
		fn.ret = "bool"
		fn.params = []string{structParam(s, true)}
		r.fieldHas(s, f, fn)
	case structdesc.OpKind_FieldGet:
		fn.params = append([]string{structParam(s, true)}, getParams(f)...)
		r.fieldGet(s, f, fn)
	case structdesc.OpKind_FieldSet:
		fn.params = append([]string{structParam(s, false)}, setParams(f)...)
		r.fieldSet(s, f, fn)
	case structdesc.OpKind_FieldPack:
		fn.params = []string{encoderParam, structParam(s, true)}
		r.fieldPack(s, f, fn)
	case structdesc.OpKind_FieldUnpack:
		fn.params = []string{decoderParam, structParam(s, false)}
		r.fieldUnpack(s, f, fn)
	case structdesc.OpKind_FieldFini:
		fn.ret = "void"
		fn.params = []string{structParam(s, false)}
		r.fieldFini(s, f, fn)
	case structdesc.OpKind_Init:
		fn.params = []string{structParam(s, false)}
		r.structInit(s, fn)
	case structdesc.OpKind_Fini:
		fn.ret = "void"
		fn.params = []string{structParam(s, false)}
		r.structFini(s, fn)
	case structdesc.OpKind_Alloc:
		fn.ret = "struct " + s.Name + " *"
		r.structAlloc(s, fn)
	case structdesc.OpKind_Free:
		fn.ret = "void"
		fn.params = []string{structParam(s, false)}
		r.structFree(s, fn)
	case structdesc.OpKind_Create:
		fn.ret = "struct " + s.Name + " *"
		r.structCreate(s, fn)
	case structdesc.OpKind_Destroy:
		fn.ret = "void"
		fn.params = []string{structParam(s, false)}
		r.structDestroy(s, fn)
	case structdesc.OpKind_Check:
		fn.params = []string{structParam(s, true)}
		r.structCheck(s, fn)
	case structdesc.OpKind_Pack:
		fn.params = []string{encoderParam, structParam(s, true)}
		r.structPack(s, fn)
	case structdesc.OpKind_Unpack:
		fn.params = []string{decoderParam, structParam(s, false)}
		r.structUnpack(s, fn)
	default:
		return ErrUnsupportedConstruct("operation %s of «%s»", op.Kind, s.Name)
	}
	return nil
}

func getParams(f *structdesc.Field) []string {
	if f.List != nil {
		return []string{declare("const "+f.Type.CType+" **", "values"), declare("unsigned int *", "nr")}
	}
	switch u := f.Type.Underlying(); u.Kind {
	case typedesc.Kind_String:
		return []string{declare("const char **", "value")}
	case typedesc.Kind_Record:
		return []string{declare("const "+f.Type.CType+" **", "value")}
	}
	return []string{declare(f.Type.CType+" *", "value")}
}

func setParams(f *structdesc.Field) []string {
	if f.List != nil {
		return []string{declare("const "+f.Type.CType+" *", "values"), declare("unsigned int", "nr")}
	}
	if f.Type.Underlying().Kind == typedesc.Kind_Record {
		return []string{declare(f.Type.CType+" *", "value")}
	}
	return []string{declare(f.Type.CType, "value")}
}
