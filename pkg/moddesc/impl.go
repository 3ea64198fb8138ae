/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package moddesc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/dpackgen/pkg/cnames"
	"github.com/voedger/dpackgen/pkg/schema"
	"github.com/voedger/dpackgen/pkg/structdesc"
	"github.com/voedger/dpackgen/pkg/typedesc"
)

// builder walks the records of one module. The resolver and every map here
// live for one Build call only.
type builder struct {
	mod        *Module
	resolver   *typedesc.Resolver
	built      map[*schema.Record]*structdesc.Struct
	failed     map[*schema.Record]bool
	visiting   map[*schema.Record]bool
	names      map[string]*schema.Record
	includes   map[string]bool
	validators map[string]Validator
	patterns   bool
	funcs      []*Func
	errs       []error
}

func build(m *schema.Module, opts Options) (*Module, error) {
	if opts.AssertMacro == "" {
		opts.AssertMacro = DefaultAssertMacro
	}
	prefix := cnames.ToID(m.Prefix)
	b := &builder{
		mod: &Module{
			Schema:      m,
			Name:        m.Name,
			Prefix:      prefix,
			Guard:       cnames.Guard(m.Name),
			Assert:      cnames.ID(prefix, "assert"),
			AssertMacro: opts.AssertMacro,
			Validate:    opts.Validate,
		},
		resolver:   typedesc.NewResolver(m, typedesc.Options{StringMaxLen: opts.StringMaxLen}),
		built:      map[*schema.Record]*structdesc.Struct{},
		failed:     map[*schema.Record]bool{},
		visiting:   map[*schema.Record]bool{},
		names:      map[string]*schema.Record{},
		includes:   map[string]bool{},
		validators: map[string]Validator{},
	}
	for _, inc := range baseIncludes {
		b.includes[inc] = true
	}

	for _, rec := range m.Records {
		b.visit(rec)
	}
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	b.addAliases()
	if b.patterns {
		b.mod.Static = append([]*Func{{Kind: FuncKind_MatchPattern, Bucket: Bucket_Static, Name: cnames.ID(prefix, "match_pattern")}}, b.mod.Static...)
	}
	for _, f := range b.funcs {
		b.addFunc(f)
	}

	b.mod.Includes = maps.Keys(b.includes)
	slices.Sort(b.mod.Includes)
	vv := maps.Keys(b.validators)
	slices.Sort(vv)
	for _, v := range vv {
		b.mod.Validators = append(b.mod.Validators, b.validators[v])
	}

	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("module %s: %d structs, %d extern, %d static, %d inline functions",
			m.Name, len(b.mod.Structs), len(b.mod.Extern), len(b.mod.Static), len(b.mod.Inline)))
	}
	return b.mod, nil
}

// visit builds the structs of nested records before rec itself.
// Returns false if rec or one of its nested records failed.
func (b *builder) visit(rec *schema.Record) bool {
	if _, ok := b.built[rec]; ok {
		return true
	}
	if b.failed[rec] {
		return false
	}
	if b.visiting[rec] {
		b.errs = append(b.errs, schema.ErrorAt(ErrRecursiveRecord(rec.Name), rec.Pos))
		b.failed[rec] = true
		return false
	}
	b.visiting[rec] = true
	defer delete(b.visiting, rec)

	ok := true
	for _, f := range rec.Fields {
		if f.Record != nil && !b.visit(f.Record) {
			ok = false
		}
	}
	if !ok {
		b.failed[rec] = true
		return false
	}

	s, err := structdesc.Build(rec, b.mod.Prefix, b.resolver)
	if err != nil {
		b.errs = append(b.errs, err)
		b.failed[rec] = true
		return false
	}
	if other, ok := b.names[s.Name]; ok && other != rec {
		b.errs = append(b.errs, schema.ErrorAt(ErrNameClash(s.Name), rec.Pos))
		b.failed[rec] = true
		return false
	}
	b.names[s.Name] = rec

	b.resolver.BindRecord(rec, typedesc.NewRecord(rec, s.Name, s.Macro, s.Size))
	b.built[rec] = s
	b.addStruct(s)
	return true
}

func (b *builder) addStruct(s *structdesc.Struct) {
	b.mod.Structs = append(b.mod.Structs, s)

	items := make([]EnumItem, 0, len(s.Fields)+1)
	for _, f := range s.Fields {
		items = append(items, EnumItem{Name: f.IDMacro, Value: fmt.Sprint(f.ID)})
		b.addField(s, f)
	}
	items = append(items, EnumItem{Name: s.Macro + "_FLD_NR"})
	b.mod.Enums = append(b.mod.Enums, Enum{Name: cnames.ID(s.Name, "field"), Items: items})

	b.mod.Defines = append(b.mod.Defines,
		Define{Name: s.Macro + "_MAND_FLD_NR", Terms: []string{fmt.Sprintf("(%dU)", s.MandatoryCount)}},
		Define{Name: s.Macro + "_VALID_FLD_MSK", Terms: []string{fmt.Sprintf("(0x%08xU)", s.ValidMask)}},
		Define{Name: s.Macro + "_MAND_FLD_MSK", Terms: []string{maskExpr(s, s.MandatoryMask)}},
	)
	if s.ObsoleteMask != 0 {
		b.mod.Defines = append(b.mod.Defines,
			Define{Name: s.Macro + "_OBS_FLD_MSK", Terms: []string{maskExpr(s, s.ObsoleteMask)}},
			Define{Name: s.Macro + "_OBS_MAND_FLD_MSK", Terms: []string{maskExpr(s, s.ObsoleteMandatoryMask)}},
		)
	}
	b.mod.Defines = append(b.mod.Defines,
		Define{Name: s.Macro + "_PACKED_SIZE_MIN", Terms: terms(s.MinTerms)},
		Define{Name: s.Macro + "_PACKED_SIZE_MAX", Terms: terms(s.MaxTerms)},
	)

	if len(s.Validators) > 0 {
		b.addValidators(s.Validators, fmt.Sprintf("const struct %s * data", s.Name))
	}
	for _, op := range s.Ops {
		b.funcs = append(b.funcs, &Func{
			Kind:   FuncKind_Op,
			Bucket: opBucket(op),
			Name:   OpName(s, op),
			Struct: s,
			Op:     op,
		})
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("struct %s: %d operations", s.Name, len(s.Ops)))
	}
}

func (b *builder) addField(s *structdesc.Struct, f *structdesc.Field) {
	if inc := f.Type.Include; inc != "" {
		b.includes[inc] = true
	}
	if len(f.Type.Underlying().Patterns) > 0 && !f.IsObsolete() {
		b.patterns = true
	}
	if f.List != nil {
		b.includes[includeArray] = true
		b.includes[includeString] = true
		b.mod.Defines = append(b.mod.Defines, Define{Name: f.List.NrMacro, Terms: []string{fmt.Sprintf("(%dU)", f.List.Max)}})
	}
	if f.DefaultMacro != "" {
		b.mod.Defines = append(b.mod.Defines, Define{Name: f.DefaultMacro, Terms: []string{"(" + f.Type.CLiteral(f.Default) + ")"}})
	}
	if len(f.Validators) > 0 && !f.IsObsolete() {
		b.addValidators(f.Validators, ValueParams(f))
	}
}

func (b *builder) addValidators(names []string, params string) {
	for _, n := range names {
		if v, ok := b.validators[n]; ok {
			if v.Params != params {
				b.errs = append(b.errs, ErrValidatorSignature(n, v.Params, params))
			}
			continue
		}
		b.validators[n] = Validator{Name: n, Params: params}
	}
}

// addAliases emits typedefs, size macros and codec functions of named
// aliases ahead of everything generated for structs.
func (b *builder) addAliases() {
	var defines []Define
	for _, d := range b.resolver.Aliases() {
		b.mod.Typedefs = append(b.mod.Typedefs, Typedef{Name: d.CType, CType: d.Inner.CType})
		defines = append(defines,
			Define{Name: d.SizeMacros[0], Terms: []string{d.Inner.Size.Min.Expr}},
			Define{Name: d.SizeMacros[1], Terms: []string{d.Inner.Size.Max.Expr}},
		)
		b.addFunc(&Func{Kind: FuncKind_AliasEncode, Bucket: Bucket_Extern, Name: d.Encode, Type: d})
		b.addFunc(&Func{Kind: FuncKind_AliasDecode, Bucket: Bucket_Extern, Name: d.Decode, Type: d})
	}
	b.mod.Defines = append(defines, b.mod.Defines...)
}

func (b *builder) addFunc(f *Func) {
	switch f.Bucket {
	case Bucket_Inline:
		b.mod.Inline = append(b.mod.Inline, f)
	case Bucket_Static:
		b.mod.Static = append(b.mod.Static, f)
	default:
		b.mod.Extern = append(b.mod.Extern, f)
	}
}

func opBucket(op structdesc.Op) Bucket {
	switch op.Kind {
	case structdesc.OpKind_FieldHas, structdesc.OpKind_FieldGet, structdesc.OpKind_FieldSet,
		structdesc.OpKind_Init, structdesc.OpKind_Alloc, structdesc.OpKind_Free:
		return Bucket_Inline
	}
	if op.Internal {
		return Bucket_Static
	}
	return Bucket_Extern
}

func maskExpr(s *structdesc.Struct, mask uint32) string {
	var tt []string
	for _, f := range s.Fields {
		if mask&f.Bit() != 0 {
			tt = append(tt, fmt.Sprintf("(1U << %s)", f.IDMacro))
		}
	}
	if len(tt) == 0 {
		return "(0U)"
	}
	if len(tt) == 1 {
		return tt[0]
	}
	return "(" + strings.Join(tt, " | ") + ")"
}

func terms(bb []typedesc.Bound) []string {
	tt := make([]string, 0, len(bb))
	for _, b := range bb {
		tt = append(tt, b.Expr)
	}
	return tt
}
