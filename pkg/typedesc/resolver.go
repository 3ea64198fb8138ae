/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package typedesc

import (
	"fmt"
	"math/big"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/dpackgen/pkg/cnames"
	"github.com/voedger/dpackgen/pkg/schema"
)

// Resolver turns type references of one module into descriptors.
// Named types are memoized by qualified name, records by node.
type Resolver struct {
	module    *schema.Module
	opts      Options
	builtins  map[string]*Descriptor
	typedefs  map[string]*schema.Typedef
	imports   map[string]*schema.Import
	named     map[string]*Descriptor
	aliases   []*Descriptor
	records   map[*schema.Record]*Descriptor
	resolving map[string]bool
}

func newResolver(m *schema.Module, opts Options) *Resolver {
	if opts.StringMaxLen == 0 {
		opts.StringMaxLen = DefaultStringMaxLen
	}
	r := &Resolver{
		module:    m,
		opts:      opts,
		builtins:  builtins(opts),
		typedefs:  map[string]*schema.Typedef{},
		imports:   map[string]*schema.Import{},
		named:     map[string]*Descriptor{},
		records:   map[*schema.Record]*Descriptor{},
		resolving: map[string]bool{},
	}
	for _, t := range m.Typedefs {
		r.typedefs[t.Name] = t
	}
	for _, imp := range m.Imports {
		r.imports[imp.Prefix] = imp
	}
	return r
}

func builtins(opts Options) map[string]*Descriptor {
	bb := map[string]*Descriptor{}
	for u := Unit_U8; u < Unit_Count; u++ {
		bb[u.Name()] = &Descriptor{
			Kind:    Kind_Scalar,
			Name:    u.Name(),
			CType:   u.CType(),
			Include: IncludeScalar,
			Encode:  "dpack_encode_" + u.Name(),
			Decode:  "dpack_decode_" + u.Name(),
			Size:    u.Size(),
			Unit:    u,
			Ranges:  FullRange(u.Min(), u.Max()),
		}
	}
	bb[TypeBool] = &Descriptor{
		Kind:    Kind_Boolean,
		Name:    TypeBool,
		CType:   "bool",
		Include: IncludeScalar,
		Encode:  "dpack_encode_bool",
		Decode:  "dpack_decode_bool",
		Size:    Bounds{Min: ConstBound(boolSizeExpr, boolSize), Max: ConstBound(boolSizeExpr, boolSize)},
	}
	bb[TypeBits] = &Descriptor{
		Kind:    Kind_BitSet,
		Name:    TypeBits,
		CType:   Unit_U64.CType(),
		Include: IncludeScalar,
		Encode:  "dpack_encode_uint64",
		Decode:  "dpack_decode_uint64",
		Size:    Unit_U64.Size(),
	}
	str := &Descriptor{
		Kind:    Kind_String,
		Name:    TypeString,
		CType:   "char *",
		Include: IncludeString,
		Encode:  "dpack_encode_str",
		Decode:  "dpack_decode_strdup_range",
		Length:  FullRange(big.NewInt(stringLenMin), new(big.Int).SetUint64(opts.StringMaxLen)),
	}
	str.setLength(opts.StringMaxLen)
	bb[TypeString] = str
	return bb
}

// setLength derives the length bounds and the wire size bounds from Length.
func (d *Descriptor) setLength(strMax uint64) {
	lo, hi := d.Length.First().Uint64(), d.Length.Last().Uint64()
	d.LenMin = ConstBound(fmt.Sprintf("%dU", lo), lo)
	if hi == strMax {
		d.LenMax = ConstBound(stringLenMaxExpr, hi)
	} else {
		d.LenMax = ConstBound(fmt.Sprintf("%dU", hi), hi)
	}
	d.Size = Bounds{
		Min: ConstBound(fmt.Sprintf("DPACK_STR_SIZE(%s)", d.LenMin.Expr), StrSize(lo)),
		Max: ConstBound(fmt.Sprintf("DPACK_STR_SIZE(%s)", d.LenMax.Expr), StrSize(hi)),
	}
}

func (r *Resolver) resolve(ref schema.TypeRef) (*Descriptor, error) {
	if ref.Prefix == "" || ref.Prefix == r.module.Prefix {
		if d, ok := r.builtins[ref.Name]; ok && ref.Prefix == "" {
			return d, nil
		}
		td, ok := r.typedefs[ref.Name]
		if !ok {
			return nil, schema.ErrorAt(ErrUnknownType("«%s»", ref), ref.Pos)
		}
		return r.local(td)
	}

	imp, ok := r.imports[ref.Prefix]
	if !ok {
		return nil, schema.ErrorAt(ErrUnknownType("«%s»: no import with prefix «%s»", ref, ref.Prefix), ref.Pos)
	}
	for _, td := range imp.Typedefs {
		if td.Name == ref.Name {
			return r.imported(imp, td)
		}
	}
	return nil, schema.ErrorAt(ErrUnknownType("«%s»: module «%s» declares no such type", ref, imp.Module), ref.Pos)
}

func qualified(module, name string) string {
	return module + ":" + name
}

func (r *Resolver) imported(imp *schema.Import, td *schema.Typedef) (*Descriptor, error) {
	qname := qualified(imp.Module, td.Name)
	if d, ok := r.named[qname]; ok {
		return d, nil
	}
	if missed := td.Binding.Missing(); len(missed) > 0 {
		return nil, schema.ErrorAt(ErrIncompleteBinding(qname, missed[0]), td.Pos)
	}
	d, err := r.external(qname, td)
	if err != nil {
		return nil, err
	}
	r.named[qname] = d
	return d, nil
}

func (r *Resolver) local(td *schema.Typedef) (*Descriptor, error) {
	qname := qualified(r.module.Name, td.Name)
	if d, ok := r.named[qname]; ok {
		return d, nil
	}
	if r.resolving[qname] {
		return nil, schema.ErrorAt(ErrUnknownType("«%s» is defined in terms of itself", qname), td.Pos)
	}
	r.resolving[qname] = true
	defer delete(r.resolving, qname)

	var (
		d   *Descriptor
		err error
	)
	if td.Binding.IsEmpty() {
		d, err = r.alias(qname, td)
	} else {
		if missed := td.Binding.Missing(); len(missed) > 0 {
			return nil, schema.ErrorAt(ErrIncompleteBinding(qname, missed[0]), td.Pos)
		}
		d, err = r.external(qname, td)
	}
	if err != nil {
		return nil, err
	}
	r.named[qname] = d
	return d, nil
}

func (r *Resolver) external(qname string, td *schema.Typedef) (*Descriptor, error) {
	if !td.Constraints.IsEmpty() {
		return nil, schema.ErrorAt(ErrInvalidConstraint("«%s»: native types accept no constraints", qname), td.Pos)
	}
	b := td.Binding
	d := &Descriptor{
		Kind:    Kind_External,
		Name:    qname,
		CType:   b.CType,
		Include: b.Include,
		Encode:  b.Pack,
		Decode:  b.Unpack,
		Size:    Bounds{Min: ExprBound(b.Min), Max: ExprBound(b.Max)},
		Binding: b,
		Typedef: td,
	}
	if d.Size.Min.Known && d.Size.Max.Known && d.Size.Min.Value > d.Size.Max.Value {
		return nil, schema.ErrorAt(ErrInvalidConstraint("«%s»: size bounds %s > %s", qname, b.Min, b.Max), td.Pos)
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("native type %s bound to %s", qname, b.CType))
	}
	return d, nil
}

func (r *Resolver) alias(qname string, td *schema.Typedef) (*Descriptor, error) {
	if td.Type.IsZero() {
		return nil, schema.ErrorAt(ErrUnknownType("«%s» declares neither a type nor a native binding", qname), td.Pos)
	}
	inner, err := r.resolve(td.Type)
	if err != nil {
		return nil, err
	}
	if inner, err = r.restrict(inner, td.Constraints); err != nil {
		return nil, schema.ErrorAt(fmt.Errorf("«%s»: %w", qname, err), td.Pos)
	}

	prefix := r.module.Prefix
	d := &Descriptor{
		Kind:       Kind_Alias,
		Name:       qname,
		CType:      cnames.ID(prefix, td.Name),
		Include:    inner.Include,
		Encode:     cnames.ID(prefix, "encode", td.Name),
		Decode:     cnames.ID(prefix, "decode", td.Name),
		Inner:      inner,
		Typedef:    td,
		SizeMacros: [2]string{cnames.Def(prefix, td.Name, "size", "min"), cnames.Def(prefix, td.Name, "size", "max")},
	}
	d.Size = Bounds{
		Min: Bound{Expr: d.SizeMacros[0], Value: inner.Size.Min.Value, Known: inner.Size.Min.Known},
		Max: Bound{Expr: d.SizeMacros[1], Value: inner.Size.Max.Value, Known: inner.Size.Max.Known},
	}
	r.aliases = append(r.aliases, d)
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("typedef %s aliases %s", qname, inner))
	}
	return d, nil
}

// restrict narrows d by constraints. The result is a fresh anonymous
// descriptor unless constraints are empty.
func (r *Resolver) restrict(d *Descriptor, c schema.Constraints) (*Descriptor, error) {
	if c.IsEmpty() {
		return d, nil
	}
	switch d.Kind {
	case Kind_Scalar:
		if len(c.Length) > 0 || len(c.Patterns) > 0 {
			return nil, ErrInvalidConstraint("length and patterns apply to strings only")
		}
		set, err := NewRangeSet(c.Ranges, d.Unit.Min(), d.Unit.Max())
		if err != nil {
			return nil, err
		}
		nd := *d
		if nd.Ranges = d.Ranges.Intersect(set); len(nd.Ranges) == 0 {
			return nil, ErrInvalidConstraint("ranges %s leave no valid %s value", set, d.Name)
		}
		return &nd, nil
	case Kind_String:
		if len(c.Ranges) > 0 {
			return nil, ErrInvalidConstraint("ranges apply to integers only")
		}
		nd := *d
		if len(c.Length) > 0 {
			set, err := NewRangeSet(c.Length, big.NewInt(stringLenMin), new(big.Int).SetUint64(r.opts.StringMaxLen))
			if err != nil {
				return nil, err
			}
			if nd.Length = d.Length.Intersect(set); len(nd.Length) == 0 {
				return nil, ErrInvalidConstraint("lengths %s leave no valid string", set)
			}
			nd.setLength(r.opts.StringMaxLen)
		}
		nd.Patterns = append(append([]schema.Pattern(nil), d.Patterns...), c.Patterns...)
		if err := nd.compilePatterns(); err != nil {
			return nil, err
		}
		return &nd, nil
	case Kind_Alias:
		inner, err := r.restrict(d.Inner, c)
		if err != nil {
			return nil, err
		}
		nd := *d
		nd.Inner = inner
		nd.Restricted = true
		return &nd, nil
	}
	return nil, ErrInvalidConstraint("%s types accept no constraints", d.Kind.TrimString())
}

func (r *Resolver) field(f *schema.Field) (*Descriptor, error) {
	if f.Record != nil {
		d, ok := r.records[f.Record]
		if !ok {
			return nil, schema.ErrorAt(ErrUnknownType("record «%s» of field «%s» is not built", f.Record.Name, f.Name), f.Pos)
		}
		if !f.Constraints.IsEmpty() {
			return nil, schema.ErrorAt(ErrInvalidConstraint("field «%s»: records accept no constraints", f.Name), f.Pos)
		}
		return d, nil
	}
	d, err := r.resolve(f.Type)
	if err != nil {
		return nil, err
	}
	if d, err = r.restrict(d, f.Constraints); err != nil {
		return nil, schema.ErrorAt(fmt.Errorf("field «%s»: %w", f.Name, err), f.Pos)
	}
	return d, nil
}
