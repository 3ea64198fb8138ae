/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package structdesc

import (
	"errors"
	"fmt"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/dpackgen/pkg/cnames"
	"github.com/voedger/dpackgen/pkg/schema"
	"github.com/voedger/dpackgen/pkg/typedesc"
)

func build(rec *schema.Record, prefix string, r Resolver) (*Struct, error) {
	s := &Struct{
		Schema: rec,
		Name:   cnames.ID(prefix, rec.Name),
		Macro:  cnames.Def(prefix, rec.Name),
	}
	if len(rec.Fields) == 0 {
		return nil, schema.ErrorAt(ErrEmptyRecord(rec.Name), rec.Pos)
	}

	var errs []error
	if len(rec.Fields) > MaxFields {
		errs = append(errs, schema.ErrorAt(ErrTooManyFields(rec.Name, len(rec.Fields)), rec.Pos))
	}
	fields := make([]*Field, 0, len(rec.Fields))
	for id, sf := range rec.Fields {
		f, err := newField(s, id, sf, r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fields = append(fields, f)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	for _, v := range rec.Must {
		s.Validators = append(s.Validators, v.Name)
	}
	s.fold(fields)

	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("struct %s: %d fields, %d mandatory, size %s .. %s",
			s.Name, len(s.Fields), s.MandatoryCount, s.Size.Min, s.Size.Max))
	}
	return s, nil
}

func newField(s *Struct, id int, sf *schema.Field, r Resolver) (*Field, error) {
	d, err := r.ResolveField(sf)
	if err != nil {
		return nil, err
	}
	f := &Field{
		Schema:    sf,
		ID:        id,
		Name:      cnames.ToID(sf.Name),
		IDMacro:   cnames.Def(s.Macro, sf.Name, "fld"),
		Type:      d,
		Mandatory: sf.Mandatory,
		Status:    sf.Status,
	}
	for _, v := range sf.Must {
		f.Validators = append(f.Validators, v.Name)
	}

	if sf.IsList() {
		if f.List, err = newList(s, sf, d); err != nil {
			return nil, schema.ErrorAt(err, sf.Pos)
		}
	}

	if sf.Default != nil {
		if f.List != nil {
			return nil, schema.ErrorAt(typedesc.ErrInvalidLiteral("list field «%s» takes no default", sf.Name), sf.Pos)
		}
		if f.Default, err = d.ParseLiteral(*sf.Default); err != nil {
			return nil, schema.ErrorAt(fmt.Errorf("default of field «%s»: %w", sf.Name, err), sf.Pos)
		}
		f.DefaultMacro = cnames.Def(s.Macro, sf.Name, "dflt")
	}

	if sf.IsMandatoryObsolete() {
		if f.Placeholder, err = placeholder(f); err != nil {
			return nil, schema.ErrorAt(err, sf.Pos)
		}
	}

	f.Size = entrySize(f)
	return f, nil
}

func newList(s *Struct, sf *schema.Field, d *typedesc.Descriptor) (*List, error) {
	if sf.MaxElements == nil {
		return nil, ErrMissingBound(sf.Name)
	}
	l := &List{Min: sf.MinElements, Max: *sf.MaxElements, NrMacro: cnames.Def(s.Macro, sf.Name, "nr")}
	switch {
	case l.Max == 0 || l.Max > MaxListElements:
		return nil, ErrInvalidList("field «%s»: max-elements must be in 1..%d", sf.Name, MaxListElements)
	case l.Min > l.Max:
		return nil, ErrInvalidList("field «%s»: min-elements %d exceeds max-elements %d", sf.Name, l.Min, l.Max)
	case !d.IsListElement():
		return nil, ErrUnsupportedList(sf.Name, d.Underlying().Kind.TrimString())
	}
	return l, nil
}

func placeholder(f *Field) (any, error) {
	if f.List != nil {
		if f.List.Min == 0 {
			return []any{}, nil
		}
		return nil, ErrMissingPlaceholder(f.Schema.Name)
	}
	if f.Default != nil {
		return f.Default, nil
	}
	if v, ok := f.Type.ZeroValue(); ok {
		return v, nil
	}
	return nil, ErrMissingPlaceholder(f.Schema.Name)
}

func entrySize(f *Field) typedesc.Bounds {
	value := f.Type.Size
	if f.List != nil {
		value = typedesc.Bounds{
			Min: typedesc.ArrayMin(f.Type.Size.Min, uint64(f.List.Min), fmt.Sprintf("%dU", f.List.Min)),
			Max: typedesc.ArrayMax(f.Type.Size.Max, uint64(f.List.Max), f.List.NrMacro),
		}
	}
	return typedesc.Bounds{
		Min: typedesc.SumBounds(typedesc.FieldIDSize.Min, value.Min),
		Max: typedesc.SumBounds(typedesc.FieldIDSize.Max, value.Max),
	}
}

// fold accumulates masks, size bounds and operations of the fields.
func (s *Struct) fold(fields []*Field) {
	s.Fields = fields
	s.ValidMask = uint32(uint64(1)<<len(fields) - 1)

	var minEntries, maxEntries []typedesc.Bound
	for _, f := range fields {
		bit := uint32(1) << f.ID
		if f.Mandatory {
			s.MandatoryCount++
			s.MandatoryMask |= bit
			minEntries = append(minEntries, f.Size.Min)
		}
		if f.Status == schema.Status_Obsolete {
			s.ObsoleteMask |= bit
			if f.Mandatory {
				s.ObsoleteMandatoryMask |= bit
			}
		}
		maxEntries = append(maxEntries, f.Size.Max)
		s.Ops = append(s.Ops, fieldOps(f)...)
	}

	s.MinTerms = append([]typedesc.Bound{typedesc.MapHead(s.MandatoryCount)}, minEntries...)
	s.MaxTerms = append([]typedesc.Bound{typedesc.MapHead(len(fields))}, maxEntries...)
	s.Size = typedesc.Bounds{
		Min: typedesc.SumBounds(s.MinTerms...),
		Max: typedesc.SumBounds(s.MaxTerms...),
	}

	for _, k := range []OpKind{OpKind_Init, OpKind_Fini, OpKind_Alloc, OpKind_Free,
		OpKind_Create, OpKind_Destroy, OpKind_Check, OpKind_Pack, OpKind_Unpack} {
		s.Ops = append(s.Ops, Op{Kind: k})
	}
}

func fieldOps(f *Field) (ops []Op) {
	obsolete := f.Status == schema.Status_Obsolete
	deprecated := f.Status == schema.Status_Deprecated
	if !obsolete {
		ops = append(ops,
			Op{Kind: OpKind_FieldCheck, Field: f},
			Op{Kind: OpKind_FieldHas, Field: f, Deprecated: deprecated},
			Op{Kind: OpKind_FieldGet, Field: f, Deprecated: deprecated},
			Op{Kind: OpKind_FieldSet, Field: f, Deprecated: deprecated},
		)
	}
	if !obsolete || f.Mandatory {
		ops = append(ops, Op{Kind: OpKind_FieldPack, Field: f, Internal: true})
	}
	ops = append(ops, Op{Kind: OpKind_FieldUnpack, Field: f, Internal: true})
	if f.List == nil && f.Type.IsOwning() {
		ops = append(ops, Op{Kind: OpKind_FieldFini, Field: f, Internal: obsolete})
	}
	return ops
}
