/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package schema

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/alecthomas/participle/v2/lexer"
	"gopkg.in/yaml.v3"
)

// loader converts decoded interchange documents into the schema tree.
// Errors are collected so that one pass reports every problem found.
type loader struct {
	fileName string
	records  map[string]*Record
	errs     []error
}

func loadImpl(fileName string, content []byte) (*Module, error) {
	var doc moduleDoc
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSchemaError, fileName, err)
	}
	if doc.pos.line == 0 {
		return nil, ErrSchema("%s: empty document", fileName)
	}
	l := &loader{fileName: fileName, records: map[string]*Record{}}
	m := l.module(&doc)
	if len(l.errs) > 0 {
		return nil, errors.Join(l.errs...)
	}
	return m, nil
}

func (l *loader) pos(p docPos) lexer.Position {
	return lexer.Position{Filename: l.fileName, Line: p.line, Column: p.column}
}

func (l *loader) errorf(p docPos, err error) {
	l.errs = append(l.errs, ErrorAt(err, l.pos(p)))
}

func (l *loader) module(d *moduleDoc) *Module {
	m := &Module{
		Pos:         l.pos(d.pos),
		Name:        d.Module,
		Prefix:      d.Prefix,
		Description: d.Description,
	}
	if m.Name == "" {
		l.errorf(d.pos, ErrSchema("module name is empty"))
	}
	if m.Prefix == "" {
		m.Prefix = m.Name
	}

	typedefs := map[string]bool{}
	for i := range d.Typedefs {
		t := l.typedef(m.Name, &d.Typedefs[i])
		if typedefs[t.Name] {
			l.errorf(d.Typedefs[i].pos, ErrDuplicate("typedef", t.Name))
			continue
		}
		typedefs[t.Name] = true
		m.Typedefs = append(m.Typedefs, t)
	}

	prefixes := map[string]bool{m.Prefix: true}
	for i := range d.Imports {
		imp := &d.Imports[i]
		if prefixes[imp.Prefix] {
			l.errorf(imp.pos, ErrDuplicate("import prefix", imp.Prefix))
			continue
		}
		prefixes[imp.Prefix] = true
		m.Imports = append(m.Imports, l.imp(imp))
	}

	// records are registered first so that fields may refer to records
	// declared later in the document
	declared := make([]*Record, len(d.Records))
	for i := range d.Records {
		r := &d.Records[i]
		if _, ok := l.records[r.Name]; ok {
			l.errorf(r.pos, ErrDuplicate("record", r.Name))
			continue
		}
		declared[i] = &Record{Pos: l.pos(r.pos), Name: r.Name, Description: r.Description}
		l.records[r.Name] = declared[i]
		m.Records = append(m.Records, declared[i])
	}
	for i, rec := range declared {
		if rec != nil {
			l.fillRecord(rec, &d.Records[i])
		}
	}
	return m
}

func (l *loader) imp(d *importDoc) *Import {
	imp := &Import{Pos: l.pos(d.pos), Prefix: d.Prefix, Module: d.Module}
	if imp.Prefix == "" {
		l.errorf(d.pos, ErrSchema("import prefix is empty"))
	}
	if imp.Module == "" {
		imp.Module = imp.Prefix
	}
	for i := range d.Typedefs {
		imp.Typedefs = append(imp.Typedefs, l.typedef(imp.Module, &d.Typedefs[i]))
	}
	return imp
}

func (l *loader) typedef(module string, d *typedefDoc) *Typedef {
	t := &Typedef{
		Pos:         l.pos(d.pos),
		Module:      module,
		Name:        d.Name,
		Description: d.Description,
		Binding: Binding{
			Include: d.CInclude,
			CType:   d.CType,
			Pack:    d.CPack,
			Unpack:  d.CUnpack,
			Min:     d.CMin,
			Max:     d.CMax,
			Copy:    d.CCopy,
		},
	}
	if t.Name == "" {
		l.errorf(d.pos, ErrSchema("typedef name is empty"))
	}
	if d.Type != "" {
		t.Type = ParseTypeRef(d.Type, t.Pos)
	}
	t.Constraints = l.constraints(d.pos, d.Range, d.Length, d.Pattern)
	return t
}

func (l *loader) record(d *recordDoc) *Record {
	rec := &Record{Pos: l.pos(d.pos), Name: d.Name, Description: d.Description}
	l.fillRecord(rec, d)
	return rec
}

func (l *loader) fillRecord(rec *Record, d *recordDoc) {
	if rec.Name == "" {
		l.errorf(d.pos, ErrSchema("record name is empty"))
	}
	rec.Must = l.validators(d.Must)
	names := map[string]bool{}
	for i := range d.Fields {
		f := l.field(&d.Fields[i])
		if names[f.Name] {
			l.errorf(d.Fields[i].pos, ErrDuplicate("field", f.Name))
			continue
		}
		names[f.Name] = true
		rec.Fields = append(rec.Fields, f)
	}
}

func (l *loader) field(d *fieldDoc) *Field {
	f := &Field{
		Pos:         l.pos(d.pos),
		Name:        d.Name,
		Description: d.Description,
		Mandatory:   d.Mandatory,
		Default:     d.Default,
		MinElements: d.MinElements,
		MaxElements: d.MaxElements,
	}
	if f.Name == "" {
		l.errorf(d.pos, ErrSchema("field name is empty"))
	}

	switch {
	case d.Record != nil && d.Type != "":
		l.errorf(d.pos, ErrSchema("field «%s» declares both type and record", d.Name))
	case d.Record != nil:
		f.Record = l.record(d.Record)
	case d.Type == "":
		l.errorf(d.pos, ErrSchema("field «%s» has no type", d.Name))
	default:
		if rec, ok := l.records[d.Type]; ok {
			f.Record = rec
		} else {
			f.Type = ParseTypeRef(d.Type, f.Pos)
		}
	}

	switch d.Status {
	case "", statusCurrent:
		f.Status = Status_Current
	case statusDeprecated:
		f.Status = Status_Deprecated
	case statusObsolete:
		f.Status = Status_Obsolete
	default:
		l.errorf(d.pos, ErrSchema("field «%s»: unknown status «%s»", d.Name, d.Status))
	}

	if d.List {
		f.Cardinality = Cardinality_BoundedList
	} else if d.MaxElements != nil || d.MinElements != 0 {
		l.errorf(d.pos, ErrSchema("field «%s»: element counts require a list", d.Name))
	}

	f.Must = l.validators(d.Must)
	f.Constraints = l.constraints(d.pos, d.Range, d.Length, d.Pattern)
	return f
}

func (l *loader) validators(docs []validatorDoc) []Validator {
	vv := make([]Validator, 0, len(docs))
	for _, d := range docs {
		if !IsCIdent(d.Name) {
			l.errorf(d.pos, ErrInvalidValidator("«%s» is not a C identifier", d.Name))
			continue
		}
		vv = append(vv, Validator{Pos: l.pos(d.pos), Name: d.Name})
	}
	return vv
}

func (l *loader) constraints(p docPos, ranges, length string, patterns []patternDoc) (c Constraints) {
	var err error
	if ranges != "" {
		if c.Ranges, err = ParseRanges(ranges, l.pos(p)); err != nil {
			l.errs = append(l.errs, err)
		}
	}
	if length != "" {
		if c.Length, err = ParseRanges(length, l.pos(p)); err != nil {
			l.errs = append(l.errs, err)
		}
	}
	for _, d := range patterns {
		if _, err := regexp.Compile(d.Regex); err != nil {
			l.errorf(d.pos, ErrInvalidExpression("pattern «%s»: %v", d.Regex, err))
			continue
		}
		c.Patterns = append(c.Patterns, Pattern{Pos: l.pos(d.pos), Regexp: d.Regex, Invert: d.Invert})
	}
	return c
}

// checkKeys rejects mapping keys missing from allowed.
func checkKeys(n *yaml.Node, allowed []string) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: mapping expected", n.Line)
	}
	for i := 0; i < len(n.Content); i += 2 {
		key := n.Content[i]
		found := false
		for _, a := range allowed {
			if key.Value == a {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("line %d: unknown key «%s»", key.Line, key.Value)
		}
	}
	return nil
}
