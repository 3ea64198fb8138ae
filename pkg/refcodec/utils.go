/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package refcodec

import (
	"gopkg.in/yaml.v3"

	"github.com/voedger/dpackgen/pkg/structdesc"
	"github.com/voedger/dpackgen/pkg/typedesc"
)

// writable returns the non-obsolete field with the given schema name.
func (v *Value) writable(name string) (*structdesc.Field, error) {
	f := v.Struct.Field(name)
	if f == nil || f.IsObsolete() {
		return nil, ErrUnknownField(v.Struct.Schema.Name, name)
	}
	return f, nil
}

// normalize converts x into the representation Value keeps for f.
func normalize(f *structdesc.Field, x any) (any, error) {
	if f.List == nil {
		return normalizeValue(f.Type, x)
	}
	items, ok := x.([]any)
	if !ok {
		return nil, ErrInvalidValue("%T is not a list", x)
	}
	out := make([]any, 0, len(items))
	for _, it := range items {
		n, err := normalizeValue(f.Type, it)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func normalizeValue(d *typedesc.Descriptor, x any) (any, error) {
	u := d.Underlying()
	switch u.Kind {
	case typedesc.Kind_Scalar:
		n, ok := typedesc.AsBig(x)
		if !ok {
			return nil, ErrInvalidValue("%T is not an integer", x)
		}
		if !u.Unit.Contains(n) {
			return nil, ErrInvalidValue("%s does not fit %s", n, u.Unit.Name())
		}
		return u.Unit.Value(n), nil
	case typedesc.Kind_BitSet:
		n, ok := typedesc.AsBig(x)
		if !ok || n.Sign() < 0 || !n.IsUint64() {
			return nil, ErrInvalidValue("%v is not a 64-bit mask", x)
		}
		return n.Uint64(), nil
	case typedesc.Kind_Boolean:
		if _, ok := x.(bool); !ok {
			return nil, ErrInvalidValue("%T is not a boolean", x)
		}
	case typedesc.Kind_String:
		if _, ok := x.(string); !ok {
			return nil, ErrInvalidValue("%T is not a string", x)
		}
	case typedesc.Kind_Record:
		nested, ok := x.(*Value)
		if !ok || nested.Struct.Schema != u.Record {
			return nil, ErrInvalidValue("%T is not a «%s» record", x, u.Record.Name)
		}
	default:
		return nil, ErrUnsupported("%s values", u.Kind.TrimString())
	}
	return x, nil
}

func (v *Value) yamlNode() (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range v.Struct.Fields {
		if v.Filled&f.Bit() == 0 {
			continue
		}
		var val yaml.Node
		if err := val.Encode(v.Fields[f.ID]); err != nil {
			return nil, fieldError(f.Schema.Name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: f.Schema.Name},
			&val)
	}
	return node, nil
}
