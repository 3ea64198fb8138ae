/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package refcodec

import (
	"bytes"
	"errors"
	"fmt"
	"math/bits"

	"github.com/untillpro/goutils/logger"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/voedger/dpackgen/pkg/structdesc"
	"github.com/voedger/dpackgen/pkg/typedesc"
)

func (c *Codec) newValue(s *structdesc.Struct) *Value {
	return &Value{Struct: s, Fields: make([]any, len(s.Fields)), codec: c}
}

func (c *Codec) pack(v *Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := c.packValue(enc, v); err != nil {
		return nil, err
	}
	if logger.IsTrace() {
		logger.Trace(fmt.Sprintf("%s: packed %d bytes", v.Struct.Name, buf.Len()))
	}
	return buf.Bytes(), nil
}

func (c *Codec) packValue(enc *msgpack.Encoder, v *Value) error {
	s := v.Struct
	if v.Filled&^s.ValidMask != 0 {
		return ErrInvalidValue("record «%s»: presence bits 0x%08x outside 0x%08x", s.Name, v.Filled, s.ValidMask)
	}
	if missed := s.MandatoryMask &^ (v.Filled | s.ObsoleteMandatoryMask); missed != 0 {
		return ErrMissingMandatory(s.Name, missed)
	}

	if err := enc.EncodeMapLen(bits.OnesCount32(v.Filled&^s.ObsoleteMask | s.ObsoleteMandatoryMask)); err != nil {
		return err
	}
	for _, f := range s.Fields {
		if !f.IsPacked() {
			continue
		}
		x := v.Fields[f.ID]
		if f.IsObsolete() {
			x = f.Placeholder
		} else if v.Filled&f.Bit() == 0 {
			continue
		}
		if err := enc.EncodeUint(uint64(f.ID)); err != nil {
			return err
		}
		if err := c.encodeField(enc, f, x); err != nil {
			return fieldError(f.Schema.Name, err)
		}
	}
	return nil
}

func (c *Codec) encodeField(enc *msgpack.Encoder, f *structdesc.Field, x any) error {
	if f.List == nil {
		return c.encode(enc, f.Type, x)
	}
	items, ok := x.([]any)
	if !ok {
		return ErrInvalidValue("%T is not a list", x)
	}
	if err := enc.EncodeArrayLen(len(items)); err != nil {
		return err
	}
	for _, it := range items {
		if err := c.encode(enc, f.Type, it); err != nil {
			return err
		}
	}
	return nil
}

func (c *Codec) encode(enc *msgpack.Encoder, d *typedesc.Descriptor, x any) error {
	u := d.Underlying()
	switch u.Kind {
	case typedesc.Kind_Scalar:
		n, ok := typedesc.AsBig(x)
		if !ok || !u.Unit.Contains(n) {
			return ErrInvalidValue("%v is not %s", x, u.Unit.Name())
		}
		if u.Unit.Signed() {
			return enc.EncodeInt(n.Int64())
		}
		return enc.EncodeUint(n.Uint64())
	case typedesc.Kind_Boolean:
		b, ok := x.(bool)
		if !ok {
			return ErrInvalidValue("%T is not a boolean", x)
		}
		return enc.EncodeBool(b)
	case typedesc.Kind_BitSet:
		n, ok := typedesc.AsBig(x)
		if !ok || n.Sign() < 0 || !n.IsUint64() {
			return ErrInvalidValue("%v is not a 64-bit mask", x)
		}
		return enc.EncodeUint(n.Uint64())
	case typedesc.Kind_String:
		str, ok := x.(string)
		if !ok {
			return ErrInvalidValue("%T is not a string", x)
		}
		return enc.EncodeString(str)
	case typedesc.Kind_Record:
		nested, ok := x.(*Value)
		if !ok {
			return ErrInvalidValue("%T is not a record", x)
		}
		return c.packValue(enc, nested)
	}
	return ErrUnsupported("%s values", u.Kind.TrimString())
}

func (c *Codec) unpack(s *structdesc.Struct, data []byte) (*Value, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	v, err := c.unpackValue(dec, s)
	if err != nil {
		return nil, err
	}
	if logger.IsTrace() {
		logger.Trace(fmt.Sprintf("%s: unpacked presence 0x%08x", s.Name, v.Filled))
	}
	return v, nil
}

func (c *Codec) unpackValue(dec *msgpack.Decoder, s *structdesc.Struct) (*Value, error) {
	n, err := dec.DecodeMapLen()
	if err != nil {
		return nil, ErrMalformedMessage("record «%s»: %v", s.Name, err)
	}
	if n < s.MandatoryCount || n > len(s.Fields) {
		return nil, ErrMalformedMessage("record «%s»: %d entries, expected %d..%d", s.Name, n, s.MandatoryCount, len(s.Fields))
	}

	v := c.newValue(s)
	for i := 0; i < n; i++ {
		id, err := dec.DecodeUint64()
		if err != nil {
			return nil, ErrMalformedMessage("record «%s»: field id: %v", s.Name, err)
		}
		if id >= uint64(len(s.Fields)) {
			return nil, ErrMalformedMessage("record «%s»: field id %d", s.Name, id)
		}
		f := s.Fields[id]
		if v.Filled&f.Bit() != 0 {
			return nil, ErrDuplicateField(f.Schema.Name)
		}
		x, err := c.decodeField(dec, f)
		if err != nil {
			return nil, fieldError(f.Schema.Name, err)
		}
		v.Fields[id] = x
		v.Filled |= f.Bit()
	}

	if c.opts.Validate {
		if err := c.check(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (c *Codec) decodeField(dec *msgpack.Decoder, f *structdesc.Field) (any, error) {
	if f.List == nil {
		return c.decode(dec, f.Type)
	}
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, ErrMalformedMessage("%v", err)
	}
	if n < int(f.List.Min) || n > int(f.List.Max) {
		return nil, ErrMalformedMessage("%d elements, expected %d..%d", n, f.List.Min, f.List.Max)
	}
	items := make([]any, 0, n)
	for i := 0; i < n; i++ {
		x, err := c.decode(dec, f.Type)
		if err != nil {
			return nil, err
		}
		items = append(items, x)
	}
	return items, nil
}

func (c *Codec) decode(dec *msgpack.Decoder, d *typedesc.Descriptor) (any, error) {
	u := d.Underlying()
	switch u.Kind {
	case typedesc.Kind_Scalar, typedesc.Kind_BitSet:
		raw, err := dec.DecodeInterfaceLoose()
		if err != nil {
			return nil, ErrMalformedMessage("%v", err)
		}
		n, ok := typedesc.AsBig(raw)
		if !ok {
			return nil, ErrMalformedMessage("%T is not an integer", raw)
		}
		if u.Kind == typedesc.Kind_BitSet {
			if n.Sign() < 0 || !n.IsUint64() {
				return nil, ErrRangeViolation("%s is not a 64-bit mask", n)
			}
			return n.Uint64(), nil
		}
		if !u.Unit.Contains(n) {
			return nil, ErrRangeViolation("%s does not fit %s", n, u.Unit.Name())
		}
		return u.Unit.Value(n), nil
	case typedesc.Kind_Boolean:
		b, err := dec.DecodeBool()
		if err != nil {
			return nil, ErrMalformedMessage("%v", err)
		}
		return b, nil
	case typedesc.Kind_String:
		str, err := dec.DecodeString()
		if err != nil {
			return nil, ErrMalformedMessage("%v", err)
		}
		if l := uint64(len(str)); l < u.LenMin.Value || l > u.LenMax.Value {
			return nil, ErrMalformedMessage("string of %d bytes, expected %d..%d", l, u.LenMin.Value, u.LenMax.Value)
		}
		return str, nil
	case typedesc.Kind_Record:
		nested, ok := c.structs[u.Record]
		if !ok {
			return nil, ErrUnsupported("record «%s» is not built", u.Record.Name)
		}
		return c.unpackValue(dec, nested)
	}
	return nil, ErrUnsupported("%s values", u.Kind.TrimString())
}

func (c *Codec) check(v *Value) error {
	s := v.Struct
	if v.Filled&^s.ValidMask != 0 {
		return ErrInvalidValue("record «%s»: presence bits 0x%08x outside 0x%08x", s.Name, v.Filled, s.ValidMask)
	}
	if missed := s.MandatoryMask &^ (v.Filled | s.ObsoleteMandatoryMask); missed != 0 {
		return ErrMissingMandatory(s.Name, missed)
	}
	for _, f := range s.Fields {
		if f.IsObsolete() || v.Filled&f.Bit() == 0 {
			continue
		}
		if err := c.checkField(f, v.Fields[f.ID]); err != nil {
			return fieldError(f.Schema.Name, err)
		}
	}
	return c.validate(s.Validators, v)
}

func (c *Codec) checkField(f *structdesc.Field, x any) error {
	if f.List == nil {
		if err := c.checkValue(f.Type, x); err != nil {
			return err
		}
		return c.validate(f.Validators, x)
	}
	items, ok := x.([]any)
	if !ok {
		return ErrInvalidValue("%T is not a list", x)
	}
	if len(items) < int(f.List.Min) || len(items) > int(f.List.Max) {
		return ErrRangeViolation("%d elements, expected %d..%d", len(items), f.List.Min, f.List.Max)
	}
	for _, it := range items {
		if err := c.checkValue(f.Type, it); err != nil {
			return err
		}
	}
	return c.validate(f.Validators, x)
}

func (c *Codec) checkValue(d *typedesc.Descriptor, x any) error {
	if d.Underlying().Kind == typedesc.Kind_Record {
		nested, ok := x.(*Value)
		if !ok {
			return ErrInvalidValue("%T is not a record", x)
		}
		return c.check(nested)
	}
	err := d.CheckValue(x)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, typedesc.ErrOutOfRangeError):
		return ErrRangeViolation("%v", err)
	case errors.Is(err, typedesc.ErrPatternMismatchError):
		return ErrPatternViolation("%v", err)
	}
	return ErrInvalidValue("%v", err)
}

func (c *Codec) validate(names []string, x any) error {
	for _, n := range names {
		if fn, ok := c.opts.Validators[n]; ok {
			if err := fn(x); err != nil {
				return fmt.Errorf("%s: %w", n, err)
			}
		}
	}
	return nil
}
