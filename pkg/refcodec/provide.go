/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package refcodec

import (
	"errors"

	"github.com/voedger/dpackgen/pkg/moddesc"
	"github.com/voedger/dpackgen/pkg/schema"
	"github.com/voedger/dpackgen/pkg/structdesc"
)

// New returns a codec for the structs of a built module.
func New(m *moddesc.Module, opts Options) *Codec {
	c := &Codec{
		opts:    opts,
		structs: map[*schema.Record]*structdesc.Struct{},
		names:   map[string]*structdesc.Struct{},
	}
	for _, s := range m.Structs {
		c.structs[s.Schema] = s
		c.names[s.Schema.Name] = s
	}
	return c
}

// Struct returns the struct built for the record named name, nil if none.
func (c *Codec) Struct(name string) *structdesc.Struct {
	return c.names[name]
}

// NewValue returns an initialized instance with no field set.
func (c *Codec) NewValue(s *structdesc.Struct) *Value {
	return c.newValue(s)
}

// Pack encodes v as a MessagePack map. Obsolete mandatory fields carry their
// placeholder.
func (c *Codec) Pack(v *Value) ([]byte, error) {
	return c.pack(v)
}

// Unpack decodes a message of struct s. No partially decoded value is
// returned on error.
func (c *Codec) Unpack(s *structdesc.Struct, data []byte) (*Value, error) {
	return c.unpack(s, data)
}

// Check validates every present field and the record validators.
func (c *Codec) Check(v *Value) error {
	return c.check(v)
}

// CheckField validates a value of field f.
func (c *Codec) CheckField(f *structdesc.Field, x any) error {
	return c.checkField(f, x)
}

// Set validates x and stores it into the field named name.
func (v *Value) Set(name string, x any) error {
	f, err := v.writable(name)
	if err != nil {
		return err
	}
	if x, err = normalize(f, x); err != nil {
		return err
	}
	if err := v.codec.checkField(f, x); err != nil {
		return ErrInvalidValue("field «%s»: %v", name, err)
	}
	v.Fields[f.ID] = x
	v.Filled |= f.Bit()
	return nil
}

// Get returns the value of the field named name.
func (v *Value) Get(name string) (any, error) {
	f, err := v.writable(name)
	if err != nil {
		return nil, err
	}
	if v.Filled&f.Bit() == 0 {
		return nil, ErrNotSet(name)
	}
	return v.Fields[f.ID], nil
}

// Has returns true if the field named name is set.
func (v *Value) Has(name string) bool {
	f := v.Struct.Field(name)
	return f != nil && v.Filled&f.Bit() != 0
}

// Code returns the negated errno generated code reports for err, 0 for nil
// and -EINVAL for errors outside the runtime taxonomy.
func Code(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrMalformedMessageError):
		return -errnoBADMSG
	case errors.Is(err, ErrNotSetError):
		return -errnoNOENT
	case errors.Is(err, ErrMissingMandatoryError):
		return -errnoNODATA
	case errors.Is(err, ErrRangeViolationError):
		return -errnoRANGE
	case errors.Is(err, ErrPatternViolationError):
		return -errnoILSEQ
	case errors.Is(err, ErrDuplicateFieldError):
		return -errnoEXIST
	}
	return -errnoINVAL
}

// MarshalYAML renders present fields as a mapping in field order.
func (v *Value) MarshalYAML() (any, error) {
	return v.yamlNode()
}
