/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package refcodec

import (
	"errors"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/voedger/dpackgen/pkg/moddesc"
	"github.com/voedger/dpackgen/pkg/schema"
)

const scenario = `
module: sample
prefix: smpl
records:
  - name: item
    fields:
      - {name: id, type: uint32, mandatory: true, range: "0..10 | 20..30"}
      - {name: name, type: string}
      - {name: tags, type: uint16, list: true, max-elements: 4}
`

func newCodec(t *testing.T, doc string, opts Options) *Codec {
	m, err := schema.Load("test.yaml", []byte(doc))
	require.NoError(t, err)
	mod, err := moddesc.Build(m, moddesc.Options{})
	require.NoError(t, err)
	return New(mod, opts)
}

func TestScenario(t *testing.T) {
	require := require.New(t)

	c := newCodec(t, scenario, Options{Validate: true})
	s := c.Struct("item")
	require.NotNil(s)

	v := c.NewValue(s)
	require.Zero(v.Filled)
	require.NoError(v.Set("id", 7))

	data, err := c.Pack(v)
	require.NoError(err)
	require.Equal([]byte{0x81, 0x00, 0x07}, data)

	got, err := c.Unpack(s, data)
	require.NoError(err)
	require.Equal(v, got)

	require.NoError(v.Set("name", "x"))
	data, err = c.Pack(v)
	require.NoError(err)
	require.Equal([]byte{0x82, 0x00, 0x07, 0x01, 0xa1, 'x'}, data)

	got, err = c.Unpack(s, data)
	require.NoError(err)
	require.Equal(v.Filled, got.Filled)
	name, err := got.Get("name")
	require.NoError(err)
	require.Equal("x", name)

	require.NoError(v.Set("tags", []any{1, uint16(2)}))
	data, err = c.Pack(v)
	require.NoError(err)
	require.Equal([]byte{0x83, 0x00, 0x07, 0x01, 0xa1, 'x', 0x02, 0x92, 0x01, 0x02}, data)
	got, err = c.Unpack(s, data)
	require.NoError(err)
	require.Equal(v, got)
	tags, err := got.Get("tags")
	require.NoError(err)
	require.Equal([]any{uint64(1), uint64(2)}, tags)
}

func TestUnpackErrors(t *testing.T) {
	c := newCodec(t, scenario, Options{Validate: true})
	s := c.Struct("item")

	cases := []struct {
		name string
		data []byte
		err  error
		code int
	}{
		{"empty map", []byte{0x80}, ErrMalformedMessageError, -74},
		{"too many entries", []byte{0x84, 0x00, 0x07, 0x01, 0xa1, 'x', 0x02, 0x90, 0x03, 0x00}, ErrMalformedMessageError, -74},
		{"unknown field id", []byte{0x82, 0x00, 0x07, 0x05, 0x01}, ErrMalformedMessageError, -74},
		{"not a map", []byte{0x91, 0x00}, ErrMalformedMessageError, -74},
		{"truncated", []byte{0x82, 0x00, 0x07}, ErrMalformedMessageError, -74},
		{"id of wrong type", []byte{0x81, 0xa1, 'x', 0x07}, ErrMalformedMessageError, -74},
		{"value of wrong type", []byte{0x81, 0x00, 0xa1, 'x'}, ErrMalformedMessageError, -74},
		{"empty string", []byte{0x82, 0x00, 0x07, 0x01, 0xa0}, ErrMalformedMessageError, -74},
		{"too many elements", []byte{0x82, 0x00, 0x07, 0x02, 0x95, 1, 2, 3, 4, 5}, ErrMalformedMessageError, -74},
		{"duplicate field", []byte{0x82, 0x00, 0x07, 0x00, 0x08}, ErrDuplicateFieldError, -17},
		{"wider than unit", []byte{0x81, 0x00, 0xcf, 0, 0, 1, 0, 0, 0, 0, 0}, ErrRangeViolationError, -34},
		{"out of range", []byte{0x81, 0x00, 0x0b}, ErrRangeViolationError, -34},
		{"missing mandatory", []byte{0x81, 0x01, 0xa1, 'x'}, ErrMissingMandatoryError, -61},
	}
	for _, c1 := range cases {
		t.Run(c1.name, func(t *testing.T) {
			require := require.New(t)
			v, err := c.Unpack(s, c1.data)
			require.ErrorIs(err, c1.err)
			require.Equal(c1.code, Code(err))
			require.Nil(v)
		})
	}
}

func TestUnpackWithoutValidation(t *testing.T) {
	require := require.New(t)

	c := newCodec(t, scenario, Options{})
	s := c.Struct("item")

	v, err := c.Unpack(s, []byte{0x81, 0x01, 0xa1, 'x'})
	require.NoError(err)
	require.Equal(uint32(0x2), v.Filled)
	require.ErrorIs(c.Check(v), ErrMissingMandatoryError)

	v, err = c.Unpack(s, []byte{0x81, 0x00, 0x0b})
	require.NoError(err)
	require.ErrorIs(c.Check(v), ErrRangeViolationError)
}

func TestRanges(t *testing.T) {
	c := newCodec(t, scenario, Options{})
	s := c.Struct("item")
	id := s.Field("id")

	for _, n := range []uint64{0, 10, 20, 30} {
		require.NoError(t, c.CheckField(id, n), n)
		require.NoError(t, c.NewValue(s).Set("id", n), n)
	}
	for _, n := range []uint64{11, 19, 31} {
		err := c.CheckField(id, n)
		require.ErrorIs(t, err, ErrRangeViolationError, n)
		require.Equal(t, -34, Code(err))

		err = c.NewValue(s).Set("id", n)
		require.ErrorIs(t, err, ErrInvalidValueError, n)
		require.Equal(t, -22, Code(err))
	}
}

func TestAccessors(t *testing.T) {
	require := require.New(t)

	c := newCodec(t, scenario, Options{})
	v := c.NewValue(c.Struct("item"))

	require.False(v.Has("name"))
	_, err := v.Get("name")
	require.ErrorIs(err, ErrNotSetError)
	require.Equal(-2, Code(err))

	require.ErrorIs(v.Set("unknown", 1), ErrUnknownFieldError)
	require.ErrorIs(v.Set("name", 1), ErrInvalidValueError)
	require.ErrorIs(v.Set("name", ""), ErrInvalidValueError)
	require.ErrorIs(v.Set("id", -1), ErrInvalidValueError)
	require.ErrorIs(v.Set("tags", []any{1, 2, 3, 4, 5}), ErrInvalidValueError)
	require.Zero(v.Filled)

	require.NoError(v.Set("name", "y"))
	require.True(v.Has("name"))

	_, err = c.Pack(v)
	require.ErrorIs(err, ErrMissingMandatoryError)
	require.Equal(0, Code(nil))
}

func TestObsoleteMandatory(t *testing.T) {
	require := require.New(t)

	c := newCodec(t, `
module: sample
records:
  - name: item
    fields:
      - {name: id, type: uint32, mandatory: true}
      - {name: legacy, type: uint8, mandatory: true, status: obsolete, default: "3"}
      - {name: gone, type: string, status: obsolete}
`, Options{Validate: true})
	s := c.Struct("item")

	v := c.NewValue(s)
	require.ErrorIs(v.Set("legacy", 1), ErrUnknownFieldError)
	require.ErrorIs(v.Set("gone", "x"), ErrUnknownFieldError)
	require.NoError(v.Set("id", 7))
	require.NoError(c.Check(v))

	data, err := c.Pack(v)
	require.NoError(err)
	require.Equal([]byte{0x82, 0x00, 0x07, 0x01, 0x03}, data)

	got, err := c.Unpack(s, data)
	require.NoError(err)
	require.Equal(uint32(0x3), got.Filled)
	require.Equal(uint64(3), got.Fields[1])

	// Obsolete optional fields are still accepted on input
	got, err = c.Unpack(s, []byte{0x83, 0x00, 0x07, 0x01, 0x09, 0x02, 0xa1, 'z'})
	require.NoError(err)
	require.Equal("z", got.Fields[2])
	data, err = c.Pack(got)
	require.NoError(err)
	require.Equal([]byte{0x82, 0x00, 0x07, 0x01, 0x03}, data)

	// Peers always send the placeholder
	_, err = c.Unpack(s, []byte{0x81, 0x00, 0x07})
	require.ErrorIs(err, ErrMalformedMessageError)
}

func TestSampleRoundTrip(t *testing.T) {
	require := require.New(t)

	m, err := schema.LoadFile("../schema/testdata/sample.yaml")
	require.NoError(err)
	mod, err := moddesc.Build(m, moddesc.Options{Validate: true})
	require.NoError(err)

	var calls []string
	validator := func(name string) Validator {
		return func(any) error {
			calls = append(calls, name)
			return nil
		}
	}
	c := New(mod, Options{
		Validate: true,
		Validators: map[string]Validator{
			"smpl_check_id":          validator("id"),
			"smpl_sample_consistent": validator("sample"),
		},
	})
	s := c.Struct("sample")

	inner := c.NewValue(c.Struct("inner"))
	require.NoError(inner.Set("temp", -40))
	require.NoError(inner.Set("note", "warm"))

	v := c.NewValue(s)
	require.NoError(v.Set("id", 25))
	require.NoError(v.Set("name", "abc"))
	require.NoError(v.Set("tags", []any{}))
	require.NoError(v.Set("inner", inner))
	require.NoError(v.Set("flag", true))
	require.NoError(v.Set("level", 100))

	require.ErrorIs(v.Set("name", "admin"), ErrInvalidValueError)
	require.ErrorIs(c.CheckField(s.Field("name"), "admin"), ErrPatternViolationError)
	require.Equal(-84, Code(c.CheckField(s.Field("name"), "ABC")))
	require.ErrorIs(v.Set("level", 101), ErrInvalidValueError)
	require.ErrorIs(inner.Set("temp", 86), ErrInvalidValueError)
	require.ErrorIs(v.Set("port", 80), ErrUnsupportedError)

	calls = nil
	data, err := c.Pack(v)
	require.NoError(err)
	got, err := c.Unpack(s, data)
	require.NoError(err)
	require.Equal([]string{"id", "sample"}, calls)

	for _, f := range s.Fields {
		if f.IsObsolete() {
			continue
		}
		require.Equal(v.Has(f.Schema.Name), got.Has(f.Schema.Name), f.Schema.Name)
		require.Equal(v.Fields[f.ID], got.Fields[f.ID], f.Schema.Name)
	}
	require.True(got.Has("legacy"))

	failing := New(mod, Options{Validators: map[string]Validator{
		"smpl_sample_consistent": func(any) error { return errors.New("inconsistent") },
	}})
	require.ErrorContains(failing.Check(got), "inconsistent")
}

func TestCheckIdempotent(t *testing.T) {
	require := require.New(t)

	c := newCodec(t, scenario, Options{})
	v := c.NewValue(c.Struct("item"))
	require.NoError(v.Set("id", 3))
	require.NoError(v.Set("tags", []any{7}))

	before := *v
	before.Fields = append([]any(nil), v.Fields...)
	require.Equal(c.Check(v), c.Check(v))
	require.Equal(before, *v)

	v.Filled |= 0x8
	err1, err2 := c.Check(v), c.Check(v)
	require.ErrorIs(err1, ErrInvalidValueError)
	require.Equal(err1, err2)
}

func TestRoundTripFuzz(t *testing.T) {
	require := require.New(t)

	c := newCodec(t, scenario, Options{Validate: true})
	s := c.Struct("item")
	f := fuzz.New().NilChance(0).NumElements(0, 6)

	for i := 0; i < 500; i++ {
		var (
			id   uint32
			name string
			tags []uint16
		)
		f.Fuzz(&id)
		f.Fuzz(&name)
		f.Fuzz(&tags)

		v := c.NewValue(s)
		if err := v.Set("id", id%31); err != nil {
			require.ErrorIs(err, ErrInvalidValueError)
			continue
		}
		if len(name) > 0 && len(name) <= 255 {
			require.NoError(v.Set("name", name))
		}
		items := make([]any, 0, len(tags))
		for _, tg := range tags {
			items = append(items, tg)
		}
		if len(items) <= 4 {
			require.NoError(v.Set("tags", items))
		}

		data, err := c.Pack(v)
		require.NoError(err)
		got, err := c.Unpack(s, data)
		require.NoError(err)
		require.Equal(v, got)
	}
}

func TestMarshalYAML(t *testing.T) {
	require := require.New(t)

	c := newCodec(t, scenario, Options{Validate: true})
	s := c.Struct("item")

	got, err := c.Unpack(s, []byte{0x83, 0x00, 0x07, 0x01, 0xa1, 'x', 0x02, 0x92, 0x01, 0x02})
	require.NoError(err)

	out, err := yaml.Marshal(got)
	require.NoError(err)
	require.Equal("id: 7\nname: x\ntags:\n    - 1\n    - 2\n", string(out))

	v := c.NewValue(s)
	out, err = yaml.Marshal(v)
	require.NoError(err)
	require.Equal("{}\n", string(out))
}
