/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package typedesc

import (
	"math/big"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"github.com/voedger/dpackgen/pkg/schema"
)

func TestNewRangeSet(t *testing.T) {
	tests := []struct {
		expr string
		unit Unit
		want string
	}{
		{"0..10 | 20..30", Unit_U8, "0..10 | 20..30"},
		{"20..30 | 0..10", Unit_U8, "0..10 | 20..30"},
		{"0..10 | 11..20", Unit_U8, "0..20"},
		{"0..10 | 5..7", Unit_U8, "0..10"},
		{"min..max", Unit_S16, "-32768..32767"},
		{"3 | 1 | 2", Unit_U32, "1..3"},
		{"min..-1 | 1..max", Unit_S8, "-128..-1 | 1..127"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			require := require.New(t)
			rr, err := schema.ParseRanges(tt.expr, schema.TypeRef{}.Pos)
			require.NoError(err)
			set, err := NewRangeSet(rr, tt.unit.Min(), tt.unit.Max())
			require.NoError(err)
			require.Equal(tt.want, set.String())
		})
	}
}

func TestRangeSetContains(t *testing.T) {
	require := require.New(t)
	rr, err := schema.ParseRanges("0..10 | 20..30", schema.TypeRef{}.Pos)
	require.NoError(err)
	set, err := NewRangeSet(rr, Unit_U32.Min(), Unit_U32.Max())
	require.NoError(err)

	for _, v := range []int64{0, 10, 20, 30} {
		require.True(set.Contains(big.NewInt(v)), v)
	}
	for _, v := range []int64{11, 19, 31} {
		require.False(set.Contains(big.NewInt(v)), v)
	}
	require.False(set.Covers(Unit_U32.Min(), Unit_U32.Max()))
	require.True(FullRange(Unit_U32.Min(), Unit_U32.Max()).Covers(Unit_U32.Min(), Unit_U32.Max()))
}

func TestRangeSetFuzz(t *testing.T) {
	require := require.New(t)
	f := fuzz.New().NilChance(0)

	for i := 0; i < 200; i++ {
		var pairs [4][2]int8
		f.Fuzz(&pairs)

		var raw []Interval
		var ranges []schema.Range
		for _, p := range pairs {
			lo, hi := int64(p[0]), int64(p[1])
			if lo > hi {
				lo, hi = hi, lo
			}
			raw = append(raw, Interval{Lo: big.NewInt(lo), Hi: big.NewInt(hi)})
			ranges = append(ranges, schema.Range{Lo: schema.ValueLimit(lo), Hi: schema.ValueLimit(hi)})
		}
		set, err := NewRangeSet(ranges, Unit_S8.Min(), Unit_S8.Max())
		require.NoError(err)

		for j := 1; j < len(set); j++ {
			gap := new(big.Int).Add(set[j-1].Hi, bigOne)
			require.Equal(1, set[j].Lo.Cmp(gap), "intervals must be sorted, disjoint and non-adjacent")
		}
		for v := int64(-128); v <= 127; v++ {
			n := big.NewInt(v)
			inRaw := false
			for _, r := range raw {
				if n.Cmp(r.Lo) >= 0 && n.Cmp(r.Hi) <= 0 {
					inRaw = true
				}
			}
			require.Equal(inRaw, set.Contains(n), "value %d", v)
		}

		full := FullRange(big.NewInt(-10), big.NewInt(10))
		both := set.Intersect(full)
		for v := int64(-128); v <= 127; v++ {
			n := big.NewInt(v)
			require.Equal(set.Contains(n) && full.Contains(n), both.Contains(n))
		}
	}
}

func TestUnitLiteral(t *testing.T) {
	tests := []struct {
		unit Unit
		v    *big.Int
		want string
	}{
		{Unit_U8, big.NewInt(10), "10U"},
		{Unit_U32, big.NewInt(4294967295), "4294967295U"},
		{Unit_U64, new(big.Int).SetUint64(1 << 40), "UINT64_C(1099511627776)"},
		{Unit_S8, big.NewInt(-128), "-128"},
		{Unit_S32, big.NewInt(-2147483648), "INT32_MIN"},
		{Unit_S32, big.NewInt(2147483647), "2147483647"},
		{Unit_S64, Unit_S64.Min(), "INT64_MIN"},
		{Unit_S64, big.NewInt(1 << 40), "INT64_C(1099511627776)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.unit.Literal(tt.v))
		})
	}
}

func TestBounds(t *testing.T) {
	require := require.New(t)

	require.Equal(Bound{Expr: "4", Value: 4, Known: true}, ExprBound("4"))
	require.Equal(Bound{Expr: "(12U)", Value: 12, Known: true}, ExprBound("(12U)"))
	require.Equal(Bound{Expr: "X_SIZE"}, ExprBound("X_SIZE"))

	sum := SumBounds(MapHead(2), ConstBound("A", 3), ConstBound("B", 4))
	require.Equal(Bound{Expr: "DPACK_MAP_HEAD_SIZE(2) + A + B", Value: 8, Known: true}, sum)
	require.False(SumBounds(ConstBound("A", 3), ExprBound("X")).Known)

	require.Equal(Bound{Expr: "DPACK_FIXMAP_HEAD_SIZE", Value: 1, Known: true}, MapHead(0))
	require.EqualValues(3, MapHead(16).Value)

	require.EqualValues(1, StrSize(0))
	require.EqualValues(32, StrSize(31))
	require.EqualValues(34, StrSize(32))
	require.EqualValues(259, StrSize(256))

	elem := ConstBound("DPACK_UINT16_SIZE_MAX", 3)
	require.Equal(Bound{Expr: "DPACK_ARRAY_SIZE_MAX(DPACK_UINT16_SIZE_MAX, X_NR)", Value: 27, Known: true}, ArrayMax(elem, 8, "X_NR"))
	require.EqualValues(1, ArrayMin(ConstBound("E", 1), 0, "0U").Value)
}

func TestLiterals(t *testing.T) {
	r := newTestResolver(t)
	resolve := func(name string) *Descriptor {
		d, err := r.Resolve(schema.TypeRef{Name: name})
		require.NoError(t, err)
		return d
	}

	t.Run("scalar", func(t *testing.T) {
		require := require.New(t)
		d := resolve("percent")
		v, err := d.ParseLiteral("42")
		require.NoError(err)
		require.Equal(uint64(42), v)
		require.Equal("42U", d.CLiteral(v))

		_, err = d.ParseLiteral("101")
		require.ErrorIs(err, ErrInvalidLiteralError)
		_, err = d.ParseLiteral("300")
		require.ErrorContains(err, "does not fit uint8")
		_, err = d.ParseLiteral("x")
		require.ErrorIs(err, ErrInvalidLiteralError)

		v, err = resolve(TypeInt16).ParseLiteral("-40")
		require.NoError(err)
		require.Equal(int64(-40), v)
	})

	t.Run("bool and bits", func(t *testing.T) {
		require := require.New(t)
		v, err := resolve(TypeBool).ParseLiteral("true")
		require.NoError(err)
		require.Equal("true", resolve(TypeBool).CLiteral(v))

		v, err = resolve(TypeBits).ParseLiteral("0x11")
		require.NoError(err)
		require.Equal("UINT64_C(0x11)", resolve(TypeBits).CLiteral(v))
	})

	t.Run("string", func(t *testing.T) {
		require := require.New(t)
		d := resolve("label")
		v, err := d.ParseLiteral("abc")
		require.NoError(err)
		require.Equal(`"abc"`, d.CLiteral(v))

		_, err = d.ParseLiteral("ABC")
		require.ErrorIs(err, ErrInvalidLiteralError)
		require.ErrorContains(err, "does not match pattern")
		_, err = d.ParseLiteral("")
		require.ErrorContains(err, "length 0")
	})

	t.Run("zero values", func(t *testing.T) {
		require := require.New(t)
		v, ok := resolve("percent").ZeroValue()
		require.True(ok)
		require.Equal(uint64(0), v)

		positive, err := r.ResolveField(&schema.Field{Type: schema.TypeRef{Name: TypeInt32}, Constraints: schema.Constraints{
			Ranges: []schema.Range{{Lo: schema.ValueLimit(5), Hi: schema.Limit{Kind: schema.LimitKind_Max}}},
		}})
		require.NoError(err)
		v, ok = positive.ZeroValue()
		require.True(ok)
		require.Equal(int64(5), v, "smallest valid value replaces an excluded zero")

		_, ok = resolve(TypeString).ZeroValue()
		require.False(ok)
		_, ok = resolve("ipv4").ZeroValue()
		require.False(ok)
	})

	t.Run("check values", func(t *testing.T) {
		require := require.New(t)
		require.NoError(resolve("percent").CheckValue(uint64(100)))
		require.ErrorIs(resolve("percent").CheckValue(uint64(101)), ErrOutOfRangeError)
		require.ErrorIs(resolve("label").CheckValue("a1"), ErrPatternMismatchError)
		require.NoError(resolve("ipv4").CheckValue("anything"))
	})
}
