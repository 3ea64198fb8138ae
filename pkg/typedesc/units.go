/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package typedesc

import (
	"fmt"
	"math/big"
	"strings"
)

type unitProps struct {
	name    string
	ctype   string
	codec   string
	bits    uint
	signed  bool
	sizeMax uint64
	lo, hi  *big.Int
}

var units = func() (uu [Unit_Count]unitProps) {
	add := func(u Unit, name string, bits uint, signed bool, sizeMax uint64) {
		p := unitProps{name: name, codec: name, bits: bits, signed: signed, sizeMax: sizeMax}
		p.ctype = name + "_t"
		if signed {
			p.lo = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), bits-1))
			p.hi = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), bits-1), big.NewInt(1))
		} else {
			p.lo = big.NewInt(0)
			p.hi = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), bits), big.NewInt(1))
		}
		uu[u] = p
	}
	add(Unit_U8, TypeUint8, 8, false, 2)
	add(Unit_U16, TypeUint16, 16, false, 3)
	add(Unit_U32, TypeUint32, 32, false, 5)
	add(Unit_U64, TypeUint64, 64, false, 9)
	add(Unit_S8, TypeInt8, 8, true, 2)
	add(Unit_S16, TypeInt16, 16, true, 3)
	add(Unit_S32, TypeInt32, 32, true, 5)
	add(Unit_S64, TypeInt64, 64, true, 9)
	return uu
}()

var (
	int32Lo  = big.NewInt(-1 << 31)
	int32Hi  = big.NewInt(1<<31 - 1)
	uint32Hi = big.NewInt(1<<32 - 1)
)

func (u Unit) props() *unitProps { return &units[u] }

// Name returns the built-in type name of the unit: "uint8", "int64"...
func (u Unit) Name() string { return u.props().name }

// CType returns the stdint storage type of the unit.
func (u Unit) CType() string { return u.props().ctype }

func (u Unit) Bits() uint { return u.props().bits }

func (u Unit) Signed() bool { return u.props().signed }

// Min returns the smallest value the unit can hold. The result must not be modified.
func (u Unit) Min() *big.Int { return u.props().lo }

// Max returns the biggest value the unit can hold. The result must not be modified.
func (u Unit) Max() *big.Int { return u.props().hi }

// Size returns the encoded size bounds of the unit.
func (u Unit) Size() Bounds {
	p := u.props()
	macro := "DPACK_" + strings.ToUpper(p.name) + "_SIZE_"
	return Bounds{
		Min: ConstBound(macro+"MIN", 1),
		Max: ConstBound(macro+"MAX", p.sizeMax),
	}
}

// Literal renders v as a C integer constant of the unit.
func (u Unit) Literal(v *big.Int) string {
	if !u.Signed() {
		if v.Cmp(uint32Hi) <= 0 {
			return v.String() + "U"
		}
		return fmt.Sprintf("UINT64_C(%s)", v)
	}
	switch {
	case u == Unit_S32 && v.Cmp(u.Min()) == 0:
		return "INT32_MIN"
	case u == Unit_S64 && v.Cmp(u.Min()) == 0:
		return "INT64_MIN"
	case v.Cmp(int32Lo) > 0 && v.Cmp(int32Hi) <= 0:
		return v.String()
	}
	return fmt.Sprintf("INT64_C(%s)", v)
}

// Value converts a number of the unit into its Go representation:
// int64 for signed units, uint64 otherwise.
func (u Unit) Value(v *big.Int) any {
	if u.Signed() {
		return v.Int64()
	}
	return v.Uint64()
}

// Contains returns true if v fits the unit.
func (u Unit) Contains(v *big.Int) bool {
	return v.Cmp(u.Min()) >= 0 && v.Cmp(u.Max()) <= 0
}

// AsBig converts an integer Go value into a big.Int.
func AsBig(v any) (*big.Int, bool) {
	switch n := v.(type) {
	case uint64:
		return new(big.Int).SetUint64(n), true
	case int64:
		return big.NewInt(n), true
	case uint:
		return new(big.Int).SetUint64(uint64(n)), true
	case int:
		return big.NewInt(int64(n)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), true
	case int32:
		return big.NewInt(int64(n)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(n)), true
	case int16:
		return big.NewInt(int64(n)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), true
	case int8:
		return big.NewInt(int64(n)), true
	}
	return nil, false
}
