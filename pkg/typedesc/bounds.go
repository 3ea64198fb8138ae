/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package typedesc

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ConstBound returns a bound whose expression evaluates to v.
func ConstBound(expr string, v uint64) Bound {
	return Bound{Expr: expr, Value: v, Known: true}
}

var integerExprRegexp = regexp.MustCompile(`^\(?\s*([0-9]+)[uU]?\s*\)?$`)

// ExprBound returns a bound for a caller-supplied expression. The value is
// known only when the expression is a plain integer literal.
func ExprBound(expr string) Bound {
	if m := integerExprRegexp.FindStringSubmatch(expr); m != nil {
		if v, err := strconv.ParseUint(m[1], 10, 64); err == nil {
			return ConstBound(expr, v)
		}
	}
	return Bound{Expr: expr}
}

// SumBounds adds bounds. The expression is the terms joined with " + ".
func SumBounds(terms ...Bound) Bound {
	s := Bound{Known: true}
	exprs := make([]string, 0, len(terms))
	for _, t := range terms {
		exprs = append(exprs, t.Expr)
		s.Value += t.Value
		s.Known = s.Known && t.Known
	}
	s.Expr = strings.Join(exprs, " + ")
	if !s.Known {
		s.Value = 0
	}
	return s
}

func (b Bound) String() string {
	if b.Known {
		return fmt.Sprintf("%s (%d)", b.Expr, b.Value)
	}
	return b.Expr
}

// StrSize returns the encoded size of a string of n bytes.
func StrSize(n uint64) uint64 {
	switch {
	case n <= 31:
		return 1 + n
	case n <= 0xff:
		return 2 + n
	case n <= 0xffff:
		return 3 + n
	}
	return 5 + n
}

// MapHeadSize returns the encoded size of a map header for n entries.
func MapHeadSize(n uint64) uint64 {
	switch {
	case n <= 15:
		return 1
	case n <= 0xffff:
		return 3
	}
	return 5
}

// Encoded size bounds of a map field identifier
var FieldIDSize = Bounds{
	Min: ConstBound("DPACK_MAP_FLDID_SIZE_MIN", 1),
	Max: ConstBound("DPACK_MAP_FLDID_SIZE_MAX", 5),
}

// MapHead returns the size bound of a map header for n entries.
func MapHead(n int) Bound {
	if n == 0 {
		return ConstBound("DPACK_FIXMAP_HEAD_SIZE", 1)
	}
	return ConstBound(fmt.Sprintf("DPACK_MAP_HEAD_SIZE(%d)", n), MapHeadSize(uint64(n)))
}

// ArrayMin returns the smallest encoded size of an array holding nr items of elem.
func ArrayMin(elem Bound, nr uint64, nrExpr string) Bound {
	b := Bound{Expr: fmt.Sprintf("DPACK_ARRAY_SIZE_MIN(%s, %s)", elem.Expr, nrExpr), Known: elem.Known}
	if b.Known {
		b.Value = 1 + elem.Value*nr
	}
	return b
}

// ArrayMax returns the biggest encoded size of an array holding nr items of elem.
func ArrayMax(elem Bound, nr uint64, nrExpr string) Bound {
	b := Bound{Expr: fmt.Sprintf("DPACK_ARRAY_SIZE_MAX(%s, %s)", elem.Expr, nrExpr), Known: elem.Known}
	if b.Known {
		b.Value = 3 + elem.Value*nr
	}
	return b
}
