/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package schema

import (
	"math/big"
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/require"
)

func TestParseRanges(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{"5", []string{"5..5"}},
		{"0..100", []string{"0..100"}},
		{"min..-1 | 1..max", []string{"min..-1", "1..max"}},
		{" 0 .. 10|20..30 | 42 ", []string{"0..10", "20..30", "42..42"}},
		{"+7..18446744073709551615", []string{"7..18446744073709551615"}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			require := require.New(t)
			rr, err := ParseRanges(tt.expr, lexer.Position{Filename: "f", Line: 1, Column: 1})
			require.NoError(err)
			got := make([]string, 0, len(rr))
			for _, r := range rr {
				got = append(got, r.String())
			}
			require.Equal(tt.want, got)
		})
	}
}

func TestParseRangesErrors(t *testing.T) {
	for _, expr := range []string{"", "..", "1..", "1..2..3", "a..b", "1.5", "min max", "|"} {
		t.Run(expr, func(t *testing.T) {
			_, err := ParseRanges(expr, lexer.Position{Filename: "f", Line: 3, Column: 5})
			require.ErrorIs(t, err, ErrInvalidExpressionError)
			require.ErrorContains(t, err, "f:3:5")
		})
	}
}

func TestLimitResolve(t *testing.T) {
	require := require.New(t)
	lo, hi := big.NewInt(-128), big.NewInt(127)

	require.Equal(lo, Limit{Kind: LimitKind_Min}.Resolve(lo, hi))
	require.Equal(hi, Limit{Kind: LimitKind_Max}.Resolve(lo, hi))
	require.Equal(big.NewInt(5), ValueLimit(5).Resolve(lo, hi))
}
