/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package schema

import (
	"math/big"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type rangeExprAST struct {
	Parts []*rangePartAST `parser:"@@ ( '|' @@ )*"`
}

type rangePartAST struct {
	Pos lexer.Position
	Lo  *rangeBoundAST `parser:"@@"`
	Hi  *rangeBoundAST `parser:"( '..' @@ )?"`
}

type rangeBoundAST struct {
	Min   bool    `parser:"  @'min'"`
	Max   bool    `parser:"| @'max'"`
	Value *string `parser:"| @Int"`
}

var rangeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[-+]?[0-9]+`},
	{Name: "Keyword", Pattern: `min|max`},
	{Name: "Punct", Pattern: `\.\.|\|`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var rangeParser = participle.MustBuild[rangeExprAST](
	participle.Lexer(rangeLexer),
	participle.Elide("Whitespace"),
)

// ParseRanges parses a constraint expression such as "min..10 | 20 | 30..max".
// A single bound stands for a one-value interval. Positions of the parts are
// reported relative to pos.
func ParseRanges(expr string, pos lexer.Position) ([]Range, error) {
	ast, err := rangeParser.ParseString(pos.Filename, expr)
	if err != nil {
		return nil, ErrorAt(ErrInvalidExpression("«%s»: %v", expr, err), pos)
	}
	ranges := make([]Range, 0, len(ast.Parts))
	for _, p := range ast.Parts {
		lo, err := p.Lo.limit()
		if err != nil {
			return nil, ErrorAt(err, pos)
		}
		hi := lo
		if p.Hi != nil {
			if hi, err = p.Hi.limit(); err != nil {
				return nil, ErrorAt(err, pos)
			}
		}
		partPos := pos
		partPos.Column += p.Pos.Column - 1
		ranges = append(ranges, Range{Pos: partPos, Lo: lo, Hi: hi})
	}
	return ranges, nil
}

func (b *rangeBoundAST) limit() (Limit, error) {
	switch {
	case b.Min:
		return Limit{Kind: LimitKind_Min}, nil
	case b.Max:
		return Limit{Kind: LimitKind_Max}, nil
	}
	v, ok := new(big.Int).SetString(*b.Value, 10)
	if !ok {
		return Limit{}, ErrInvalidExpression("«%s» is not an integer", *b.Value)
	}
	return Limit{Kind: LimitKind_Value, Value: v}, nil
}
