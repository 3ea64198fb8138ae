/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package schema

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

// ErrorAt prefixes err with the source position of the node that caused it.
// Positions without a line are ignored.
func ErrorAt(err error, pos lexer.Position) error {
	if pos.Line == 0 {
		return err
	}
	return fmt.Errorf("%s: %w", pos, err)
}

var ErrSchemaError = errors.New("malformed schema document")

func ErrSchema(msg string, args ...any) error {
	return EnrichError(ErrSchemaError, msg, args...)
}

var ErrInvalidExpressionError = errors.New("invalid constraint expression")

func ErrInvalidExpression(msg string, args ...any) error {
	return EnrichError(ErrInvalidExpressionError, msg, args...)
}

var ErrInvalidValidatorError = errors.New("invalid validator")

func ErrInvalidValidator(msg string, args ...any) error {
	return EnrichError(ErrInvalidValidatorError, msg, args...)
}

var ErrDuplicateError = errors.New("duplicate definition")

func ErrDuplicate(what, name string) error {
	return EnrichError(ErrDuplicateError, "%s «%s»", what, name)
}
