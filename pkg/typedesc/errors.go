/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package typedesc

import (
	"errors"

	"github.com/voedger/dpackgen/pkg/schema"
)

var ErrUnknownTypeError = errors.New("unknown type")

func ErrUnknownType(msg string, args ...any) error {
	return schema.EnrichError(ErrUnknownTypeError, msg, args...)
}

var ErrIncompleteBindingError = errors.New("incomplete native binding")

func ErrIncompleteBinding(name, missed string) error {
	return schema.EnrichError(ErrIncompleteBindingError, "type «%s»: missing «%s»", name, missed)
}

var ErrInvalidConstraintError = errors.New("invalid constraint")

func ErrInvalidConstraint(msg string, args ...any) error {
	return schema.EnrichError(ErrInvalidConstraintError, msg, args...)
}

var ErrInvalidLiteralError = errors.New("invalid literal")

func ErrInvalidLiteral(msg string, args ...any) error {
	return schema.EnrichError(ErrInvalidLiteralError, msg, args...)
}

var ErrOutOfRangeError = errors.New("value out of range")

func ErrOutOfRange(msg string, args ...any) error {
	return schema.EnrichError(ErrOutOfRangeError, msg, args...)
}

var ErrPatternMismatchError = errors.New("value does not match pattern")

func ErrPatternMismatch(msg string, args ...any) error {
	return schema.EnrichError(ErrPatternMismatchError, msg, args...)
}
