/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package refcodec

import (
	"errors"
	"fmt"

	"github.com/voedger/dpackgen/pkg/schema"
)

var ErrMalformedMessageError = errors.New("malformed message")

func ErrMalformedMessage(msg string, args ...any) error {
	return schema.EnrichError(ErrMalformedMessageError, msg, args...)
}

var ErrNotSetError = errors.New("field is not set")

func ErrNotSet(field string) error {
	return schema.EnrichError(ErrNotSetError, "«%s»", field)
}

var ErrInvalidValueError = errors.New("invalid value")

func ErrInvalidValue(msg string, args ...any) error {
	return schema.EnrichError(ErrInvalidValueError, msg, args...)
}

var ErrMissingMandatoryError = errors.New("mandatory field is missing")

func ErrMissingMandatory(record string, mask uint32) error {
	return schema.EnrichError(ErrMissingMandatoryError, "record «%s»: missing fields mask 0x%08x", record, mask)
}

var ErrRangeViolationError = errors.New("range violation")

func ErrRangeViolation(msg string, args ...any) error {
	return schema.EnrichError(ErrRangeViolationError, msg, args...)
}

var ErrPatternViolationError = errors.New("pattern violation")

func ErrPatternViolation(msg string, args ...any) error {
	return schema.EnrichError(ErrPatternViolationError, msg, args...)
}

var ErrDuplicateFieldError = errors.New("duplicate field")

func ErrDuplicateField(field string) error {
	return schema.EnrichError(ErrDuplicateFieldError, "«%s»", field)
}

var ErrUnknownFieldError = errors.New("unknown field")

func ErrUnknownField(record, field string) error {
	return schema.EnrichError(ErrUnknownFieldError, "record «%s» has no writable field «%s»", record, field)
}

var ErrUnsupportedError = errors.New("unsupported by reference codec")

func ErrUnsupported(msg string, args ...any) error {
	return schema.EnrichError(ErrUnsupportedError, msg, args...)
}

// fieldError prefixes err with the field it concerns.
func fieldError(f string, err error) error {
	return fmt.Errorf("field «%s»: %w", f, err)
}
