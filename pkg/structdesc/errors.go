/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package structdesc

import (
	"errors"

	"github.com/voedger/dpackgen/pkg/schema"
)

var ErrMissingBoundError = errors.New("missing bound")

func ErrMissingBound(field string) error {
	return schema.EnrichError(ErrMissingBoundError, "list field «%s» declares no max-elements", field)
}

var ErrTooManyFieldsError = errors.New("too many fields")

func ErrTooManyFields(record string, nr int) error {
	return schema.EnrichError(ErrTooManyFieldsError, "record «%s» has %d fields, at most %d allowed", record, nr, MaxFields)
}

var ErrEmptyRecordError = errors.New("empty record")

func ErrEmptyRecord(record string) error {
	return schema.EnrichError(ErrEmptyRecordError, "record «%s» has no fields", record)
}

var ErrUnsupportedListError = errors.New("unsupported list element")

func ErrUnsupportedList(field, kind string) error {
	return schema.EnrichError(ErrUnsupportedListError, "list field «%s»: %s elements are not supported", field, kind)
}

var ErrMissingPlaceholderError = errors.New("missing placeholder")

func ErrMissingPlaceholder(field string) error {
	return schema.EnrichError(ErrMissingPlaceholderError, "obsolete mandatory field «%s» needs a default", field)
}

var ErrInvalidListError = errors.New("invalid list")

func ErrInvalidList(msg string, args ...any) error {
	return schema.EnrichError(ErrInvalidListError, msg, args...)
}
