/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package emitter

import (
	"errors"

	"github.com/voedger/dpackgen/pkg/schema"
)

var ErrUnsupportedConstructError = errors.New("unsupported construct")

func ErrUnsupportedConstruct(msg string, args ...any) error {
	return schema.EnrichError(ErrUnsupportedConstructError, msg, args...)
}
