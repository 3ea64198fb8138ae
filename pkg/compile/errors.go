/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package compile

import (
	"errors"

	"github.com/voedger/dpackgen/pkg/schema"
)

var ErrUnknownFormatError = errors.New("unknown output format")

func ErrUnknownFormat(format string) error {
	return schema.EnrichError(ErrUnknownFormatError, "«%s», expected «%s»", format, FormatDPack)
}
