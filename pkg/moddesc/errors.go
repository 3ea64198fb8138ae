/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package moddesc

import (
	"errors"

	"github.com/voedger/dpackgen/pkg/schema"
)

var ErrRecursiveRecordError = errors.New("recursive record")

func ErrRecursiveRecord(record string) error {
	return schema.EnrichError(ErrRecursiveRecordError, "record «%s» contains itself", record)
}

var ErrNameClashError = errors.New("name clash")

func ErrNameClash(name string) error {
	return schema.EnrichError(ErrNameClashError, "«%s» is generated for two different records", name)
}

func ErrValidatorSignature(name, was, now string) error {
	return schema.ErrInvalidValidator("«%s» is used as %s and as %s", name, was, now)
}
