/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package main

import (
	"errors"
	"fmt"
)

var errNoSchemas = errors.New("no schema files given")

var errUnknownRecord = errors.New("unknown record")

func errDecode(err error, code int) error {
	return fmt.Errorf("%w (code %d)", err, code)
}
