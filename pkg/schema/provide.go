/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package schema

import (
	"fmt"
	"os"
)

// Load decodes an interchange document. fileName is used in error positions.
func Load(fileName string, content []byte) (*Module, error) {
	return loadImpl(fileName, content)
}

// LoadFile reads and decodes the interchange document at path.
func LoadFile(path string) (*Module, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return loadImpl(path, content)
}
