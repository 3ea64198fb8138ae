/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package emitter

// Artifacts is the generated text of one module.
type Artifacts struct {
	// Base file name without suffix
	Name string

	// Declarations file (.h)
	Declarations []byte

	// Definitions file (.c)
	Definitions []byte
}

// Options configure rendering.
type Options struct {
	// Text inserted verbatim at the top of both files
	HeaderContent string
}

// block accumulates lines of C code at the current indentation depth.
type block struct {
	lines []string
	depth int
}

// cfunc is one C function, rendered either as a prototype or a definition.
type cfunc struct {
	storage    string
	ret        string
	name       string
	params     []string
	deprecated bool
	body       block
}

type fileData struct {
	HeaderContent string
	Guard         string
	Declarations  string
	Includes      []string
	Body          string
}
