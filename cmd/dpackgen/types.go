/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package main

// config is the content of dpackgen.yaml. Command line flags take precedence.
type config struct {
	Schemas      []string `yaml:"schemas"`
	Format       string   `yaml:"format"`
	OutputDir    string   `yaml:"output-dir"`
	Validate     *bool    `yaml:"validate"`
	StringMaxLen uint64   `yaml:"string-max-len"`
	HeaderFile   string   `yaml:"header-file"`
	AssertMacro  string   `yaml:"assert-macro"`
}

type generateParams struct {
	ConfigFile   string
	Format       string
	OutputDir    string
	NoValidate   bool
	StringMaxLen uint64
	HeaderFile   string
	AssertMacro  string
}

type decodeParams struct {
	SchemaFile   string
	Record       string
	NoValidate   bool
	StringMaxLen uint64
	Hex          bool
	Output       string
}
