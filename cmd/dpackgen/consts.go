/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package main

const (
	appName        = "dpackgen"
	defaultConfig  = "dpackgen.yaml"
	flagConfig     = "config"
	flagFormat     = "format"
	flagOutputDir  = "output-dir"
	flagNoValidate = "no-validate"
	flagStrMaxLen  = "string-max-len"
	flagHeaderFile = "header-file"
	flagAssert     = "assert-macro"
	flagSchema     = "schema"
	flagRecord     = "record"
	flagHex        = "hex"
	flagOutput     = "output"
)
