/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package schema

// Limit keywords used inside range and length expressions
const (
	KeywordMin = "min"
	KeywordMax = "max"
)

// Status names used in interchange documents
const (
	statusCurrent    = "current"
	statusDeprecated = "deprecated"
	statusObsolete   = "obsolete"
)

// Interchange document keys
var (
	moduleKeys  = []string{"module", "prefix", "description", "typedefs", "imports", "records"}
	importKeys  = []string{"prefix", "module", "typedefs"}
	typedefKeys = []string{"name", "type", "description", "range", "length", "pattern",
		"c-include", "c-type", "c-pack", "c-unpack", "c-min", "c-max", "c-copy"}
	recordKeys = []string{"name", "description", "must", "fields"}
	fieldKeys  = []string{"name", "type", "record", "description", "mandatory", "default", "status",
		"must", "pattern", "range", "length", "list", "min-elements", "max-elements"}
	patternKeys = []string{"regex", "invert"}
)

// Binding attribute names, in the order they are reported when missing
const (
	BindingInclude = "c-include"
	BindingType    = "c-type"
	BindingPack    = "c-pack"
	BindingUnpack  = "c-unpack"
	BindingMin     = "c-min"
	BindingMax     = "c-max"
)
