/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package emitter

// Error codes returned by generated functions
const (
	codeMalformedMessage = "-EBADMSG"
	codeNotSet           = "-ENOENT"
	codeInvalidValue     = "-EINVAL"
	codeMissingMandatory = "-ENODATA"
	codeRangeViolation   = "-ERANGE"
	codePatternViolation = "-EILSEQ"
	codeDuplicateField   = "-EEXIST"
)

const (
	// Lines of generated code longer than this wrap function parameters
	lineWidth = 80

	attrDeprecated = "__attribute__((deprecated))"

	dataParam    = "data"
	encoderParam = "struct dpack_encoder * encoder"
	decoderParam = "struct dpack_decoder * decoder"

	presenceType   = "uint32_t"
	presenceMember = "filled"
	listNrType     = "unsigned int"
	listNrSuffix   = "_nr"
)

// Headers the definitions file includes besides its own declarations file
const (
	includeString = "string.h"
	includeRegex  = "regex.h"
)

// HeaderSuffix and SourceSuffix name the artifacts of a module.
const (
	HeaderSuffix = ".h"
	SourceSuffix = ".c"
)

const declarationsTemplate = `{{if .HeaderContent}}{{.HeaderContent}}

{{end}}#ifndef {{.Guard}}
#define {{.Guard}}

{{range .Includes}}#include <{{.}}>
{{end}}
{{.Body}}

#endif /* {{.Guard}} */
`

const definitionsTemplate = `{{if .HeaderContent}}{{.HeaderContent}}

{{end}}#include "{{.Declarations}}"
{{range .Includes}}#include <{{.}}>
{{end}}
{{.Body}}
`
