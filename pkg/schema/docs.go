/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package schema

import (
	"gopkg.in/yaml.v3"
)

// docPos is the line and column of a decoded document node.
type docPos struct {
	line, column int
}

func (p *docPos) capture(n *yaml.Node) {
	p.line, p.column = n.Line, n.Column
}

type moduleDoc struct {
	pos         docPos
	Module      string       `yaml:"module"`
	Prefix      string       `yaml:"prefix"`
	Description string       `yaml:"description"`
	Typedefs    []typedefDoc `yaml:"typedefs"`
	Imports     []importDoc  `yaml:"imports"`
	Records     []recordDoc  `yaml:"records"`
}

func (d *moduleDoc) UnmarshalYAML(n *yaml.Node) error {
	if err := checkKeys(n, moduleKeys); err != nil {
		return err
	}
	type plain moduleDoc
	if err := n.Decode((*plain)(d)); err != nil {
		return err
	}
	d.pos.capture(n)
	return nil
}

type importDoc struct {
	pos      docPos
	Prefix   string       `yaml:"prefix"`
	Module   string       `yaml:"module"`
	Typedefs []typedefDoc `yaml:"typedefs"`
}

func (d *importDoc) UnmarshalYAML(n *yaml.Node) error {
	if err := checkKeys(n, importKeys); err != nil {
		return err
	}
	type plain importDoc
	if err := n.Decode((*plain)(d)); err != nil {
		return err
	}
	d.pos.capture(n)
	return nil
}

type typedefDoc struct {
	pos         docPos
	Name        string      `yaml:"name"`
	Type        string      `yaml:"type"`
	Description string      `yaml:"description"`
	Range       string      `yaml:"range"`
	Length      string      `yaml:"length"`
	Pattern     patternList `yaml:"pattern"`
	CInclude    string      `yaml:"c-include"`
	CType       string      `yaml:"c-type"`
	CPack       string      `yaml:"c-pack"`
	CUnpack     string      `yaml:"c-unpack"`
	CMin        string      `yaml:"c-min"`
	CMax        string      `yaml:"c-max"`
	CCopy       string      `yaml:"c-copy"`
}

func (d *typedefDoc) UnmarshalYAML(n *yaml.Node) error {
	if err := checkKeys(n, typedefKeys); err != nil {
		return err
	}
	type plain typedefDoc
	if err := n.Decode((*plain)(d)); err != nil {
		return err
	}
	d.pos.capture(n)
	return nil
}

type recordDoc struct {
	pos         docPos
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Must        validatorList `yaml:"must"`
	Fields      []fieldDoc    `yaml:"fields"`
}

func (d *recordDoc) UnmarshalYAML(n *yaml.Node) error {
	if err := checkKeys(n, recordKeys); err != nil {
		return err
	}
	type plain recordDoc
	if err := n.Decode((*plain)(d)); err != nil {
		return err
	}
	d.pos.capture(n)
	return nil
}

type fieldDoc struct {
	pos         docPos
	Name        string        `yaml:"name"`
	Type        string        `yaml:"type"`
	Record      *recordDoc    `yaml:"record"`
	Description string        `yaml:"description"`
	Mandatory   bool          `yaml:"mandatory"`
	Default     *string       `yaml:"default"`
	Status      string        `yaml:"status"`
	Must        validatorList `yaml:"must"`
	Pattern     patternList   `yaml:"pattern"`
	Range       string        `yaml:"range"`
	Length      string        `yaml:"length"`
	List        bool          `yaml:"list"`
	MinElements uint          `yaml:"min-elements"`
	MaxElements *uint         `yaml:"max-elements"`
}

func (d *fieldDoc) UnmarshalYAML(n *yaml.Node) error {
	if err := checkKeys(n, fieldKeys); err != nil {
		return err
	}
	type plain fieldDoc
	if err := n.Decode((*plain)(d)); err != nil {
		return err
	}
	d.pos.capture(n)
	return nil
}

// patternDoc is either a plain regular expression or a {regex, invert} mapping.
type patternDoc struct {
	pos    docPos
	Regex  string `yaml:"regex"`
	Invert bool   `yaml:"invert"`
}

func (d *patternDoc) UnmarshalYAML(n *yaml.Node) error {
	d.pos.capture(n)
	if n.Kind == yaml.ScalarNode {
		d.Regex = n.Value
		return nil
	}
	if err := checkKeys(n, patternKeys); err != nil {
		return err
	}
	type plain patternDoc
	return n.Decode((*plain)(d))
}

// patternList accepts a single pattern or a sequence of them.
type patternList []patternDoc

func (l *patternList) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.SequenceNode {
		var items []patternDoc
		if err := n.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	var one patternDoc
	if err := n.Decode(&one); err != nil {
		return err
	}
	*l = patternList{one}
	return nil
}

type validatorDoc struct {
	pos  docPos
	Name string
}

func (d *validatorDoc) UnmarshalYAML(n *yaml.Node) error {
	d.pos.capture(n)
	if n.Kind != yaml.ScalarNode {
		return ErrInvalidValidator("line %d: validator must be a function name", n.Line)
	}
	d.Name = n.Value
	return nil
}

// validatorList accepts a single validator name or a sequence of them.
type validatorList []validatorDoc

func (l *validatorList) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.SequenceNode {
		var items []validatorDoc
		if err := n.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	var one validatorDoc
	if err := n.Decode(&one); err != nil {
		return err
	}
	*l = validatorList{one}
	return nil
}
