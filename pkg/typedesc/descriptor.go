/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package typedesc

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/voedger/dpackgen/pkg/cnames"
	"github.com/voedger/dpackgen/pkg/schema"
)

// TrimString returns the kind name without the "Kind_" prefix.
func (k Kind) TrimString() string {
	const pref = "Kind_"
	return strings.TrimPrefix(k.String(), pref)
}

// Underlying follows alias chains down to the first non-alias descriptor.
func (d *Descriptor) Underlying() *Descriptor {
	for d.Kind == Kind_Alias {
		d = d.Inner
	}
	return d
}

// ParamType returns the C type used to pass a value of the descriptor
// to check functions and validators.
func (d *Descriptor) ParamType() string {
	switch d.Underlying().Kind {
	case Kind_String:
		return "const char *"
	case Kind_Record:
		return "const " + d.CType + " *"
	}
	return d.CType
}

// ByRef returns true if values are passed by address.
func (d *Descriptor) ByRef() bool {
	return d.Underlying().Kind == Kind_Record
}

// NeedsInit returns true if storage must be constructed before use.
func (d *Descriptor) NeedsInit() bool {
	return d.Underlying().Kind == Kind_Record
}

// IsOwning returns true if a stored value owns memory that fini must release.
func (d *Descriptor) IsOwning() bool {
	switch d.Underlying().Kind {
	case Kind_String, Kind_Record:
		return true
	}
	return false
}

// IsListElement returns true if the descriptor may be used as a bounded list element.
func (d *Descriptor) IsListElement() bool {
	switch d.Underlying().Kind {
	case Kind_Scalar, Kind_Boolean, Kind_BitSet:
		return true
	}
	return false
}

// HasConstraints returns true if values must pass a range, length or pattern check.
func (d *Descriptor) HasConstraints() bool {
	u := d.Underlying()
	switch u.Kind {
	case Kind_Scalar:
		return !u.Ranges.Covers(u.Unit.Min(), u.Unit.Max())
	case Kind_String:
		return true
	}
	return false
}

// IsNamedAlias returns true for aliases that need their own typedef, size
// macros and codec functions.
func (d *Descriptor) IsNamedAlias() bool {
	return d.Kind == Kind_Alias && !d.Restricted
}

// ZeroValue returns the value used when a field must be sent but is never set:
// zero, or the smallest valid value when zero is excluded by ranges.
func (d *Descriptor) ZeroValue() (any, bool) {
	u := d.Underlying()
	switch u.Kind {
	case Kind_Scalar:
		v := big.NewInt(0)
		if !u.Ranges.Contains(v) {
			v = u.Ranges.First()
		}
		return u.Unit.Value(v), true
	case Kind_Boolean:
		return false, true
	case Kind_BitSet:
		return uint64(0), true
	}
	return nil, false
}

// ParseLiteral converts a schema default literal into a Go value and checks it
// against the descriptor constraints. External types take the text verbatim.
func (d *Descriptor) ParseLiteral(text string) (any, error) {
	u := d.Underlying()
	switch u.Kind {
	case Kind_Scalar:
		v, ok := new(big.Int).SetString(strings.TrimSpace(text), 0)
		if !ok {
			return nil, ErrInvalidLiteral("«%s» is not an integer", text)
		}
		if !u.Unit.Contains(v) {
			return nil, ErrInvalidLiteral("«%s» does not fit %s", text, u.Unit.Name())
		}
		value := u.Unit.Value(v)
		if err := u.CheckValue(value); err != nil {
			return nil, ErrInvalidLiteral("«%s»: %v", text, err)
		}
		return value, nil
	case Kind_Boolean:
		v, err := strconv.ParseBool(strings.TrimSpace(text))
		if err != nil {
			return nil, ErrInvalidLiteral("«%s» is not a boolean", text)
		}
		return v, nil
	case Kind_BitSet:
		v, err := strconv.ParseUint(strings.TrimSpace(text), 0, 64)
		if err != nil {
			return nil, ErrInvalidLiteral("«%s» is not a 64-bit mask", text)
		}
		return v, nil
	case Kind_String:
		if err := u.CheckValue(text); err != nil {
			return nil, ErrInvalidLiteral("«%s»: %v", text, err)
		}
		return text, nil
	case Kind_External:
		return text, nil
	}
	return nil, ErrInvalidLiteral("%s values have no literal form", u.Kind.TrimString())
}

// CLiteral renders a value returned by ParseLiteral or ZeroValue as C source.
func (d *Descriptor) CLiteral(v any) string {
	u := d.Underlying()
	switch u.Kind {
	case Kind_Scalar:
		n, _ := AsBig(v)
		return u.Unit.Literal(n)
	case Kind_Boolean:
		return strconv.FormatBool(v.(bool))
	case Kind_BitSet:
		return fmt.Sprintf("UINT64_C(0x%x)", v)
	case Kind_String:
		return cnames.Quote(v.(string))
	}
	return fmt.Sprint(v)
}

// CheckValue validates a Go value against the range, length and pattern
// constraints of the descriptor. Values of other kinds always pass.
func (d *Descriptor) CheckValue(v any) error {
	u := d.Underlying()
	switch u.Kind {
	case Kind_Scalar:
		n, ok := AsBig(v)
		if !ok {
			return ErrInvalidLiteral("%T is not an integer", v)
		}
		if !u.Ranges.Contains(n) {
			return ErrOutOfRange("%s is not in %s", n, u.Ranges)
		}
	case Kind_String:
		s, ok := v.(string)
		if !ok {
			return ErrInvalidLiteral("%T is not a string", v)
		}
		if !u.Length.Contains(big.NewInt(int64(len(s)))) {
			return ErrOutOfRange("length %d is not in %s", len(s), u.Length)
		}
		for i, re := range u.regexps {
			if re.MatchString(s) == u.Patterns[i].Invert {
				return ErrPatternMismatch("«%s» against «%s»", s, u.Patterns[i].Regexp)
			}
		}
	}
	return nil
}

func (d *Descriptor) compilePatterns() error {
	d.regexps = make([]*regexp.Regexp, 0, len(d.Patterns))
	for _, p := range d.Patterns {
		re, err := regexp.Compile(AnchoredPattern(p.Regexp))
		if err != nil {
			return schema.ErrorAt(ErrInvalidConstraint("pattern «%s»: %v", p.Regexp, err), p.Pos)
		}
		d.regexps = append(d.regexps, re)
	}
	return nil
}

// AnchoredPattern wraps a pattern so that it matches whole values only.
func AnchoredPattern(re string) string {
	return "^(" + re + ")$"
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("%s «%s»", d.Kind.TrimString(), d.Name)
}
