// Package condition implements the Aspen condition operator matrix: the
// ~50 operator-name variants spanning string, numeric, date, boolean,
// binary, IP, ARN, and null value spaces, each with an optional
// ForAllValues/ForAnyValue multi-valued-key qualifier and an optional
// IfExists modifier.
//
// An operator name is parsed once into a tagged Operator value
// (Qualifier, Base, Negated, IfExists); evaluation then switches on that
// tuple rather than re-parsing the name per request, per the design note
// that this avoids one type per operator name.
package condition

import (
	"fmt"
	"strings"
)

// Qualifier changes how a multi-valued request context key is matched
// against the operand list.
type Qualifier string

const (
	NoQualifier Qualifier = ""
	ForAllValues Qualifier = "ForAllValues"
	ForAnyValue  Qualifier = "ForAnyValue"
)

// Base identifies the comparator and value space, independent of the
// Negated flag (StringEquals and StringNotEquals share BaseStringEquals).
type Base int

const (
	BaseStringEquals Base = iota
	BaseStringEqualsIgnoreCase
	BaseStringLike
	BaseNumericEquals
	BaseNumericLessThan
	BaseNumericLessThanEquals
	BaseNumericGreaterThan
	BaseNumericGreaterThanEquals
	BaseDateEquals
	BaseDateLessThan
	BaseDateLessThanEquals
	BaseDateGreaterThan
	BaseDateGreaterThanEquals
	BaseBool
	BaseBinaryEquals
	BaseIPAddress
	BaseArnLike
	BaseNull
)

// Operator is the fully parsed form of a condition operator name such as
// "ForAnyValue:StringNotEqualsIfExists".
type Operator struct {
	Name      string
	Qualifier Qualifier
	Base      Base
	Negated   bool
	IfExists  bool
}

type baseSpec struct {
	base    Base
	negated bool
}

// baseNames maps every base operator name (without qualifier or
// IfExists) to its Base/Negated pair. ArnEquals/ArnNotEquals are aliases
// for ArnLike/ArnNotLike per spec.
var baseNames = map[string]baseSpec{
	"StringEquals":              {BaseStringEquals, false},
	"StringNotEquals":           {BaseStringEquals, true},
	"StringEqualsIgnoreCase":    {BaseStringEqualsIgnoreCase, false},
	"StringNotEqualsIgnoreCase": {BaseStringEqualsIgnoreCase, true},
	"StringLike":                {BaseStringLike, false},
	"StringNotLike":             {BaseStringLike, true},

	"NumericEquals":            {BaseNumericEquals, false},
	"NumericNotEquals":         {BaseNumericEquals, true},
	"NumericLessThan":          {BaseNumericLessThan, false},
	"NumericLessThanEquals":    {BaseNumericLessThanEquals, false},
	"NumericGreaterThan":       {BaseNumericGreaterThan, false},
	"NumericGreaterThanEquals": {BaseNumericGreaterThanEquals, false},

	"DateEquals":            {BaseDateEquals, false},
	"DateNotEquals":         {BaseDateEquals, true},
	"DateLessThan":          {BaseDateLessThan, false},
	"DateLessThanEquals":    {BaseDateLessThanEquals, false},
	"DateGreaterThan":       {BaseDateGreaterThan, false},
	"DateGreaterThanEquals": {BaseDateGreaterThanEquals, false},

	"Bool": {BaseBool, false},

	"BinaryEquals": {BaseBinaryEquals, false},

	"IpAddress":    {BaseIPAddress, false},
	"NotIpAddress": {BaseIPAddress, true},

	"ArnEquals":    {BaseArnLike, false},
	"ArnNotEquals": {BaseArnLike, true},
	"ArnLike":      {BaseArnLike, false},
	"ArnNotLike":   {BaseArnLike, true},

	"Null": {BaseNull, false},
}

const ifExistsSuffix = "IfExists"

// Parse turns an operator name as it appears in policy JSON into its
// tagged Operator form, or reports an error for any name outside the
// closed operator set.
func Parse(name string) (Operator, error) {
	rest := name
	qualifier := NoQualifier
	if idx := strings.Index(rest, ":"); idx != -1 {
		prefix := rest[:idx]
		switch Qualifier(prefix) {
		case ForAllValues, ForAnyValue:
			qualifier = Qualifier(prefix)
			rest = rest[idx+1:]
		}
	}

	ifExists := false
	if strings.HasSuffix(rest, ifExistsSuffix) && rest != ifExistsSuffix {
		base := strings.TrimSuffix(rest, ifExistsSuffix)
		if _, ok := baseNames[base]; ok {
			ifExists = true
			rest = base
		}
	}

	spec, ok := baseNames[rest]
	if !ok {
		return Operator{}, fmt.Errorf("condition: unknown operator %q", name)
	}
	if spec.base == BaseNull && (ifExists || qualifier != NoQualifier) {
		return Operator{}, fmt.Errorf("condition: Null does not accept IfExists or a ForAllValues/ForAnyValue qualifier: %q", name)
	}

	return Operator{Name: name, Qualifier: qualifier, Base: spec.base, Negated: spec.negated, IfExists: ifExists}, nil
}

// baseFuncs resolves a Base to its pairwise comparator: compare(requestValue, operand).
var baseFuncs = map[Base]func(value, operand string) bool{
	BaseStringEquals:            stringEquals,
	BaseStringEqualsIgnoreCase:  stringEqualsIgnoreCase,
	BaseStringLike:              stringLike,
	BaseNumericEquals:           numericEquals,
	BaseNumericLessThan:         numericLessThan,
	BaseNumericLessThanEquals:   numericLessThanEquals,
	BaseNumericGreaterThan:      numericGreaterThan,
	BaseNumericGreaterThanEquals: numericGreaterThanEquals,
	BaseDateEquals:              dateEquals,
	BaseDateLessThan:            dateLessThan,
	BaseDateLessThanEquals:      dateLessThanEquals,
	BaseDateGreaterThan:         dateGreaterThan,
	BaseDateGreaterThanEquals:   dateGreaterThanEquals,
	BaseBool:                    boolEquals,
	BaseBinaryEquals:            binaryEquals,
	BaseIPAddress:               ipInCIDR,
	BaseArnLike:                 arnLike,
}

// Evaluate applies the operator to a (possibly multi-valued) request
// context value against the operand list. exists reports whether the
// context key was present at all; when false, requestValues is ignored.
func (op Operator) Evaluate(requestValues []string, exists bool, operands []string) bool {
	if op.Base == BaseNull {
		return evaluateNull(exists, operands)
	}

	if !exists {
		if op.Qualifier == ForAllValues {
			return true
		}
		if op.IfExists {
			return true
		}
		return false
	}

	fn := baseFuncs[op.Base]
	var coreMatch bool
	switch op.Qualifier {
	case ForAllValues:
		coreMatch = true
		if len(requestValues) == 0 {
			break
		}
		for _, v := range requestValues {
			ok := false
			for _, o := range operands {
				if fn(v, o) {
					ok = true
					break
				}
			}
			if !ok {
				coreMatch = false
				break
			}
		}
	default: // NoQualifier and ForAnyValue share "any value satisfies any operand"
		for _, v := range requestValues {
			for _, o := range operands {
				if fn(v, o) {
					coreMatch = true
				}
			}
		}
	}

	if op.Negated {
		return !coreMatch
	}
	return coreMatch
}

// evaluateNull implements the Null operator directly: its single operand
// is "true" (matches iff the key is absent) or "false" (matches iff the
// key is present).
func evaluateNull(exists bool, operands []string) bool {
	for _, o := range operands {
		wantAbsent := strings.EqualFold(o, "true")
		if wantAbsent == !exists {
			return true
		}
	}
	return false
}
