package aspen

import (
	"encoding/base64"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/piwi3910/nebulaio-aspen/pkg/aspen/arn"
)

// Context is the runtime information a Request carries: a mapping from
// context key to a non-empty sequence of values. Condition operators
// compare their operands against these values; a single key may carry
// more than one value (a multi-valued condition key, e.g. multiple
// aws:PrincipalTag/team values).
//
// Values are stored as strings in the operator's textual representation
// (the same representation JSON condition operands use); the With*
// helpers below convert typed Go values into that representation so
// callers building a Request don't need to know the wire format.
type Context map[string][]string

// NewContext returns an empty Context ready for the With* builders.
func NewContext() Context {
	return Context{}
}

// Get returns the values for key and whether the key is present at all
// (an explicitly empty slice still counts as present).
func (c Context) Get(key string) ([]string, bool) {
	v, ok := c[key]
	return v, ok
}

// Merge set-unions src into c, letting a caller compose context from
// multiple sources (request headers, derived attributes, principal tags).
func (c Context) Merge(src Context) Context {
	for k, values := range src {
		existing := c[k]
		for _, v := range values {
			if !containsString(existing, v) {
				existing = append(existing, v)
			}
		}
		c[k] = existing
	}
	return c
}

func containsString(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// WithString appends a plain string value under key.
func (c Context) WithString(key, value string) Context {
	c[key] = append(c[key], value)
	return c
}

// WithNumber appends a decimal-formatted numeric value.
func (c Context) WithNumber(key string, value float64) Context {
	c[key] = append(c[key], strconv.FormatFloat(value, 'f', -1, 64))
	return c
}

// WithBool appends a "true"/"false" value.
func (c Context) WithBool(key string, value bool) Context {
	c[key] = append(c[key], strconv.FormatBool(value))
	return c
}

// WithDate appends an RFC 3339-formatted timestamp.
func (c Context) WithDate(key string, value time.Time) Context {
	c[key] = append(c[key], value.UTC().Format(time.RFC3339))
	return c
}

// WithIP appends a textual IP address.
func (c Context) WithIP(key string, value net.IP) Context {
	c[key] = append(c[key], value.String())
	return c
}

// WithBinary appends a base64-encoded byte string.
func (c Context) WithBinary(key string, value []byte) Context {
	c[key] = append(c[key], base64.StdEncoding.EncodeToString(value))
	return c
}

// WithARN appends an ARN's canonical string form.
func (c Context) WithARN(key string, value arn.ARN) Context {
	c[key] = append(c[key], value.String())
	return c
}

// lookupFirst adapts Context to pattern.VariableLookup for policy-variable
// substitution, taking the first value of a multi-valued key (AWS policy
// variables are defined only for single-valued context keys).
func (c Context) lookupFirst(key string) (string, bool) {
	// Context keys are matched case-insensitively in Aspen, the same way
	// ConditionBlock's context lookup compares them.
	for k, values := range c {
		if strings.EqualFold(k, key) && len(values) > 0 {
			return values[0], true
		}
	}
	return "", false
}
