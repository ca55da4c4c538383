package pattern

import "strings"

// VariableLookup resolves a policy-variable key (e.g. "aws:username") to
// its value(s), mirroring a single-valued view of the request context. A
// missing key is reported via ok=false.
type VariableLookup func(key string) (value string, ok bool)

// SubstituteVariables resolves "${key}" and "${key,'default'}" references
// in s against lookup, rendering a missing key with no default as the
// empty string. "${*}", "${?}", and "${$}" are escape hatches producing
// the literal metacharacter instead of a lookup. Substitution happens
// before wildcard matching, and only when the policy's version enables
// policy variables (callers gate on PolicyVersion.SupportsVariables).
func SubstituteVariables(s string, lookup VariableLookup) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		start := strings.Index(s[i:], "${")
		if start == -1 {
			b.WriteString(s[i:])
			break
		}
		start += i
		b.WriteString(s[i:start])

		end := strings.Index(s[start:], "}")
		if end == -1 {
			b.WriteString(s[start:])
			break
		}
		end += start

		inner := s[start+2 : end]
		b.WriteString(resolveVariable(inner, lookup))
		i = end + 1
	}
	return b.String()
}

func resolveVariable(inner string, lookup VariableLookup) string {
	switch inner {
	case "*":
		return "*"
	case "?":
		return "?"
	case "$":
		return "$"
	}

	key := inner
	defaultVal := ""
	hasDefault := false
	if idx := strings.Index(inner, ","); idx != -1 {
		key = inner[:idx]
		defaultVal = strings.Trim(strings.TrimSpace(inner[idx+1:]), "'")
		hasDefault = true
	}

	if lookup != nil {
		if v, ok := lookup(key); ok {
			return v
		}
	}
	if hasDefault {
		return defaultVal
	}
	return ""
}
