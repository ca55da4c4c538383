// Package pattern implements AWS-wildcard globbing ("*" and "?") over
// plain strings and over ARN strings, where wildcards are additionally
// segment-aware across the six colon-delimited ARN fields.
package pattern

import "strings"

// MaxLength bounds pattern and subject length accepted by Matches and
// MatchesARN; callers should reject longer strings before calling in, but
// the functions themselves degrade to false rather than panic.
const MaxLength = 2048

// Matches reports whether subject satisfies pattern, where "*" matches
// zero or more characters and "?" matches exactly one character. No other
// metacharacter is recognized; "\" is not an escape.
func Matches(pattern, subject string, caseSensitive bool) bool {
	if len(pattern) > MaxLength || len(subject) > MaxLength {
		return false
	}
	if !caseSensitive {
		pattern = strings.ToLower(pattern)
		subject = strings.ToLower(subject)
	}
	return matchGreedy(pattern, subject)
}

// matchGreedy is a two-pointer backtracking glob matcher: it advances
// through both strings, and on a "*" remembers a restart point to retry
// from if a later match fails.
func matchGreedy(pattern, subject string) bool {
	var pi, si int
	var starIdx = -1
	var starMatch int

	for si < len(subject) {
		switch {
		case pi < len(pattern) && (pattern[pi] == '?' || pattern[pi] == subject[si]):
			pi++
			si++
		case pi < len(pattern) && pattern[pi] == '*':
			starIdx = pi
			starMatch = si
			pi++
		case starIdx != -1:
			pi = starIdx + 1
			starMatch++
			si = starMatch
		default:
			return false
		}
	}

	for pi < len(pattern) && pattern[pi] == '*' {
		pi++
	}

	return pi == len(pattern)
}

// arnFieldCount is the number of colon-delimited fields in an ARN:
// arn:partition:service:region:account-id:resource.
const arnFieldCount = 6

// MatchesARN matches an ARN pattern against a subject ARN string,
// segment-aware on the six colon-delimited fields: a "*" within one
// segment does not cross into the next "arn:...:" field unless that
// pattern segment is itself exactly "*". The literal pattern "*" matches
// any subject regardless of shape.
func MatchesARN(pattern, subject string, caseSensitive bool) bool {
	if pattern == "*" {
		return true
	}
	if len(pattern) > MaxLength || len(subject) > MaxLength {
		return false
	}

	pFields := strings.SplitN(pattern, ":", arnFieldCount)
	sFields := strings.SplitN(subject, ":", arnFieldCount)

	// An ARN pattern lacking the full six fields (or a non-ARN literal
	// used as a resource pattern, e.g. bucket names in some callers)
	// falls back to a flat glob over the whole string.
	if len(pFields) != arnFieldCount || len(sFields) != arnFieldCount {
		return Matches(pattern, subject, caseSensitive)
	}

	for i := range pFields {
		pf := pFields[i]
		if pf == "*" {
			continue
		}
		if !Matches(pf, sFields[i], caseSensitive) {
			return false
		}
	}
	return true
}
