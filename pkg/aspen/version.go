package aspen

// PolicyVersion selects the Aspen language version. 2012-10-17 enables
// policy-variable substitution ("${aws:username}") inside condition
// operands and resource patterns; 2008-10-17 treats those strings
// literally. Principal patterns are matched literally under either
// version: no substitution is applied to them.
type PolicyVersion string

const (
	Version2008 PolicyVersion = "2008-10-17"
	Version2012 PolicyVersion = "2012-10-17"

	// DefaultVersion is used when a document omits Version.
	DefaultVersion = Version2008
)

// SupportsVariables reports whether this version resolves ${...} policy
// variables before pattern matching.
func (v PolicyVersion) SupportsVariables() bool {
	return v == Version2012
}

func (v PolicyVersion) valid() bool {
	return v == "" || v == Version2008 || v == Version2012
}
