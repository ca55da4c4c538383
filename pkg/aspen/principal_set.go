package aspen

import (
	"encoding/json"

	"github.com/piwi3910/nebulaio-aspen/pkg/aspen/pattern"
	"github.com/piwi3910/nebulaio-aspen/pkg/aspen/principal"
)

// PrincipalSet is a mapping from principal.Kind to a non-empty sequence
// of principal identifier patterns. The special JSON form "*" collapses
// to {AWS: ["*"]}, since AWS treats a bare wildcard principal as "any
// principal of any kind".
type PrincipalSet map[principal.Kind]StringSet

// Matches reports whether id satisfies this principal set: an AWS entry
// of exactly "*" matches an identity of any kind; otherwise at least one
// pattern under id's Kind must match id's ID (wildcard-aware).
func (p PrincipalSet) Matches(id principal.Identity) bool {
	if aws, ok := p[principal.AWS]; ok {
		for _, pat := range aws.Values {
			if pat == "*" {
				return true
			}
		}
	}
	set, ok := p[id.Kind]
	if !ok {
		return false
	}
	for _, pat := range set.Values {
		if pattern.Matches(pat, id.ID, true) {
			return true
		}
	}
	return false
}

// UnmarshalJSON accepts either the literal string "*", or an object whose
// keys are principal kinds (AWS, CanonicalUser, Federated, Service) and
// whose values are scalar-or-array identifier lists.
func (p *PrincipalSet) UnmarshalJSON(data []byte) error {
	var literal string
	if err := json.Unmarshal(data, &literal); err == nil {
		if literal != "*" {
			return formatErr(-1, "Principal string value must be \"*\", got %q", literal)
		}
		*p = PrincipalSet{principal.AWS: NewStringSet("*")}
		return nil
	}

	var raw map[string]StringSet
	if err := json.Unmarshal(data, &raw); err != nil {
		return formatErr(-1, "Principal must be \"*\" or an object of AWS/CanonicalUser/Federated/Service: %v", err)
	}

	out := PrincipalSet{}
	for k, v := range raw {
		kind := principal.Kind(k)
		switch kind {
		case principal.AWS, principal.CanonicalUser, principal.Federated, principal.Service:
		default:
			return formatErr(-1, "unknown Principal kind %q", k)
		}
		if v.Empty() {
			return formatErr(-1, "Principal.%s must be non-empty", k)
		}
		out[kind] = v
	}
	if len(out) == 0 {
		return formatErr(-1, "Principal object must not be empty")
	}
	*p = out
	return nil
}

// MarshalJSON emits the literal "*" when the set is exactly {AWS: ["*"]},
// and the object form otherwise.
func (p PrincipalSet) MarshalJSON() ([]byte, error) {
	if len(p) == 1 {
		if aws, ok := p[principal.AWS]; ok && len(aws.Values) == 1 && aws.Values[0] == "*" {
			return json.Marshal("*")
		}
	}
	raw := make(map[string]StringSet, len(p))
	for k, v := range p {
		raw[string(k)] = v
	}
	return json.Marshal(raw)
}
