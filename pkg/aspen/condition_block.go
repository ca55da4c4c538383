package aspen

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/piwi3910/nebulaio-aspen/pkg/aspen/condition"
)

// ConditionBlock is a mapping from condition operator name to a mapping
// from context key to a non-empty sequence of operand values. Every
// operator/key pair must hold for the block to match (AND across
// operators and across keys within an operator); operand values within a
// pair are OR'd by the operator itself.
type ConditionBlock struct {
	entries map[string]map[string]StringSet
}

// NewConditionBlock returns an empty block.
func NewConditionBlock() ConditionBlock {
	return ConditionBlock{entries: map[string]map[string]StringSet{}}
}

// Add inserts operand values for operator/key, set-union-merging with any
// already present for the same operator+key, per spec's resolution of
// duplicate-key handling across repeated operator blocks.
func (b *ConditionBlock) Add(operator, key string, values ...string) *PolicyError {
	op, err := condition.Parse(operator)
	if err != nil {
		return formatErr(-1, "%v", err)
	}
	if key == "" {
		return formatErr(-1, "condition key must not be empty")
	}
	if len(values) == 0 {
		return formatErr(-1, "condition %s/%s must have at least one value", operator, key)
	}
	for _, v := range values {
		if err := condition.ValidateOperand(op, v); err != nil {
			return valueErr(operator, key, v, "%v", err)
		}
	}
	if b.entries == nil {
		b.entries = map[string]map[string]StringSet{}
	}
	keys, ok := b.entries[operator]
	if !ok {
		keys = map[string]StringSet{}
		b.entries[operator] = keys
	}
	existing := keys[key]
	for _, v := range values {
		if !existing.Contains(v) {
			existing.Values = append(existing.Values, v)
		}
	}
	keys[key] = existing
	return nil
}

// Empty reports whether the block has no operator/key pairs.
func (b ConditionBlock) Empty() bool {
	return len(b.entries) == 0
}

// Len returns the total number of operator/key pairs in the block, used
// by a host enforcing a MaxConditionsPerStatement ceiling.
func (b ConditionBlock) Len() int {
	n := 0
	for _, keys := range b.entries {
		n += len(keys)
	}
	return n
}

// Matches evaluates every operator/key pair against ctx, ANDing the
// results. resolve, when non-nil, resolves "${...}" policy-variable
// references in string-valued operands before comparison (only when the
// owning policy's version enables them).
func (b ConditionBlock) Matches(ctx Context, resolve func(string) string) bool {
	for operatorName, keys := range b.entries {
		op, err := condition.Parse(operatorName)
		if err != nil {
			// Unknown operators are rejected at parse time; a defensive
			// false here only matters for blocks built without going
			// through the codec or Add's validation.
			return false
		}
		for key, operands := range keys {
			values, exists := lookupContext(ctx, key)
			resolved := operands.Values
			if resolve != nil {
				resolved = make([]string, len(operands.Values))
				for i, v := range operands.Values {
					resolved[i] = resolve(v)
				}
			}
			if !op.Evaluate(values, exists, resolved) {
				return false
			}
		}
	}
	return true
}

// lookupContext resolves a context key case-insensitively, per spec
// ("comparisons against [context keys] are case-insensitive for the key
// itself").
func lookupContext(ctx Context, key string) ([]string, bool) {
	if v, ok := ctx[key]; ok {
		return v, true
	}
	for k, v := range ctx {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

// UnmarshalJSON decodes {"Operator": {"key": scalar-or-array, ...}, ...},
// validating every operator name against the closed operator set and
// merging duplicate operator+key pairs (which can only arise if the same
// operator object repeats a key, already disallowed by JSON object
// semantics, or across a caller-assembled raw map) by set-union.
func (b *ConditionBlock) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = NewConditionBlock()
		return nil
	}

	var raw map[string]map[string]StringSet
	if err := json.Unmarshal(data, &raw); err != nil {
		return formatErr(-1, "invalid Condition block: %v", err)
	}

	block := NewConditionBlock()
	for operator, keys := range raw {
		if _, err := condition.Parse(operator); err != nil {
			return formatErr(-1, "%v", err)
		}
		for key, values := range keys {
			if err := block.Add(operator, key, values.Values...); err != nil {
				return err
			}
		}
	}
	*b = block
	return nil
}

// MarshalJSON emits operators and keys in sorted order for deterministic
// output.
func (b ConditionBlock) MarshalJSON() ([]byte, error) {
	if b.Empty() {
		return []byte("{}"), nil
	}
	raw := make(map[string]map[string]StringSet, len(b.entries))
	for operator, keys := range b.entries {
		out := make(map[string]StringSet, len(keys))
		for k, v := range keys {
			out[k] = v
		}
		raw[operator] = out
	}
	return json.Marshal(raw)
}

// operatorNames returns the block's operator names in sorted order.
func (b ConditionBlock) operatorNames() []string {
	names := make([]string, 0, len(b.entries))
	for k := range b.entries {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
