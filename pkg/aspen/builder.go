package aspen

import (
	"github.com/google/uuid"
	"github.com/piwi3910/nebulaio-aspen/pkg/aspen/principal"
)

// StatementBuilder constructs a Statement programmatically, returning a
// *PolicyError with Kind KindBuilder when a required field is missing at
// Build time rather than failing silently or panicking.
type StatementBuilder struct {
	sid         string
	effect      Effect
	effectSet   bool
	action      *InvertibleSet
	resource    *InvertibleSet
	principal   *PrincipalGate
	condition   ConditionBlock
	deferredErr error
}

// NewStatementBuilder starts a new Statement under the given effect.
func NewStatementBuilder(effect Effect) *StatementBuilder {
	return &StatementBuilder{effect: effect, effectSet: true, condition: NewConditionBlock()}
}

func (b *StatementBuilder) Sid(sid string) *StatementBuilder {
	b.sid = sid
	return b
}

func (b *StatementBuilder) Action(patterns ...string) *StatementBuilder {
	b.action = &InvertibleSet{Patterns: NewStringSet(patterns...)}
	return b
}

func (b *StatementBuilder) NotAction(patterns ...string) *StatementBuilder {
	b.action = &InvertibleSet{Patterns: NewStringSet(patterns...), Negated: true}
	return b
}

func (b *StatementBuilder) Resource(patterns ...string) *StatementBuilder {
	b.resource = &InvertibleSet{Patterns: NewStringSet(patterns...)}
	return b
}

func (b *StatementBuilder) NotResource(patterns ...string) *StatementBuilder {
	b.resource = &InvertibleSet{Patterns: NewStringSet(patterns...), Negated: true}
	return b
}

func (b *StatementBuilder) Principal(set PrincipalSet) *StatementBuilder {
	b.principal = &PrincipalGate{Set: set}
	return b
}

func (b *StatementBuilder) NotPrincipal(set PrincipalSet) *StatementBuilder {
	b.principal = &PrincipalGate{Set: set, Negated: true}
	return b
}

// AnyPrincipal sets Principal to the wildcard form, equivalent to the
// JSON literal "*".
func (b *StatementBuilder) AnyPrincipal() *StatementBuilder {
	return b.Principal(PrincipalSet{principal.AWS: NewStringSet("*")})
}

// Condition adds an operator/key/operands triple, keeping the first
// *PolicyError (KindPolicyFormat or KindInvalidValue) that Add reports
// across the whole builder chain rather than per-call, so callers can
// chain freely and check once at Build.
func (b *StatementBuilder) Condition(operator, key string, values ...string) *StatementBuilder {
	if err := b.condition.Add(operator, key, values...); err != nil && b.deferredErr == nil {
		b.deferredErr = err
	}
	return b
}

// Build validates required fields and returns the finished Statement.
func (b *StatementBuilder) Build() (Statement, error) {
	if b.deferredErr != nil {
		return Statement{}, b.deferredErr
	}
	if !b.effectSet || (b.effect != Allow && b.effect != Deny) {
		return Statement{}, builderErr("Effect", "statement requires a valid Effect")
	}
	if b.action == nil {
		return Statement{}, builderErr("Action", "statement requires Action or NotAction")
	}
	if b.action.Patterns.Empty() {
		return Statement{}, builderErr("Action", "Action/NotAction must be non-empty")
	}
	if b.resource == nil {
		return Statement{}, builderErr("Resource", "statement requires Resource or NotResource")
	}
	if b.resource.Patterns.Empty() {
		return Statement{}, builderErr("Resource", "Resource/NotResource must be non-empty")
	}

	return Statement{
		Sid:       b.sid,
		Effect:    b.effect,
		Action:    *b.action,
		Resource:  *b.resource,
		Principal: b.principal,
		Condition: b.condition,
	}, nil
}

// PolicyBuilder constructs a Policy programmatically.
type PolicyBuilder struct {
	version    PolicyVersion
	id         string
	statements []Statement
}

// NewPolicyBuilder starts a new Policy at the default version.
func NewPolicyBuilder() *PolicyBuilder {
	return &PolicyBuilder{version: DefaultVersion}
}

func (b *PolicyBuilder) Version(v PolicyVersion) *PolicyBuilder {
	b.version = v
	return b
}

func (b *PolicyBuilder) ID(id string) *PolicyBuilder {
	b.id = id
	return b
}

func (b *PolicyBuilder) Statement(s Statement) *PolicyBuilder {
	b.statements = append(b.statements, s)
	return b
}

// Build validates and returns the finished Policy.
func (b *PolicyBuilder) Build() (Policy, error) {
	if !b.version.valid() {
		return Policy{}, builderErr("Version", "unsupported policy version %q", b.version)
	}
	if len(b.statements) == 0 {
		return Policy{}, builderErr("Statement", "policy requires at least one statement")
	}
	version := b.version
	if version == "" {
		version = DefaultVersion
	}
	id := b.id
	if id == "" {
		id = uuid.NewString()
	}
	return Policy{Version: version, ID: id, Statements: b.statements}, nil
}
