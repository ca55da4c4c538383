package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/piwi3910/nebulaio-aspen/internal/aspenconfig"
	"github.com/piwi3910/nebulaio-aspen/internal/aspenlog"
	"github.com/piwi3910/nebulaio-aspen/pkg/aspen"
	"github.com/piwi3910/nebulaio-aspen/pkg/aspen/principal"
)

// loadConfig loads host configuration (resource ceilings, log level) and
// initializes zerolog at the configured level, mirroring the way the
// teacher's commands package resolves its own ClientConfig once per
// command invocation via LoadConfig.
func loadConfig(configPath string) (*aspenconfig.Config, error) {
	cfg, err := aspenconfig.Load(aspenconfig.Options{ConfigPath: configPath})
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	aspenlog.Init(cfg.LogLevel)
	return cfg, nil
}

func loadPolicy(path string, limits aspen.Limits) (aspen.Policy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return aspen.Policy{}, fmt.Errorf("reading %s: %w", path, err)
	}
	pol, err := aspen.ParsePolicyWithLimits(raw, limits)
	if err != nil {
		return aspen.Policy{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return pol, nil
}

// recordDecision logs and counts a single policy decision, the ambient
// instrumentation call every subcommand performs after Evaluate returns.
func recordDecision(action, resource string, decision aspen.Decision) {
	aspenlog.Decision(action, resource, decision == aspen.DecisionAllow)
	aspenlog.RecordDecision(decision.String())
}

// parseContextPairs turns "key=value" flag values into an aspen.Context,
// splitting repeated values for the same key on commas so a single flag
// can populate a multi-valued condition key.
func parseContextPairs(pairs []string) (aspen.Context, error) {
	ctx := aspen.NewContext()
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --context value %q, expected key=value", pair)
		}
		ctx[key] = append(ctx[key], strings.Split(value, ",")...)
	}
	return ctx, nil
}

// parsePrincipal builds a request principal identity from a CLI flag,
// defaulting to the anonymous/wildcard identity when unset.
func parsePrincipal(id string) principal.Identity {
	if id == "" {
		return principal.Anonymous
	}
	return principal.Identity{Kind: principal.AWS, ID: id}
}
