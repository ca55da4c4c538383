// Package aspenconfig provides configuration management for hosts
// embedding the Aspen policy engine.
//
// Configuration is loaded from multiple sources with the following
// precedence:
//  1. Command-line flags (highest priority)
//  2. Environment variables (ASPEN_* prefix)
//  3. Configuration file (aspen.yaml)
//  4. Default values (lowest priority)
//
// The package uses Viper for configuration binding, matching the
// teacher's internal/config conventions.
package aspenconfig

import (
	"fmt"
	"strings"

	"github.com/piwi3910/nebulaio-aspen/pkg/aspen"
	"github.com/spf13/viper"
)

// Limits holds the resource ceilings spec.md §5 recommends to fail fast
// on pathological input rather than let pattern matching run unbounded.
type Limits struct {
	// MaxPatternBytes bounds a single action/resource pattern string.
	MaxPatternBytes int `mapstructure:"max_pattern_bytes"`
	// MaxPolicyBytes bounds a serialized policy document.
	MaxPolicyBytes int `mapstructure:"max_policy_bytes"`
	// MaxStatements bounds the number of statements in a policy.
	MaxStatements int `mapstructure:"max_statements"`
	// MaxConditionsPerStatement bounds condition operator/key pairs.
	MaxConditionsPerStatement int `mapstructure:"max_conditions_per_statement"`
}

// AspenLimits converts Limits to the pkg/aspen.Limits ParsePolicyWithLimits
// expects, so a host never has to hand-translate the two struct shapes.
func (l Limits) AspenLimits() aspen.Limits {
	return aspen.Limits{
		MaxPatternBytes:           l.MaxPatternBytes,
		MaxPolicyBytes:            l.MaxPolicyBytes,
		MaxStatements:             l.MaxStatements,
		MaxConditionsPerStatement: l.MaxConditionsPerStatement,
	}
}

// Config holds all configuration for a host embedding the engine.
type Config struct {
	Limits Limits `mapstructure:"limits"`

	// PolicyVariablesEnabled is the configured "${...}" substitution
	// setting (default true). Load reads it, but nothing in this module
	// consults it: substitution is governed only by a policy's Version.
	PolicyVariablesEnabled bool `mapstructure:"policy_variables_enabled"`

	// LogLevel is the zerolog level name used by internal/aspenlog.
	LogLevel string `mapstructure:"log_level"`
}

// Options carries command-line overrides, applied with highest
// precedence in Load.
type Options struct {
	ConfigPath string
	LogLevel   string
}

// Load reads configuration from opts.ConfigPath (or the standard search
// path when empty), environment variables prefixed ASPEN_, and defaults.
// Command-line overrides in Options win over all; environment variables
// win over the config file, which wins over defaults.
func Load(opts Options) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if opts.ConfigPath != "" {
		v.SetConfigFile(opts.ConfigPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("aspen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/aspen")
		v.AddConfigPath("$HOME/.aspen")
		_ = v.ReadInConfig()
	}

	v.SetEnvPrefix("ASPEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.LogLevel != "" {
		v.Set("log_level", opts.LogLevel)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("limits.max_pattern_bytes", 2048)
	v.SetDefault("limits.max_policy_bytes", 10240)
	v.SetDefault("limits.max_statements", 1000)
	v.SetDefault("limits.max_conditions_per_statement", 200)
	v.SetDefault("policy_variables_enabled", true)
	v.SetDefault("log_level", "info")
}

func (c Config) validate() error {
	if c.Limits.MaxPatternBytes <= 0 {
		return fmt.Errorf("limits.max_pattern_bytes must be positive")
	}
	if c.Limits.MaxPolicyBytes <= 0 {
		return fmt.Errorf("limits.max_policy_bytes must be positive")
	}
	if c.Limits.MaxStatements <= 0 {
		return fmt.Errorf("limits.max_statements must be positive")
	}
	if c.Limits.MaxConditionsPerStatement <= 0 {
		return fmt.Errorf("limits.max_conditions_per_statement must be positive")
	}
	return nil
}
