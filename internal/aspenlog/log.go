// Package aspenlog wires zerolog for hosts embedding the Aspen policy
// engine, following the chained Str/Bool/Msg style internal/iam/policy.go
// used for its own decision-logging diagnostics.
package aspenlog

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger at the given level name
// ("debug", "info", "warn", "error"). An unrecognized level falls back
// to info rather than failing.
func Init(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
}

// Decision records the outcome of evaluating a request against a policy
// or policy set, at debug level so production deployments can opt in via
// log level without paying for it by default. Called by a host after
// Policy.Evaluate/PolicySet.Evaluate returns — the evaluator itself never
// logs, staying a pure function per spec §5.
func Decision(action, resource string, allowed bool) {
	log.Debug().
		Str("action", action).
		Str("resource", resource).
		Bool("allowed", allowed).
		Msg("policy decision")
}
