package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/piwi3910/nebulaio-aspen/pkg/aspen"
	"github.com/spf13/cobra"
)

// NewSimulateCmd creates the simulate command: evaluate a request against
// several policy documents combined under Deny-overrides-Allow
// aggregation, the way a host combining an identity policy with one or
// more resource policies would.
func NewSimulateCmd() *cobra.Command {
	var action, resource, principalID, configPath string
	var contextPairs []string

	cmd := &cobra.Command{
		Use:   "simulate <policy.json> [policy2.json ...]",
		Short: "Evaluate a request against multiple policy documents combined",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			ctx, err := parseContextPairs(contextPairs)
			if err != nil {
				return err
			}

			req := aspen.NewRequest(parsePrincipal(principalID), action, resource)
			req.Context = ctx

			traceID := uuid.NewString()
			fmt.Printf("trace: %s\n", traceID)

			limits := cfg.Limits.AspenLimits()
			set := aspen.NewPolicySet()
			for i, path := range args {
				pol, err := loadPolicy(path, limits)
				if err != nil {
					return err
				}
				name := fmt.Sprintf("policy-%d:%s", i, path)
				set.Put(name, pol)
				decision := pol.Evaluate(req)
				recordDecision(action, resource, decision)
				fmt.Printf("%s: %s\n", name, decision)
			}

			combined := set.Evaluate(req)
			recordDecision(action, resource, combined)
			fmt.Printf("combined: %s\n", combined)
			return nil
		},
	}

	cmd.Flags().StringVar(&action, "action", "", "action string, e.g. s3:GetObject (required)")
	cmd.Flags().StringVar(&resource, "resource", "", "resource ARN (required)")
	cmd.Flags().StringVar(&principalID, "principal", "", "principal identifier, defaults to anonymous")
	cmd.Flags().StringArrayVar(&contextPairs, "context", nil, "context key=value, repeatable")
	cmd.Flags().StringVar(&configPath, "config", "", "path to aspen.yaml config file")
	_ = cmd.MarkFlagRequired("action")
	_ = cmd.MarkFlagRequired("resource")

	return cmd
}
