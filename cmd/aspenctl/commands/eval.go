package commands

import (
	"fmt"

	"github.com/piwi3910/nebulaio-aspen/pkg/aspen"
	"github.com/spf13/cobra"
)

// NewEvalCmd creates the eval command: evaluate a single policy against
// one synthetic request.
func NewEvalCmd() *cobra.Command {
	var action, resource, principalID, configPath string
	var contextPairs []string

	cmd := &cobra.Command{
		Use:   "eval <policy.json>",
		Short: "Evaluate a policy document against a single request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			pol, err := loadPolicy(args[0], cfg.Limits.AspenLimits())
			if err != nil {
				return err
			}

			ctx, err := parseContextPairs(contextPairs)
			if err != nil {
				return err
			}

			req := aspen.NewRequest(parsePrincipal(principalID), action, resource)
			req.Context = ctx

			decision := pol.Evaluate(req)
			recordDecision(action, resource, decision)
			fmt.Println(decision)
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
