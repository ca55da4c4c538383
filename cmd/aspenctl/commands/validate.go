package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewValidateCmd creates the validate command.
func NewValidateCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate <policy.json>",
		Short: "Parse a policy document and report whether it is well-formed",
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
			fmt.Printf("OK: version=%s statements=%d\n", pol.Version, len(pol.Statements))
			for i, stmt := range pol.Statements {
				sid := stmt.Sid
				if sid == "" {
					sid = fmt.Sprintf("#%d", i)
				}
				fmt.Printf("  statement %s: effect=%s\n", sid, stmt.Effect)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to aspen.yaml config file")
	return cmd
}
