// Command aspenctl is a command-line tool for validating and exercising
// Aspen policy documents, structured after cmd/nebulaio-cli's root
// command / commands-subpackage layout.
package main

import (
	"fmt"
	"os"

	"github.com/piwi3910/nebulaio-aspen/cmd/aspenctl/commands"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "dev"
	// Commit is set at build time.
	Commit = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "aspenctl",
		Short: "aspenctl - Aspen policy language validator and evaluator",
		Long: `aspenctl validates Aspen policy documents and evaluates them against
sample requests, without needing a running service.

Examples:
  aspenctl validate policy.json
  aspenctl eval policy.json --action s3:GetObject --resource arn:aws:s3:::bucket/key
  aspenctl simulate policy.json --action s3:GetObject --resource arn:aws:s3:::bucket/key --principal arn:aws:iam::123456789012:user/alice`,
		Version: fmt.Sprintf("%s (commit: %s)", Version, Commit),
	}

	rootCmd.AddCommand(commands.NewValidateCmd())
	rootCmd.AddCommand(commands.NewEvalCmd())
	rootCmd.AddCommand(commands.NewSimulateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
