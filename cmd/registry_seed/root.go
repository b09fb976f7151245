// registry_seed maintains the lien and incident registry from the command line.
//
// Usage:
//
//	registry_seed load -f registry.yaml
//	registry_seed token --subject ops@example.com --role operator --ttl 24h
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "registry_seed",
	Short: "Seed and administer the lien and incident registry",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
