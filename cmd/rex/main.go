package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rex",
		Short: "A toolkit for parsing and matching patterns",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newMatchCmd())
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newMCPCmd())
	rootCmd.AddCommand(newUICmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
