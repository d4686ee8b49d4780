package main

import (
	"github.com/dhamidi/rex/mcp"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start the Model Context Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return mcp.NewServer().Serve()
		},
	}
}
