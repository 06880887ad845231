package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kataras/figma-tokens/pkg/figma"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "figma-tokens version %s\n", figma.Version)
		},
	}
}
