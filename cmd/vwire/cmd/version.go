package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vwire/version"
)

var versionCmd = &cobra.Command{
	Use: "version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("vwire %s (%s)\n", version.GitTag, version.GitCommit)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
