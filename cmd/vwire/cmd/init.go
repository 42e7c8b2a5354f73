package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vwire/cli"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initializes the CLI's home directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := cli.InitHomeDir(cmd)
		if err != nil {
			return err
		}

		fmt.Printf("Successfully initialized vwire in %s.\n", dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
