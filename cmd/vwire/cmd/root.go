package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vwire/cli"
	"vwire/config"
	"vwire/log"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "vwire",
	Short: "Inspect and build daemon control messages.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.CalledAs() == "init" || cmd.CalledAs() == "version" {
			return nil
		}
		var err error
		cfg, err = cli.LoadConfig(cmd)
		if err != nil {
			return err
		}
		return log.Init(cfg.LogLevel, os.Stderr)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String(cli.FlagHome, "~/.vwire", "Home directory for the CLI's configuration.")
	rootCmd.PersistentFlags().String(cli.FlagLogLevel, "info", "Log level.")
	rootCmd.PersistentFlags().String(cli.FlagFormat, "text", "Output format for decoded messages.")
}
