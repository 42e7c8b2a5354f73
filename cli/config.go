package cli

import (
	"github.com/spf13/cobra"

	"vwire/config"
)

// LoadConfig returns the effective configuration: the home directory's
// config file when one exists, the defaults otherwise, with any
// explicitly set flags overriding both.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig

	homeDir := GetHomeDir(cmd)
	exists, err := config.HomeDirExists(homeDir)
	if err != nil {
		return nil, err
	}
	if exists {
		read, err := config.ReadConfigFile(homeDir)
		if err != nil {
			return nil, err
		}
		cfg = *read
	}

	if cmd.Flags().Changed(FlagLogLevel) {
		cfg.LogLevel, _ = cmd.Flags().GetString(FlagLogLevel)
	}
	if cmd.Flags().Changed(FlagFormat) {
		cfg.Format, _ = cmd.Flags().GetString(FlagFormat)
	}
	return &cfg, nil
}
