package cmd

import (
	"encoding/hex"
	"encoding/json"
	"io/ioutil"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"vwire/cli"
	"vwire/log"
	"vwire/wire"
)

var decodeHexInput bool

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decodes a wire message and prints its contents.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.WithModule("decode")

		data, err := readInput(args)
		if err != nil {
			return err
		}
		if decodeHexInput {
			data, err = hex.DecodeString(strings.Join(strings.Fields(string(data)), ""))
			if err != nil {
				return errors.Wrap(err, "error parsing hex input")
			}
		}

		codec := &wire.Codec{MaxDepth: cfg.MaxDepth}
		root, err := codec.DecodeBytes(data)
		if err != nil {
			return err
		}
		logger.Debug("decoded message", "bytes", len(data), "keys", root.Len())

		switch cfg.Format {
		case "text":
			printTree(os.Stdout, root, 0)
			return nil
		case "table":
			table := tablewriter.NewWriter(os.Stdout)
			for _, row := range flattenSection(root, "") {
				table.Append(row)
			}
			table.Render()
			return nil
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(sectionToJSON(root))
		default:
			return errors.Errorf("unknown output format %q", cfg.Format)
		}
	},
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		data, err := ioutil.ReadFile(args[0])
		return data, errors.Wrap(err, "error reading input file")
	}
	if !decodeHexInput && isatty.IsTerminal(os.Stdin.Fd()) {
		return nil, errors.New("refusing to read binary data from a terminal - pass a file or pipe input")
	}
	data, err := ioutil.ReadAll(os.Stdin)
	return data, errors.Wrap(err, "error reading stdin")
}

func init() {
	decodeCmd.Flags().BoolVar(&decodeHexInput, cli.FlagHex, false, "Treat the input as hex-encoded text.")
	rootCmd.AddCommand(decodeCmd)
}
