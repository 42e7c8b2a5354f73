package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"vwire/cli"
	"vwire/marshal"
)

var encodeHexOutput bool

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Encodes a JSON document as a wire message.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var input []byte
		var err error
		if len(args) == 1 {
			input, err = ioutil.ReadFile(args[0])
		} else {
			input, err = ioutil.ReadAll(os.Stdin)
		}
		if err != nil {
			return errors.Wrap(err, "error reading input")
		}

		var doc map[string]interface{}
		if err := json.Unmarshal(input, &doc); err != nil {
			return errors.Wrap(err, "error parsing JSON input")
		}

		data, err := marshal.MarshalMessage(doc)
		if err != nil {
			return err
		}

		if encodeHexOutput || isatty.IsTerminal(os.Stdout.Fd()) {
			fmt.Println(hex.EncodeToString(data))
			return nil
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

func init() {
	encodeCmd.Flags().BoolVar(&encodeHexOutput, cli.FlagHex, false, "Emit hex-encoded text instead of raw bytes.")
	rootCmd.AddCommand(encodeCmd)
}
