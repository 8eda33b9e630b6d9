package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/achronus/zentra-api/internal/keys"
)

var newKeyCmd = &cobra.Command{
	Use:   "new-key [algo]",
	Short: "Generate a new SECRET_KEY for an algorithm (HS256, HS384, HS512) or bit size",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bits := keys.HS512.Bits()
		if len(args) == 1 {
			parsed, err := keys.ParseSize(args[0])
			if err != nil {
				return err
			}
			bits = parsed
		}

		key, err := keys.Generate(bits)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newKeyCmd)
}
