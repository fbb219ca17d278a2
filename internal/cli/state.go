package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gosuda.org/splitmix/splitmix64"
)

func newStateCmd(o *options) *cobra.Command {
	var skip uint64

	// stateCmd represents the state command
	stateCmd := &cobra.Command{
		Use:   "state [encoded-state]",
		Short: "Encode or decode generator state",
		Long: `Without arguments, print the encoded state reached from --seed after
--skip 64-bit draws. With an encoded state argument, print its fields.
For example:
  splitmix state --seed=42 --skip=1000
  splitmix state 000000000000002a0000000000`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				var g splitmix64.State
				if err := g.UnmarshalText([]byte(args[0])); err != nil {
					return err
				}
				half, ok := g.Cached()
				_, err := fmt.Fprintf(out, "counter=%016x cached=%t half=%08x\n", g.Counter(), ok, half)
				return err
			}

			seed, err := o.seed()
			if err != nil {
				return err
			}
			g := splitmix64.New(seed)
			g.Advance(skip)
			text, err := g.MarshalText()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, string(text))
			return err
		},
	}

	stateCmd.Flags().Uint64Var(&skip, "skip", 0, "64-bit draws to skip before encoding")
	return stateCmd
}
