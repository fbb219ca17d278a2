package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newGenCmd(o *options) *cobra.Command {
	var (
		resume    string
		saveState string
	)

	// genCmd represents the gen command
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Print generator output",
		Long: `Print values drawn from a SplitMix64 stream, one per line. For example:
  splitmix gen --seed=42 --count=4
  splitmix gen --width=32 --format=dec --save-state=state.txt
  splitmix gen --resume=$(cat state.txt) --width=32`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.bind(cmd.Flags(), "count", "width", "format"); err != nil {
				return err
			}
			g, err := o.state(resume)
			if err != nil {
				return err
			}
			count, err := o.count("count")
			if err != nil {
				return err
			}
			format := o.v.GetString("format")
			write, err := newFormatter(format, o.v.GetInt("width"))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == "raw" {
				if err := checkNotTerminal(out); err != nil {
					return err
				}
			}
			bufw := bufio.NewWriter(out)
			for i := 0; i < count; i++ {
				if err := write(bufw, &g); err != nil {
					return err
				}
			}
			if err := bufw.Flush(); err != nil {
				return err
			}

			if saveState != "" {
				text, err := g.MarshalText()
				if err != nil {
					return err
				}
				if err := os.WriteFile(saveState, append(text, '\n'), 0o644); err != nil {
					return fmt.Errorf("save state: %w", err)
				}
			}
			return nil
		},
	}

	flags := genCmd.Flags()
	flags.IntP("count", "n", 4, "number of values to print")
	flags.IntP("width", "w", 64, "value width in bits, 64 or 32")
	flags.StringP("format", "f", "hex", "output format: hex, dec, float, uuid or raw")
	flags.StringVar(&resume, "resume", "", "continue from an encoded state instead of --seed")
	flags.StringVar(&saveState, "save-state", "", "write the final encoded state to this file")
	return genCmd
}
