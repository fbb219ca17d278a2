package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gosuda.org/splitmix/splitmix64"
)

func newSplitCmd(o *options) *cobra.Command {
	// splitCmd represents the split command
	splitCmd := &cobra.Command{
		Use:   "split",
		Short: "Derive independent child streams",
		Long: `Derive child streams from one seed and print them side by side.
The first row holds the child seeds, each following row one draw per child.
For example:
  splitmix split --seed=42 --children=4 --draws=8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.bind(cmd.Flags(), "children", "draws"); err != nil {
				return err
			}
			seed, err := o.seed()
			if err != nil {
				return err
			}
			children, err := o.count("children")
			if err != nil {
				return err
			}
			draws, err := o.count("draws")
			if err != nil {
				return err
			}

			parent := splitmix64.New(seed)
			streams := make([]splitmix64.State, children)
			row := make([]string, children)
			for i := range streams {
				streams[i] = parent.Split()
				row[i] = fmt.Sprintf("%016x", streams[i].Counter())
			}

			bufw := bufio.NewWriter(cmd.OutOrStdout())
			if children > 0 {
				if _, err := fmt.Fprintln(bufw, strings.Join(row, " ")); err != nil {
					return err
				}
				for d := 0; d < draws; d++ {
					for i := range streams {
						row[i] = fmt.Sprintf("%016x", streams[i].Next64())
					}
					if _, err := fmt.Fprintln(bufw, strings.Join(row, " ")); err != nil {
						return err
					}
				}
			}
			return bufw.Flush()
		},
	}

	flags := splitCmd.Flags()
	flags.IntP("children", "c", 4, "number of child streams")
	flags.IntP("draws", "d", 0, "64-bit draws to print from each child")
	return splitCmd
}
