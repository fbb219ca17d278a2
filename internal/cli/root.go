package cli

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gosuda.org/splitmix/splitmix64"
)

// options is shared by the root command and its subcommands.
type options struct {
	cfgFile string
	verbose bool
	v       *viper.Viper
}

// newRootCmd builds the command tree. Each call gets its own viper instance.
func newRootCmd() *cobra.Command {
	o := &options{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "splitmix",
		Short: "SplitMix64 stream generator.",
		Long: `SplitMix64 stream generator.
Print reproducible pseudo-random streams, derive seeds for other generators
and inspect generator state, For example:
  splitmix gen --seed=42 --count=8
  splitmix gen --seed=0x2a --width=32 --format=dec
  splitmix split --seed=42 --children=4 --draws=10
  splitmix state --seed=42 --skip=1000000`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := o.bind(cmd.Root().PersistentFlags(), "seed"); err != nil {
				return err
			}
			return o.initConfig()
		},
	}

	pflags := rootCmd.PersistentFlags()
	pflags.StringVar(&o.cfgFile, "config", "", "config file (default is $HOME/.splitmix.yaml)")
	pflags.BoolVarP(&o.verbose, "verbose", "v", false, "log the config file in use")
	pflags.StringP("seed", "s", "0", "64-bit seed, decimal or 0x-prefixed hex")

	rootCmd.AddCommand(newGenCmd(o), newSplitCmd(o), newStateCmd(o))
	return rootCmd
}

// Execute runs the command line. This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func (o *options) initConfig() error {
	if o.cfgFile != "" {
		o.v.SetConfigFile(o.cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		o.v.AddConfigPath(home)
		o.v.SetConfigName(".splitmix")
	}

	o.v.SetEnvPrefix("splitmix")
	o.v.AutomaticEnv() // SPLITMIX_SEED, SPLITMIX_COUNT, ...

	if err := o.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if o.cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if o.verbose {
		log.Println("Using config file:", o.v.ConfigFileUsed())
	}
	return nil
}

// bind ties flags to config keys of the same name.
// Subcommands share key names, so binding happens at run time.
func (o *options) bind(flags *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		if err := o.v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

func (o *options) seed() (uint64, error) {
	s := o.v.GetString("seed")
	seed, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", s, err)
	}
	return seed, nil
}

// state returns the generator to draw from: the resumed state when one is
// given, otherwise a fresh state from the configured seed.
func (o *options) state(resume string) (splitmix64.State, error) {
	var g splitmix64.State
	if resume = strings.TrimSpace(resume); resume != "" {
		if err := g.UnmarshalText([]byte(resume)); err != nil {
			return g, err
		}
		return g, nil
	}
	seed, err := o.seed()
	if err != nil {
		return g, err
	}
	return splitmix64.New(seed), nil
}

func (o *options) count(key string) (int, error) {
	n := o.v.GetInt(key)
	if n < 0 {
		return 0, fmt.Errorf("--%s must not be negative, got %d", key, n)
	}
	return n, nil
}
