package main

import (
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the command-line options of mazegen.
type Config struct {
	cols  int
	rows  int
	seed  int
	solve bool
	stats bool
	json  bool
}

func (c *Config) validate() error {
	if c.cols < 1 || c.rows < 1 || c.cols > maze.MaxDimension || c.rows > maze.MaxDimension {
		return fmt.Errorf("%w: %dx%d (each side must be between 1-%d inclusive)", maze.ErrInvalidDimensions, c.cols, c.rows, maze.MaxDimension)
	}
	if c.seed < 0 {
		return fmt.Errorf("%w: %d", maze.ErrInvalidSeed, c.seed)
	}
	return nil
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("MAZEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "mazegen",
		Short:         "Generates reproducible mazes from a seed.",
		Args:    cobra.ExactArgs(0),
		Version: releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), clockSeed)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.IntVarP(&cfg.cols, "cols", "c", 10, "number of columns (env: MAZEGEN_COLS)")
	fs.IntVarP(&cfg.rows, "rows", "r", 10, "number of rows (env: MAZEGEN_ROWS)")
	fs.IntVarP(&cfg.seed, "seed", "s", 0, "positive seed; a fresh one is picked when unset (env: MAZEGEN_SEED)")
	fs.BoolVar(&cfg.solve, "solve", false, "draw the shortest path from S to E (env: MAZEGEN_SOLVE)")
	fs.BoolVar(&cfg.stats, "stats", false, "print dead ends, junctions and solution length (env: MAZEGEN_STATS)")
	fs.BoolVar(&cfg.json, "json", false, "print the layout as JSON instead of ASCII (env: MAZEGEN_JSON)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("mazegen v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
