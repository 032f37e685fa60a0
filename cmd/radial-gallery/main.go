// Command radial-gallery shows a circular scroll-driven gallery in the terminal
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootFlags are shared by every subcommand
type rootFlags struct {
	configPath string
	debug      bool
	cellWidth  float64
	cellHeight float64
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	var noAudio, reducedMotion bool

	cmd := &cobra.Command{
		Use:           "radial-gallery",
		Short:         "Scroll a circular gallery in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logFile := setupLogging(flags.debug); logFile != nil {
				cobra.OnFinalize(func() { logFile.Close() })
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(flags, noAudio, reducedMotion)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "TOML configuration file")
	pf.BoolVar(&flags.debug, "debug", false, "write logs to logs/radial-gallery.log")
	pf.Float64Var(&flags.cellWidth, "cell-width", 0, "pixels per cell column (0 uses the configured value)")
	pf.Float64Var(&flags.cellHeight, "cell-height", 0, "pixels per cell row (0 uses the configured value)")

	cmd.Flags().BoolVar(&noAudio, "no-audio", false, "disable snap and selection cues")
	cmd.Flags().BoolVar(&reducedMotion, "reduced-motion", false, "show the static ring without scroll rotation")

	cmd.AddCommand(newLayoutCmd(flags), newSnapshotCmd(flags))
	return cmd
}

// cellSize resolves the pixel size of one cell from flags, falling back to the configuration
func (f *rootFlags) cellSize(cfgW, cfgH int) (float64, float64) {
	w, h := f.cellWidth, f.cellHeight
	if w <= 0 {
		w = float64(cfgW)
	}
	if h <= 0 {
		h = float64(cfgH)
	}
	return w, h
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "radial-gallery: %v\n", err)
		os.Exit(1)
	}
}
