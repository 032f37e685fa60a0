// Command radial-gallery-window shows the circular gallery in a desktop window
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/radial-gallery/audio"
	"github.com/lixenwraith/radial-gallery/config"
	"github.com/lixenwraith/radial-gallery/gallery"
	"github.com/lixenwraith/radial-gallery/parameter"
)

type windowFlags struct {
	configPath    string
	width, height int
	noAudio       bool
	reducedMotion bool
	verbose       bool
}

func newRootCmd() *cobra.Command {
	flags := &windowFlags{}
	cmd := &cobra.Command{
		Use:           "radial-gallery-window",
		Short:         "Scroll a circular gallery in a desktop window",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "TOML configuration file")
	f.IntVar(&flags.width, "width", parameter.DefaultWindowWidth, "initial window width")
	f.IntVar(&flags.height, "height", parameter.DefaultWindowHeight, "initial window height")
	f.BoolVar(&flags.noAudio, "no-audio", false, "disable snap and selection cues")
	f.BoolVar(&flags.reducedMotion, "reduced-motion", false, "show the static ring without scroll rotation")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "log to stderr")
	return cmd
}

func run(flags *windowFlags) error {
	if !flags.verbose {
		log.SetOutput(io.Discard)
	}
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	for _, w := range cfg.Validate() {
		log.Printf("config: %s", w)
	}
	items, err := cfg.GalleryItems()
	if errors.Is(err, config.ErrNoItems) {
		items = config.DemoItems()
	} else if err != nil {
		return err
	}

	g := newGame(cfg, items, flags.reducedMotion)
	defer g.close()
	if !flags.noAudio && cfg.Audio.Enabled {
		if err := g.player.Initialize(); err != nil {
			log.Printf("audio unavailable: %v (continuing without audio)", err)
		}
	} else {
		g.player.SetEnabled(false)
	}

	ebiten.SetWindowTitle("Radial Gallery")
	ebiten.SetWindowSize(flags.width, flags.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(parameter.WindowTPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// newGallery builds the gallery with the window's callbacks
func newGallery(cfg *config.Config, items []gallery.Item, g *game) *gallery.Gallery {
	opts := cfg.Options()
	opts.Clock = g.clk
	opts.Logger = log.Default()
	opts.OnSnap = func(int) { g.player.Play(audio.CueTick) }
	opts.OnItemSelect = func(i int) {
		g.selected = i
		g.player.Play(audio.CueChime)
		log.Printf("selected item %d", i)
	}
	return gallery.New(items, opts)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "radial-gallery-window: %v\n", err)
		os.Exit(1)
	}
}
