package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/radial-gallery/snapshot"
	"github.com/lixenwraith/radial-gallery/thumbnail"
)

func newSnapshotCmd(flags *rootFlags) *cobra.Command {
	view := &viewFlags{}
	var out string
	opts := snapshot.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one frame at a scroll progress to WebP or PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := view.settle(flags)
			if err != nil {
				return err
			}
			defer g.Dispose()

			if err := snapshot.WriteFile(out, g.Frame(), thumbnail.NewCache(), opts); err != nil {
				return err
			}
			log.Printf("snapshot written to %s", out)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	view.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "gallery.webp", "output file, .webp or .png")
	cmd.Flags().IntVar(&opts.Supersample, "supersample", opts.Supersample, "render scale before downsampling")
	cmd.Flags().BoolVar(&opts.Labels, "labels", opts.Labels, "draw step and title labels")
	return cmd
}
