package main

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/radial-gallery/gallery"
)

// viewFlags size the headless viewport for layout and snapshot
type viewFlags struct {
	width    float64
	height   float64
	progress float64
}

func (v *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&v.width, "width", 1280, "viewport width in pixels")
	cmd.Flags().Float64Var(&v.height, "height", 720, "viewport height in pixels")
	cmd.Flags().Float64VarP(&v.progress, "progress", "p", 0, "scroll progress through the pinned section, 0..1")
}

// settle loads the configuration and returns a gallery resting at the requested progress
func (v *viewFlags) settle(flags *rootFlags) (*gallery.Gallery, error) {
	cfg, items, err := loadConfig(flags.configPath)
	if err != nil {
		return nil, err
	}
	cw, ch := flags.cellSize(cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)
	g, _, err := headless(cfg, items, v.width, v.height, cw, ch, v.progress)
	return g, err
}

func newLayoutCmd(flags *rootFlags) *cobra.Command {
	view := &viewFlags{}
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the placement of every item at a scroll progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := view.settle(flags)
			if err != nil {
				return err
			}
			defer g.Dispose()
			return printLayout(cmd.OutOrStdout(), g.Frame())
		},
	}
	view.register(cmd)
	return cmd
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7")).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	activeStyle  = cellStyle.Foreground(lipgloss.Color("#ff9e64")).Bold(true)
	hiddenStyle  = cellStyle.Foreground(lipgloss.Color("#565f89"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5"))
	pillStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#1a1b26")).Background(lipgloss.Color("#9ece6a")).Padding(0, 1)
)

// printLayout writes a summary line and one table row per item in ring order
func printLayout(w io.Writer, f gallery.Frame) error {
	views := slices.Clone(f.Items)
	slices.SortFunc(views, func(a, b gallery.ItemView) int { return cmp.Compare(a.Index, b.Index) })

	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{
			strconv.Itoa(v.Index),
			v.Item.Step,
			v.Item.Title,
			num(v.Placement.RotationDeg),
			num(v.X),
			num(v.Y),
			num(v.Rotation),
			num(v.Scale),
			num(v.Opacity),
			itemState(v, f),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#3b4261"))).
		Headers("#", "Step", "Title", "Angle", "X", "Y", "Rot", "Scale", "Opacity", "State").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row < 0 || row >= len(views):
				return cellStyle
			case views[row].Index == f.Effective:
				return activeStyle
			case !views[row].Visible():
				return hiddenStyle
			}
			return cellStyle
		})

	mode := f.Mode.String()
	if f.Disabled {
		mode = "disabled"
	}
	summary := lipgloss.JoinHorizontal(lipgloss.Top,
		pillStyle.Render(mode),
		summaryStyle.Render(fmt.Sprintf(" progress %.1f%%  rotation %s°  snap %d  radius %s  pinned %t  compact %t  static %t",
			f.Rotation.Progress*100, num(f.Rotation.Degrees), f.SnapIndex, num(f.Radius), f.Pinned, f.Compact, f.Static)),
	)
	_, err := fmt.Fprintf(w, "%s\n%s\n", summary, t.String())
	return err
}

func itemState(v gallery.ItemView, f gallery.Frame) string {
	switch {
	case !v.Visible():
		return "hidden"
	case v.Index == f.Hovered:
		return "hovered"
	case v.Index == f.Effective:
		return "active"
	}
	return "-"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
