package cmd

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/internal/viewport"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#74c7ec"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	cell        = lipgloss.NewStyle().Width(12)
)

type walkOptions struct {
	viewportHeight float64
	step           float64
	heights        map[string]int
	gotoID         string
}

var walkOpts = walkOptions{}

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Scroll through a simulated page and print the navigation state",
	Long: `walk lays the page sections out as stacked blocks, scrolls from top to
bottom in fixed steps and prints the active section and header state after
every step. With --goto it navigates to a section instead and prints where
the page settled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return walk(cmd.OutOrStdout(), walkOpts, nav.Options{
			TriggerLine:    appConfig.TriggerLine,
			CollapseOffset: appConfig.CollapseOffset,
			Logger:         log.New(cmd.ErrOrStderr(), "", 0),
		})
	},
}

func init() {
	walkCmd.Flags().Float64Var(&walkOpts.viewportHeight, "viewport", 800, "viewport height in pixels")
	walkCmd.Flags().Float64Var(&walkOpts.step, "step", 250, "scroll step in pixels")
	walkCmd.Flags().StringToIntVar(&walkOpts.heights, "heights", nil, "section heights, e.g. home=900,about=1400")
	walkCmd.Flags().StringVar(&walkOpts.gotoID, "goto", "", "navigate to this section instead of walking")
	rootCmd.AddCommand(walkCmd)
}

var defaultHeights = map[string]float64{
	"home":     900,
	"about":    1400,
	"projects": 1600,
	"skills":   1000,
	"contact":  900,
}

func walk(out io.Writer, opts walkOptions, navOpts nav.Options) error {
	if opts.step <= 0 {
		return fmt.Errorf("step must be positive")
	}
	if opts.viewportHeight <= 0 {
		return fmt.Errorf("viewport height must be positive")
	}

	reg := nav.DefaultRegistry()
	for id := range opts.heights {
		if !reg.Contains(id) {
			return fmt.Errorf("%w: %q", nav.ErrUnknownSection, id)
		}
	}

	var blocks []viewport.Block
	for _, sec := range reg.Sections() {
		h := defaultHeights[sec.ID]
		if v, ok := opts.heights[sec.ID]; ok {
			h = float64(v)
		}
		blocks = append(blocks, viewport.Block{ID: sec.ID, Height: h})
	}

	doc := viewport.NewDocument(opts.viewportHeight, blocks...)
	ctrl := nav.NewController(reg, doc, navOpts)
	ctrl.Mount(doc)
	defer ctrl.Unmount()

	fmt.Fprintln(out, row(headerStyle, "scrollY", "active", "header"))

	if opts.gotoID != "" {
		if err := ctrl.NavigateTo(opts.gotoID); err != nil {
			return err
		}
		fmt.Fprintln(out, stateRow(doc.ScrollY(), ctrl.State(), false))
		return nil
	}

	last := ""
	for y := 0.0; ; y += opts.step {
		if y > doc.MaxScroll() {
			y = doc.MaxScroll()
		}
		doc.ScrollTo(y, nav.ScrollOptions{Behavior: nav.BehaviorInstant})
		st := ctrl.State()
		fmt.Fprintln(out, stateRow(doc.ScrollY(), st, st.ActiveSectionID != last))
		last = st.ActiveSectionID
		if y >= doc.MaxScroll() {
			break
		}
	}
	return nil
}

func stateRow(y float64, st nav.State, changed bool) string {
	header := "expanded"
	if st.ChromeCollapsed {
		header = "collapsed"
	}
	style := mutedStyle
	if changed {
		style = activeStyle
	}
	return row(style, fmt.Sprintf("%.0f", y), st.ActiveSectionID, header)
}

func row(style lipgloss.Style, cols ...string) string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = cell.Inherit(style).Render(c)
	}
	return strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), " ")
}
