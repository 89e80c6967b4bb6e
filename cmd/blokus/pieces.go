package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blokus/internal/pieces"
)

var flagAllOptions bool

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "Show the piece catalogue",
	Long: `Shows every piece with its size and number of orientations.

With --all every orientation is drawn; otherwise only the first one.

Examples:
  blokus pieces
  blokus pieces --all`,
	Args: cobra.NoArgs,
	Run:  runPieces,
}

func init() {
	piecesCmd.Flags().BoolVar(&flagAllOptions, "all", false, "Draw every orientation")
}

var (
	squareStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	nameStyle   = lipgloss.NewStyle().Bold(true).Width(4)
	optionGap   = "  "
)

func runPieces(_ *cobra.Command, _ []string) {
	catalogue, err := pieces.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(summaryTable(catalogue))
	fmt.Println()

	for _, p := range catalogue.Pieces() {
		opts := p.Options()
		if !flagAllOptions {
			opts = opts[:1]
		}
		label := nameStyle.Render(p.Name)
		fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, label, drawOptions(opts)))
		fmt.Println()
	}
}

// summaryTable lists index, name, squares and orientations of every piece.
func summaryTable(c *pieces.Catalogue) string {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Piece", Width: 6},
		{Title: "Squares", Width: 8},
		{Title: "Orientations", Width: 12},
	}

	rows := make([]table.Row, 0, c.Len())
	for i, p := range c.Pieces() {
		rows = append(rows, table.Row{
			strconv.Itoa(i),
			p.Name,
			strconv.Itoa(p.Option(0).Cells()),
			strconv.Itoa(p.NumOptions()),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t.View()
}

// drawOptions renders orientations side by side, two columns per square.
func drawOptions(opts []pieces.Option) string {
	blocks := make([]string, 0, len(opts)*2)
	for i, o := range opts {
		if i > 0 {
			blocks = append(blocks, optionGap)
		}
		blocks = append(blocks, drawOption(o))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func drawOption(o pieces.Option) string {
	lines := make([]string, 0, o.Size().H)
	for _, row := range o.Rows() {
		var sb strings.Builder
		for _, ch := range row {
			if ch == '#' {
				sb.WriteString(squareStyle.Render("██"))
			} else {
				sb.WriteString("  ")
			}
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}
