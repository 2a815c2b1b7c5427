package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lightsout/internal/core"
	"github.com/vovakirdan/tui-lightsout/internal/lightsout"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a generated board and its solution",
	Long: `Generate a board without starting the game and print it, together with
the presses that generated it and the presses that clear it.

Lit lights are shown as '#', dark ones as '.'. In the solution grid 'x'
marks a light to press.

Examples:
  lightsout show
  lightsout show --seed 2504604244
  lightsout show --seed 42 --size 9 --strength 12`,
	Args: cobra.NoArgs,
	Run:  runShow,
}

func init() {
	addBoardFlags(showCmd)
}

func runShow(cmd *cobra.Command, args []string) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		fail("%v", err)
	}
	seed, err := seedValue(flagSeed)
	if err != nil {
		fail("%v", err)
	}

	s := lightsout.NewSession(cfg.Board.Size, cfg.Board.Strength, nil)
	if seed != 0 {
		s.ResetWithSeed(seed)
	}
	writeShow(cmd.OutOrStdout(), s)
}

// writeShow prints the session's board, generation moves and solution.
func writeShow(w io.Writer, s *lightsout.Session) {
	size := s.Size()
	fmt.Fprintf(w, "Seed:     %d\n", s.Seed())
	fmt.Fprintf(w, "Board:    %dx%d\n", size, size)
	fmt.Fprintf(w, "Strength: %d\n", s.Strength())
	fmt.Fprintf(w, "Lit:      %d\n\n", s.Board().LitCount())
	fmt.Fprintln(w, s.Board().String())

	if moves := s.Moves(); len(moves) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Generation presses:")
		fmt.Fprintln(w, movesTable(moves))
	}

	presses, ok := lightsout.Solve(s.Board())
	fmt.Fprintln(w)
	if !ok {
		fmt.Fprintln(w, "No solution.")
		return
	}
	fmt.Fprintf(w, "Solution (%d presses, one of 2^%d):\n",
		lightsout.PressCount(presses), lightsout.Nullity(size))
	fmt.Fprintln(w, pressGrid(presses, size))
}

// movesTable lays the generation presses out as a table.
func movesTable(moves []core.Point) string {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "X", Width: 4},
		{Title: "Y", Width: 4},
	}
	rows := make([]table.Row, 0, len(moves))
	for i, m := range moves {
		rows = append(rows, table.Row{strconv.Itoa(i + 1), strconv.Itoa(m.X), strconv.Itoa(m.Y)})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
	)
	styles := table.DefaultStyles()
	styles.Selected = styles.Cell
	t.SetStyles(styles)
	return t.View()
}

// pressGrid draws a press set as a grid with 'x' for each press.
func pressGrid(presses []bool, size int) string {
	var sb strings.Builder
	for y := range size {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range size {
			if presses[y*size+x] {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
