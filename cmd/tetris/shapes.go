package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List the piece catalogue",
	Long:  `Prints every piece in its spawn orientation and the colors a piece can take.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		writeShapes(cmd.OutOrStdout())
	},
}

func writeShapes(w io.Writer) {
	for _, s := range tetris.Shapes() {
		t := s.Template()
		fmt.Fprintf(w, "%s  (%d cells, %dx%d)\n", s, t.Count(), t.Width(), t.Height())
		for _, row := range t {
			var sb strings.Builder
			sb.WriteString("  ")
			for _, on := range row {
				if on {
					sb.WriteString("[]")
				} else {
					sb.WriteString("  ")
				}
			}
			fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
		}
		fmt.Fprintln(w)
	}

	names := make([]string, len(tetris.Palette))
	for i, c := range tetris.Palette {
		names[i] = c.String()
	}
	fmt.Fprintf(w, "Colors: %s\n", strings.Join(names, ", "))
}
