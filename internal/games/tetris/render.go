package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth = 2  // each board cell is drawn as two characters
	hudWidth  = 16 // side panel width
	hudGap    = 2  // space between board and side panel
	titleRows = 1
)

// MinSize returns the smallest terminal that fits the board and side panel.
func (g *Game) MinSize() (int, int) {
	boardW, boardH := g.boardExtent()
	return boardW + hudGap + hudWidth, boardH + titleRows
}

func (g *Game) boardExtent() (int, int) {
	return g.cfg.Grid.Cols*cellWidth + 2, g.cfg.Grid.Rows + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.session.Snapshot()
	minW, _ := g.MinSize()
	boardW, boardH := g.boardExtent()
	board := core.NewRect((g.screenW-minW)/2, titleRows, boardW, boardH)

	title := "TETRIS"
	dst.DrawTextColored(board.X+(boardW-len(title))/2, 0, title, core.ColorBrightCyan)

	renderBoard(dst, board, snap)
	renderHUD(dst, board.Right()+hudGap, board.Y+1, snap)

	switch {
	case snap.Status == StatusGameOver:
		renderOverlay(dst, board, core.ColorBrightRed, "GAME OVER", "Press R to replay")
	case g.paused:
		renderOverlay(dst, board, core.ColorBrightYellow, "PAUSED", "Press P to resume")
	}
}

// renderBoard draws the frame, frozen cells and the falling piece.
func renderBoard(dst *core.Screen, frame core.Rect, snap Snapshot) {
	dst.DrawBox(frame, core.ColorGray)

	for row := 0; row < snap.Rows; row++ {
		y := frame.Y + 1 + row
		for col := 0; col < snap.Cols; col++ {
			x := frame.X + 1 + col*cellWidth
			c := snap.ColorAt(col, row)
			if c == core.ColorDefault {
				dst.DrawTextColored(x, y, " .", core.ColorGray)
				continue
			}
			dst.DrawTextColored(x, y, "[]", c)
		}
	}
}

func renderHUD(dst *core.Screen, x, y int, snap Snapshot) {
	lines := []struct {
		text  string
		color core.Color
	}{
		{"SCORE", core.ColorGray},
		{fmt.Sprintf("%d", snap.Score), core.ColorBrightWhite},
		{"", core.ColorDefault},
		{"LEVEL", core.ColorGray},
		{fmt.Sprintf("%d", snap.Level), core.ColorBrightWhite},
		{"", core.ColorDefault},
		{"LINES", core.ColorGray},
		{fmt.Sprintf("%d", snap.Lines), core.ColorBrightWhite},
	}
	for i, l := range lines {
		dst.DrawTextColored(x, y+i, l.text, l.color)
	}

	if snap.HasPiece {
		dst.DrawTextColored(x, y+len(lines)+1, "PIECE", core.ColorGray)
		dst.DrawTextColored(x, y+len(lines)+2, snap.PieceShape.String(), snap.PieceColor)
	}
}

// renderOverlay writes two centered lines over the middle of the board.
func renderOverlay(dst *core.Screen, frame core.Rect, c core.Color, headline, hint string) {
	midY := frame.Y + frame.H/2
	centered := func(y int, text string, col core.Color) {
		x := frame.X + (frame.W-len(text))/2
		dst.DrawTextColored(x-1, y, " "+text+" ", col)
	}
	centered(midY-1, headline, c)
	centered(midY+1, hint, core.ColorWhite)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.MinSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorBrightRed)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH), core.ColorDefault)
}
