package term

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/blockfall/client/ui"
	"github.com/cbodonnell/blockfall/pkg/leaderboard"
	"github.com/cbodonnell/blockfall/pkg/palette"
	"github.com/cbodonnell/blockfall/pkg/session"
	"github.com/cbodonnell/blockfall/pkg/tetris"
	"github.com/gdamore/tcell/v2"
)

const (
	boardX = 2
	boardY = 1
	// cellWidth is the number of columns a board cell takes, so cells come out roughly square.
	cellWidth = 2
	sideX     = boardX + tetris.DefaultCols*cellWidth + 4
)

var (
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	errorStyle  = tcell.StyleDefault.Foreground(rgb(palette.Red))
	borderStyle = tcell.StyleDefault.Foreground(rgb(palette.LightBlue))
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}

func drawCentered(s tcell.Screen, cx, y int, text string, st tcell.Style) {
	drawText(s, cx-len([]rune(text))/2, y, text, st)
}

func render(s tcell.Screen, sess *session.Session) {
	s.Clear()
	switch sess.Mode() {
	case session.ModeMenu:
		renderMenu(s, sess)
	case session.ModePlaying:
		renderGame(s, sess)
	case session.ModeGameOver:
		renderGameOver(s, sess)
	}
	s.Show()
}

func renderMenu(s tcell.Screen, sess *session.Session) {
	w, _ := s.Size()
	cx := w / 2
	drawCentered(s, cx, 2, "B L O C K F A L L", titleStyle.Foreground(rgb(palette.Cyan)))
	drawCentered(s, cx, 5, "Press ENTER to Start", textStyle)
	drawCentered(s, cx, 6, "Press ESC to Quit", textStyle)
	drawCentered(s, cx, 9, "Top Scores", titleStyle)
	drawScores(s, cx, 11, sess.TopScores(), sess.TopScoresError())
}

func renderGame(s tcell.Screen, sess *session.Session) {
	engine := sess.Engine()
	board := engine.Board()

	// frame
	right := boardX + board.Cols()*cellWidth
	bottom := boardY + board.Rows()
	for y := boardY; y < bottom; y++ {
		s.SetContent(boardX-1, y, '│', nil, borderStyle)
		s.SetContent(right, y, '│', nil, borderStyle)
	}
	for x := boardX; x < right; x++ {
		s.SetContent(x, bottom, '─', nil, borderStyle)
	}
	s.SetContent(boardX-1, bottom, '└', nil, borderStyle)
	s.SetContent(right, bottom, '┘', nil, borderStyle)

	background := rgb(palette.DarkGrey)
	for r := 0; r < board.Rows(); r++ {
		for c := 0; c < board.Cols(); c++ {
			drawCell(s, r, c, tcell.StyleDefault.Background(rgb(palette.KindColor(board.Cell(r, c)))), ' ')
		}
	}
	current := engine.Current()
	for _, p := range engine.Ghost() {
		drawCell(s, p.Row, p.Col, tcell.StyleDefault.Background(background).Foreground(rgb(palette.KindColor(current.Kind))), '░')
	}
	for _, p := range current.Cells {
		drawCell(s, p.Row, p.Col, tcell.StyleDefault.Background(rgb(palette.KindColor(current.Kind))), ' ')
	}

	level := sess.Level()
	themeStyle := titleStyle.Foreground(rgb(palette.ThemeColor(level.Theme)))
	drawText(s, sideX, boardY, "Score", themeStyle)
	drawText(s, sideX, boardY+1, fmt.Sprintf("%d", engine.Score()), textStyle)
	drawText(s, sideX, boardY+3, "Level", themeStyle)
	drawText(s, sideX, boardY+4, fmt.Sprintf("%d", level.Number), textStyle)
	drawText(s, sideX, boardY+6, "Lines", themeStyle)
	drawText(s, sideX, boardY+7, fmt.Sprintf("%d", engine.Lines()), textStyle)
	drawText(s, sideX, boardY+9, "Next", themeStyle)
	drawPreview(s, sideX, boardY+11, engine.Next())

	drawText(s, sideX, bottom-4, "←/→ move  ↑ rotate", dimStyle)
	drawText(s, sideX, bottom-3, "↓ soft    space drop", dimStyle)
	drawText(s, sideX, bottom-2, "esc give up", dimStyle)
}

func drawCell(s tcell.Screen, row, col int, st tcell.Style, ch rune) {
	x := boardX + col*cellWidth
	y := boardY + row
	for i := 0; i < cellWidth; i++ {
		s.SetContent(x+i, y, ch, nil, st)
	}
}

func drawPreview(s tcell.Screen, x, y int, next tetris.PieceView) {
	if len(next.Cells) == 0 {
		return
	}
	minRow, minCol := next.Cells[0].Row, next.Cells[0].Col
	for _, c := range next.Cells[1:] {
		minRow, minCol = min(minRow, c.Row), min(minCol, c.Col)
	}
	st := tcell.StyleDefault.Background(rgb(palette.KindColor(next.Kind)))
	for _, c := range next.Cells {
		cx := x + (c.Col-minCol)*cellWidth
		for i := 0; i < cellWidth; i++ {
			s.SetContent(cx+i, y+c.Row-minRow, ' ', nil, st)
		}
	}
}

func renderGameOver(s tcell.Screen, sess *session.Session) {
	w, _ := s.Size()
	cx := w / 2
	drawCentered(s, cx, 2, "GAME OVER", titleStyle.Foreground(rgb(palette.Red)))
	drawCentered(s, cx, 4, fmt.Sprintf("Your Score: %d", sess.Engine().Score()), textStyle)

	y := 6
	switch {
	case sess.NameEntryActive():
		name := fmt.Sprintf("Name: %-*s", leaderboard.MaxNameLength, sess.Name()+"_")
		drawCentered(s, cx, y, name, textStyle)
		if err := sess.SaveError(); err != nil {
			drawCentered(s, cx, y+1, ui.Describe(err, "Could not save score. Press ENTER to retry."), errorStyle)
		}
		drawCentered(s, cx, y+2, "ENTER to Save, ESC for Menu", dimStyle)
	case sess.Saved():
		drawCentered(s, cx, y, "Score saved!", textStyle)
		drawCentered(s, cx, y+2, "ENTER to Restart, ESC for Menu", dimStyle)
	default:
		drawCentered(s, cx, y, "Scores are not being saved", dimStyle)
		drawCentered(s, cx, y+2, "ENTER to Restart, ESC for Menu", dimStyle)
	}

	drawCentered(s, cx, y+5, "Top Scores", titleStyle)
	drawScores(s, cx, y+7, sess.TopScores(), sess.TopScoresError())
}

func drawScores(s tcell.Screen, cx, y int, entries []leaderboard.Entry, err error) {
	if err != nil {
		drawCentered(s, cx, y, err.Error(), errorStyle)
		return
	}
	if len(entries) == 0 {
		drawCentered(s, cx, y, "No scores yet", dimStyle)
		return
	}
	for i, e := range entries {
		line := fmt.Sprintf("%2d. %-*s %8d", i+1, leaderboard.MaxNameLength, e.Name, e.Score)
		drawCentered(s, cx, y+i, line, textStyle)
	}
}
