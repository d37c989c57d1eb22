package inter

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"varichess/core"
)

// BoardView owns the tcell screen used to render the board between moves.
// It holds no game state of its own; every draw call takes the Position
// to render.
type BoardView struct {
	screen tcell.Screen
}

var (
	lightSquareStyle = tcell.StyleDefault.Background(tcell.ColorTan).Foreground(tcell.ColorBlack)
	darkSquareStyle  = tcell.StyleDefault.Background(tcell.ColorSaddleBrown).Foreground(tcell.ColorWhite)
	statusStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

func pieceGlyph(sq core.Square) rune {
	var glyphs = [...]rune{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if sq.Kind == core.NoPiece {
		return '.'
	}
	g := glyphs[sq.Kind]
	if sq.Color == core.Black {
		g += 'a' - 'A'
	}
	return g
}

// NewBoardView initializes a tcell screen for the terminal. Callers must
// call Close when the session ends.
func NewBoardView() (*BoardView, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault)
	return &BoardView{screen: screen}, nil
}

func (v *BoardView) Close() {
	v.screen.Fini()
}

// Render draws pos's board with rank 8 at the top, three terminal columns
// per square, plus a one-line status message underneath.
func (v *BoardView) Render(pos *core.Position, status string) {
	v.screen.Clear()

	for rank := 7; rank >= 0; rank-- {
		row := 7 - rank
		for file := 0; file < 8; file++ {
			style := lightSquareStyle
			if (rank+file)%2 == 0 {
				style = darkSquareStyle
			}
			sq := pos.PieceAt(core.Coord{File: file, Rank: rank})
			v.screen.SetContent(file*3, row, pieceGlyph(sq), nil, style)
			v.screen.SetContent(file*3+1, row, ' ', nil, style)
			v.screen.SetContent(file*3+2, row, ' ', nil, style)
		}
	}

	for i, r := range status {
		v.screen.SetContent(i, 9, r, nil, statusStyle)
	}

	v.screen.Show()
}

// ReadLine blocks for a single line of text typed by the player,
// displayed on the prompt row below the board.
func (v *BoardView) ReadLine(prompt string) string {
	var buf []rune
	for i, r := range prompt {
		v.screen.SetContent(i, 10, r, nil, statusStyle)
	}
	v.screen.Show()

	for {
		ev := v.screen.PollEvent()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		switch key.Key() {
		case tcell.KeyEnter:
			return string(buf)
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case tcell.KeyRune:
			buf = append(buf, key.Rune())
		}

		for i := 0; i < 40; i++ {
			v.screen.SetContent(len(prompt)+i, 10, ' ', nil, statusStyle)
		}
		for i, r := range string(buf) {
			v.screen.SetContent(len(prompt)+i, 10, r, nil, statusStyle)
		}
		v.screen.Show()
	}
}

// FormatStatus builds the one-line status string shown under the board:
// the side to move and whether it is in check. It shows no evaluation
// score.
func FormatStatus(pos *core.Position) string {
	mover := "White"
	if pos.SideToMove == core.Black {
		mover = "Black"
	}
	suffix := ""
	if pos.InCheck() {
		suffix = " (in check)"
	}
	return fmt.Sprintf("%s to move%s", mover, suffix)
}
