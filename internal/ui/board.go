// Package ui draws a chess game in the terminal with tview and lets the
// player drive it with the keyboard.
package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"chessgame/internal/chess"
	"chessgame/internal/clock"
	"chessgame/internal/config"
)

const cellWidth = 3

type ChessBoardUI struct {
	Box *tview.Box

	mu      sync.Mutex // guards game; the clock expires on its own goroutine
	game    *chess.Game
	clock   *clock.Clock
	app     *tview.Application
	hint    *tview.TextView
	panel   *InfoPanel
	cfg     *config.Config
	styles  []tcell.Color
	cursor  chess.Square
	message string // last rejected action
}

func NewChessBoard(app *tview.Application, c *config.Config, hint *tview.TextView, g *chess.Game, clk *clock.Clock) *ChessBoardUI {
	b := &ChessBoardUI{
		Box:    tview.NewBox(),
		game:   g,
		clock:  clk,
		app:    app,
		hint:   hint,
		cursor: chess.Sq(chess.Rows-1, 4),
	}
	b.SetConfig(c)
	b.Box.SetDrawFunc(b.draw)
	if clk != nil {
		clk.OnTick(func(time.Duration) { b.redraw() })
	}
	b.refreshHint()
	return b
}

func (b *ChessBoardUI) SetConfig(c *config.Config) {
	b.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.LightSquare), // 0
		tcell.PaletteColor(c.Theme.Colors.DarkSquare),  // 1
		tcell.PaletteColor(c.Theme.Colors.WhitePiece),  // 2
		tcell.PaletteColor(c.Theme.Colors.BlackPiece),  // 3
		tcell.PaletteColor(c.Theme.Colors.Selected),    // 4
		tcell.PaletteColor(c.Theme.Colors.Destination), // 5
		tcell.PaletteColor(c.Theme.Colors.Check),       // 6
		tcell.PaletteColor(c.Theme.Colors.Cursor),      // 7
	}
	b.cfg = c
}

func (b *ChessBoardUI) Cursor() chess.Square { return b.cursor }

// MoveCursor shifts the cursor, staying on the board.
func (b *ChessBoardUI) MoveCursor(dr, dc int) {
	next := chess.Sq(b.cursor.Row+dr, b.cursor.Col+dc)
	if next.OnBoard() {
		b.cursor = next
	}
}

// Activate clicks the square under the cursor. The clock is restarted or
// stopped under the same lock as the move, so an expiry queued behind it
// sees the new state.
func (b *ChessBoardUI) Activate() {
	b.mu.Lock()
	b.message = ""
	if b.clock != nil && b.clock.Expired() {
		b.timeoutLocked()
	}
	plies := len(b.game.History())
	if err := b.game.Click(b.cursor); err != nil {
		b.message = err.Error()
	}
	moved := len(b.game.History()) != plies
	if _, over := b.game.Result(); b.clock != nil {
		switch {
		case over:
			b.clock.Stop()
		case moved:
			b.clock.Reset()
		}
	}
	b.mu.Unlock()
	b.refreshHint()
}

// NewGame resets the board, the cursor and the clock.
func (b *ChessBoardUI) NewGame() {
	b.mu.Lock()
	b.game.Reset()
	b.message = ""
	b.cursor = chess.Sq(chess.Rows-1, 4)
	if b.clock != nil {
		b.clock.Reset()
	}
	b.mu.Unlock()
	b.refreshHint()
}

// Expire forfeits the side to move. It is the clock's expiry callback and
// does nothing if a move or a new game reset the clock while it waited.
func (b *ChessBoardUI) Expire() {
	b.mu.Lock()
	if b.clock != nil && !b.clock.Expired() {
		b.mu.Unlock()
		return
	}
	b.timeoutLocked()
	b.mu.Unlock()
	b.redraw()
}

func (b *ChessBoardUI) timeoutLocked() {
	if _, over := b.game.Result(); over {
		return
	}
	if err := b.game.DeclareTimeout(b.game.Turn()); err != nil {
		b.message = err.Error()
	}
}

// HandleKey is the board's input capture.
func (b *ChessBoardUI) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		b.MoveCursor(-1, 0)
	case tcell.KeyDown:
		b.MoveCursor(1, 0)
	case tcell.KeyLeft:
		b.MoveCursor(0, -1)
	case tcell.KeyRight:
		b.MoveCursor(0, 1)
	case tcell.KeyEnter:
		b.Activate()
	case tcell.KeyRune:
		switch event.Rune() {
		case 'k':
			b.MoveCursor(-1, 0)
		case 'j':
			b.MoveCursor(1, 0)
		case 'h':
			b.MoveCursor(0, -1)
		case 'l':
			b.MoveCursor(0, 1)
		case ' ':
			b.Activate()
		case 'n':
			b.NewGame()
		default:
			return event
		}
	default:
		return event
	}
	return nil
}

func (b *ChessBoardUI) redraw() {
	b.refreshHint()
	if b.app == nil {
		return
	}
	go b.app.QueueUpdateDraw(func() {})
}

func (b *ChessBoardUI) clockLabel() string {
	if b.clock == nil {
		return ""
	}
	return b.clock.Label()
}

func (b *ChessBoardUI) refreshHint() {
	b.mu.Lock()
	text := StatusText(b.game, b.clockLabel(), b.message)
	history := b.game.History()
	b.mu.Unlock()

	if b.hint != nil {
		b.hint.SetText(text)
	}
	if b.panel != nil {
		b.panel.SetHistory(history)
	}
}

// StatusText is the status panel body: turn or result, clock, last error,
// controls.
func StatusText(g *chess.Game, clockLabel, message string) string {
	var sb strings.Builder
	if res, over := g.Result(); over {
		switch res.Reason {
		case chess.ReasonTimeout:
			fmt.Fprintf(&sb, "  %s %s wins\n", clock.TimesUp, res.Winner)
		default:
			fmt.Fprintf(&sb, "  Checkmate! %s wins\n", res.Winner)
		}
		sb.WriteString("  n · new game   q · quit")
		return sb.String()
	}

	fmt.Fprintf(&sb, "  %s to move", g.Turn())
	if g.InCheck(g.Turn()) {
		sb.WriteString(" (check)")
	}
	if clockLabel != "" {
		fmt.Fprintf(&sb, "   %s", clockLabel)
	}
	sb.WriteByte('\n')
	if message != "" {
		fmt.Fprintf(&sb, "  %s\n", message)
	}
	sb.WriteString("  hjkl/↑↓←→ move   ⏎ select/move   n new   q quit")
	return sb.String()
}

func (b *ChessBoardUI) cellStyle(c *chess.Cell) tcell.Style {
	bg := b.styles[(c.Row+c.Col)%2]
	switch {
	case c.Square == b.cursor:
		bg = b.styles[7]
	case c.InCheck():
		bg = b.styles[6]
	case c.IsSelected():
		bg = b.styles[4]
	case c.IsDestination():
		bg = b.styles[5]
	}
	fg := b.styles[2]
	if p, ok := c.Piece(); ok && p.Color == chess.Black {
		fg = b.styles[3]
	}
	return tcell.StyleDefault.Background(bg).Foreground(fg)
}

func (b *ChessBoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	left := x + 2
	b.game.Board().Each(func(c *chess.Cell) {
		style := b.cellStyle(c)
		p, _ := c.Piece()
		r := Glyph(p, b.cfg.Theme.UnicodePieces)
		if r == 0 {
			r = b.cfg.Theme.Symbols.Empty
			if c.IsDestination() {
				r = b.cfg.Theme.Symbols.Destination
			}
		}
		cx := left + c.Col*cellWidth
		screen.SetContent(cx, y+c.Row, ' ', nil, style)
		screen.SetContent(cx+1, y+c.Row, r, nil, style)
		screen.SetContent(cx+2, y+c.Row, ' ', nil, style)
	})

	for r := 0; r < chess.Rows; r++ {
		screen.SetContent(x, y+r, rune('8'-r), nil, tcell.StyleDefault)
	}
	for c := 0; c < chess.Cols; c++ {
		screen.SetContent(left+c*cellWidth+1, y+chess.Rows, rune('a'+c), nil, tcell.StyleDefault)
	}
	return x, y, chess.Cols*cellWidth + 2, chess.Rows + 1
}
