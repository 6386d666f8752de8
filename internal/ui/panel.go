package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"chessgame/internal/chess"
)

// InfoPanel lists the moves played so far, two plies per line.
type InfoPanel struct {
	box *tview.TextView
}

func NewInfoPanel() *InfoPanel {
	p := &InfoPanel{box: tview.NewTextView()}
	p.box.SetDynamicColors(true)
	p.box.SetTextAlign(tview.AlignLeft)
	return p
}

func (p *InfoPanel) Box() *tview.TextView { return p.box }

func (p *InfoPanel) SetHistory(moves []chess.Move) {
	p.box.SetText(HistoryText(moves))
	p.box.ScrollToEnd()
}

func HistoryText(moves []chess.Move) string {
	var sb strings.Builder
	sb.WriteString("[white::b]Moves[-:-:-]\n")
	for i := 0; i < len(moves); i += 2 {
		fmt.Fprintf(&sb, "%3d. %-6s", i/2+1, moves[i].UCI())
		if i+1 < len(moves) {
			sb.WriteString(moves[i+1].UCI())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CreateGameLayout puts the board beside the move list with the status
// panel underneath.
func CreateGameLayout(board *ChessBoardUI, hint *tview.TextView) *tview.Flex {
	panel := NewInfoPanel()
	board.panel = panel
	board.refreshHint()

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(panel.Box(), 20, 0, false)

	frame := tview.NewFlex().SetDirection(tview.FlexRow)
	frame.AddItem(boardRow, 0, 1, true)
	frame.AddItem(hint, 5, 0, false)
	return frame
}
