// Package record exports finished or running games as PGN.
package record

import (
	"fmt"
	"strings"
	"time"

	nchess "github.com/notnil/chess"
	"github.com/pkg/errors"

	"chessgame/internal/chess"
)

const initialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"

// Tags are the PGN header fields a caller can set. Result and Termination are
// always derived from the game.
type Tags struct {
	Event string
	Site  string
	Date  time.Time
	White string
	Black string
}

// Replay plays the game's history into a notnil/chess game so SAN and
// outcomes can be rendered by a second rules implementation.
func Replay(g *chess.Game) (*nchess.Game, error) {
	ref := nchess.NewGame()
	if start := g.Start(); start != initialFEN {
		opt, err := nchess.FEN(start + " - - 0 1")
		if err != nil {
			return nil, errors.Wrapf(err, "start position %q", start)
		}
		ref = nchess.NewGame(opt)
	}
	for i, m := range g.History() {
		mv, err := nchess.UCINotation{}.Decode(ref.Position(), m.UCI())
		if err != nil {
			return nil, errors.Wrapf(err, "ply %d (%s)", i+1, m.UCI())
		}
		if err := ref.Move(mv); err != nil {
			return nil, errors.Wrapf(err, "ply %d (%s)", i+1, m.UCI())
		}
	}
	if res, over := g.Result(); over && res.Reason == chess.ReasonTimeout {
		ref.Resign(toRefColor(res.Winner.Opposite()))
	}
	return ref, nil
}

func toRefColor(c chess.Color) nchess.Color {
	if c == chess.Black {
		return nchess.Black
	}
	return nchess.White
}

// ResultString is the PGN result token.
func ResultString(g *chess.Game) string {
	res, over := g.Result()
	if !over {
		return "*"
	}
	switch res.Winner {
	case chess.White:
		return "1-0"
	case chess.Black:
		return "0-1"
	}
	return "*"
}

// movetext swaps notnil's trailing result token for result. notnil ends a
// game by itself on fivefold repetition or the 75-move rule, which this
// engine does not, so its token can disagree with the Result tag.
func movetext(body, result string) string {
	body = strings.TrimSpace(body)
	for _, tok := range []string{"1-0", "0-1", "1/2-1/2", "*"} {
		if body == tok {
			body = ""
			break
		}
		if strings.HasSuffix(body, " "+tok) {
			body = strings.TrimSpace(strings.TrimSuffix(body, tok))
			break
		}
	}
	if body == "" {
		return result
	}
	return body + " " + result
}

func termination(g *chess.Game) string {
	res, over := g.Result()
	if !over {
		return "unterminated"
	}
	if res.Reason == chess.ReasonTimeout {
		return "time forfeit"
	}
	return "normal"
}

// PGN renders the game with a seven tag roster plus Termination and, for
// games not started from the initial layout, SetUp/FEN.
func PGN(g *chess.Game, tags Tags) (string, error) {
	ref, err := Replay(g)
	if err != nil {
		return "", errors.WithMessage(err, "replay")
	}
	if tags.Date.IsZero() {
		tags.Date = time.Now()
	}

	var sb strings.Builder
	tag := func(k, v string) {
		if v == "" {
			v = "?"
		}
		fmt.Fprintf(&sb, "[%s %q]\n", k, v)
	}
	tag("Event", tags.Event)
	tag("Site", tags.Site)
	tag("Date", tags.Date.Format("2006.01.02"))
	tag("Round", "-")
	tag("White", tags.White)
	tag("Black", tags.Black)
	tag("Result", ResultString(g))
	tag("Termination", termination(g))
	if start := g.Start(); start != initialFEN {
		tag("SetUp", "1")
		tag("FEN", start+" - - 0 1")
	}
	sb.WriteByte('\n')

	sb.WriteString(movetext(ref.String(), ResultString(g)))
	sb.WriteByte('\n')
	return sb.String(), nil
}
