package chess

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

var kindLetter = map[Kind]rune{
	King:   'K',
	Queen:  'Q',
	Rook:   'R',
	Bishop: 'B',
	Knight: 'N',
	Pawn:   'P',
}

var letterToKind = map[rune]Kind{
	'k': King,
	'q': Queen,
	'r': Rook,
	'b': Bishop,
	'n': Knight,
	'p': Pawn,
}

func pieceToChar(p Piece) rune {
	if p.IsZero() {
		return '.'
	}
	ch, ok := kindLetter[p.Kind]
	if !ok {
		return '.'
	}
	if p.Color == Black {
		return unicode.ToLower(ch)
	}
	return ch
}

// Encode writes the piece placement (row 0 first, digits for empty runs)
// followed by " w" or " b".
func (p *Position) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := p.Board.cells[r][c].piece
			if pc.IsZero() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if p.Turn == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	return sb.String()
}

// DecodePosition reads a FEN placement and optional side to move. Castling,
// en passant and clock fields are accepted and ignored. A side may lack a
// king (test fixtures do), but never have two.
func DecodePosition(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return nil, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, errors.Wrapf(ErrInvalidFEN, "want %d rows, got %d", Rows, len(rows))
	}

	p := NewEmptyPosition()
	counts := map[Piece]int{}
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if c >= Cols {
				return nil, errors.Wrapf(ErrInvalidFEN, "row %d too long", r)
			}
			if ch >= '1' && ch <= '8' {
				c += int(ch - '0')
				continue
			}
			kind, ok := letterToKind[unicode.ToLower(ch)]
			if !ok {
				return nil, errors.Wrapf(ErrInvalidFEN, "unknown piece letter %q", ch)
			}
			color := Black
			if unicode.IsUpper(ch) {
				color = White
			}
			key := Piece{Color: color, Kind: kind}
			counts[key]++
			if kind == King && counts[key] > 1 {
				return nil, errors.Wrapf(ErrInvalidFEN, "two %s kings", color)
			}
			p.Place(Sq(r, c), NewPiece(pieceID(color, kind, counts[key]), color, kind))
			c++
		}
		if c != Cols {
			return nil, errors.Wrapf(ErrInvalidFEN, "row %d has %d columns", r, c)
		}
	}

	if len(parts) > 1 {
		switch parts[1] {
		case "w":
			p.SetTurn(White)
		case "b":
			p.SetTurn(Black)
		default:
			return nil, errors.Wrapf(ErrInvalidFEN, "side to move %q", parts[1])
		}
	}
	return p, nil
}
