package chess

import (
	"fmt"
	"strconv"
)

const (
	Rows       = 8
	Cols       = 8
	NumSquares = Rows * Cols
)

// Square is a (row, col) pair. Row 0 is Black's back rank.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

var NoSquare = Square{Row: -1, Col: -1}

func Sq(row, col int) Square { return Square{Row: row, Col: col} }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func (s Square) OnBoard() bool { return onBoard(s.Row, s.Col) }

func (s Square) index() int { return s.Row*Cols + s.Col }

func (s Square) offset(dr, dc int) Square { return Square{Row: s.Row + dr, Col: s.Col + dc} }

func (s Square) String() string {
	return "(" + strconv.Itoa(s.Row) + ", " + strconv.Itoa(s.Col) + ")"
}

// Cell is one addressable square of the board. It owns at most one piece and
// carries renderer flags that never influence legality.
type Cell struct {
	Square

	piece       Piece
	selected    bool
	destination bool
	check       bool
}

func NewCell(sq Square, p Piece) *Cell {
	return &Cell{Square: sq, piece: p}
}

// Clone returns a new cell with the same contents. The clone is a distinct
// cell: it never compares identical to its source.
func (c *Cell) Clone() *Cell {
	cp := *c
	return &cp
}

func (c *Cell) Piece() (Piece, bool) { return c.piece, !c.piece.IsZero() }
func (c *Cell) Empty() bool          { return c.piece.IsZero() }

func (c *Cell) SetPiece(p Piece) { c.piece = p }
func (c *Cell) RemovePiece()     { c.piece = Piece{} }

func (c *Cell) Select()             { c.selected = true }
func (c *Cell) Deselect()           { c.selected = false }
func (c *Cell) IsSelected() bool    { return c.selected }
func (c *Cell) SetDestination()     { c.destination = true }
func (c *Cell) ClearDestination()   { c.destination = false }
func (c *Cell) IsDestination() bool { return c.destination }
func (c *Cell) SetCheck()           { c.check = true }
func (c *Cell) ClearCheck()         { c.check = false }
func (c *Cell) InCheck() bool       { return c.check }

func (c *Cell) String() string { return c.Square.String() }

// Board is always fully populated: an empty square is a Cell without a piece.
type Board struct {
	cells [Rows][Cols]Cell
}

func NewBoard() *Board {
	b := &Board{}
	b.init()
	return b
}

func (b *Board) init() {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			b.cells[r][c] = Cell{Square: Sq(r, c)}
		}
	}
}

// Cell returns nil for squares off the board.
func (b *Board) Cell(sq Square) *Cell {
	if !sq.OnBoard() {
		return nil
	}
	return &b.cells[sq.Row][sq.Col]
}

// At returns the piece on sq, or the zero Piece.
func (b *Board) At(sq Square) Piece {
	if !sq.OnBoard() {
		return Piece{}
	}
	return b.cells[sq.Row][sq.Col].piece
}

// Each visits every cell in row-major order.
func (b *Board) Each(fn func(c *Cell)) {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			fn(&b.cells[r][c])
		}
	}
}

func (b *Board) clearSelection() {
	b.Each(func(c *Cell) {
		c.Deselect()
		c.ClearDestination()
	})
}

func (b *Board) clearChecks() {
	b.Each(func(c *Cell) { c.ClearCheck() })
}

// String draws the board one rank per line, Black's back rank first.
func (b *Board) String() string {
	buf := make([]byte, 0, Rows*(Cols+1))
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			buf = append(buf, byte(pieceToChar(b.cells[r][c].piece)))
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

var backRank = [Cols]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func pieceID(color Color, kind Kind, n int) string {
	prefix := "W"
	if color == Black {
		prefix = "B"
	}
	letter := string(kindLetter[kind])
	if kind == King || kind == Queen {
		if n == 1 {
			return prefix + letter
		}
		return fmt.Sprintf("%s%s%d", prefix, letter, n)
	}
	return fmt.Sprintf("%s%s%02d", prefix, letter, n)
}
