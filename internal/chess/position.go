package chess

// Position = board + king squares + side to move. It is a plain value:
// copying it yields an independent board.
type Position struct {
	Board Board
	Kings [2]Square
	Turn  Color
	Hash  uint64
}

// NewEmptyPosition returns an empty board with White to move.
func NewEmptyPosition() *Position {
	p := &Position{Kings: [2]Square{NoSquare, NoSquare}, Turn: White}
	p.Board.init()
	p.Hash = p.CalculateHash()
	return p
}

// NewInitialPosition sets up the standard layout, White to move.
func NewInitialPosition() *Position {
	p := NewEmptyPosition()
	counts := map[Piece]int{}
	next := func(color Color, kind Kind) string {
		key := Piece{Color: color, Kind: kind}
		counts[key]++
		return pieceID(color, kind, counts[key])
	}
	for _, side := range []struct {
		color         Color
		back, pawnRow int
	}{
		{Black, 0, 1},
		{White, 7, 6},
	} {
		for c, kind := range backRank {
			p.Place(Sq(side.back, c), NewPiece(next(side.color, kind), side.color, kind))
		}
		for c := 0; c < Cols; c++ {
			p.Place(Sq(side.pawnRow, c), NewPiece(next(side.color, Pawn), side.color, Pawn))
		}
	}
	return p
}

// Place puts pc on sq, replacing any occupant, and keeps the king squares
// in sync.
func (p *Position) Place(sq Square, pc Piece) {
	cell := p.Board.Cell(sq)
	if cell == nil {
		return
	}
	if !cell.Empty() {
		p.Remove(sq)
	}
	if pc.IsZero() {
		return
	}
	cell.SetPiece(pc)
	p.Hash ^= pieceHashKey(pc, sq)
	if pc.Kind == King && pc.Color.Valid() {
		p.Kings[pc.Color] = sq
	}
}

// Remove clears sq and returns what was there.
func (p *Position) Remove(sq Square) Piece {
	cell := p.Board.Cell(sq)
	if cell == nil || cell.Empty() {
		return Piece{}
	}
	pc, _ := cell.Piece()
	cell.RemovePiece()
	p.Hash ^= pieceHashKey(pc, sq)
	if pc.Kind == King && pc.Color.Valid() && p.Kings[pc.Color] == sq {
		p.Kings[pc.Color] = NoSquare
	}
	return pc
}

func (p *Position) SetTurn(c Color) {
	if p.Turn != c {
		p.Hash ^= zobristSide
	}
	p.Turn = c
}

// KingSquare returns NoSquare when that side has no king on the board.
func (p *Position) KingSquare(c Color) Square {
	if !c.Valid() {
		return NoSquare
	}
	return p.Kings[c]
}

func lastRank(c Color) int {
	if c == White {
		return 0
	}
	return Rows - 1
}

// apply executes from->to without any legality check: capture, automatic
// queen promotion, king square bookkeeping and turn flip.
func (p *Position) apply(from, to Square) Move {
	pc := p.Remove(from)
	captured := p.Remove(to)
	mv := Move{From: from, To: to, Piece: pc, Captured: captured}
	if pc.Kind == Pawn && to.Row == lastRank(pc.Color) {
		pc = promote(pc)
		mv.Promoted = true
	}
	p.Place(to, pc)
	p.SetTurn(pc.Color.Opposite())
	return mv
}

func promote(pawn Piece) Piece {
	return NewPiece(pawn.ID+"=Q", pawn.Color, Queen)
}

// hypothetical returns a copy of p with from->to played. p is not touched.
func (p *Position) hypothetical(from, to Square) Position {
	np := *p
	np.apply(from, to)
	return np
}
