package chess

// Attacked reports whether sq is attacked by the side opposing `side`. It
// scans outward from sq, so a ray stops at the first occupied square whatever
// it holds.
func (b *Board) Attacked(sq Square, side Color) bool {
	if !sq.OnBoard() {
		return false
	}
	enemy := side.Opposite()

	// rook / queen
	if b.rayHits(sq, enemy, rookDirs[:], Rook) {
		return true
	}
	// bishop / queen
	if b.rayHits(sq, enemy, bishopDirs[:], Bishop) {
		return true
	}
	if b.jumpHits(sq, enemy, knightJumps[:], Knight) {
		return true
	}
	if b.jumpHits(sq, enemy, kingSteps[:], King) {
		return true
	}

	// an enemy pawn attacks diagonally toward us, so it sits one row ahead of
	// sq in our own direction of travel
	dir := pawnDir(side)
	for _, dc := range []int{-1, +1} {
		pc := b.At(sq.offset(dir, dc))
		if pc.Kind == Pawn && pc.Color == enemy {
			return true
		}
	}
	return false
}

func (b *Board) rayHits(sq Square, enemy Color, dirs [][2]int, slider Kind) bool {
	for _, d := range dirs {
		to := sq.offset(d[0], d[1])
		for to.OnBoard() {
			pc := b.At(to)
			if pc.IsZero() {
				to = to.offset(d[0], d[1])
				continue
			}
			if pc.Color == enemy && (pc.Kind == slider || pc.Kind == Queen) {
				return true
			}
			break
		}
	}
	return false
}

func (b *Board) jumpHits(sq Square, enemy Color, steps [][2]int, kind Kind) bool {
	for _, d := range steps {
		pc := b.At(sq.offset(d[0], d[1]))
		if pc.Kind == kind && pc.Color == enemy {
			return true
		}
	}
	return false
}

// KingInDanger reports whether side's king is attacked. A side without a king
// on the board is never in danger.
func (p *Position) KingInDanger(side Color) bool {
	ks := p.KingSquare(side)
	if ks == NoSquare {
		return false
	}
	return p.Board.Attacked(ks, side)
}

// IsCheckmate: side's king is attacked and no piece of side has a legal
// destination. A side that is not in check is never mated, stalemate
// included.
func (p *Position) IsCheckmate(side Color) bool {
	if !p.KingInDanger(side) {
		return false
	}
	return !p.HasLegalMove(side)
}

// HasLegalMove scans every piece of side until one legal destination is found.
func (p *Position) HasLegalMove(side Color) bool {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			pc := p.Board.cells[r][c].piece
			if pc.IsZero() || pc.Color != side {
				continue
			}
			if len(p.LegalDestinations(Sq(r, c))) > 0 {
				return true
			}
		}
	}
	return false
}
