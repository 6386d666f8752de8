package chess

var (
	rookDirs   = [4][2]int{{-1, 0}, {+1, 0}, {0, -1}, {0, +1}}
	bishopDirs = [4][2]int{{-1, -1}, {-1, +1}, {+1, -1}, {+1, +1}}
	kingSteps  = [8][2]int{{-1, -1}, {-1, 0}, {-1, +1}, {0, -1}, {0, +1}, {+1, -1}, {+1, 0}, {+1, +1}}
)

var knightJumps = [8][2]int{
	{-2, -1}, {-2, +1}, {-1, -2}, {-1, +2},
	{+1, -2}, {+1, +2}, {+2, -1}, {+2, +1},
}

// Destinations returns every square pc can reach from `from` on b, ignoring
// whether its own king is left attacked. Each call returns a fresh slice.
func (pc Piece) Destinations(b *Board, from Square) []Square {
	var out []Square
	switch pc.Kind {
	case King:
		genSteps(b, from, pc.Color, kingSteps[:], &out)
	case Queen:
		genRays(b, from, pc.Color, rookDirs[:], &out)
		genRays(b, from, pc.Color, bishopDirs[:], &out)
	case Rook:
		genRays(b, from, pc.Color, rookDirs[:], &out)
	case Bishop:
		genRays(b, from, pc.Color, bishopDirs[:], &out)
	case Knight:
		genSteps(b, from, pc.Color, knightJumps[:], &out)
	case Pawn:
		genPawnMoves(b, from, pc.Color, &out)
	}
	return out
}

// Sliders: walk each ray until the edge, an own piece (excluded) or the first
// enemy piece (included).
func genRays(b *Board, from Square, side Color, dirs [][2]int, out *[]Square) {
	for _, d := range dirs {
		to := from.offset(d[0], d[1])
		for to.OnBoard() {
			pc := b.At(to)
			if pc.IsZero() {
				*out = append(*out, to)
			} else {
				if pc.Color != side {
					*out = append(*out, to)
				}
				break
			}
			to = to.offset(d[0], d[1])
		}
	}
}

// King and knight: single jumps, no blocking.
func genSteps(b *Board, from Square, side Color, steps [][2]int, out *[]Square) {
	for _, d := range steps {
		to := from.offset(d[0], d[1])
		if !to.OnBoard() {
			continue
		}
		if dst := b.At(to); dst.IsZero() || dst.Color != side {
			*out = append(*out, to)
		}
	}
}
