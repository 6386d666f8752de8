package chess

// White pawns advance toward row 0, Black toward row 7.
func pawnDir(side Color) int {
	if side == White {
		return -1
	}
	return +1
}

func pawnStartRow(side Color) int {
	if side == White {
		return Rows - 2
	}
	return 1
}

func genPawnMoves(b *Board, from Square, side Color, out *[]Square) {
	dir := pawnDir(side)

	one := from.offset(dir, 0)
	if one.OnBoard() && b.At(one).IsZero() {
		*out = append(*out, one)
		two := from.offset(2*dir, 0)
		if from.Row == pawnStartRow(side) && two.OnBoard() && b.At(two).IsZero() {
			*out = append(*out, two)
		}
	}

	// diagonal only as a capture
	for _, dc := range []int{-1, +1} {
		to := from.offset(dir, dc)
		if !to.OnBoard() {
			continue
		}
		if dst := b.At(to); !dst.IsZero() && dst.Color != side {
			*out = append(*out, to)
		}
	}
}
