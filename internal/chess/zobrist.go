package chess

const zobristKinds = 7 // Kind range [1..6], 0 unused

var (
	zobristPieces [2][zobristKinds][NumSquares]uint64
	zobristSide   uint64
)

func init() {
	seed := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		seed += 0x9E3779B97F4A7C15
		z := seed
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
	for side := 0; side < 2; side++ {
		for k := 1; k < zobristKinds; k++ {
			for sq := 0; sq < NumSquares; sq++ {
				zobristPieces[side][k][sq] = next()
			}
		}
	}
	zobristSide = next()
}

func pieceHashKey(pc Piece, sq Square) uint64 {
	if pc.IsZero() || !pc.Color.Valid() || !sq.OnBoard() {
		return 0
	}
	k := int(pc.Kind)
	if k <= 0 || k >= zobristKinds {
		return 0
	}
	return zobristPieces[pc.Color][k][sq.index()]
}

// CalculateHash recomputes the Zobrist hash from scratch. Place, Remove and
// SetTurn keep Hash current incrementally.
func (p *Position) CalculateHash() uint64 {
	var h uint64
	p.Board.Each(func(c *Cell) {
		h ^= pieceHashKey(c.piece, c.Square)
	})
	if p.Turn == Black {
		h ^= zobristSide
	}
	return h
}
