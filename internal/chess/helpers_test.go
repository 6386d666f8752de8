package chess

import (
	"sort"
	"testing"
)

func mustDecode(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := DecodePosition(fen)
	if err != nil {
		t.Fatalf("decode %q: %v", fen, err)
	}
	return pos
}

func squareSet(sqs []Square) map[Square]bool {
	m := make(map[Square]bool, len(sqs))
	for _, s := range sqs {
		m[s] = true
	}
	return m
}

func sameSquares(t *testing.T, got []Square, want ...Square) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	gs := squareSet(got)
	if len(gs) != len(got) {
		t.Fatalf("duplicates in %v", got)
	}
	for _, w := range want {
		if !gs[w] {
			t.Fatalf("got %v, want %v (missing %s)", got, want, w)
		}
	}
}

func sortedSquares(sqs []Square) []Square {
	out := append([]Square(nil), sqs...)
	sort.Slice(out, func(i, j int) bool { return out[i].index() < out[j].index() })
	return out
}

func placeAll(p *Position, placements map[Square]Piece) {
	for sq, pc := range placements {
		p.Place(sq, pc)
	}
}

var (
	whiteKing   = NewPiece("WK", White, King)
	blackKing   = NewPiece("BK", Black, King)
	whiteQueen  = NewPiece("WQ", White, Queen)
	blackQueen  = NewPiece("BQ", Black, Queen)
	whiteRook   = NewPiece("WR01", White, Rook)
	blackRook   = NewPiece("BR01", Black, Rook)
	whiteBishop = NewPiece("WB01", White, Bishop)
	blackBishop = NewPiece("BB01", Black, Bishop)
	whiteKnight = NewPiece("WN01", White, Knight)
	blackKnight = NewPiece("BN01", Black, Knight)
	whitePawn   = NewPiece("WP01", White, Pawn)
	blackPawn   = NewPiece("BP01", Black, Pawn)
)
