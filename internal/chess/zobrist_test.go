package chess

import "testing"

func TestHashInitializedFromInitialAndFEN(t *testing.T) {
	pos := NewInitialPosition()
	if pos.Hash != pos.CalculateHash() {
		t.Fatalf("initial hash mismatch: got=%d want=%d", pos.Hash, pos.CalculateHash())
	}
	decoded := mustDecode(t, initialFEN)
	if decoded.Hash != pos.Hash {
		t.Fatalf("decoded hash mismatch: got=%d want=%d", decoded.Hash, pos.Hash)
	}
	black := mustDecode(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b")
	if black.Hash == pos.Hash {
		t.Fatalf("side to move not hashed")
	}
}

func TestApplyHashIncrementalMatchesFullRecompute(t *testing.T) {
	pos := NewInitialPosition()
	for ply := 0; ply < 40; ply++ {
		moves := pos.LegalMoves(pos.Turn)
		if len(moves) == 0 {
			return
		}
		mv := moves[len(moves)/2]
		pos.apply(mv[0], mv[1])
		if got, want := pos.Hash, pos.CalculateHash(); got != want {
			t.Fatalf("hash mismatch at ply %d: got=%d want=%d move=%v", ply, got, want, mv)
		}
	}
}
