package chess

import (
	"testing"

	"github.com/pkg/errors"
)

const initialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"

func TestEncodeInitialPosition(t *testing.T) {
	if got := NewInitialPosition().Encode(); got != initialFEN {
		t.Fatalf("Encode() = %q", got)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	for _, fen := range []string{
		initialFEN,
		"R5k1/5ppp/8/8/8/8/8/6K1 b",
		"8/P6k/8/8/8/8/8/K7 w",
	} {
		p := mustDecode(t, fen)
		if p.Encode() != fen {
			t.Fatalf("round trip %q -> %q", fen, p.Encode())
		}
	}

	p := mustDecode(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if p.Turn != Black || p.Board.At(Sq(4, 4)).Kind != Pawn {
		t.Fatalf("full FEN not read")
	}
}

func TestDecodeRejectsBadInput(t *testing.T) {
	for _, fen := range []string{
		"",
		"8/8/8 w",
		"9/8/8/8/8/8/8/8 w",
		"7/8/8/8/8/8/8/8 w",
		"x7/8/8/8/8/8/8/8 w",
		"k6k/8/8/8/8/8/8/K7 w",
		"8/8/8/8/8/8/8/8 x",
	} {
		if _, err := DecodePosition(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Fatalf("DecodePosition(%q) err = %v", fen, err)
		}
	}
}

func TestSquareNotation(t *testing.T) {
	cases := map[string]Square{"a1": Sq(7, 0), "h8": Sq(0, 7), "e2": Sq(6, 4), "d5": Sq(3, 3)}
	for s, sq := range cases {
		got, err := ParseSquare(s)
		if err != nil || got != sq {
			t.Fatalf("ParseSquare(%q) = %s, %v", s, got, err)
		}
		if sq.UCI() != s {
			t.Fatalf("%s.UCI() = %q", sq, sq.UCI())
		}
	}
	for _, bad := range []string{"", "i1", "a9", "a", "e2e4"} {
		if _, err := ParseSquare(bad); !errors.Is(err, ErrInvalidSquare) {
			t.Fatalf("ParseSquare(%q) err = %v", bad, err)
		}
	}
}
