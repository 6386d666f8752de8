package chess

import "testing"

func destsOn(p *Position, sq Square) []Square {
	return p.Board.At(sq).Destinations(&p.Board, sq)
}

func TestPawnDestinations(t *testing.T) {
	tests := []struct {
		name   string
		pawn   Piece
		from   Square
		others map[Square]Piece
		want   []Square
	}{
		{"white initial", whitePawn, Sq(6, 4), nil, []Square{Sq(5, 4), Sq(4, 4)}},
		{"black initial", blackPawn, Sq(1, 4), nil, []Square{Sq(2, 4), Sq(3, 4)}},
		{"white left edge", whitePawn, Sq(4, 0), nil, []Square{Sq(3, 0)}},
		{"black left edge", blackPawn, Sq(4, 0), nil, []Square{Sq(5, 0)}},
		{"white right edge", whitePawn, Sq(4, 7), nil, []Square{Sq(3, 7)}},
		{"black right edge", blackPawn, Sq(4, 7), nil, []Square{Sq(5, 7)}},
		{"white last rank", whitePawn, Sq(0, 4), nil, nil},
		{"black last rank", blackPawn, Sq(7, 4), nil, nil},
		{
			"white double step blocked", whitePawn, Sq(6, 4),
			map[Square]Piece{Sq(4, 4): blackPawn},
			[]Square{Sq(5, 4)},
		},
		{
			"black double step blocked", blackPawn, Sq(1, 4),
			map[Square]Piece{Sq(3, 4): whitePawn},
			[]Square{Sq(2, 4)},
		},
		{
			"white single step blocks double", whitePawn, Sq(6, 4),
			map[Square]Piece{Sq(5, 4): blackPawn},
			nil,
		},
		{
			"white fully blocked", whitePawn, Sq(4, 4),
			map[Square]Piece{Sq(3, 4): blackPawn, Sq(3, 3): whitePawn, Sq(3, 5): whitePawn},
			nil,
		},
		{
			"black fully blocked", blackPawn, Sq(3, 4),
			map[Square]Piece{Sq(4, 4): whitePawn, Sq(4, 3): blackPawn, Sq(4, 5): blackPawn},
			nil,
		},
		{
			"white captures", whitePawn, Sq(4, 4),
			map[Square]Piece{Sq(3, 3): blackPawn, Sq(3, 5): blackPawn},
			[]Square{Sq(3, 4), Sq(3, 3), Sq(3, 5)},
		},
		{
			"black captures", blackPawn, Sq(3, 4),
			map[Square]Piece{Sq(4, 3): whitePawn, Sq(4, 5): whitePawn},
			[]Square{Sq(4, 4), Sq(4, 3), Sq(4, 5)},
		},
		{
			"white single left capture", whitePawn, Sq(4, 4),
			map[Square]Piece{Sq(3, 3): blackPawn},
			[]Square{Sq(3, 4), Sq(3, 3)},
		},
		{
			"black single right capture", blackPawn, Sq(4, 4),
			map[Square]Piece{Sq(5, 5): whitePawn},
			[]Square{Sq(5, 4), Sq(5, 5)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewEmptyPosition()
			placeAll(p, tt.others)
			p.Place(tt.from, tt.pawn)
			sameSquares(t, destsOn(p, tt.from), tt.want...)
		})
	}
}

func TestDestinationsReplacePreviousResult(t *testing.T) {
	p := NewEmptyPosition()
	first := whitePawn.Destinations(&p.Board, Sq(5, 4))
	second := whitePawn.Destinations(&p.Board, Sq(4, 4))
	sameSquares(t, first, Sq(4, 4))
	sameSquares(t, second, Sq(3, 4))

	rookFirst := whiteRook.Destinations(&p.Board, Sq(3, 4))
	rookSecond := whiteRook.Destinations(&p.Board, Sq(4, 4))
	if len(rookFirst) != 14 || len(rookSecond) != 14 {
		t.Fatalf("rook destinations: %d then %d, want 14 each", len(rookFirst), len(rookSecond))
	}
	if squareSet(rookSecond)[Sq(4, 4)] {
		t.Fatalf("rook lists its own square")
	}
}

func TestKnightDestinations(t *testing.T) {
	p := NewEmptyPosition()
	sameSquares(t, whiteKnight.Destinations(&p.Board, Sq(1, 0)), Sq(0, 2), Sq(2, 2), Sq(3, 1))

	p.Place(Sq(1, 2), NewPiece("WN02", White, Knight))
	sameSquares(t, whiteKnight.Destinations(&p.Board, Sq(0, 0)), Sq(2, 1))

	// jumps over anything
	p = NewInitialPosition()
	sameSquares(t, destsOn(p, Sq(7, 1)), Sq(5, 0), Sq(5, 2))
}

func TestRookDestinations(t *testing.T) {
	p := NewEmptyPosition()
	var want []Square
	for i := 0; i < 8; i++ {
		if i != 4 {
			want = append(want, Sq(4, i), Sq(i, 4))
		}
	}
	sameSquares(t, whiteRook.Destinations(&p.Board, Sq(4, 4)), want...)

	for _, sq := range []Square{Sq(3, 4), Sq(5, 4), Sq(4, 3), Sq(4, 5)} {
		p.Place(sq, whitePawn)
	}
	sameSquares(t, whiteRook.Destinations(&p.Board, Sq(4, 4)))

	for _, sq := range []Square{Sq(3, 4), Sq(5, 4), Sq(4, 3), Sq(4, 5)} {
		p.Place(sq, blackPawn)
	}
	sameSquares(t, whiteRook.Destinations(&p.Board, Sq(4, 4)), Sq(3, 4), Sq(5, 4), Sq(4, 3), Sq(4, 5))
}

func TestBishopAndQueenDestinations(t *testing.T) {
	p := NewEmptyPosition()
	sameSquares(t, whiteBishop.Destinations(&p.Board, Sq(0, 0)),
		Sq(1, 1), Sq(2, 2), Sq(3, 3), Sq(4, 4), Sq(5, 5), Sq(6, 6), Sq(7, 7))

	sameSquares(t, whiteQueen.Destinations(&p.Board, Sq(3, 3)),
		Sq(0, 0), Sq(1, 1), Sq(2, 2), Sq(4, 4), Sq(5, 5), Sq(6, 6), Sq(7, 7),
		Sq(0, 6), Sq(1, 5), Sq(2, 4), Sq(4, 2), Sq(5, 1), Sq(6, 0),
		Sq(3, 0), Sq(3, 1), Sq(3, 2), Sq(3, 4), Sq(3, 5), Sq(3, 6), Sq(3, 7),
		Sq(0, 3), Sq(1, 3), Sq(2, 3), Sq(4, 3), Sq(5, 3), Sq(6, 3), Sq(7, 3))
}

func TestRaysStopAtFirstOccupiedSquare(t *testing.T) {
	p := NewEmptyPosition()
	p.Place(Sq(2, 2), whitePawn) // own: excluded, ray stops
	p.Place(Sq(6, 6), blackPawn) // enemy: included, ray stops
	p.Place(Sq(4, 7), blackPawn)
	p.Place(Sq(4, 1), whitePawn)

	for _, pc := range []Piece{whiteBishop, whiteQueen, whiteRook} {
		got := squareSet(pc.Destinations(&p.Board, Sq(4, 4)))
		diag := pc.Kind != Rook
		orth := pc.Kind != Bishop
		checks := []struct {
			sq   Square
			want bool
		}{
			{Sq(3, 3), diag}, {Sq(2, 2), false}, {Sq(1, 1), false}, {Sq(0, 0), false},
			{Sq(5, 5), diag}, {Sq(6, 6), diag}, {Sq(7, 7), false},
			{Sq(4, 7), orth}, {Sq(4, 6), orth}, {Sq(4, 2), orth}, {Sq(4, 1), false}, {Sq(4, 0), false},
		}
		for _, c := range checks {
			if got[c.sq] != c.want {
				t.Fatalf("%s: %s included=%v, want %v", pc.Kind, c.sq, got[c.sq], c.want)
			}
		}
	}
}

func TestKingDestinations(t *testing.T) {
	p := NewEmptyPosition()
	sameSquares(t, whiteKing.Destinations(&p.Board, Sq(5, 5)),
		Sq(6, 6), Sq(6, 5), Sq(6, 4), Sq(5, 4), Sq(4, 4), Sq(4, 5), Sq(4, 6), Sq(5, 6))
	sameSquares(t, whiteKing.Destinations(&p.Board, Sq(7, 7)), Sq(6, 6), Sq(6, 7), Sq(7, 6))
	sameSquares(t, whiteKing.Destinations(&p.Board, Sq(0, 0)), Sq(0, 1), Sq(1, 1), Sq(1, 0))

	p.Place(Sq(1, 0), whitePawn)
	p.Place(Sq(0, 1), blackPawn)
	sameSquares(t, whiteKing.Destinations(&p.Board, Sq(0, 0)), Sq(0, 1), Sq(1, 1))
}

func rotate(s Square) Square { return Sq(Rows-1-s.Row, Cols-1-s.Col) }

func TestEmptyBoardDestinationsSymmetricUnderRotation(t *testing.T) {
	p := NewEmptyPosition()
	for _, kind := range []Kind{King, Queen, Rook, Bishop, Knight, Pawn} {
		for r := 0; r < Rows; r++ {
			for c := 0; c < Cols; c++ {
				from := Sq(r, c)
				white := NewPiece("W", White, kind).Destinations(&p.Board, from)
				black := NewPiece("B", Black, kind).Destinations(&p.Board, rotate(from))
				rotated := make([]Square, len(white))
				for i, s := range white {
					rotated[i] = rotate(s)
				}
				a, b := sortedSquares(rotated), sortedSquares(black)
				if len(a) != len(b) {
					t.Fatalf("%s at %s: %v vs %v", kind, from, a, b)
				}
				for i := range a {
					if a[i] != b[i] {
						t.Fatalf("%s at %s: %v vs %v", kind, from, a, b)
					}
				}
			}
		}
	}
}
