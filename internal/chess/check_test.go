package chess

import "testing"

func TestKingInDanger(t *testing.T) {
	kingAt := Sq(3, 4)
	tests := []struct {
		name     string
		piece    Piece
		at       Square
		king     Piece
		kingSq   Square
		inDanger bool
	}{
		{"own queen on file", whiteQueen, Sq(5, 4), whiteKing, kingAt, false},
		{"queen on file", blackQueen, Sq(5, 4), whiteKing, kingAt, true},
		{"rook on file", blackRook, Sq(5, 4), whiteKing, kingAt, true},
		{"knight on file", blackKnight, Sq(5, 4), whiteKing, kingAt, false},
		{"rook above", blackRook, Sq(2, 4), whiteKing, kingAt, true},
		{"rook far above", blackRook, Sq(0, 4), whiteKing, kingAt, true},
		{"queen on rank", blackQueen, Sq(3, 6), whiteKing, kingAt, true},
		{"rook on rank left", blackRook, Sq(3, 2), whiteKing, kingAt, true},
		{"rook far left", blackRook, Sq(3, 0), whiteKing, kingAt, true},
		{"bishop on file", blackBishop, Sq(5, 4), whiteKing, kingAt, false},

		{"own queen diagonal", whiteQueen, Sq(1, 6), whiteKing, kingAt, false},
		{"queen diagonal", blackQueen, Sq(1, 6), whiteKing, kingAt, true},
		{"bishop diagonal", blackBishop, Sq(1, 6), whiteKing, kingAt, true},
		{"knight diagonal", blackKnight, Sq(1, 6), whiteKing, kingAt, false},
		{"bishop far diagonal", blackBishop, Sq(0, 7), whiteKing, kingAt, true},
		{"bishop corner", blackBishop, Sq(0, 0), whiteKing, Sq(4, 4), true},
		{"bishop other corner", blackBishop, Sq(7, 7), whiteKing, Sq(4, 4), true},
		{"bishop lower left", blackBishop, Sq(7, 0), whiteKing, kingAt, true},
		{"rook diagonal", blackRook, Sq(5, 6), whiteKing, kingAt, false},

		{"own knight", whiteKnight, Sq(2, 2), whiteKing, kingAt, false},
		{"knight", blackKnight, Sq(2, 2), whiteKing, kingAt, true},
		{"bishop on knight square", blackBishop, Sq(2, 2), whiteKing, kingAt, false},
		{"knight 4,2", blackKnight, Sq(4, 2), whiteKing, kingAt, true},
		{"knight 4,6", blackKnight, Sq(4, 6), whiteKing, kingAt, true},
		{"knight 5,3", blackKnight, Sq(5, 3), whiteKing, kingAt, true},
		{"knight 5,5", blackKnight, Sq(5, 5), whiteKing, kingAt, true},
		{"knight 2,6", blackKnight, Sq(2, 6), whiteKing, kingAt, true},
		{"knight 1,3", blackKnight, Sq(1, 3), whiteKing, kingAt, true},
		{"knight 1,5", blackKnight, Sq(1, 5), whiteKing, kingAt, true},
		{"knight near corner", blackKnight, Sq(0, 3), whiteKing, Sq(1, 1), true},
		{"knight edge", blackKnight, Sq(3, 0), whiteKing, Sq(1, 1), true},
		{"knight bottom", blackKnight, Sq(7, 4), whiteKing, Sq(6, 6), true},
		{"knight right edge", blackKnight, Sq(4, 7), whiteKing, Sq(6, 6), true},

		{"bishop adjacent orthogonal", blackBishop, Sq(4, 4), whiteKing, kingAt, false},
		{"king 2,3", blackKing, Sq(2, 3), whiteKing, kingAt, true},
		{"king 2,4", blackKing, Sq(2, 4), whiteKing, kingAt, true},
		{"king 2,5", blackKing, Sq(2, 5), whiteKing, kingAt, true},
		{"king 3,5", blackKing, Sq(3, 5), whiteKing, kingAt, true},
		{"king 4,5", blackKing, Sq(4, 5), whiteKing, kingAt, true},
		{"king 4,4", blackKing, Sq(4, 4), whiteKing, kingAt, true},
		{"king 4,3", blackKing, Sq(4, 3), whiteKing, kingAt, true},
		{"king 3,3", blackKing, Sq(3, 3), whiteKing, kingAt, true},
		{"king corner 1,0", blackKing, Sq(1, 0), whiteKing, Sq(0, 0), true},
		{"king corner 0,1", blackKing, Sq(0, 1), whiteKing, Sq(0, 0), true},
		{"king corner 6,7", blackKing, Sq(6, 7), whiteKing, Sq(7, 7), true},
		{"king corner 7,6", blackKing, Sq(7, 6), whiteKing, Sq(7, 7), true},

		{"black pawn left", blackPawn, Sq(2, 3), whiteKing, kingAt, true},
		{"black pawn right", blackPawn, Sq(2, 5), whiteKing, kingAt, true},
		{"own pawn left", whitePawn, Sq(2, 3), whiteKing, kingAt, false},
		{"own pawn right", whitePawn, Sq(2, 5), whiteKing, kingAt, false},
		{"black pawn behind", blackPawn, Sq(4, 3), whiteKing, kingAt, false},
		{"black pawn ahead", blackPawn, Sq(2, 4), whiteKing, kingAt, false},
		{"knight on pawn square", blackKnight, Sq(2, 3), whiteKing, kingAt, false},
		{"white pawn vs black king", whitePawn, Sq(2, 3), blackKing, Sq(1, 4), true},
		{"white pawn vs black king right", whitePawn, Sq(2, 5), blackKing, Sq(1, 4), true},
		{"black pawn vs black king", blackPawn, Sq(2, 3), blackKing, Sq(1, 4), false},
		{"white knight on pawn square", whiteKnight, Sq(2, 5), blackKing, Sq(1, 4), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewEmptyPosition()
			p.Place(tt.kingSq, tt.king)
			p.Place(tt.at, tt.piece)
			if got := p.KingInDanger(tt.king.Color); got != tt.inDanger {
				t.Fatalf("KingInDanger = %v, want %v", got, tt.inDanger)
			}
		})
	}
}

func TestKingInDangerShieldedByFirstPiece(t *testing.T) {
	tests := []struct {
		name   string
		shield Piece
		at     Square
	}{
		{"own pawn blocks rook", whitePawn, Sq(3, 2)},
		{"enemy knight blocks rook", blackKnight, Sq(3, 2)},
		{"enemy bishop blocks rook", blackBishop, Sq(3, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewEmptyPosition()
			p.Place(Sq(3, 4), whiteKing)
			p.Place(Sq(3, 0), blackRook)
			p.Place(tt.at, tt.shield)
			if p.KingInDanger(White) {
				t.Fatalf("shielded king reported in danger")
			}
		})
	}

	p := NewEmptyPosition()
	p.Place(Sq(3, 4), whiteKing)
	p.Place(Sq(0, 7), blackQueen)
	p.Place(Sq(1, 6), blackPawn)
	if p.KingInDanger(White) {
		t.Fatalf("queen behind its own pawn should not attack")
	}
}

func TestKingInDangerWithoutKing(t *testing.T) {
	p := NewEmptyPosition()
	p.Place(Sq(0, 0), blackQueen)
	if p.KingInDanger(White) || p.KingInDanger(Black) {
		t.Fatalf("missing king reported in danger")
	}
}
