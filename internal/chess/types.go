package chess

type Color int8

const (
	NoColor Color = -1
	White   Color = 0 // back rank on row 7, moves toward row 0
	Black   Color = 1 // back rank on row 0
)

func (c Color) Opposite() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

func (c Color) Valid() bool { return c == White || c == Black }

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "None"
}

// Kind is the closed set of piece kinds. Every switch over Kind in this
// package handles all six.
type Kind int8

const (
	NoKind Kind = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

var kindNames = [...]string{"None", "King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}

func (k Kind) String() string {
	if k < NoKind || int(k) >= len(kindNames) {
		return "None"
	}
	return kindNames[k]
}

// Piece is a value: id and asset are carried through for renderers only.
type Piece struct {
	ID    string `json:"id"`
	Asset string `json:"asset"`
	Color Color  `json:"color"`
	Kind  Kind   `json:"kind"`
}

// NewPiece builds a piece with the conventional "/White_Pawn.png" asset path.
func NewPiece(id string, color Color, kind Kind) Piece {
	return Piece{
		ID:    id,
		Asset: "/" + color.String() + "_" + kind.String() + ".png",
		Color: color,
		Kind:  kind,
	}
}

func (p Piece) IsZero() bool { return p.Kind == NoKind }

// Move is one executed move as kept in the game history.
type Move struct {
	From     Square `json:"from"`
	To       Square `json:"to"`
	Piece    Piece  `json:"piece"`
	Captured Piece  `json:"captured"`
	Promoted bool   `json:"promoted"`
}

func (m Move) IsCapture() bool { return !m.Captured.IsZero() }
