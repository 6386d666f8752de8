package chess

import "github.com/pkg/errors"

// UCI renders a square in coordinate notation: row 7 col 0 is "a1".
func (s Square) UCI() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{byte('a' + s.Col), byte('8' - s.Row)})
}

func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, errors.Wrapf(ErrInvalidSquare, "%q", s)
	}
	return Sq(int('8'-s[1]), int(s[0]-'a')), nil
}

// UCI is from+to, with "q" appended for a promotion.
func (m Move) UCI() string {
	s := m.From.UCI() + m.To.UCI()
	if m.Promoted {
		s += "q"
	}
	return s
}

// ParseMove splits "e2e4" (an optional promotion letter is tolerated).
func ParseMove(s string) (from, to Square, err error) {
	if len(s) != 4 && len(s) != 5 {
		return NoSquare, NoSquare, errors.Wrapf(ErrInvalidSquare, "move %q", s)
	}
	if from, err = ParseSquare(s[:2]); err != nil {
		return NoSquare, NoSquare, err
	}
	if to, err = ParseSquare(s[2:4]); err != nil {
		return NoSquare, NoSquare, err
	}
	return from, to, nil
}
