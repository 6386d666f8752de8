package chess

import "github.com/pkg/errors"

// Rejected inputs. None of them is fatal; only ErrIllegalDestination has a
// side effect (the selection is cleared).
var (
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrIllegalDestination = errors.New("illegal destination")
	ErrNoSelection        = errors.New("no piece selected")
	ErrGameOver           = errors.New("game over")
	ErrInvalidFEN         = errors.New("invalid FEN")
	ErrInvalidPosition    = errors.New("invalid position")
	ErrInvalidSquare      = errors.New("invalid square")
)
