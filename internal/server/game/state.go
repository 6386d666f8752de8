package game

import (
	"sync"
	"time"

	"chessgame/internal/chess"
	"chessgame/internal/clock"
)

// GameState is one hosted game. Every access to Game goes through
// Manager.Do, which holds mu; the engine itself is single-threaded.
type GameState struct {
	mu sync.Mutex

	ID        string
	Game      *chess.Game
	Clock     *clock.Clock // nil when clocks are disabled
	White     string
	Black     string
	CreatedAt time.Time
	UpdatedAt time.Time

	stop func()
}

// PlayerName maps a side to the player sitting on it.
func (g *GameState) PlayerName(c chess.Color) string {
	switch c {
	case chess.White:
		return g.White
	case chess.Black:
		return g.Black
	}
	return ""
}
