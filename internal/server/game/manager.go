package game

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"chessgame/internal/chess"
	"chessgame/internal/clock"
	"chessgame/internal/records"
)

var ErrGameNotFound = errors.New("game not found")

type Options struct {
	// Turn is the per-move budget; 0 disables clocks.
	Turn time.Duration
	// Records, when set, is credited at the end of every game.
	Records *records.Store
}

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
	opts  Options

	ctx    context.Context
	cancel context.CancelFunc
}

func NewManager(opts Options) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		games:  make(map[string]*GameState),
		opts:   opts,
		ctx:    ctx,
		cancel: cancel,
	}
}

// NewGame registers a game from the initial layout.
func (m *Manager) NewGame(white, black string) *GameState {
	g, _ := m.NewGameFrom(nil, white, black)
	return g
}

// NewGameFrom registers a game from pos, or the initial layout when pos is nil.
func (m *Manager) NewGameFrom(pos *chess.Position, white, black string) (*GameState, error) {
	var (
		cg  *chess.Game
		err error
	)
	if pos == nil {
		cg = chess.NewGame()
	} else if cg, err = chess.NewGameFrom(pos); err != nil {
		return nil, err
	}
	if white == "" {
		white = "White"
	}
	if black == "" {
		black = "Black"
	}

	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Game:      cg,
		White:     white,
		Black:     black,
		CreatedAt: now,
		UpdatedAt: now,
		stop:      func() {},
	}
	cg.OnGameEnd(func(r chess.Result) { m.gameOver(g, r) })

	if m.opts.Turn > 0 {
		g.Clock = clock.New(m.opts.Turn, func() { m.expire(g) })
		ctx, cancel := context.WithCancel(m.ctx)
		g.stop = cancel
		if _, over := cg.Result(); over {
			g.Clock.Stop()
		}
		go g.Clock.Run(ctx)
	}

	m.mu.Lock()
	m.games[g.ID] = g
	m.mu.Unlock()
	log.Printf("game %s: new (%s vs %s)", g.ID, white, black)
	return g, nil
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, errors.Wrapf(ErrGameNotFound, "%q", id)
	}
	return g, nil
}

// Do runs fn with exclusive access to the game. The clock restarts whenever
// fn executes a move. A clock that ran out before Do took the lock forfeits
// the side to move first, so fn sees a finished game.
func (m *Manager) Do(id string, fn func(g *GameState) error) error {
	g, err := m.Get(id)
	if err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Clock != nil && g.Clock.Expired() {
		m.timeout(g)
	}
	plies := len(g.Game.History())
	err = fn(g)
	if len(g.Game.History()) != plies {
		g.UpdatedAt = time.Now()
		if _, over := g.Game.Result(); !over && g.Clock != nil {
			g.Clock.Reset()
		}
	}
	return err
}

// Remove stops the game's clock and forgets it.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	g, ok := m.games[id]
	delete(m.games, id)
	m.mu.Unlock()
	if !ok {
		return errors.Wrapf(ErrGameNotFound, "%q", id)
	}
	g.stop()
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// Close stops every clock.
func (m *Manager) Close() {
	m.cancel()
}

// expire is the clock callback. It waits for g.mu, so a move may land and
// reset the clock first; such a stale expiry is dropped.
func (m *Manager) expire(g *GameState) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Clock == nil || !g.Clock.Expired() {
		return
	}
	m.timeout(g)
}

// timeout declares the side to move lost on time. g.mu must be held.
func (m *Manager) timeout(g *GameState) {
	if _, over := g.Game.Result(); over {
		return
	}
	if err := g.Game.DeclareTimeout(g.Game.Turn()); err != nil {
		log.Printf("game %s: timeout: %v", g.ID, err)
		return
	}
	g.UpdatedAt = time.Now()
}

// gameOver runs inside the engine call that ended the game, so g.mu is held.
func (m *Manager) gameOver(g *GameState, r chess.Result) {
	if g.Clock != nil {
		g.Clock.Stop()
	}
	winner, loser := g.PlayerName(r.Winner), g.PlayerName(r.Winner.Opposite())
	log.Printf("game %s: %s won by %s", g.ID, winner, r.Reason)
	if m.opts.Records == nil {
		return
	}
	if err := m.opts.Records.RecordGame(winner, loser); err != nil {
		log.Printf("game %s: record result: %v", g.ID, err)
	}
}
