// Package records keeps per-player win/loss totals on disk.
package records

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
)

const dataFile = "chessgame/players.json"

type Player struct {
	Name        string `json:"name"`
	GamesPlayed int    `json:"games_played"`
	GamesWon    int    `json:"games_won"`
}

// WinPercent is GamesWon/GamesPlayed*100, or 0 before the first game.
func (p Player) WinPercent() float64 {
	if p.GamesPlayed == 0 {
		return 0
	}
	return float64(p.GamesWon) / float64(p.GamesPlayed) * 100
}

// Store is a JSON file of players keyed by name. Every write replaces the
// file through a temporary sibling and a rename.
type Store struct {
	mu      sync.Mutex
	path    string
	players map[string]*Player
}

// DefaultPath resolves the store under the XDG data directory, creating
// parent directories as needed.
func DefaultPath() (string, error) {
	p, err := xdg.DataFile(dataFile)
	if err != nil {
		return "", errors.Wrap(err, "resolve records path")
	}
	return p, nil
}

// Open loads the store at path. A missing file is an empty store; an empty
// path means DefaultPath.
func Open(path string) (*Store, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}
	s := &Store{path: path, players: make(map[string]*Player)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	var list []Player
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	for i := range list {
		p := list[i]
		s.players[p.Name] = &p
	}
	return s, nil
}

func (s *Store) Path() string { return s.path }

// Get returns the player, or a zero record with the given name.
func (s *Store) Get(name string) Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.players[name]; ok {
		return *p
	}
	return Player{Name: name}
}

// Players lists every player sorted by name.
func (s *Store) Players() []Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLocked()
}

func (s *Store) listLocked() []Player {
	out := make([]Player, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// RecordGame credits one game to both players and one win to the winner,
// then persists. If the write fails the counters are rolled back.
func (s *Store) RecordGame(winner, loser string) error {
	if winner == "" || loser == "" {
		return errors.New("records: player name is empty")
	}
	if winner == loser {
		return errors.Errorf("records: %q cannot play itself", winner)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := make(map[string]*Player, 2)
	for _, name := range []string{winner, loser} {
		if p, ok := s.players[name]; ok {
			old := *p
			prev[name] = &old
		} else {
			prev[name] = nil
		}
	}

	w := s.playerLocked(winner)
	l := s.playerLocked(loser)
	w.GamesPlayed++
	w.GamesWon++
	l.GamesPlayed++
	if err := s.saveLocked(); err != nil {
		for name, p := range prev {
			if p == nil {
				delete(s.players, name)
			} else {
				s.players[name] = p
			}
		}
		return err
	}
	return nil
}

func (s *Store) playerLocked(name string) *Player {
	p, ok := s.players[name]
	if !ok {
		p = &Player{Name: name}
		s.players[name] = p
	}
	return p
}

func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.listLocked(), "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode players")
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}
	tmp, err := os.CreateTemp(dir, ".players-*.json")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Wrapf(err, "replace %s", s.path)
	}
	return nil
}
