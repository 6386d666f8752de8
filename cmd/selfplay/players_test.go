package main

import (
	"math/rand"
	"testing"

	"chessgame/internal/chess"
)

func TestGreedyPlayerTakesMate(t *testing.T) {
	pos, err := chess.DecodePosition("6k1/5ppp/8/8/8/8/8/R5K1 w")
	if err != nil {
		t.Fatal(err)
	}
	p := GreedyPlayer{rng: rand.New(rand.NewSource(1))}
	if mv := p.Choose(pos); mv != [2]chess.Square{chess.Sq(7, 0), chess.Sq(0, 0)} {
		t.Fatalf("chose %v, want a1a8", mv)
	}
}

func TestGreedyPlayerPrefersBiggerCapture(t *testing.T) {
	pos, err := chess.DecodePosition("k7/8/8/2p1q3/8/3N4/8/7K w")
	if err != nil {
		t.Fatal(err)
	}
	p := GreedyPlayer{rng: rand.New(rand.NewSource(1))}
	mv := p.Choose(pos)
	if mv[0] != chess.Sq(5, 3) || mv[1] != chess.Sq(3, 4) {
		t.Fatalf("chose %v, want the queen", mv)
	}
}

func TestPlayGameStops(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 5; i++ {
		g := PlayGame(RandomPlayer{rng: rng}, GreedyPlayer{rng: rng}, 120)
		if n := len(g.History()); n > 120 {
			t.Fatalf("played %d plies", n)
		}
		if _, over := g.Result(); !over && g.State() == chess.GameOver {
			t.Fatalf("inconsistent state")
		}
	}
}
