package main

import (
	"math/rand"

	"chessgame/internal/chess"
)

// Player picks a move for the side to move; it is only called when at least
// one legal move exists.
type Player interface {
	Name() string
	Choose(pos *chess.Position) [2]chess.Square
}

type RandomPlayer struct {
	rng *rand.Rand
}

func (RandomPlayer) Name() string { return "random" }

func (p RandomPlayer) Choose(pos *chess.Position) [2]chess.Square {
	moves := pos.LegalMoves(pos.Turn)
	return moves[p.rng.Intn(len(moves))]
}

// GreedyPlayer mates when it can, otherwise takes the most valuable piece on
// offer, otherwise moves at random.
type GreedyPlayer struct {
	rng *rand.Rand
}

func (GreedyPlayer) Name() string { return "greedy" }

var pieceValue = map[chess.Kind]int{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
}

func (p GreedyPlayer) Choose(pos *chess.Position) [2]chess.Square {
	moves := pos.LegalMoves(pos.Turn)
	best, bestScore := moves[p.rng.Intn(len(moves))], 0
	for _, mv := range moves {
		next := *pos
		next.Remove(mv[1])
		next.Place(mv[1], next.Remove(mv[0]))
		next.SetTurn(pos.Turn.Opposite())
		if next.IsCheckmate(next.Turn) {
			return mv
		}
		if v := pieceValue[pos.Board.At(mv[1]).Kind]; v > bestScore {
			best, bestScore = mv, v
		}
	}
	return best
}

// PlayGame plays white against black until the game ends or maxPlies moves
// have been made.
func PlayGame(white, black Player, maxPlies int) *chess.Game {
	g := chess.NewGame()
	for ply := 0; ply < maxPlies; ply++ {
		if g.State() == chess.GameOver {
			break
		}
		pos := g.Snapshot()
		if !pos.HasLegalMove(pos.Turn) {
			break
		}
		player := white
		if pos.Turn == chess.Black {
			player = black
		}
		mv := player.Choose(&pos)
		if err := g.SelectCell(mv[0]); err != nil {
			panic(err)
		}
		if err := g.MoveTo(mv[1]); err != nil {
			panic(err)
		}
	}
	return g
}
