package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"chessgame/internal/chess"
	"chessgame/internal/record"
	"chessgame/internal/records"
)

func main() {
	totalGames := flag.Int("games", 10, "number of games to play")
	maxPlies := flag.Int("maxplies", 300, "abandon a game after this many plies")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	pgnPath := flag.String("pgn", "", "append games as PGN to this file (default stdout)")
	recordsPath := flag.String("records", "", "credit results to this players file (empty: don't)")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	players := []Player{RandomPlayer{rng: rng}, GreedyPlayer{rng: rng}}

	out := os.Stdout
	if *pgnPath != "" {
		f, err := os.OpenFile(*pgnPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("open %s: %v", *pgnPath, err)
		}
		defer f.Close()
		out = f
	}

	var store *records.Store
	if *recordsPath != "" {
		var err error
		if store, err = records.Open(*recordsPath); err != nil {
			log.Fatalf("open records: %v", err)
		}
	}

	wins := map[string]int{}
	unfinished := 0
	for i := 0; i < *totalGames; i++ {
		white, black := players[i%2], players[(i+1)%2]
		start := time.Now()
		g := PlayGame(white, black, *maxPlies)

		res, over := g.Result()
		if !over {
			unfinished++
			log.Printf("game %d: %s vs %s unfinished after %d plies (%v)", i+1, white.Name(), black.Name(), len(g.History()), time.Since(start))
		} else {
			winner, loser := white.Name(), black.Name()
			if res.Winner == chess.Black {
				winner, loser = loser, winner
			}
			wins[winner]++
			log.Printf("game %d: %s beat %s by %s in %d plies (%v)", i+1, winner, loser, res.Reason, len(g.History()), time.Since(start))
			if store != nil {
				if err := store.RecordGame(winner, loser); err != nil {
					log.Printf("record result: %v", err)
				}
			}
		}

		pgn, err := record.PGN(g, record.Tags{
			Event: "selfplay",
			Site:  fmt.Sprintf("seed %d", *seed),
			White: white.Name(),
			Black: black.Name(),
		})
		if err != nil {
			log.Fatalf("game %d: %v", i+1, err)
		}
		fmt.Fprintln(out, pgn)
	}

	log.Printf("=== %d games ===", *totalGames)
	for _, p := range players {
		log.Printf("%s: %d", p.Name(), wins[p.Name()])
	}
	log.Printf("unfinished: %d", unfinished)
}
