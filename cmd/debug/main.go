package main

import (
	"flag"
	"fmt"
	"log"

	"chessgame/internal/chess"
)

func main() {
	fen := flag.String("fen", "", "position to inspect (default: initial)")
	flag.Parse()

	pos := chess.NewInitialPosition()
	if *fen != "" {
		var err error
		if pos, err = chess.DecodePosition(*fen); err != nil {
			log.Fatal(err)
		}
	}
	fmt.Println("FEN:", pos.Encode())
	fmt.Print(pos.Board.String())
	moves := pos.LegalMoves(pos.Turn)
	fmt.Println("Legal moves:", len(moves))
	for _, c := range []chess.Color{chess.White, chess.Black} {
		if pos.KingInDanger(c) {
			fmt.Printf("%s is in check", c)
			if pos.IsCheckmate(c) {
				fmt.Print(" (checkmate)")
			}
			fmt.Println()
		}
	}
}
