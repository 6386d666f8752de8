// chessgame-tui plays a two-player game of chess in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"chessgame/internal/chess"
	"chessgame/internal/clock"
	"chessgame/internal/config"
	"chessgame/internal/records"
	"chessgame/internal/ui"
)

var (
	flagFEN   = flag.String("fen", "", "start from this position")
	flagTurn  = flag.Int("turn", -1, "seconds per move, 0 disables the clock")
	flagWhite = flag.String("white", "", "white player name")
	flagBlack = flag.String("black", "", "black player name")
	flagASCII = flag.Bool("ascii", false, "draw pieces as letters")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *flagTurn >= 0 {
		cfg.Clock.TurnSeconds = *flagTurn
	}
	if *flagWhite != "" {
		cfg.Records.WhitePlayer = *flagWhite
	}
	if *flagBlack != "" {
		cfg.Records.BlackPlayer = *flagBlack
	}
	if *flagASCII {
		cfg.Theme.UnicodePieces = false
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	g := chess.NewGame()
	if *flagFEN != "" {
		pos, err := chess.DecodePosition(*flagFEN)
		if err != nil {
			log.Fatalf("fen: %v", err)
		}
		if g, err = chess.NewGameFrom(pos); err != nil {
			log.Fatalf("fen: %v", err)
		}
	}

	store, err := records.Open(cfg.Records.Path)
	if err != nil {
		log.Fatalf("open records: %v", err)
	}
	names := map[chess.Color]string{
		chess.White: cfg.Records.WhitePlayer,
		chess.Black: cfg.Records.BlackPlayer,
	}
	g.OnGameEnd(func(r chess.Result) {
		if err := store.RecordGame(names[r.Winner], names[r.Winner.Opposite()]); err != nil {
			log.Printf("record result: %v", err)
		}
	})

	app := tview.NewApplication()
	hint := tview.NewTextView()
	hint.SetBorder(true)
	hint.SetBorderPadding(0, 0, 1, 1)
	hint.SetTitle(" Status ")
	hint.SetTitleAlign(tview.AlignLeft)

	var (
		clk   *clock.Clock
		board *ui.ChessBoardUI
	)
	if cfg.Clock.Enabled() {
		clk = clock.New(cfg.Clock.Turn(), func() { board.Expire() })
	}
	board = ui.NewChessBoard(app, cfg, hint, g, clk)
	frame := ui.CreateGameLayout(board, hint)
	frame.SetBorder(true).SetTitle(fmt.Sprintf(" ♔ %s vs %s ", names[chess.White], names[chess.Black]))

	board.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			app.Stop()
			return nil
		}
		return board.HandleKey(event)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if clk != nil {
		go clk.Run(ctx)
	}

	if err := app.SetRoot(frame, true).Run(); err != nil {
		log.Fatal(err)
	}
}
