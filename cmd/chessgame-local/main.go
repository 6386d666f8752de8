package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"chessgame/internal/config"
	"chessgame/internal/records"
	"chessgame/internal/server/game"
	httpserver "chessgame/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // headless hosts have no browser
}

func main() {
	cfgPath := flag.String("config", "", "config file (default: XDG config dir)")
	addr := flag.String("addr", "", "listen address (overrides config)")
	webDir := flag.String("web", "", "directory with the web client (overrides config)")
	turn := flag.Int("turn", -1, "seconds per move, 0 disables the clock (overrides config)")
	noBrowser := flag.Bool("no-browser", false, "do not open a browser")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *cfgPath != "" {
		cfg, err = config.LoadFile(*cfgPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *webDir != "" {
		cfg.Server.WebDir = *webDir
	}
	if *turn >= 0 {
		cfg.Clock.TurnSeconds = *turn
	}
	if *noBrowser {
		cfg.Server.OpenBrowser = false
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	store, err := records.Open(cfg.Records.Path)
	if err != nil {
		log.Fatalf("open records: %v", err)
	}
	log.Printf("player records in %s", store.Path())

	games := game.NewManager(game.Options{Turn: cfg.Clock.Turn(), Records: store})
	defer games.Close()

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: httpserver.NewServer(httpserver.NewHandler(games, store), cfg.Server.WebDir, ""),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		log.Printf("listening on %s, serving static from %s", cfg.Server.Addr, cfg.Server.WebDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if cfg.Server.OpenBrowser {
		// give the listener a moment before the browser hits it
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + cfg.Server.Addr)
		}()
	}

	if err := eg.Wait(); err != nil {
		log.Fatal(err)
	}
	log.Println("server stopped")
}
