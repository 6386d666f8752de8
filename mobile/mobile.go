package mobile

import (
	"log"
	"net/http"
	"path/filepath"
	"time"

	"chessgame/internal/records"
	"chessgame/internal/server/game"
	httpserver "chessgame/internal/server/http"
)

// StartServer starts the local HTTP server.
// webDir: physical path to the extracted web assets
// dataDir: writable app directory; player records are kept there
// turnSeconds: per-move clock, 0 disables it
// port: port to listen on, e.g. "2888"
func StartServer(webDir string, dataDir string, turnSeconds int, port string) {
	var store *records.Store
	if dataDir != "" {
		var err error
		if store, err = records.Open(filepath.Join(dataDir, "players.json")); err != nil {
			log.Printf("Failed to open records: %v", err)
			store = nil
		}
	}

	games := game.NewManager(game.Options{
		Turn:    time.Duration(turnSeconds) * time.Second,
		Records: store,
	})
	srv := httpserver.NewServer(httpserver.NewHandler(games, store), webDir, webDir)

	// Run in background so it doesn't block the Android UI thread
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, srv); err != nil {
			log.Printf("Server Error: %v", err)
		}
	}()
}
