package httpserver

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/pkg/errors"

	"chessgame/internal/chess"
	"chessgame/internal/record"
	"chessgame/internal/records"
	"chessgame/internal/server/game"
)

// Handler implements http.Handler for the /api/* routes.
type Handler struct {
	games   *game.Manager
	records *records.Store // nil disables /api/players
}

func NewHandler(games *game.Manager, store *records.Store) *Handler {
	return &Handler{games: games, records: store}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/api/players" {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handlePlayers(w, r)
		return
	}

	var handle func(http.ResponseWriter, *http.Request)
	switch r.URL.Path {
	case "/api/new_game":
		handle = h.handleNewGame
	case "/api/state":
		handle = h.handleState
	case "/api/select":
		handle = h.handleSelect
	case "/api/move":
		handle = h.handleMove
	case "/api/click":
		handle = h.handleClick
	case "/api/reset":
		handle = h.handleReset
	case "/api/timeout":
		handle = h.handleTimeout
	case "/api/pgn":
		handle = h.handlePGN
	default:
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	handle(w, r)
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
	}

	var pos *chess.Position
	if req.FEN != "" {
		var err error
		if pos, err = chess.DecodePosition(req.FEN); err != nil {
			writeError(w, err, nil)
			return
		}
	}
	g, err := h.games.NewGameFrom(pos, req.White, req.Black)
	if err != nil {
		writeError(w, err, nil)
		return
	}
	h.respond(w, g.ID, func(*game.GameState) error { return nil })
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	h.respond(w, req.GameID, func(*game.GameState) error { return nil })
}

func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req SquareRequest
	if !decode(w, r, &req) {
		return
	}
	h.respond(w, req.GameID, func(g *game.GameState) error {
		return g.Game.SelectCell(req.Square)
	})
}

func (h *Handler) handleMove(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if !decode(w, r, &req) {
		return
	}
	h.respond(w, req.GameID, func(g *game.GameState) error {
		switch {
		case req.UCI != "":
			return g.Game.Play(req.UCI)
		case req.To != nil:
			return g.Game.MoveTo(*req.To)
		}
		return errors.Wrap(chess.ErrInvalidSquare, "missing destination")
	})
}

func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	var req SquareRequest
	if !decode(w, r, &req) {
		return
	}
	h.respond(w, req.GameID, func(g *game.GameState) error {
		return g.Game.Click(req.Square)
	})
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	h.respond(w, req.GameID, func(g *game.GameState) error {
		g.Game.Reset()
		if g.Clock != nil {
			g.Clock.Reset()
		}
		return nil
	})
}

// handleTimeout lets a client-side clock forfeit the side to move.
func (h *Handler) handleTimeout(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	h.respond(w, req.GameID, func(g *game.GameState) error {
		return g.Game.DeclareTimeout(g.Game.Turn())
	})
}

func (h *Handler) handlePGN(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	var resp PGNResponse
	err := h.games.Do(req.GameID, func(g *game.GameState) error {
		pgn, err := record.PGN(g.Game, record.Tags{
			Event: "chessgame",
			Site:  r.Host,
			Date:  g.CreatedAt,
			White: g.White,
			Black: g.Black,
		})
		resp.PGN = pgn
		return err
	})
	if err != nil {
		writeError(w, err, nil)
		return
	}
	writeJSON(w, resp)
}

func (h *Handler) handlePlayers(w http.ResponseWriter, r *http.Request) {
	if h.records == nil {
		writeJSON(w, PlayersResponse{Players: []PlayerDTO{}})
		return
	}
	writeJSON(w, PlayersResponse{Players: playersToDTO(h.records.Players())})
}

// respond runs fn on the game and answers with the resulting state. A
// rejected action still reports the state, since some rejections clear the
// selection.
func (h *Handler) respond(w http.ResponseWriter, id string, fn func(g *game.GameState) error) {
	var state StateResponse
	err := h.games.Do(id, func(g *game.GameState) error {
		err := fn(g)
		state = stateToDTO(g)
		return err
	})
	if err != nil {
		if errors.Is(err, game.ErrGameNotFound) {
			writeError(w, err, nil)
			return
		}
		writeError(w, err, &state)
		return
	}
	writeJSON(w, state)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, chess.ErrInvalidFEN),
		errors.Is(err, chess.ErrInvalidSquare),
		errors.Is(err, chess.ErrInvalidPosition):
		return http.StatusBadRequest
	case errors.Is(err, chess.ErrInvalidSelection),
		errors.Is(err, chess.ErrIllegalDestination),
		errors.Is(err, chess.ErrNoSelection),
		errors.Is(err, chess.ErrGameOver):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error, state *StateResponse) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Println("request error:", err)
	}
	writeJSONStatus(w, status, ErrorResponse{Error: err.Error(), State: state})
}

func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
