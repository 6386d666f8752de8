package httpserver

import (
	"strconv"
	"strings"

	"chessgame/internal/chess"
	"chessgame/internal/record"
	"chessgame/internal/records"
	"chessgame/internal/server/game"
)

type GameRequest struct {
	GameID string `json:"game_id"`
}

// NewGameRequest: all fields optional. FEN starts from a custom position.
type NewGameRequest struct {
	White string `json:"white"`
	Black string `json:"black"`
	FEN   string `json:"fen"`
}

// SquareRequest drives /api/select and /api/click.
type SquareRequest struct {
	GameID string       `json:"game_id"`
	Square chess.Square `json:"square"`
}

// MoveRequest moves the selected piece to To, or plays UCI ("e2e4") when set.
type MoveRequest struct {
	GameID string        `json:"game_id"`
	To     *chess.Square `json:"to,omitempty"`
	UCI    string        `json:"uci,omitempty"`
}

type MoveDTO struct {
	From chess.Square `json:"from"`
	To   chess.Square `json:"to"`
	UCI  string       `json:"uci"`
}

type PieceDTO struct {
	ID    string `json:"id"`
	Asset string `json:"asset"`
	Color string `json:"color"`
	Kind  string `json:"kind"`
}

type CellDTO struct {
	Row         int       `json:"row"`
	Col         int       `json:"col"`
	Piece       *PieceDTO `json:"piece,omitempty"`
	Selected    bool      `json:"selected"`
	Destination bool      `json:"destination"`
	Check       bool      `json:"check"`
}

type StateResponse struct {
	GameID       string         `json:"game_id"`
	Position     string         `json:"position"` // FEN
	Hash         string         `json:"hash"`
	ToMove       string         `json:"to_move"`
	State        string         `json:"state"`
	Status       string         `json:"status"` // "ongoing" / "checkmate" / "timeout"
	Winner       string         `json:"winner,omitempty"`
	Result       string         `json:"result"`
	InCheck      bool           `json:"in_check"`
	Selected     *chess.Square  `json:"selected,omitempty"`
	Destinations []chess.Square `json:"destinations"`
	Cells        []CellDTO      `json:"cells"`
	LegalMoves   []MoveDTO      `json:"legal_moves"`
	History      []string       `json:"history"`
	Clock        string         `json:"clock,omitempty"`
	White        string         `json:"white"`
	Black        string         `json:"black"`
}

type ErrorResponse struct {
	Error string         `json:"error"`
	State *StateResponse `json:"state,omitempty"`
}

type PGNResponse struct {
	PGN string `json:"pgn"`
}

type PlayerDTO struct {
	Name        string  `json:"name"`
	GamesPlayed int     `json:"games_played"`
	GamesWon    int     `json:"games_won"`
	WinPercent  float64 `json:"win_percent"`
}

type PlayersResponse struct {
	Players []PlayerDTO `json:"players"`
}

func colorName(c chess.Color) string {
	if !c.Valid() {
		return ""
	}
	return strings.ToLower(c.String())
}

func pieceToDTO(p chess.Piece) *PieceDTO {
	if p.IsZero() {
		return nil
	}
	return &PieceDTO{
		ID:    p.ID,
		Asset: p.Asset,
		Color: colorName(p.Color),
		Kind:  strings.ToLower(p.Kind.String()),
	}
}

func movesToDTO(pos *chess.Position) []MoveDTO {
	legal := pos.LegalMoves(pos.Turn)
	out := make([]MoveDTO, 0, len(legal))
	for _, mv := range legal {
		m := chess.Move{From: mv[0], To: mv[1], Piece: pos.Board.At(mv[0])}
		m.Promoted = m.Piece.Kind == chess.Pawn && (mv[1].Row == 0 || mv[1].Row == chess.Rows-1)
		out = append(out, MoveDTO{From: mv[0], To: mv[1], UCI: m.UCI()})
	}
	return out
}

// stateToDTO must be called with the game locked.
func stateToDTO(g *game.GameState) StateResponse {
	cg := g.Game
	pos := cg.Snapshot()
	resp := StateResponse{
		GameID:       g.ID,
		Position:     pos.Encode(),
		Hash:         strconv.FormatUint(pos.Hash, 16),
		ToMove:       colorName(pos.Turn),
		State:        cg.State().String(),
		Status:       "ongoing",
		Result:       record.ResultString(cg),
		InCheck:      cg.InCheck(pos.Turn),
		Destinations: cg.Destinations(),
		Cells:        make([]CellDTO, 0, chess.NumSquares),
		History:      []string{},
		LegalMoves:   []MoveDTO{},
		White:        g.White,
		Black:        g.Black,
	}
	if resp.Destinations == nil {
		resp.Destinations = []chess.Square{}
	}
	if sq, ok := cg.Selected(); ok {
		resp.Selected = &sq
	}
	cg.Board().Each(func(c *chess.Cell) {
		p, _ := c.Piece()
		resp.Cells = append(resp.Cells, CellDTO{
			Row:         c.Row,
			Col:         c.Col,
			Piece:       pieceToDTO(p),
			Selected:    c.IsSelected(),
			Destination: c.IsDestination(),
			Check:       c.InCheck(),
		})
	})
	for _, m := range cg.History() {
		resp.History = append(resp.History, m.UCI())
	}
	if res, over := cg.Result(); over {
		resp.Status = string(res.Reason)
		resp.Winner = colorName(res.Winner)
	} else {
		resp.LegalMoves = movesToDTO(&pos)
	}
	if g.Clock != nil {
		resp.Clock = g.Clock.Label()
	}
	return resp
}

func playersToDTO(ps []records.Player) []PlayerDTO {
	out := make([]PlayerDTO, len(ps))
	for i, p := range ps {
		out[i] = PlayerDTO{
			Name:        p.Name,
			GamesPlayed: p.GamesPlayed,
			GamesWon:    p.GamesWon,
			WinPercent:  p.WinPercent(),
		}
	}
	return out
}
