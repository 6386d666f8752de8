package chess

import "github.com/pkg/errors"

type State int8

const (
	AwaitingSelection State = iota
	PieceSelected
	GameOver
)

func (s State) String() string {
	switch s {
	case AwaitingSelection:
		return "awaiting_selection"
	case PieceSelected:
		return "piece_selected"
	case GameOver:
		return "game_over"
	}
	return "unknown"
}

type Reason string

const (
	ReasonCheckmate Reason = "checkmate"
	ReasonTimeout   Reason = "timeout"
)

// Result of a finished game. Winner is the side that was not to move when
// checkmate was declared, or the opponent of the side whose clock ran out.
type Result struct {
	Winner Color  `json:"winner"`
	Reason Reason `json:"reason"`
}

// Game arbitrates turns on a single Position. It is not safe for concurrent
// use; callers serialise access.
type Game struct {
	start        string
	pos          Position
	state        State
	selected     Square
	destinations []Square
	result       Result
	history      []Move
	onEnd        []func(Result)
}

func NewGame() *Game {
	g := &Game{}
	g.reset(NewInitialPosition())
	return g
}

// NewGameFrom starts a game from an arbitrary position, which must hold
// exactly one king per side.
func NewGameFrom(p *Position) (*Game, error) {
	for _, c := range []Color{White, Black} {
		n := 0
		p.Board.Each(func(cell *Cell) {
			if cell.piece.Kind == King && cell.piece.Color == c {
				n++
			}
		})
		if n != 1 {
			return nil, errors.Wrapf(ErrInvalidPosition, "%s has %d kings", c, n)
		}
	}
	g := &Game{}
	g.reset(p)
	return g, nil
}

// Reset starts a fresh game from the initial layout. End-of-game listeners
// stay registered.
func (g *Game) Reset() {
	g.reset(NewInitialPosition())
}

func (g *Game) reset(p *Position) {
	g.pos = *p
	g.pos.Board.clearSelection()
	g.start = g.pos.Encode()
	g.state = AwaitingSelection
	g.selected = NoSquare
	g.destinations = nil
	g.result = Result{Winner: NoColor}
	g.history = nil
	g.refreshChecks()
	if g.pos.IsCheckmate(g.pos.Turn) {
		g.finish(Result{Winner: g.pos.Turn.Opposite(), Reason: ReasonCheckmate})
	}
}

func (g *Game) Turn() Color  { return g.pos.Turn }
func (g *Game) State() State { return g.state }

// Board exposes the live board so renderers can read pieces and cell flags.
// Renderers must not mutate it.
func (g *Game) Board() *Board { return &g.pos.Board }

func (g *Game) Cell(sq Square) *Cell { return g.pos.Board.Cell(sq) }

// Start is the FEN of the position the game began from.
func (g *Game) Start() string { return g.start }

// Snapshot returns an independent copy of the current position.
func (g *Game) Snapshot() Position { return g.pos }

func (g *Game) Selected() (Square, bool) {
	return g.selected, g.state == PieceSelected
}

func (g *Game) Destinations() []Square {
	return append([]Square(nil), g.destinations...)
}

func (g *Game) Result() (Result, bool) {
	return g.result, g.state == GameOver
}

func (g *Game) History() []Move {
	return append([]Move(nil), g.history...)
}

func (g *Game) InCheck(c Color) bool { return g.pos.KingInDanger(c) }

// OnGameEnd registers fn to be called once per finished game.
func (g *Game) OnGameEnd(fn func(Result)) {
	g.onEnd = append(g.onEnd, fn)
}

// SelectCell picks the mover's piece on sq and computes its legal
// destinations. Empty squares and enemy pieces are rejected untouched.
func (g *Game) SelectCell(sq Square) error {
	if g.state == GameOver {
		return ErrGameOver
	}
	pc := g.pos.Board.At(sq)
	if pc.IsZero() || pc.Color != g.pos.Turn {
		return errors.Wrapf(ErrInvalidSelection, "select %s", sq)
	}
	g.clearSelection()
	g.selected = sq
	g.destinations = g.pos.LegalDestinations(sq)
	g.pos.Board.Cell(sq).Select()
	for _, to := range g.destinations {
		g.pos.Board.Cell(to).SetDestination()
	}
	g.state = PieceSelected
	return nil
}

// MoveTo plays the selected piece to sq. A square outside the computed
// destinations only clears the selection.
func (g *Game) MoveTo(sq Square) error {
	switch g.state {
	case GameOver:
		return ErrGameOver
	case AwaitingSelection:
		return ErrNoSelection
	}
	if !g.isDestination(sq) {
		from := g.selected
		g.clearSelection()
		return errors.Wrapf(ErrIllegalDestination, "%s -> %s", from, sq)
	}
	g.execute(g.selected, sq)
	return nil
}

// Click is the single entry point of a board click: select, move, switch to
// another own piece, or deselect.
func (g *Game) Click(sq Square) error {
	switch g.state {
	case GameOver:
		return ErrGameOver
	case AwaitingSelection:
		return g.SelectCell(sq)
	}
	if sq == g.selected {
		g.clearSelection()
		return nil
	}
	if g.isDestination(sq) {
		return g.MoveTo(sq)
	}
	if pc := g.pos.Board.At(sq); !pc.IsZero() && pc.Color == g.pos.Turn {
		return g.SelectCell(sq)
	}
	return g.MoveTo(sq)
}

// Play selects and moves in one step, e.g. "e2e4".
func (g *Game) Play(uci string) error {
	from, to, err := ParseMove(uci)
	if err != nil {
		return err
	}
	if err := g.SelectCell(from); err != nil {
		return err
	}
	return g.MoveTo(to)
}

// DeclareTimeout ends the game with loser losing on time.
func (g *Game) DeclareTimeout(loser Color) error {
	if g.state == GameOver {
		return ErrGameOver
	}
	if !loser.Valid() {
		return errors.Errorf("timeout: invalid color %d", loser)
	}
	g.finish(Result{Winner: loser.Opposite(), Reason: ReasonTimeout})
	return nil
}

func (g *Game) isDestination(sq Square) bool {
	for _, d := range g.destinations {
		if d == sq {
			return true
		}
	}
	return false
}

func (g *Game) clearSelection() {
	g.pos.Board.clearSelection()
	g.selected = NoSquare
	g.destinations = nil
	if g.state == PieceSelected {
		g.state = AwaitingSelection
	}
}

func (g *Game) execute(from, to Square) {
	g.clearSelection()
	mv := g.pos.apply(from, to)
	g.history = append(g.history, mv)
	g.refreshChecks()
	if g.pos.IsCheckmate(g.pos.Turn) {
		g.finish(Result{Winner: g.pos.Turn.Opposite(), Reason: ReasonCheckmate})
	}
}

// refreshChecks sets the in-check flag on each attacked king's cell.
func (g *Game) refreshChecks() {
	g.pos.Board.clearChecks()
	for _, c := range []Color{White, Black} {
		if g.pos.KingInDanger(c) {
			g.pos.Board.Cell(g.pos.Kings[c]).SetCheck()
		}
	}
}

func (g *Game) finish(r Result) {
	g.clearSelection()
	g.state = GameOver
	g.result = r
	for _, fn := range g.onEnd {
		fn(r)
	}
}
