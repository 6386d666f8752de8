package chess

// FilterDestinations keeps the candidates after which the mover's own king is
// not attacked, in their original order. Each candidate is tested on a copy
// of the position, so p is never modified.
func (p *Position) FilterDestinations(candidates []Square, from Square) []Square {
	pc := p.Board.At(from)
	if pc.IsZero() {
		return nil
	}
	out := make([]Square, 0, len(candidates))
	for _, to := range candidates {
		if !to.OnBoard() || to == from {
			continue
		}
		np := p.hypothetical(from, to)
		if np.KingInDanger(pc.Color) {
			continue
		}
		out = append(out, to)
	}
	return out
}

// LegalDestinations = pseudo-legal destinations of the piece on from, minus
// those that expose its king.
func (p *Position) LegalDestinations(from Square) []Square {
	pc := p.Board.At(from)
	if pc.IsZero() {
		return nil
	}
	return p.FilterDestinations(pc.Destinations(&p.Board, from), from)
}

// LegalMoves lists every legal (from, to) pair for side, row-major by origin.
func (p *Position) LegalMoves(side Color) [][2]Square {
	var out [][2]Square
	p.Board.Each(func(c *Cell) {
		pc, ok := c.Piece()
		if !ok || pc.Color != side {
			return
		}
		for _, to := range p.LegalDestinations(c.Square) {
			out = append(out, [2]Square{c.Square, to})
		}
	})
	return out
}
