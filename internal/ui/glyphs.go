package ui

import "chessgame/internal/chess"

var unicodeGlyphs = map[chess.Color]map[chess.Kind]rune{
	chess.White: {
		chess.King: '♔', chess.Queen: '♕', chess.Rook: '♖',
		chess.Bishop: '♗', chess.Knight: '♘', chess.Pawn: '♙',
	},
	chess.Black: {
		chess.King: '♚', chess.Queen: '♛', chess.Rook: '♜',
		chess.Bishop: '♝', chess.Knight: '♞', chess.Pawn: '♟',
	},
}

var letterGlyphs = map[chess.Kind]rune{
	chess.King: 'K', chess.Queen: 'Q', chess.Rook: 'R',
	chess.Bishop: 'B', chess.Knight: 'N', chess.Pawn: 'P',
}

// Glyph returns the rune drawn for p: chess symbols, or letters (upper case
// for White) when useUnicode is off. Empty squares yield 0.
func Glyph(p chess.Piece, useUnicode bool) rune {
	if p.IsZero() {
		return 0
	}
	if useUnicode {
		return unicodeGlyphs[p.Color][p.Kind]
	}
	r := letterGlyphs[p.Kind]
	if p.Color == chess.Black {
		r += 'a' - 'A'
	}
	return r
}
