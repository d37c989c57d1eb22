package core

import "testing"

// newCustomPosition builds a Position directly from a piece layout, for
// tests that need a specific board shape no sequence of legal moves from
// the starting position conveniently reaches.
func newCustomPosition(variant Variant, sideToMove Color, pieces map[Coord]Square, rights [4]bool, enPassant Coord) *Position {
	p := &Position{
		Variant:         variant,
		SideToMove:      sideToMove,
		CastlingRights:  rights,
		EnPassantTarget: NoCoord,
	}
	for at, sq := range pieces {
		placePiece(p, at, sq)
	}
	for i, set := range rights {
		if set {
			zobristToggleCastlingRight(&p.Hash, i)
		}
	}
	if sideToMove == Black {
		zobristToggleSideToMove(&p.Hash)
	}
	if !enPassant.IsNone() {
		p.EnPassantTarget = enPassant
		zobristToggleEnPassantFile(&p.Hash, enPassant.File)
	}
	p.generateLegalMoves()
	p.MovesEnumerated = true
	return p
}

// findMove locates the legal move between two algebraic squares, failing
// the test if it is not present.
func findMove(t *testing.T, p *Position, fromSquare, toSquare string) Move {
	t.Helper()
	from, to := AlgebraicToCoord(fromSquare), AlgebraicToCoord(toSquare)
	for _, m := range p.LegalMoves {
		if m.From == from && m.To == to {
			return m
		}
	}
	t.Fatalf("move %s%s not found among legal moves", fromSquare, toSquare)
	return Move{}
}

// playAlgebraic replays a sequence of from/to square pairs from pos,
// failing the test if any move is illegal at the point it is played.
func playAlgebraic(t *testing.T, pos *Position, pairs ...[2]string) *Position {
	t.Helper()
	cur := pos
	for _, pair := range pairs {
		m := findMove(t, cur, pair[0], pair[1])
		cur = Derive(cur, m, true)
	}
	return cur
}
