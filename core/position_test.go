package core

import "testing"

func TestStartingPositionHasTwentyMoves(t *testing.T) {
	pos := NewPosition(VariantStandard)
	if got := len(pos.LegalMoves); got != 20 {
		t.Errorf("legal moves from start = %d, want 20", got)
	}
}

func countMaterialOnBoard(p *Position) [2][6]int {
	var counts [2][6]int
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := p.Board[rank][file]
			if sq.Kind == NoPiece {
				continue
			}
			counts[sq.Color][sq.Kind.zobristKind()]++
		}
	}
	return counts
}

func assertMaterialMatchesBoard(t *testing.T, p *Position) {
	t.Helper()
	want := countMaterialOnBoard(p)
	if p.Material != want {
		t.Errorf("material counts %v do not match board occupancy %v", p.Material, want)
	}
}

func TestMaterialInvariantAfterOpeningMoves(t *testing.T) {
	pos := NewPosition(VariantStandard)
	assertMaterialMatchesBoard(t, pos)

	pos = playAlgebraic(t, pos,
		[2]string{"e2", "e4"},
		[2]string{"e7", "e5"},
		[2]string{"g1", "f3"},
		[2]string{"b8", "c6"},
		[2]string{"f3", "e5"},
	)
	assertMaterialMatchesBoard(t, pos)

	if pos.Material[White][Pawn.zobristKind()] != 8 {
		t.Errorf("white pawns = %d, want 8", pos.Material[White][Pawn.zobristKind()])
	}
	if pos.Material[Black][Pawn.zobristKind()] != 7 {
		t.Errorf("black pawns = %d, want 7 (e5 captured)", pos.Material[Black][Pawn.zobristKind()])
	}
}

func TestEnPassantWindow(t *testing.T) {
	pos := NewPosition(VariantStandard)
	pos = playAlgebraic(t, pos,
		[2]string{"e2", "e4"},
		[2]string{"a7", "a6"},
		[2]string{"e4", "e5"},
		[2]string{"d7", "d5"},
	)
	if pos.EnPassantTarget != (Coord{File: 3, Rank: 5}) {
		t.Fatalf("en-passant target = %v, want d6", pos.EnPassantTarget)
	}

	captured := findMove(t, pos, "e5", "d6")
	next := Derive(pos, captured, true)
	if next.Material[Black][Pawn.zobristKind()] != 7 {
		t.Errorf("black pawns after en passant = %d, want 7", next.Material[Black][Pawn.zobristKind()])
	}
	if next.Board[4][3].Kind != NoPiece {
		t.Errorf("captured pawn square d5 still occupied")
	}

	// One ply later the window has closed: no move should still target d6
	// as an en-passant capture from the same file pair.
	if !next.EnPassantTarget.IsNone() {
		t.Errorf("en-passant target should be cleared the ply after the double push")
	}
}

func TestPromotion(t *testing.T) {
	pieces := map[Coord]Square{
		AlgebraicToCoord("a1"): {Kind: King, Color: White},
		AlgebraicToCoord("h8"): {Kind: King, Color: Black},
		AlgebraicToCoord("b7"): {Kind: Pawn, Color: White},
	}
	pos := newCustomPosition(VariantStandard, White, pieces, [4]bool{}, NoCoord)

	m := findMove(t, pos, "b7", "b8")
	next := Derive(pos, m, true)

	landed := next.Board[7][1]
	if landed.Kind != Queen || landed.Color != White {
		t.Fatalf("promoted square = %+v, want white queen", landed)
	}
	if next.Material[White][Pawn.zobristKind()] != 0 {
		t.Errorf("white pawns after promotion = %d, want 0", next.Material[White][Pawn.zobristKind()])
	}
	if next.Material[White][Queen.zobristKind()] != 1 {
		t.Errorf("white queens after promotion = %d, want 1", next.Material[White][Queen.zobristKind()])
	}
}

func TestCastlingBlockedByAttackedTransitSquare(t *testing.T) {
	pieces := map[Coord]Square{
		AlgebraicToCoord("e1"): {Kind: King, Color: White},
		AlgebraicToCoord("h1"): {Kind: Rook, Color: White},
		AlgebraicToCoord("e8"): {Kind: King, Color: Black},
		AlgebraicToCoord("f8"): {Kind: Rook, Color: Black},
	}
	pos := newCustomPosition(VariantStandard, White, pieces, [4]bool{true, false, false, false}, NoCoord)

	for _, m := range pos.LegalMoves {
		if m.From == AlgebraicToCoord("e1") && m.To == AlgebraicToCoord("g1") {
			t.Fatalf("castling kingside should be illegal: f1 is attacked by the rook on f8")
		}
	}
}

func TestCastlingRevokedAfterRookCaptured(t *testing.T) {
	pieces := map[Coord]Square{
		AlgebraicToCoord("e1"): {Kind: King, Color: White},
		AlgebraicToCoord("h1"): {Kind: Rook, Color: White},
		AlgebraicToCoord("e8"): {Kind: King, Color: Black},
		AlgebraicToCoord("h8"): {Kind: Rook, Color: Black},
		AlgebraicToCoord("g7"): {Kind: Pawn, Color: White},
	}
	pos := newCustomPosition(VariantStandard, White, pieces, [4]bool{true, false, true, false}, NoCoord)

	m := findMove(t, pos, "g7", "h8")
	next := Derive(pos, m, true)
	if next.CastlingRights[BlackKingside] {
		t.Errorf("black kingside castling right should be revoked once its rook is captured on h8")
	}
}

func TestThreefoldRepetitionDeclaresDraw(t *testing.T) {
	pos := NewPosition(VariantStandard)
	pos = playAlgebraic(t, pos,
		[2]string{"g1", "f3"}, [2]string{"g8", "f6"},
		[2]string{"f3", "g1"}, [2]string{"f6", "g8"},
		[2]string{"g1", "f3"}, [2]string{"g8", "f6"},
		[2]string{"f3", "g1"}, [2]string{"f6", "g8"},
	)
	if len(pos.LegalMoves) != 0 {
		t.Errorf("repeated position should report no legal moves (drawn), got %d", len(pos.LegalMoves))
	}
	if pos.Evaluate() != 0 {
		t.Errorf("repeated position should evaluate to 0, got %d", pos.Evaluate())
	}
}
