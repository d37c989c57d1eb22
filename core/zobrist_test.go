package core

import "testing"

func TestZobristToggleIsSelfInverse(t *testing.T) {
	var hash uint64
	sq := Square{Kind: Knight, Color: White}
	at := Coord{File: 3, Rank: 4}

	zobristTogglePiece(&hash, sq, at)
	zobristTogglePiece(&hash, sq, at)
	if hash != 0 {
		t.Errorf("toggling a piece twice should cancel out, got %#x", hash)
	}

	zobristToggleSideToMove(&hash)
	zobristToggleSideToMove(&hash)
	if hash != 0 {
		t.Errorf("toggling side-to-move twice should cancel out, got %#x", hash)
	}

	zobristToggleCastlingRight(&hash, WhiteKingside)
	zobristToggleCastlingRight(&hash, WhiteKingside)
	if hash != 0 {
		t.Errorf("toggling a castling right twice should cancel out, got %#x", hash)
	}

	zobristToggleEnPassantFile(&hash, 4)
	zobristToggleEnPassantFile(&hash, 4)
	if hash != 0 {
		t.Errorf("toggling an en-passant file twice should cancel out, got %#x", hash)
	}
}

func TestZobristConvergesOnTranspositions(t *testing.T) {
	start := NewPosition(VariantStandard)

	knightsFirst := playAlgebraic(t, start,
		[2]string{"g1", "f3"}, [2]string{"b8", "c6"},
		[2]string{"b1", "c3"}, [2]string{"g8", "f6"},
	)
	knightsSwapped := playAlgebraic(t, start,
		[2]string{"b1", "c3"}, [2]string{"g8", "f6"},
		[2]string{"g1", "f3"}, [2]string{"b8", "c6"},
	)

	if knightsFirst.Hash != knightsSwapped.Hash {
		t.Errorf("transposed move orders should hash identically: %#x != %#x",
			knightsFirst.Hash, knightsSwapped.Hash)
	}
	if knightsFirst.Board != knightsSwapped.Board {
		t.Errorf("transposed move orders should reach an identical board")
	}
}
