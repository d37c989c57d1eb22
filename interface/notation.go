package inter

import (
	"strings"

	"github.com/pkg/errors"
	"varichess/core"
)

// ParseSAN resolves a short-algebraic move string ("e4", "Nbd2", "Rxe5",
// "O-O", ...) against pos's legal moves. It never constructs a Move out
// of thin air: the returned Move is always one already present in
// pos.LegalMoves, so illegal or ambiguous input is rejected rather than
// guessed at.
func ParseSAN(pos *core.Position, text string) (core.Move, error) {
	san := strings.TrimSpace(text)
	san = strings.TrimSuffix(san, "+")
	san = strings.TrimSuffix(san, "#")
	if san == "" {
		return core.Move{}, errors.New("empty move text")
	}

	if san == "O-O" || san == "0-0" {
		return findCastle(pos, true)
	}
	if san == "O-O-O" || san == "0-0-0" {
		return findCastle(pos, false)
	}

	kind := core.Pawn
	rest := san
	if c := san[0]; c >= 'A' && c <= 'Z' {
		k, ok := pieceKindFromLetter(c)
		if !ok {
			return core.Move{}, errors.Errorf("unrecognised piece letter %q in %q", string(c), san)
		}
		kind = k
		rest = san[1:]
	}

	rest = strings.TrimSuffix(rest, "=Q")
	rest = strings.ReplaceAll(rest, "x", "")

	if len(rest) < 2 {
		return core.Move{}, errors.Errorf("malformed move %q", san)
	}
	destText := rest[len(rest)-2:]
	disambig := rest[:len(rest)-2]

	if !isAlgebraicSquare(destText) {
		return core.Move{}, errors.Errorf("malformed destination square in %q", san)
	}
	to := core.AlgebraicToCoord(destText)

	var fromFile, fromRank = -1, -1
	for _, r := range disambig {
		switch {
		case r >= 'a' && r <= 'h':
			fromFile = int(r - 'a')
		case r >= '1' && r <= '8':
			fromRank = int(r - '1')
		default:
			return core.Move{}, errors.Errorf("malformed disambiguation %q in %q", disambig, san)
		}
	}

	var candidates []core.Move
	for _, m := range pos.LegalMoves {
		if m.To != to {
			continue
		}
		piece := pos.PieceAt(m.From)
		if piece.Kind != kind {
			continue
		}
		if fromFile >= 0 && m.From.File != fromFile {
			continue
		}
		if fromRank >= 0 && m.From.Rank != fromRank {
			continue
		}
		candidates = append(candidates, m)
	}

	switch len(candidates) {
	case 0:
		return core.Move{}, errors.Errorf("no legal move matches %q", san)
	case 1:
		return candidates[0], nil
	default:
		return core.Move{}, errors.Errorf("%q is ambiguous among %d candidate moves", san, len(candidates))
	}
}

func findCastle(pos *core.Position, kingside bool) (core.Move, error) {
	backRank := 0
	if pos.SideToMove == core.Black {
		backRank = 7
	}
	from := core.Coord{File: 4, Rank: backRank}
	toFile := 2
	if kingside {
		toFile = 6
	}
	to := core.Coord{File: toFile, Rank: backRank}

	for _, m := range pos.LegalMoves {
		if m.From == from && m.To == to {
			return m, nil
		}
	}
	side := "queenside"
	if kingside {
		side = "kingside"
	}
	return core.Move{}, errors.Errorf("%s castling is not currently legal", side)
}

func pieceKindFromLetter(c byte) (core.PieceKind, bool) {
	switch c {
	case 'N':
		return core.Knight, true
	case 'B':
		return core.Bishop, true
	case 'R':
		return core.Rook, true
	case 'Q':
		return core.Queen, true
	case 'K':
		return core.King, true
	}
	return core.NoPiece, false
}

func isAlgebraicSquare(s string) bool {
	return len(s) == 2 && s[0] >= 'a' && s[0] <= 'h' && s[1] >= '1' && s[1] <= '8'
}

// FormatSAN renders move played against pos (before the move is applied)
// in short algebraic notation. Disambiguation falls back to the file,
// then the rank, then both, in that order, matching standard usage.
func FormatSAN(pos *core.Position, move core.Move) string {
	moving := pos.PieceAt(move.From)

	if moving.Kind == core.King {
		fileDelta := move.To.File - move.From.File
		if fileDelta == 2 {
			return "O-O"
		}
		if fileDelta == -2 {
			return "O-O-O"
		}
	}

	captured := pos.PieceAt(move.To).Kind != core.NoPiece
	isEnPassant := moving.Kind == core.Pawn && move.To.File != move.From.File && !captured

	var b strings.Builder
	if moving.Kind != core.Pawn {
		b.WriteByte(pieceLetter(moving.Kind))
		b.WriteString(disambiguation(pos, move, moving))
	} else if captured || isEnPassant {
		b.WriteByte(byte('a' + move.From.File))
	}

	if captured || isEnPassant {
		b.WriteByte('x')
	}
	b.WriteString(core.CoordToAlgebraic(move.To))

	if moving.Kind == core.Pawn && (move.To.Rank == 0 || move.To.Rank == 7) {
		b.WriteString("=Q")
	}

	next := core.Derive(pos, move, true)
	if next.InCheck() {
		if len(next.LegalMoves) == 0 {
			b.WriteByte('#')
		} else {
			b.WriteByte('+')
		}
	}

	return b.String()
}

func pieceLetter(k core.PieceKind) byte {
	switch k {
	case core.Knight:
		return 'N'
	case core.Bishop:
		return 'B'
	case core.Rook:
		return 'R'
	case core.Queen:
		return 'Q'
	case core.King:
		return 'K'
	}
	return '?'
}

// disambiguation returns the minimal file/rank/both prefix needed to tell
// move.From apart from any other legal move of the same kind landing on
// the same square.
func disambiguation(pos *core.Position, move core.Move, moving core.Square) string {
	sameFile, sameRank := false, false
	ambiguous := false
	for _, m := range pos.LegalMoves {
		if m.From == move.From || m.To != move.To {
			continue
		}
		other := pos.PieceAt(m.From)
		if other.Kind != moving.Kind {
			continue
		}
		ambiguous = true
		if m.From.File == move.From.File {
			sameFile = true
		}
		if m.From.Rank == move.From.Rank {
			sameRank = true
		}
	}
	if !ambiguous {
		return ""
	}
	switch {
	case !sameFile:
		return string(rune('a' + move.From.File))
	case !sameRank:
		return string(rune('1' + move.From.Rank))
	default:
		return core.CoordToAlgebraic(move.From)
	}
}
