package core

// Zobrist word-table layout. 64 squares * 12 (colour*6+kind) piece-square
// entries, one side-to-move word, four castling-right words, eight
// en-passant-file words.
const (
	zobristPieceSquares = 64 * 12
	zobristSideToMove   = zobristPieceSquares
	zobristCastling     = zobristSideToMove + 1
	zobristEnPassant    = zobristCastling + 4
	zobristTableSize    = zobristEnPassant + 8
)

// lcgSeed and lcgMultiplier are the seed and multiplier of the source
// engine's linear_congruential_engine<uint64_t, 48271, 0, ULLONG_MAX>. The
// generator here uses an additive constant of 0 and lets uint64
// arithmetic wrap, i.e. a modulus of 2^64 rather than that engine's
// ULLONG_MAX (2^64-1), so its words differ from the source engine's.
const (
	lcgSeed       uint64 = 11195303932578022943
	lcgMultiplier uint64 = 48271
)

var zobristWords [zobristTableSize]uint64

func init() {
	state := lcgSeed
	for i := range zobristWords {
		state = state * lcgMultiplier
		zobristWords[i] = state
	}
}

func zobristPieceWord(sq Square, at Coord) uint64 {
	pieceIndex := int(sq.Color)*6 + sq.Kind.zobristKind()
	return zobristWords[pieceIndex*64+at.Rank*8+at.File]
}

func zobristTogglePiece(hash *uint64, sq Square, at Coord) {
	*hash ^= zobristPieceWord(sq, at)
}

func zobristToggleSideToMove(hash *uint64) {
	*hash ^= zobristWords[zobristSideToMove]
}

func zobristToggleCastlingRight(hash *uint64, right int) {
	*hash ^= zobristWords[zobristCastling+right]
}

func zobristToggleEnPassantFile(hash *uint64, file int) {
	*hash ^= zobristWords[zobristEnPassant+file]
}
