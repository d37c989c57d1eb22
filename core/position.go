package core

// Position is an immutable-by-convention snapshot of the game state. Every
// successor is built by Derive from a predecessor and a move; nothing
// mutates a Position after construction except its evaluation cache.
type Position struct {
	Board           [8][8]Square
	SideToMove      Color
	CastlingRights  [4]bool
	EnPassantTarget Coord
	Material        [2][6]int
	Hash            uint64
	EndgameFlag     bool
	Variant         Variant

	LegalMoves      []Move
	MovesEnumerated bool

	evalValue   int
	evalPresent bool

	Predecessor   *Position
	ProducingMove *Move
}

var startingBackRank = [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewPosition builds the standard starting array for the given variant.
func NewPosition(variant Variant) *Position {
	pos := &Position{
		Variant:         variant,
		EnPassantTarget: NoCoord,
		CastlingRights:  [4]bool{true, true, true, true},
	}
	for i := range pos.CastlingRights {
		zobristToggleCastlingRight(&pos.Hash, i)
	}
	for file := 0; file < 8; file++ {
		placePiece(pos, Coord{File: file, Rank: 0}, Square{Kind: startingBackRank[file], Color: White})
		placePiece(pos, Coord{File: file, Rank: 1}, Square{Kind: Pawn, Color: White})
		placePiece(pos, Coord{File: file, Rank: 6}, Square{Kind: Pawn, Color: Black})
		placePiece(pos, Coord{File: file, Rank: 7}, Square{Kind: startingBackRank[file], Color: Black})
	}
	pos.generateLegalMoves()
	pos.MovesEnumerated = true
	return pos
}

func (p *Position) at(c Coord) Square {
	return p.Board[c.Rank][c.File]
}

// PieceAt exposes the board contents at c for callers outside the
// package, such as notation formatting.
func (p *Position) PieceAt(c Coord) Square {
	return p.at(c)
}

// InCheck reports whether the side to move's king is currently attacked.
// It returns false in Atomic once that side's king has been exploded,
// since there is no square left to attack.
func (p *Position) InCheck() bool {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := p.Board[rank][file]
			if sq.Kind == King && sq.Color == p.SideToMove {
				return p.squareAttacked(Coord{File: file, Rank: rank})
			}
		}
	}
	return false
}

func (p *Position) canMoveTo(c Coord) bool {
	if !c.OnBoard() {
		return false
	}
	sq := p.at(c)
	return sq.Kind == NoPiece || sq.Color != p.SideToMove
}

func placePiece(p *Position, at Coord, sq Square) {
	p.Board[at.Rank][at.File] = sq
	zobristTogglePiece(&p.Hash, sq, at)
	p.Material[sq.Color][sq.Kind.zobristKind()]++
}

func clearPiece(p *Position, at Coord) {
	sq := p.Board[at.Rank][at.File]
	if sq.Kind == NoPiece {
		return
	}
	zobristTogglePiece(&p.Hash, sq, at)
	p.Material[sq.Color][sq.Kind.zobristKind()]--
	p.Board[at.Rank][at.File] = EmptySquare
}

// Derive builds the successor of predecessor produced by playing move.
// enumerate controls whether the child's own legal-move list is computed;
// the searcher skips this for leaf children that will never be expanded.
func Derive(predecessor *Position, move Move, enumerate bool) *Position {
	p := &Position{
		Board:          predecessor.Board,
		SideToMove:     predecessor.SideToMove,
		CastlingRights: predecessor.CastlingRights,
		Material:       predecessor.Material,
		Hash:           predecessor.Hash,
		EndgameFlag:    predecessor.EndgameFlag,
		Variant:        predecessor.Variant,
		Predecessor:    predecessor,
		ProducingMove:  &move,
	}

	if !predecessor.EnPassantTarget.IsNone() {
		zobristToggleEnPassantFile(&p.Hash, predecessor.EnPassantTarget.File)
	}
	p.EnPassantTarget = NoCoord

	from, to := move.From, move.To
	movingPiece := p.at(from)

	if movingPiece.Kind == Pawn {
		displacement := to.Rank - from.Rank
		if displacement > 1 || displacement < -1 {
			p.EnPassantTarget = Coord{File: from.File, Rank: from.Rank + displacement/2}
			zobristToggleEnPassantFile(&p.Hash, from.File)
		} else if from.File != to.File && p.at(to).Kind == NoPiece {
			clearPiece(p, Coord{File: to.File, Rank: from.Rank})
		}
	}

	if movingPiece.Kind == King {
		fileDisplacement := to.File - from.File
		if fileDisplacement > 1 || fileDisplacement < -1 {
			direction := fileDisplacement / 2
			rookFile := to.File
			for rookFile%7 != 0 {
				rookFile += direction
			}
			rook := p.at(Coord{File: rookFile, Rank: from.Rank})
			clearPiece(p, Coord{File: rookFile, Rank: from.Rank})
			placePiece(p, Coord{File: from.File + direction, Rank: from.Rank}, rook)
		}
	}

	for i := 0; i < 4; i++ {
		backRank := 0
		if i >= 2 {
			backRank = 7
		}
		rookFile := 7
		if i%2 == 1 {
			rookFile = 0
		}
		kingHome := Coord{File: 4, Rank: backRank}
		rookHome := Coord{File: rookFile, Rank: backRank}
		if p.CastlingRights[i] && (from == kingHome || from == rookHome || to == rookHome) {
			p.CastlingRights[i] = false
			zobristToggleCastlingRight(&p.Hash, i)
		}
	}

	switch p.Variant {
	case VariantAtomic:
		derivePlayAtomic(p, from, to)
	default:
		if p.at(to).Kind != NoPiece {
			clearPiece(p, to)
		}
		moving := p.at(from)
		placePiece(p, to, moving)
		clearPiece(p, from)
	}

	if landed := p.at(to); landed.Kind == Pawn && (to.Rank == 0 || to.Rank == 7) {
		color := landed.Color
		clearPiece(p, to)
		placePiece(p, to, Square{Kind: Queen, Color: color})
	}

	p.SideToMove = predecessor.SideToMove.Opposite()
	zobristToggleSideToMove(&p.Hash)

	if enumerate {
		p.generateLegalMoves()
	}
	p.MovesEnumerated = enumerate

	if !p.EndgameFlag {
		playersInEndgame := 0
		for c := 0; c < 2; c++ {
			if p.Material[c][Queen.zobristKind()] == 0 ||
				p.Material[c][Knight.zobristKind()]+p.Material[c][Bishop.zobristKind()]+p.Material[c][Rook.zobristKind()] < 2 {
				playersInEndgame++
			}
		}
		if playersInEndgame == 2 {
			p.EndgameFlag = true
		}
	}

	repetitions := 1
	for iter := p.Predecessor; iter != nil; iter = iter.Predecessor {
		if iter.Hash == p.Hash {
			repetitions++
		}
	}
	if repetitions >= 3 {
		p.LegalMoves = nil
		p.MovesEnumerated = true
		p.evalValue = 0
		p.evalPresent = true
	}

	return p
}

// derivePlayAtomic applies Atomic's capture-explosion semantics: a
// capture destroys every non-pawn piece in the 3x3 neighbourhood of the
// destination square, including the capturing piece itself; a
// non-capture behaves as a standard move.
func derivePlayAtomic(p *Position, from, to Coord) {
	if p.at(to).Kind != NoPiece {
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				at := Coord{File: to.File + dx, Rank: to.Rank + dy}
				if !at.OnBoard() {
					continue
				}
				sq := p.at(at)
				if sq.Kind == NoPiece {
					continue
				}
				if sq.Kind == Pawn && (dx != 0 || dy != 0) {
					continue
				}
				clearPiece(p, at)
			}
		}
	} else {
		placePiece(p, to, p.at(from))
	}
	if p.at(from).Kind != NoPiece {
		clearPiece(p, from)
	}
}
