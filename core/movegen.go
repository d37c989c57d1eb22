package core

// generateLegalMoves enumerates pseudo-legal moves for the side to move
// into p.LegalMoves. Only king moves are filtered for leaving the king in
// check; non-king pieces are not checked against a pin, matching the
// behavior this engine was built to reproduce.
func (p *Position) generateLegalMoves() {
	p.LegalMoves = make([]Move, 0, 50)
	kingPresent := false

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := p.Board[rank][file]
			if sq.Kind == NoPiece {
				continue
			}
			at := Coord{File: file, Rank: rank}
			if sq.Color != p.SideToMove {
				if p.Variant == VariantHill && sq.Kind == King && file >= 3 && file <= 4 && rank >= 3 && rank <= 4 {
					p.LegalMoves = nil
					return
				}
				continue
			}
			switch sq.Kind {
			case Pawn:
				p.addPawnMoves(at)
			case Knight:
				p.addKnightMoves(at)
			case Bishop:
				p.addBishopMoves(at)
			case Rook:
				p.addRookMoves(at)
			case Queen:
				p.addBishopMoves(at)
				p.addRookMoves(at)
			case King:
				p.addKingMoves(at)
				kingPresent = true
			}
		}
	}

	if !kingPresent {
		p.LegalMoves = nil
	}
}

func (p *Position) addMove(from, to Coord) {
	p.LegalMoves = append(p.LegalMoves, Move{From: from, To: to})
}

func (p *Position) addPawnMoves(from Coord) {
	direction := 1
	if p.SideToMove == Black {
		direction = -1
	}
	oneStep := Coord{File: from.File, Rank: from.Rank + direction}
	if p.at(oneStep).Kind == NoPiece {
		p.addMove(from, oneStep)
		if from.Rank == (7+direction)%7 {
			twoStep := Coord{File: from.File, Rank: from.Rank + 2*direction}
			if p.at(twoStep).Kind == NoPiece {
				p.addMove(from, twoStep)
			}
		}
	}
	for _, df := range [2]int{-1, 1} {
		to := Coord{File: from.File + df, Rank: from.Rank + direction}
		if !to.OnBoard() {
			continue
		}
		target := p.at(to)
		isCapture := target.Kind != NoPiece && target.Color != p.SideToMove
		isEnPassant := !p.EnPassantTarget.IsNone() && p.EnPassantTarget == to
		if isCapture || isEnPassant {
			p.addMove(from, to)
		}
	}
}

var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {2, -1}, {2, 1},
	{-1, -2}, {-1, 2}, {1, -2}, {1, 2},
}

func (p *Position) addKnightMoves(from Coord) {
	for _, d := range knightOffsets {
		to := Coord{File: from.File + d[0], Rank: from.Rank + d[1]}
		if p.canMoveTo(to) {
			p.addMove(from, to)
		}
	}
}

func (p *Position) addBishopMoves(from Coord) {
	for _, i := range [2]int{-1, 1} {
		for _, j := range [2]int{-1, 1} {
			for m := 1; ; m++ {
				to := Coord{File: from.File + i*m, Rank: from.Rank + j*m}
				if !p.canMoveTo(to) {
					break
				}
				p.addMove(from, to)
				if p.at(to).Kind != NoPiece {
					break
				}
			}
		}
	}
}

func (p *Position) addRookMoves(from Coord) {
	for _, i := range [2]int{-1, 1} {
		for m := 1; ; m++ {
			to := Coord{File: from.File + i*m, Rank: from.Rank}
			if !p.canMoveTo(to) {
				break
			}
			p.addMove(from, to)
			if p.at(to).Kind != NoPiece {
				break
			}
		}
		for m := 1; ; m++ {
			to := Coord{File: from.File, Rank: from.Rank + i*m}
			if !p.canMoveTo(to) {
				break
			}
			p.addMove(from, to)
			if p.at(to).Kind != NoPiece {
				break
			}
		}
	}
}

func (p *Position) addKingMoves(from Coord) {
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			if i == 0 && j == 0 {
				continue
			}
			to := Coord{File: from.File + i, Rank: from.Rank + j}
			if p.canMoveTo(to) && !p.squareAttacked(to) {
				p.addMove(from, to)
			}
		}
	}

	backRank := 0
	if p.SideToMove == Black {
		backRank = 7
	}
	queensideIdx := CastlingRightIndex(p.SideToMove, false)
	kingsideIdx := CastlingRightIndex(p.SideToMove, true)

	if p.CastlingRights[queensideIdx] &&
		p.Board[backRank][1].Kind == NoPiece &&
		p.Board[backRank][2].Kind == NoPiece &&
		p.Board[backRank][3].Kind == NoPiece &&
		!p.squareAttacked(Coord{File: 2, Rank: backRank}) &&
		!p.squareAttacked(Coord{File: 3, Rank: backRank}) &&
		!p.squareAttacked(Coord{File: 4, Rank: backRank}) {
		p.addMove(from, Coord{File: 2, Rank: backRank})
	}
	if p.CastlingRights[kingsideIdx] &&
		p.Board[backRank][5].Kind == NoPiece &&
		p.Board[backRank][6].Kind == NoPiece &&
		!p.squareAttacked(Coord{File: 4, Rank: backRank}) &&
		!p.squareAttacked(Coord{File: 5, Rank: backRank}) &&
		!p.squareAttacked(Coord{File: 6, Rank: backRank}) {
		p.addMove(from, Coord{File: 6, Rank: backRank})
	}
}

// squareAttacked reports whether the opposite colour to SideToMove
// attacks the given square.
func (p *Position) squareAttacked(at Coord) bool {
	for _, i := range [2]int{-1, 1} {
		for _, j := range [2]int{-1, 1} {
			for m := 1; ; m++ {
				to := Coord{File: at.File + i*m, Rank: at.Rank + j*m}
				if !p.canMoveTo(to) {
					break
				}
				sq := p.at(to)
				if sq.Kind == Bishop || sq.Kind == Queen {
					return true
				}
				if sq.Kind != NoPiece {
					break
				}
			}
		}
	}
	for _, i := range [2]int{-1, 1} {
		for m := 1; ; m++ {
			to := Coord{File: at.File + i*m, Rank: at.Rank}
			if !p.canMoveTo(to) {
				break
			}
			sq := p.at(to)
			if sq.Kind == Rook || sq.Kind == Queen {
				return true
			}
			if sq.Kind != NoPiece {
				break
			}
		}
		for m := 1; ; m++ {
			to := Coord{File: at.File, Rank: at.Rank + i*m}
			if !p.canMoveTo(to) {
				break
			}
			sq := p.at(to)
			if sq.Kind == Rook || sq.Kind == Queen {
				return true
			}
			if sq.Kind != NoPiece {
				break
			}
		}
	}
	for _, d := range knightOffsets {
		to := Coord{File: at.File + d[0], Rank: at.Rank + d[1]}
		if p.canMoveTo(to) && p.at(to).Kind == Knight {
			return true
		}
	}
	enemyPawnDirection := -1
	if p.SideToMove == Black {
		enemyPawnDirection = 1
	}
	for _, i := range [2]int{-1, 1} {
		to := Coord{File: at.File + i, Rank: at.Rank - enemyPawnDirection}
		if p.canMoveTo(to) && p.at(to).Kind == Pawn {
			return true
		}
	}
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			if i == 0 && j == 0 {
				continue
			}
			to := Coord{File: at.File + i, Rank: at.Rank + j}
			if p.canMoveTo(to) && p.at(to).Kind == King {
				return true
			}
		}
	}
	return false
}
