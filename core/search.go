package core

import (
	"sort"
	"time"
)

const searchTimeBudget = 5 * time.Second

// Searcher runs iterative-deepening negamax with alpha-beta pruning
// against a transposition table private to this searcher; the core never
// shares a table across goroutines.
type Searcher struct {
	TT *TranspositionTable
}

func NewSearcher() *Searcher {
	return &Searcher{TT: NewTranspositionTable()}
}

func sortChildrenByEval(children []*Position) {
	sort.Slice(children, func(i, j int) bool {
		a, b := children[i], children[j]
		if a.SideToMove == White {
			return a.Evaluate() < b.Evaluate()
		}
		return a.Evaluate() > b.Evaluate()
	})
}

// negamax scores position from the perspective of colour (+1 White to
// move, -1 Black to move), probing and storing through the searcher's
// transposition table.
func (s *Searcher) negamax(pos *Position, depth, alpha, beta, colour int) int {
	originalAlpha := alpha

	if _, score, flag, ok := s.TT.Probe(pos.Hash, depth); ok {
		switch flag {
		case Exact:
			return score
		case LowerBound:
			alpha = maxInt(alpha, score)
		case UpperBound:
			beta = minInt(beta, score)
		}
		if alpha >= beta {
			return score
		}
	}

	if depth == 0 || len(pos.LegalMoves) == 0 {
		return pos.Evaluate() * colour
	}

	children := make([]*Position, len(pos.LegalMoves))
	for i, m := range pos.LegalMoves {
		children[i] = Derive(pos, m, depth > 1)
	}

	// Sorting again towards the leaves gives little reordering benefit
	// and stops being worth its own cost.
	if depth > 2 {
		sortChildrenByEval(children)
	}

	value := NegMate - 1
	for _, child := range children {
		v := -s.negamax(child, depth-1, -beta, -alpha, -colour)
		if v > value {
			value = v
		}
		alpha = maxInt(value, alpha)
		if alpha >= beta {
			break
		}
	}

	flag := Exact
	if value <= originalAlpha {
		flag = UpperBound
	} else if value >= beta {
		flag = LowerBound
	}
	s.TT.Store(pos.Hash, depth, value, flag)
	return value
}

// FindBestMove runs iterative deepening from root until the wall-clock
// budget elapses, a forced mate is found, or the root has no moves. It
// returns (move, false) on a normal result or (nil, true) when the
// engine resigns. Resignation never applies outside standard chess.
func (s *Searcher) FindBestMove(root *Position) (*Move, bool) {
	if len(root.LegalMoves) == 0 {
		return nil, false
	}

	// children are one ply past root, so the colour passed to negamax is
	// the opponent's: -1 when White is to move at root, +1 when Black is.
	rootColour := -1
	if root.SideToMove == Black {
		rootColour = 1
	}

	children := make([]*Position, len(root.LegalMoves))
	for i, m := range root.LegalMoves {
		children[i] = Derive(root, m, true)
	}

	bestMove := root.LegalMoves[0]
	bestScore := NegMate - 1
	depth := 0
	deadline := time.Now().Add(searchTimeBudget)

	for time.Now().Before(deadline) {
		bestMoveThisIter := bestMove
		bestScoreThisIter := NegMate - 1
		alpha, beta := NegMate, PosMate

		sortChildrenByEval(children)

		for _, child := range children {
			score := -s.negamax(child, depth, -beta, -alpha, rootColour)
			alpha = maxInt(score, alpha)
			if root.SideToMove == White {
				child.evalValue, child.evalPresent = score, true
			} else {
				child.evalValue, child.evalPresent = -score, true
			}
			if score > bestScoreThisIter {
				bestScoreThisIter = score
				bestMoveThisIter = *child.ProducingMove
			}
		}

		bestMove = bestMoveThisIter
		bestScore = bestScoreThisIter

		if bestScore > 9000 || bestScore < -9000 {
			break
		}
		depth++
	}

	s.TT.Clear()

	if root.Variant == VariantStandard && bestScore <= -1000 {
		return nil, true
	}
	return &bestMove, false
}
