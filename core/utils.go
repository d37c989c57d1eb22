package core

// CoordToAlgebraic converts a Coord to algebraic square notation, e.g.
// (file=4, rank=0) -> "e1".
func CoordToAlgebraic(c Coord) string {
	return string(rune('a'+c.File)) + string(rune('1'+c.Rank))
}

// AlgebraicToCoord parses a two-character algebraic square such as "e4"
// into a Coord. The caller is responsible for validating the string is
// well-formed before calling this.
func AlgebraicToCoord(s string) Coord {
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	return Coord{File: file, Rank: rank}
}
