package token

// Pos is a 1-based line number within a source file. Lox's diagnostic format
// only ever reports a line number, so there is no column or file to carry
// alongside it.
type Pos int32

// Line returns the 1-based line number.
func (p Pos) Line() int { return int(p) }
