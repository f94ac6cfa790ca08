package doc

// Position addresses one grapheme boundary in a document.
// X counts graphemes within the row, Y counts rows.
type Position struct {
	X int
	Y int
}

func (p Position) Equals(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// Before reports whether p precedes other in row-major order.
func (p Position) Before(other Position) bool {
	return p.Y < other.Y || (p.Y == other.Y && p.X < other.X)
}
