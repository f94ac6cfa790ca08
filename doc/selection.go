package doc

// Selection is a directionless two-endpoint range over document
// coordinates; Start may come after End in document order.
type Selection struct {
	Start Position
	End   Position
}

func NewSelection(at Position) *Selection {
	return &Selection{Start: at, End: at}
}

func (s *Selection) IsEmpty() bool {
	return s.Start.Equals(s.End)
}

// Normalized returns the endpoints in row-major order.
func (s *Selection) Normalized() (Position, Position) {
	if s.End.Before(s.Start) {
		return s.End, s.Start
	}
	return s.Start, s.End
}

// Contains reports whether p falls inside the selection. The start
// boundary is inclusive, the end boundary exclusive.
func (s *Selection) Contains(p Position) bool {
	start, end := s.Normalized()
	if p.Y > start.Y && p.Y < end.Y {
		return true
	}
	if p.Y == start.Y && p.Y == end.Y {
		return p.X >= start.X && p.X < end.X
	}
	if p.Y == start.Y {
		return p.X >= start.X
	}
	if p.Y == end.Y {
		return p.X < end.X
	}
	return false
}
