package engine

// Snapshot captures the observable session state for determinism checks
// and replay debugging.
type Snapshot struct {
	Round       int
	Active      Color
	HistoryLen  int
	BestLen     int
	HasBest     bool
	Solved      bool
	TargetColor Color
	TargetCell  Coord
	Pieces      map[Color]Coord
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	pieces := make(map[Color]Coord, len(s.board.Pieces))
	for c, loc := range s.board.Pieces {
		pieces[c] = loc
	}
	bestLen, hasBest := s.BestLen()
	return Snapshot{
		Round:       s.round,
		Active:      s.active,
		HistoryLen:  len(s.history),
		BestLen:     bestLen,
		HasBest:     hasBest,
		Solved:      s.solved,
		TargetColor: s.board.Target.Color,
		TargetCell:  s.board.Target.Cell,
		Pieces:      pieces,
	}
}
