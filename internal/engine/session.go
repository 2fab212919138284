package engine

import "math/rand"

// Session wraps a Board with the mutable play state of one sitting: the
// active piece, the current round's move history, and the best solution
// recorded so far. All operations run to completion on the caller's
// goroutine; a Session is not safe for concurrent use.
type Session struct {
	board  *Board
	rng    *rand.Rand
	params GenParams

	active  Color
	history []Move
	best    []Move
	round   int
	solved  bool
}

// NewSession starts play on the given board. The RNG is used for target
// selection on round transitions and must be the caller's seeded source.
func NewSession(b *Board, rng *rand.Rand, p GenParams) *Session {
	return &Session{
		board:  b,
		rng:    rng,
		params: p,
		active: ColorNone,
		round:  1,
	}
}

// Board exposes the wrapped board for read-only use by the display layer.
func (s *Session) Board() *Board {
	return s.board
}

// ActiveColor returns the currently selected piece color, or ColorNone.
func (s *Session) ActiveColor() Color {
	return s.active
}

// HistoryLen returns the number of moves made this round.
func (s *Session) HistoryLen() int {
	return len(s.history)
}

// BestLen returns the move count of the best solution so far and whether
// one exists.
func (s *Session) BestLen() (int, bool) {
	if s.best == nil {
		return 0, false
	}
	return len(s.best), true
}

// Round returns the 1-based round number.
func (s *Session) Round() int {
	return s.round
}

// Solved reports whether the current round's target has been reached at
// least once.
func (s *Session) Solved() bool {
	return s.solved
}

// SelectColor sets the active piece unconditionally. Legality is checked
// per direction at move time via MaxTravel, not at selection time.
func (s *Session) SelectColor(color Color) {
	s.active = color
}

// Deselect clears the active piece.
func (s *Session) Deselect() {
	s.active = ColorNone
}

// RequestSlide slides the active piece in the given direction and returns
// the distance traveled. A distance of 0 means the piece is blocked in
// place; nothing is recorded. Returns ErrNoActivePiece when no color is
// selected.
//
// When the slide parks the matching piece on the target cell, the history
// is snapshotted as the best solution if it is shorter than (or the first
// to replace) the previous one, and the active color is cleared.
func (s *Session) RequestSlide(d Dir) (int, error) {
	if s.active == ColorNone {
		return 0, ErrNoActivePiece
	}

	from := s.board.Pieces[s.active]
	dist := MaxTravel(s.board, from, d)
	if dist == 0 {
		return 0, nil
	}

	m := Move{Color: s.active, From: from, To: from.Offset(d, dist)}
	ApplyMove(s.board, m)
	s.history = append(s.history, m)

	if m.To == s.board.Target.Cell && m.Color == s.board.Target.Color {
		if s.best == nil || len(s.history) < len(s.best) {
			s.best = append([]Move(nil), s.history...)
		}
		s.solved = true
		s.active = ColorNone
	}
	return dist, nil
}

// UndoLast pops the last move and applies its inversion. A no-op when the
// history is empty. The best solution is never altered by undo.
func (s *Session) UndoLast() {
	if len(s.history) == 0 {
		return
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	ApplyMove(s.board, last.Inverted())
	s.active = ColorNone
}

// rollback unwinds the entire history, restoring the round's starting
// piece layout.
func (s *Session) rollback() {
	for len(s.history) > 0 {
		last := s.history[len(s.history)-1]
		s.history = s.history[:len(s.history)-1]
		ApplyMove(s.board, last.Inverted())
	}
}

// ResetRound restores the round's starting layout and clears the active
// piece. The best solution is preserved.
func (s *Session) ResetRound() {
	s.rollback()
	s.active = ColorNone
}

// NewRound ends the current round: the history is fully rolled back, the
// best solution (if any) is replayed forward so the board is left in the
// solved configuration, and a fresh target is drawn. Best solution,
// history, and active color are all cleared. Surfaces ErrNoLegalTarget
// when no pocket cell qualifies; the caller may then regenerate the board.
func (s *Session) NewRound() error {
	s.rollback()
	for _, m := range s.best {
		ApplyMove(s.board, m)
	}
	s.best = nil
	s.active = ColorNone
	s.solved = false

	target, err := SelectTarget(s.board.Grid, s.rng)
	if err != nil {
		return err
	}
	s.board.Target = target
	s.round++
	return nil
}
