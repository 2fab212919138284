package engine

import "errors"

var (
	// ErrNoLegalTarget means no unoccupied two-wall cell exists to serve
	// as a target. Recoverable: the caller may regenerate the board.
	ErrNoLegalTarget = errors.New("engine: no legal target cell")

	// ErrGenerationFailed means a bounded rejection-sampling loop ran out
	// of attempts before finding a valid placement.
	ErrGenerationFailed = errors.New("engine: board generation failed")

	// ErrNoActivePiece means a slide was requested with no color selected.
	ErrNoActivePiece = errors.New("engine: no active piece selected")
)
