package heronmg

// Status classifies a position for the side to move.
type Status uint8

const (
	// Ongoing: nothing special, the game continues.
	Ongoing Status = iota
	// Check: the side to move's king is attacked and legal moves exist.
	Check
	// Checkmate: the king is attacked and there are no legal moves.
	Checkmate
	// Stalemate: the king is not attacked and there are no legal moves.
	Stalemate
	// DrawAdvisory: fifty full moves without a capture or pawn move, or a
	// threefold repetition. Advisory only; play may continue.
	DrawAdvisory
)

func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawAdvisory:
		return "draw (advisory)"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the status ends the game. DrawAdvisory does not:
// draw detection here is a heuristic, not an adjudication.
func (s Status) IsTerminal() bool { return s == Checkmate || s == Stalemate }

// GameStatus derives the status of the current position from the position and
// its legal moves. The optional history of Zobrist keys (as maintained by
// PushMove) feeds the repetition advisory; pass nil to skip it.
func (b *Board) GameStatus(history []uint64) Status {
	attacked := b.InCheck(b.sideToMove)
	hasMoves := b.HasLegalMoves()

	switch {
	case attacked && !hasMoves:
		return Checkmate
	case !attacked && !hasMoves:
		return Stalemate
	case b.IsDrawBy50() || b.IsDrawByRepetition(history):
		return DrawAdvisory
	case attacked:
		return Check
	default:
		return Ongoing
	}
}
