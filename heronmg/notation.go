package heronmg

import (
	"fmt"
	"strings"
)

// Error taxonomy for the input boundary. All three are recoverable: the
// caller re-prompts and the board is left untouched.
var (
	// ErrMalformedNotation: the string does not parse to two valid squares.
	ErrMalformedNotation = fmt.Errorf("malformed move notation")
	// ErrIllegalMove: the string parses but names no legal move in this position.
	ErrIllegalMove = fmt.Errorf("illegal move")
	// ErrInvalidPromotionChoice: a promotion move needs a promotion letter in {q,r,b,n}.
	ErrInvalidPromotionChoice = fmt.Errorf("invalid promotion choice")
)

// ParseMove converts coordinate notation ("e2e4", "e7e8q") into the matching
// legal Move for this position. The returned move is always a member of
// GenerateMoves(); the board is not modified.
func ParseMove(b *Board, movestr string) (Move, error) {
	movestr = strings.TrimSpace(strings.ToLower(movestr))
	if len(movestr) < 4 || len(movestr) > 5 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNotation, movestr)
	}
	from, err := parseSquare(movestr[0:2])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNotation, movestr)
	}
	to, err := parseSquare(movestr[2:4])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNotation, movestr)
	}

	promoType := PieceTypeNone
	if len(movestr) == 5 {
		switch movestr[4] {
		case 'q':
			promoType = PieceTypeQueen
		case 'r':
			promoType = PieceTypeRook
		case 'b':
			promoType = PieceTypeBishop
		case 'n':
			promoType = PieceTypeKnight
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidPromotionChoice, movestr[4:])
		}
	}

	promotionNeeded := false
	for _, m := range b.GenerateMoves() {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.PromotionPieceType() == promoType {
			return m, nil
		}
		if m.PromotionPiece() != NoPiece {
			promotionNeeded = true
		}
	}
	if promotionNeeded {
		// from/to name legal promotions, but the suffix picked none of them.
		return 0, fmt.Errorf("%w: %q needs a promotion letter (q/r/b/n)", ErrInvalidPromotionChoice, movestr)
	}
	return 0, fmt.Errorf("%w: %q", ErrIllegalMove, movestr)
}

func parseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return SquareAt(int(s[1]-'1'), int(s[0]-'a')), nil
}
