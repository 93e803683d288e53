package engine

import (
	"fmt"
	"time"

	"golang.org/x/exp/slices"

	gm "heron-chess/heronmg"
)

// Score constants. Mate scores are offset by the ply at which the mate is
// delivered so the search prefers faster mates.
const (
	MaxScore  int32 = 32500
	MateScore int32 = 20000
	DrawScore int32 = 0
)

var nodesSearched uint64

// Nodes returns the node count of the most recent search call.
func Nodes() uint64 { return nodesSearched }

// BestMove picks a move for the side to move with fixed-depth negamax and
// alpha-beta pruning; depth must be >= 1. The root iterates in generation
// order with strictly-greater updates, so ties break deterministically on the
// first best move encountered. When the position is terminal it returns the
// zero Move and the terminal score.
func BestMove(b *gm.Board, depth int) (gm.Move, int32) {
	if depth < 1 {
		depth = 1
	}
	nodesSearched = 0

	moves := b.GenerateMoves()
	if len(moves) == 0 {
		if b.OurKingInCheck() {
			return 0, -MateScore
		}
		return 0, DrawScore
	}

	var bestMove gm.Move
	bestScore := -MaxScore
	alpha, beta := -MaxScore, MaxScore
	for _, m := range moves {
		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}
		score := -negamax(b, depth-1, 1, -beta, -alpha)
		b.UnmakeMove(m, st)
		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
	}
	return bestMove, bestScore
}

// negamax returns the score of the position from the side to move's
// perspective. Terminal positions are classified before the depth cutoff so
// mates and stalemates at the horizon are scored exactly.
func negamax(b *gm.Board, depth, ply int, alpha, beta int32) int32 {
	nodesSearched++

	moves := b.GenerateMoves()
	if len(moves) == 0 {
		if b.OurKingInCheck() {
			return -(MateScore - int32(ply))
		}
		return DrawScore
	}
	if depth <= 0 {
		return evalForSideToMove(b)
	}

	orderMoves(moves)

	best := -MaxScore
	for _, m := range moves {
		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}
		score := -negamax(b, depth-1, ply+1, -beta, -alpha)
		b.UnmakeMove(m, st)
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// Minimax is the pruning-free counterpart of BestMove, same convention and
// terminal scoring. It exists to cross-check that pruning never changes the
// value of the search, only its cost.
func Minimax(b *gm.Board, depth int) (gm.Move, int32) {
	if depth < 1 {
		depth = 1
	}
	nodesSearched = 0

	moves := b.GenerateMoves()
	if len(moves) == 0 {
		if b.OurKingInCheck() {
			return 0, -MateScore
		}
		return 0, DrawScore
	}

	var bestMove gm.Move
	bestScore := -MaxScore
	for _, m := range moves {
		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}
		score := -minimax(b, depth-1, 1)
		b.UnmakeMove(m, st)
		if score > bestScore {
			bestScore = score
			bestMove = m
		}
	}
	return bestMove, bestScore
}

func minimax(b *gm.Board, depth, ply int) int32 {
	nodesSearched++

	moves := b.GenerateMoves()
	if len(moves) == 0 {
		if b.OurKingInCheck() {
			return -(MateScore - int32(ply))
		}
		return DrawScore
	}
	if depth <= 0 {
		return evalForSideToMove(b)
	}

	best := -MaxScore
	for _, m := range moves {
		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}
		score := -minimax(b, depth-1, ply+1)
		b.UnmakeMove(m, st)
		if score > best {
			best = score
		}
	}
	return best
}

// SearchPosition runs iterative deepening up to the given depth, reporting
// progress per iteration, and returns the deepest result. The cutoff is the
// depth alone; there is no clock.
func SearchPosition(b *gm.Board, depth int) (gm.Move, int32) {
	var bestMove gm.Move
	var bestScore int32
	for d := 1; d <= depth; d++ {
		start := time.Now()
		bestMove, bestScore = BestMove(b, d)
		fmt.Println(
			"info depth", d,
			"score", formatScore(bestScore),
			"nodes", nodesSearched,
			"time", time.Since(start).Milliseconds(),
			"pv", bestMove.String(),
		)
		if isMateScore(bestScore) {
			break
		}
	}
	return bestMove, bestScore
}

func isMateScore(score int32) bool {
	if score < 0 {
		score = -score
	}
	return score > MateScore-1000
}

func formatScore(score int32) string {
	if isMateScore(score) {
		plies := MateScore - score
		if score < 0 {
			plies = MateScore + score
		}
		moves := (plies + 1) / 2
		if score < 0 {
			moves = -moves
		}
		return fmt.Sprintf("mate %d", moves)
	}
	return fmt.Sprintf("cp %d", score)
}

// evalForSideToMove converts the White-positive static evaluation into the
// negamax convention.
func evalForSideToMove(b *gm.Board) int32 {
	if b.SideToMove() == gm.White {
		return Evaluate(b)
	}
	return -Evaluate(b)
}

// orderMoves sorts captures and promotions to the front (most valuable victim
// first, least valuable attacker breaking ties). Pure search-speed heuristic;
// root iteration stays in generation order so the chosen move is unaffected.
func orderMoves(moves []gm.Move) {
	slices.SortStableFunc(moves, func(x, y gm.Move) int {
		return moveOrderValue(y) - moveOrderValue(x)
	})
}

func moveOrderValue(m gm.Move) int {
	v := 0
	if captured := m.CapturedPiece(); captured != gm.NoPiece {
		v = 10*int(PieceValue[captured.Type()]) - int(PieceValue[m.MovedPiece().Type()])
	} else if m.IsEnPassantCapture() {
		v = 9 * int(PieceValue[gm.PieceTypePawn])
	}
	if promo := m.PromotionPieceType(); promo != gm.PieceTypeNone {
		v += int(PieceValue[promo])
	}
	return v
}
