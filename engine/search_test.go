package engine_test

import (
	"testing"

	"heron-chess/engine"
	gm "heron-chess/heronmg"
)

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	fens := []string{
		gm.FENStartPos,
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		"4k3/8/8/8/8/8/PPP5/4K3 b - - 0 1",
	}
	depth := 3
	if testing.Short() {
		depth = 2
	}
	for _, fen := range fens {
		b := mustParse(t, fen)
		abMove, abScore := engine.BestMove(b, depth)
		mmMove, mmScore := engine.Minimax(b, depth)
		if abScore != mmScore {
			t.Fatalf("%q depth %d: alpha-beta score %d, minimax score %d",
				fen, depth, abScore, mmScore)
		}
		if abMove != mmMove {
			t.Fatalf("%q depth %d: alpha-beta move %v, minimax move %v",
				fen, depth, abMove, mmMove)
		}
	}
}

func TestBestMoveFindsMateInOne(t *testing.T) {
	b := mustParse(t, "7k/6pp/6Q1/8/8/2B5/8/6K1 w - - 0 1")
	move, score := engine.BestMove(b, 2)
	if got := move.String(); got != "g6g7" {
		t.Fatalf("best move = %s, want g6g7", got)
	}
	if want := engine.MateScore - 1; score != want {
		t.Fatalf("score = %d, want %d", score, want)
	}
}

func TestBestMovePrefersFasterMate(t *testing.T) {
	// Deeper search must still report the mate in one, not a slower mate.
	b := mustParse(t, "7k/6pp/6Q1/8/8/2B5/8/6K1 w - - 0 1")
	move, score := engine.BestMove(b, 4)
	if got := move.String(); got != "g6g7" {
		t.Fatalf("best move = %s, want g6g7", got)
	}
	if want := engine.MateScore - 1; score != want {
		t.Fatalf("score = %d, want %d", score, want)
	}
}

func TestBestMoveInCheckmatePosition(t *testing.T) {
	b := mustParse(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	move, score := engine.BestMove(b, 3)
	if move != 0 {
		t.Fatalf("expected null move in mated position, got %v", move)
	}
	if want := -engine.MateScore; score != want {
		t.Fatalf("score = %d, want %d", score, want)
	}
}

func TestBestMoveInStalematePosition(t *testing.T) {
	b := mustParse(t, "7k/8/8/8/8/1q6/8/K7 w - - 0 1")
	move, score := engine.BestMove(b, 3)
	if move != 0 {
		t.Fatalf("expected null move in stalemate, got %v", move)
	}
	if score != engine.DrawScore {
		t.Fatalf("score = %d, want %d", score, engine.DrawScore)
	}
}

func TestBestMoveIsDeterministic(t *testing.T) {
	b := mustParse(t, "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4")
	m1, s1 := engine.BestMove(b, 3)
	m2, s2 := engine.BestMove(b, 3)
	if m1 != m2 || s1 != s2 {
		t.Fatalf("repeated search diverged: (%v, %d) vs (%v, %d)", m1, s1, m2, s2)
	}
}

func TestBestMoveLeavesBoardUntouched(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	b := mustParse(t, fen)
	before := b.Hash()
	engine.BestMove(b, 2)
	if b.ToFEN() != fen || b.Hash() != before {
		t.Fatalf("search mutated the board: %s (hash %x)", b.ToFEN(), b.Hash())
	}
}

func TestBestMoveCapturesHangingQueen(t *testing.T) {
	// White queen is en prise on d4 and nothing recaptures.
	b := mustParse(t, "4k3/8/4n3/8/3Q4/8/8/4K3 b - - 0 1")
	move, _ := engine.BestMove(b, 2)
	if got := move.String(); got != "e6d4" {
		t.Fatalf("best move = %s, want e6d4", got)
	}
}
