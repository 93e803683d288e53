package engine_test

import (
	"strings"
	"testing"

	"heron-chess/engine"
	gm "heron-chess/heronmg"
)

func mustParse(t *testing.T, fen string) *gm.Board {
	t.Helper()
	b, err := gm.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
	}
	return b
}

// mirrorFEN builds the color-swapped, rank-mirrored counterpart of a
// position: ranks reversed, piece and castling letters case-swapped, side to
// move flipped and the en passant rank reflected.
func mirrorFEN(t *testing.T, fen string) string {
	t.Helper()
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		t.Fatalf("bad FEN %q", fen)
	}

	ranks := strings.Split(fields[0], "/")
	mirrored := make([]string, len(ranks))
	for i, r := range ranks {
		mirrored[len(ranks)-1-i] = swapCase(r)
	}
	placement := strings.Join(mirrored, "/")

	side := "w"
	if fields[1] == "w" {
		side = "b"
	}

	castling := fields[2]
	if castling != "-" {
		castling = swapCase(castling)
	}

	ep := fields[3]
	if ep != "-" {
		ep = string(ep[0]) + string('1'+('8'-ep[1]))
	}

	out := []string{placement, side, castling, ep}
	out = append(out, fields[4:]...)
	return strings.Join(out, " ")
}

func swapCase(s string) string {
	var sb strings.Builder
	for _, ch := range s {
		switch {
		case ch >= 'a' && ch <= 'z':
			sb.WriteRune(ch - 'a' + 'A')
		case ch >= 'A' && ch <= 'Z':
			sb.WriteRune(ch - 'A' + 'a')
		default:
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

func TestEvaluateAntisymmetry(t *testing.T) {
	fens := []string{
		gm.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"4k3/8/8/8/8/8/PPP5/4K3 w - - 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	}
	for _, fen := range fens {
		p := mustParse(t, fen)
		q := mustParse(t, mirrorFEN(t, fen))
		if got, want := engine.Evaluate(q), -engine.Evaluate(p); got != want {
			t.Fatalf("antisymmetry broken for %q: score(P)=%d score(P')=%d",
				fen, engine.Evaluate(p), got)
		}
	}
}

func TestEvaluateStartPositionIsBalanced(t *testing.T) {
	if got := engine.Evaluate(gm.NewBoard()); got != 0 {
		t.Fatalf("start position score = %d, want 0", got)
	}
}

func TestEvaluateMaterialDominates(t *testing.T) {
	// White is a queen up; no positional term comes close to 900cp.
	up := mustParse(t, "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	if got := engine.Evaluate(up); got <= 500 {
		t.Fatalf("queen-up position scored %d, want strongly positive", got)
	}
	down := mustParse(t, "q3k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if got := engine.Evaluate(down); got >= -500 {
		t.Fatalf("queen-down position scored %d, want strongly negative", got)
	}
}

func TestEvaluatePawnStructurePenalties(t *testing.T) {
	// Doubled, isolated e-pawns against a healthy connected pair; material equal.
	bad := mustParse(t, "4k3/4p3/4p3/8/8/8/6PP/4K3 w - - 0 1")
	if got := engine.Evaluate(bad); got <= 0 {
		t.Fatalf("doubled+isolated black pawns scored %d for White, want positive", got)
	}
}
