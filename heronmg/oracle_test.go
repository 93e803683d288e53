package heronmg_test

import (
	"testing"

	dragon "github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	gm "heron-chess/heronmg"
)

// Cross-checks against dragontoothmg, an independent magic-bitboard move
// generator, on positions stressing castling, pins, en passant and promotion.
var oracleFENs = []string{
	gm.FENStartPos,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
}

func TestLegalMovesMatchOracle(t *testing.T) {
	for _, fen := range oracleFENs {
		b := mustParse(t, fen)
		ref := dragon.ParseFen(fen)

		got := make([]string, 0, 64)
		for _, m := range b.GenerateMoves() {
			got = append(got, m.String())
		}
		want := make([]string, 0, 64)
		for _, m := range ref.GenerateLegalMoves() {
			want = append(want, m.String())
		}
		slices.Sort(got)
		slices.Sort(want)
		if !slices.Equal(got, want) {
			t.Fatalf("legal moves differ from oracle in %q:\n got %v\nwant %v", fen, got, want)
		}
	}
}

func TestPerftMatchesOracle(t *testing.T) {
	maxDepth := 3
	if testing.Short() {
		maxDepth = 2
	}
	for _, fen := range oracleFENs {
		b := mustParse(t, fen)
		ref := dragon.ParseFen(fen)
		for depth := 1; depth <= maxDepth; depth++ {
			got := gm.Perft(b, depth)
			want := oraclePerft(&ref, depth)
			if got != want {
				t.Fatalf("perft(%d) of %q: got %d, oracle %d", depth, fen, got, want)
			}
		}
	}
}

func oraclePerft(b *dragon.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		if depth == 1 {
			nodes++
		} else {
			nodes += oraclePerft(b, depth-1)
		}
		unapply()
	}
	return nodes
}
