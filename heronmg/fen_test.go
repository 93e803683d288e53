package heronmg_test

import (
	"strings"
	"testing"

	gm "heron-chess/heronmg"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		gm.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 7 42",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"7k/8/8/8/8/1q6/8/K7 w - - 0 1",
	}
	for _, fen := range fens {
		b := mustParse(t, fen)
		if got := b.ToFEN(); got != fen {
			t.Fatalf("round trip: got %q want %q", got, fen)
		}
		if b.Hash() != b.ComputeZobrist() {
			t.Fatalf("hash not initialized from FEN %q", fen)
		}
	}
}

func TestParseFENRejectsGarbage(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",         // seven ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1", // short rank
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1",
	}
	for _, fen := range bad {
		if _, err := gm.ParseFEN(fen); err == nil {
			t.Fatalf("ParseFEN(%q) accepted invalid input", fen)
		}
	}
}

func TestNewBoardIsStartPosition(t *testing.T) {
	b := gm.NewBoard()
	if b.ToFEN() != gm.FENStartPos {
		t.Fatalf("NewBoard = %q", b.ToFEN())
	}
	if b.SideToMove() != gm.White || b.FullmoveNumber() != 1 {
		t.Fatalf("NewBoard bookkeeping wrong: %q", b.ToFEN())
	}
}

func TestBoardRendering(t *testing.T) {
	out := gm.NewBoard().String()
	for _, want := range []string{
		"a b c d e f g h",
		"8 r n b q k b n r 8",
		"1 R N B Q K B N R 1",
		"4 . . . . . . . . 4",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered board missing %q:\n%s", want, out)
		}
	}
}
