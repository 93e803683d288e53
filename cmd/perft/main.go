package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	dragon "github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	gm "heron-chess/heronmg"
)

func main() {
	fen := flag.String("fen", gm.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	verify := flag.Bool("verify", false, "Cross-check node counts against dragontoothmg")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := gm.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bad -fen:", err)
		os.Exit(2)
	}

	if *divide {
		counts := gm.PerftDivide(board, *depth)
		moves := make([]string, 0, len(counts))
		total := uint64(0)
		byMove := make(map[string]uint64, len(counts))
		for m, n := range counts {
			moves = append(moves, m.String())
			byMove[m.String()] = n
			total += n
		}
		slices.Sort(moves)
		for _, ms := range moves {
			fmt.Printf("%s: %d\n", ms, byMove[ms])
		}
		fmt.Printf("total: %d\n", total)
		return
	}

	start := time.Now()
	nodes := gm.Perft(board, *depth)
	elapsed := time.Since(start)
	fmt.Printf("perft(%d) = %d in %s\n", *depth, nodes, elapsed)

	if *verify {
		ref := dragon.ParseFen(*fen)
		refNodes := dragonPerft(&ref, *depth)
		if refNodes != nodes {
			fmt.Printf("MISMATCH: dragontoothmg perft(%d) = %d\n", *depth, refNodes)
			os.Exit(1)
		}
		fmt.Printf("verified against dragontoothmg: %d nodes\n", refNodes)
	}
}

// dragonPerft walks the reference generator's legal move tree.
func dragonPerft(b *dragon.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		if depth == 1 {
			nodes++
		} else {
			nodes += dragonPerft(b, depth-1)
		}
		unapply()
	}
	return nodes
}
