package heronmg

// Perft counts the leaf nodes of the legal move tree at the given depth.
// Standard reference values (20, 400, 8902, ... from the start position)
// pin down move generator correctness.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GeneratePseudoMoves() {
		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}
		if depth == 1 {
			nodes++
		} else {
			nodes += Perft(b, depth-1)
		}
		b.UnmakeMove(m, st)
	}
	return nodes
}

// PerftDivide returns per-root-move node counts, the usual tool for
// bisecting a generator discrepancy.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range b.GeneratePseudoMoves() {
		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}
		result[m] = Perft(b, depth-1)
		b.UnmakeMove(m, st)
	}
	return result
}
