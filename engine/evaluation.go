package engine

import (
	gm "heron-chess/heronmg"
)

// PieceValue holds the material value of each piece type in centipawns,
// indexed by gm.PieceType. The king carries no material value; mate handling
// lives in the search.
var PieceValue = [7]int32{0, 100, 320, 330, 500, 900, 0}

// Evaluation term weights, in centipawns.
const (
	centerBonus         int32 = 15
	doubledPawnPenalty  int32 = 20
	isolatedPawnPenalty int32 = 15
	mobilityWeight      int32 = 3
	pawnShieldBonus     int32 = 10
	openKingFilePenalty int32 = 15
)

// The four central squares d4, e4, d5, e5. Occupying them with pawns or minor
// pieces earns the center bonus.
var centerSquares = [4]gm.Square{27, 28, 35, 36}

// Evaluate scores the position in centipawns, positive favoring White. The
// score is composed additively from material, central occupancy, pawn
// structure, mobility and king safety. Every term is computed identically for
// both sides and subtracted, so the total is antisymmetric under
// color-swap-and-mirror.
func Evaluate(b *gm.Board) int32 {
	var score int32

	// Material and pawn file tallies in one scan.
	var pawnFiles [2][8]int32
	for sq := gm.Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		if p == gm.NoPiece {
			continue
		}
		v := PieceValue[p.Type()]
		if p.Color() == gm.White {
			score += v
		} else {
			score -= v
		}
		if p.Type() == gm.PieceTypePawn {
			pawnFiles[p.Color()][sq.File()]++
		}
	}

	score += centerOccupancy(b)
	score += pawnStructure(&pawnFiles)
	score += mobilityWeight * int32(b.CountPseudoMoves(gm.White)-b.CountPseudoMoves(gm.Black))
	score += kingSafety(b, gm.White, &pawnFiles) - kingSafety(b, gm.Black, &pawnFiles)

	return score
}

// centerOccupancy rewards pawns and minor pieces on the four central squares.
func centerOccupancy(b *gm.Board) int32 {
	var score int32
	for _, sq := range centerSquares {
		p := b.PieceAt(sq)
		switch p.Type() {
		case gm.PieceTypePawn, gm.PieceTypeKnight, gm.PieceTypeBishop:
			if p.Color() == gm.White {
				score += centerBonus
			} else {
				score -= centerBonus
			}
		}
	}
	return score
}

// pawnStructure penalizes doubled and isolated pawns for both sides.
func pawnStructure(pawnFiles *[2][8]int32) int32 {
	var score int32
	for color := 0; color < 2; color++ {
		var penalty int32
		files := &pawnFiles[color]
		for f := 0; f < 8; f++ {
			if files[f] == 0 {
				continue
			}
			if files[f] > 1 {
				penalty += doubledPawnPenalty * (files[f] - 1)
			}
			var neighbors int32
			if f > 0 {
				neighbors += files[f-1]
			}
			if f < 7 {
				neighbors += files[f+1]
			}
			if neighbors == 0 {
				penalty += isolatedPawnPenalty * files[f]
			}
		}
		if gm.Color(color) == gm.White {
			score -= penalty
		} else {
			score += penalty
		}
	}
	return score
}

// kingSafety scores the pawn shield in front of the king and penalizes files
// beside the king that carry no friendly pawn at all.
func kingSafety(b *gm.Board, color gm.Color, pawnFiles *[2][8]int32) int32 {
	ksq := b.KingSquare(color)
	if ksq == gm.NoSquare {
		return 0
	}
	rank, file := ksq.Rank(), ksq.File()
	forward := 1
	if color == gm.Black {
		forward = -1
	}

	var score int32
	pawn := gm.PieceFromType(color, gm.PieceTypePawn)
	for df := -1; df <= 1; df++ {
		f := file + df
		if f < 0 || f > 7 {
			continue
		}
		if r := rank + forward; r >= 0 && r < 8 && b.PieceAt(gm.SquareAt(r, f)) == pawn {
			score += pawnShieldBonus
		}
		if pawnFiles[color][f] == 0 {
			score -= openKingFilePenalty
		}
	}
	return score
}
