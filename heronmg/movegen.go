package heronmg

// Move offsets expressed as (rank, file) deltas. Working in rank/file space
// keeps board-edge handling explicit without sentinel squares.
var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

var kingOffsets = [8][2]int{
	{1, -1}, {1, 0}, {1, 1},
	{0, -1}, {0, 1},
	{-1, -1}, {-1, 0}, {-1, 1},
}

var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// Promotion choices, queen first so the strongest option leads generation order.
var promotionTypes = [4]PieceType{PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight}

func onBoard(rank, file int) bool {
	return rank >= 0 && rank < 8 && file >= 0 && file < 8
}

// GeneratePseudoMoves returns all pseudo-legal moves for the side to move.
// Pseudo-legal moves obey piece geometry but may leave the mover's own king
// attacked; GenerateMoves applies the legality filter. The generator is a
// pure read of the board.
func (b *Board) GeneratePseudoMoves() []Move {
	return b.generatePseudoMovesFor(b.sideToMove, make([]Move, 0, 64))
}

// GenerateMoves returns all legal moves for the side to move. Legality is
// checked by making each pseudo-legal move and rejecting those that leave the
// mover's king attacked (see MakeMove).
func (b *Board) GenerateMoves() []Move {
	pseudo := b.generatePseudoMovesFor(b.sideToMove, make([]Move, 0, 64))
	legal := pseudo[:0]
	for _, m := range pseudo {
		ok, st := b.MakeMove(m)
		if ok {
			b.UnmakeMove(m, st)
			legal = append(legal, m)
		}
	}
	return legal
}

// CountPseudoMoves returns the number of pseudo-legal moves available to the
// given color, independent of whose turn it is. Used as a mobility measure.
func (b *Board) CountPseudoMoves(color Color) int {
	return len(b.generatePseudoMovesFor(color, make([]Move, 0, 64)))
}

func (b *Board) generatePseudoMovesFor(us Color, dst []Move) []Move {
	for sq := Square(0); sq < 64; sq++ {
		p := b.pieces[sq]
		if p == NoPiece || colorOf(p) != us {
			continue
		}
		switch p.Type() {
		case PieceTypePawn:
			dst = b.pawnMoves(dst, sq, us)
		case PieceTypeKnight:
			dst = b.offsetMoves(dst, sq, p, knightOffsets[:])
		case PieceTypeBishop:
			dst = b.rayMoves(dst, sq, p, bishopDirs[:])
		case PieceTypeRook:
			dst = b.rayMoves(dst, sq, p, rookDirs[:])
		case PieceTypeQueen:
			dst = b.rayMoves(dst, sq, p, bishopDirs[:])
			dst = b.rayMoves(dst, sq, p, rookDirs[:])
		case PieceTypeKing:
			dst = b.offsetMoves(dst, sq, p, kingOffsets[:])
			dst = b.castlingMoves(dst, us)
		}
	}
	return dst
}

// pawnMoves generates pushes, double pushes, captures, en passant captures
// and promotions for the pawn on sq.
func (b *Board) pawnMoves(dst []Move, sq Square, us Color) []Move {
	pawn := b.pieces[sq]
	rank, file := sq.Rank(), sq.File()

	forward := 1
	startRank := 1
	promoRank := 7
	if us == Black {
		forward = -1
		startRank = 6
		promoRank = 0
	}

	// Single and double push
	if onBoard(rank+forward, file) {
		oneUp := SquareAt(rank+forward, file)
		if b.pieces[oneUp] == NoPiece {
			if (rank + forward) == promoRank {
				for _, pt := range promotionTypes {
					dst = append(dst, NewMove(sq, oneUp, pawn, NoPiece, PieceFromType(us, pt), FlagNone))
				}
			} else {
				dst = append(dst, NewMove(sq, oneUp, pawn, NoPiece, NoPiece, FlagNone))
				if rank == startRank {
					twoUp := SquareAt(rank+2*forward, file)
					if b.pieces[twoUp] == NoPiece {
						dst = append(dst, NewMove(sq, twoUp, pawn, NoPiece, NoPiece, FlagDoublePush))
					}
				}
			}
		}
	}

	// Diagonal captures, including en passant
	for _, df := range [2]int{-1, 1} {
		tr, tf := rank+forward, file+df
		if !onBoard(tr, tf) {
			continue
		}
		to := SquareAt(tr, tf)
		target := b.pieces[to]
		if target != NoPiece && colorOf(target) != us {
			if tr == promoRank {
				for _, pt := range promotionTypes {
					dst = append(dst, NewMove(sq, to, pawn, target, PieceFromType(us, pt), FlagNone))
				}
			} else {
				dst = append(dst, NewMove(sq, to, pawn, target, NoPiece, FlagNone))
			}
		} else if to == b.enPassantSquare && tr == epCaptureRank(us) {
			dst = append(dst, NewMove(sq, to, pawn, NoPiece, NoPiece, FlagEnPassant))
		}
	}
	return dst
}

// epCaptureRank is the rank an en passant capture by the given color lands on.
// The rank guard keeps per-color generation sane when it is not that color's
// turn (CountPseudoMoves).
func epCaptureRank(us Color) int {
	if us == White {
		return 5
	}
	return 2
}

// offsetMoves generates fixed-offset moves (knight, king) from sq.
func (b *Board) offsetMoves(dst []Move, sq Square, p Piece, offsets [][2]int) []Move {
	us := colorOf(p)
	rank, file := sq.Rank(), sq.File()
	for _, off := range offsets {
		tr, tf := rank+off[0], file+off[1]
		if !onBoard(tr, tf) {
			continue
		}
		to := SquareAt(tr, tf)
		target := b.pieces[to]
		if target == NoPiece {
			dst = append(dst, NewMove(sq, to, p, NoPiece, NoPiece, FlagNone))
		} else if colorOf(target) != us {
			dst = append(dst, NewMove(sq, to, p, target, NoPiece, FlagNone))
		}
	}
	return dst
}

// rayMoves casts along each direction until the board edge, an own piece
// (excluded) or an opponent piece (included, then stop).
func (b *Board) rayMoves(dst []Move, sq Square, p Piece, dirs [][2]int) []Move {
	us := colorOf(p)
	rank, file := sq.Rank(), sq.File()
	for _, d := range dirs {
		tr, tf := rank+d[0], file+d[1]
		for onBoard(tr, tf) {
			to := SquareAt(tr, tf)
			target := b.pieces[to]
			if target == NoPiece {
				dst = append(dst, NewMove(sq, to, p, NoPiece, NoPiece, FlagNone))
				tr += d[0]
				tf += d[1]
				continue
			}
			if colorOf(target) != us {
				dst = append(dst, NewMove(sq, to, p, target, NoPiece, FlagNone))
			}
			break
		}
	}
	return dst
}

// castlingMoves generates castling for the given side. Castling-through-check
// is a generation-time rule: the king's current square and the squares it
// traverses must not be attacked in the pre-move position. Rook presence is
// verified as well, so stale rights in hand-built positions cannot produce a
// rookless castle.
func (b *Board) castlingMoves(dst []Move, us Color) []Move {
	them := us.Opponent()
	base := Square(0)
	king := WhiteKing
	rook := WhiteRook
	kingRight := CastlingWhiteK
	queenRight := CastlingWhiteQ
	if us == Black {
		base = 56
		king = BlackKing
		rook = BlackRook
		kingRight = CastlingBlackK
		queenRight = CastlingBlackQ
	}
	if b.pieces[base+4] != king {
		return dst
	}

	if b.castlingRights&kingRight != 0 &&
		b.pieces[base+5] == NoPiece && b.pieces[base+6] == NoPiece &&
		b.pieces[base+7] == rook &&
		!b.IsSquareAttacked(base+4, them) &&
		!b.IsSquareAttacked(base+5, them) &&
		!b.IsSquareAttacked(base+6, them) {
		dst = append(dst, NewMove(base+4, base+6, king, NoPiece, NoPiece, FlagCastle))
	}

	if b.castlingRights&queenRight != 0 &&
		b.pieces[base+1] == NoPiece && b.pieces[base+2] == NoPiece && b.pieces[base+3] == NoPiece &&
		b.pieces[base+0] == rook &&
		!b.IsSquareAttacked(base+4, them) &&
		!b.IsSquareAttacked(base+3, them) &&
		!b.IsSquareAttacked(base+2, them) {
		dst = append(dst, NewMove(base+4, base+2, king, NoPiece, NoPiece, FlagCastle))
	}
	return dst
}

// IsSquareAttacked reports whether the given square is attacked by any piece
// of color by. It scans outward from the square using the same offset and ray
// data the generator uses, without building Move values.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	rank, file := sq.Rank(), sq.File()

	// Pawns: a pawn of color by attacks sq from one rank behind (relative to
	// the pawn's direction of travel).
	pawnRank := rank - 1
	if by == Black {
		pawnRank = rank + 1
	}
	pawn := PieceFromType(by, PieceTypePawn)
	for _, df := range [2]int{-1, 1} {
		if onBoard(pawnRank, file+df) && b.pieces[SquareAt(pawnRank, file+df)] == pawn {
			return true
		}
	}

	// Knights
	knight := PieceFromType(by, PieceTypeKnight)
	for _, off := range knightOffsets {
		tr, tf := rank+off[0], file+off[1]
		if onBoard(tr, tf) && b.pieces[SquareAt(tr, tf)] == knight {
			return true
		}
	}

	// Adjacent enemy king
	king := PieceFromType(by, PieceTypeKing)
	for _, off := range kingOffsets {
		tr, tf := rank+off[0], file+off[1]
		if onBoard(tr, tf) && b.pieces[SquareAt(tr, tf)] == king {
			return true
		}
	}

	// Sliders: first piece along each ray decides.
	rookP := PieceFromType(by, PieceTypeRook)
	queen := PieceFromType(by, PieceTypeQueen)
	for _, d := range rookDirs {
		tr, tf := rank+d[0], file+d[1]
		for onBoard(tr, tf) {
			p := b.pieces[SquareAt(tr, tf)]
			if p != NoPiece {
				if p == rookP || p == queen {
					return true
				}
				break
			}
			tr += d[0]
			tf += d[1]
		}
	}
	bishop := PieceFromType(by, PieceTypeBishop)
	for _, d := range bishopDirs {
		tr, tf := rank+d[0], file+d[1]
		for onBoard(tr, tf) {
			p := b.pieces[SquareAt(tr, tf)]
			if p != NoPiece {
				if p == bishop || p == queen {
					return true
				}
				break
			}
			tr += d[0]
			tf += d[1]
		}
	}

	return false
}

// InCheck reports whether the given side's king is attacked.
func (b *Board) InCheck(color Color) bool {
	ksq := b.KingSquare(color)
	if ksq == NoSquare {
		return false
	}
	return b.IsSquareAttacked(ksq, color.Opponent())
}

// OurKingInCheck reports whether the side to move has its king in check.
func (b *Board) OurKingInCheck() bool { return b.InCheck(b.sideToMove) }
