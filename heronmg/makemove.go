package heronmg

// MoveState holds the minimal state needed to undo a move.
type MoveState struct {
	move          Move
	captured      Piece
	prevCastling  CastlingRights
	prevEnPassant Square
	prevHalfmove  int
	prevFullmove  int
	prevZobrist   uint64
	rookFrom      Square // for castling undo
	rookTo        Square // for castling undo
}

// Move returns the move this state undoes.
func (st MoveState) Move() Move { return st.move }

// CapturedPiece returns the piece removed by the move, if any.
func (st MoveState) CapturedPiece() Piece { return st.captured }

// MakeMove applies a move to the board. It returns ok=false if the move
// leaves the mover's king in check, restoring the original position. This is
// the legality filter: a pseudo-legal move is legal iff MakeMove accepts it.
//
// Applying a move that is not even pseudo-legal is a caller contract
// violation; the board still never ends up with two pieces on one square
// because every placement goes through remove-then-add.
func (b *Board) MakeMove(m Move) (ok bool, st MoveState) {
	st.move = m
	st.prevCastling = b.castlingRights
	st.prevEnPassant = b.enPassantSquare
	st.prevHalfmove = b.halfmoveClock
	st.prevFullmove = b.fullmoveNumber
	st.prevZobrist = b.zobristKey
	st.rookFrom, st.rookTo = NoSquare, NoSquare
	st.captured = NoPiece

	from := m.From()
	to := m.To()
	moved := m.MovedPiece()
	promo := m.PromotionPiece()
	flag := m.Flags()

	us := b.sideToMove
	them := us.Opponent()

	// Remove previous en passant from the Zobrist key; the target is valid
	// for exactly one reply.
	if b.enPassantSquare != NoSquare {
		b.zobristKey ^= zobristEnPassant[b.enPassantSquare.File()]
	}
	b.enPassantSquare = NoSquare

	// Handle capture (including en passant: the captured pawn sits behind 'to')
	if flag == FlagEnPassant {
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		st.captured = b.removePiece(capSq)
	} else if b.pieces[to] != NoPiece {
		st.captured = b.removePiece(to)
	}

	// Move the piece (or replace the pawn with the promotion piece)
	b.removePiece(from)
	if promo != NoPiece {
		b.addPiece(to, promo)
	} else {
		b.addPiece(to, moved)
	}

	// Castling relocates the rook as well
	if flag == FlagCastle {
		switch to {
		case 6: // g1
			st.rookFrom, st.rookTo = 7, 5
		case 2: // c1
			st.rookFrom, st.rookTo = 0, 3
		case 62: // g8
			st.rookFrom, st.rookTo = 63, 61
		case 58: // c8
			st.rookFrom, st.rookTo = 56, 59
		}
		if st.rookFrom != NoSquare {
			rook := b.removePiece(st.rookFrom)
			b.addPiece(st.rookTo, rook)
		}
	}

	// Update castling rights: a king or rook moving, or a rook being captured
	// on its home square, permanently clears the corresponding flag(s).
	newCR := b.castlingRights
	switch moved {
	case WhiteKing:
		newCR &^= CastlingWhiteK | CastlingWhiteQ
	case BlackKing:
		newCR &^= CastlingBlackK | CastlingBlackQ
	case WhiteRook:
		if from == 0 {
			newCR &^= CastlingWhiteQ
		} else if from == 7 {
			newCR &^= CastlingWhiteK
		}
	case BlackRook:
		if from == 56 {
			newCR &^= CastlingBlackQ
		} else if from == 63 {
			newCR &^= CastlingBlackK
		}
	}
	if typeOf(st.captured) == 4 {
		switch to {
		case 0:
			newCR &^= CastlingWhiteQ
		case 7:
			newCR &^= CastlingWhiteK
		case 56:
			newCR &^= CastlingBlackQ
		case 63:
			newCR &^= CastlingBlackK
		}
	}
	if newCR != b.castlingRights {
		b.zobristKey ^= zobristCastle[int(b.castlingRights)]
		b.zobristKey ^= zobristCastle[int(newCR)]
		b.castlingRights = newCR
	}

	// A double pawn push exposes the skipped square to en passant.
	if flag == FlagDoublePush {
		ep := from + 8
		if us == Black {
			ep = from - 8
		}
		b.enPassantSquare = ep
		b.zobristKey ^= zobristEnPassant[ep.File()]
	}

	// Toggle side to move before the legality check so Unmake can rely on the
	// toggled state.
	b.sideToMove = them
	b.zobristKey ^= zobristSide

	// Reject a move that leaves the mover's own king attacked.
	if b.InCheck(us) {
		b.UnmakeMove(m, st)
		return false, st
	}

	// Halfmove clock resets on capture or pawn move.
	if typeOf(moved) == 1 || st.captured != NoPiece {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}

	// Fullmove number increments after a legal Black move.
	if us == Black {
		b.fullmoveNumber++
	}

	return true, st
}

// UnmakeMove undoes a previously made move, restoring the board state
// bit-for-bit, including the Zobrist key.
func (b *Board) UnmakeMove(m Move, st MoveState) {
	// Toggle side back
	b.sideToMove = b.sideToMove.Opponent()

	from := m.From()
	to := m.To()
	moved := m.MovedPiece()
	flag := m.Flags()

	// Undo castling rook relocation if any
	if flag == FlagCastle && st.rookFrom != NoSquare {
		rook := b.removePiece(st.rookTo)
		b.addPiece(st.rookFrom, rook)
	}

	// Move the piece back; a promotion reverts to the pawn that pushed.
	b.removePiece(to)
	b.addPiece(from, moved)

	// Restore the captured piece
	if st.captured != NoPiece {
		if flag == FlagEnPassant {
			capSq := to - 8
			if colorOf(moved) == Black {
				capSq = to + 8
			}
			b.addPiece(capSq, st.captured)
		} else {
			b.addPiece(to, st.captured)
		}
	}

	// Restore bookkeeping; the saved Zobrist key supersedes the incremental
	// updates done above.
	b.castlingRights = st.prevCastling
	b.enPassantSquare = st.prevEnPassant
	b.halfmoveClock = st.prevHalfmove
	b.fullmoveNumber = st.prevFullmove
	b.zobristKey = st.prevZobrist
}
