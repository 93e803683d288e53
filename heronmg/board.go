package heronmg

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless representation of a chess piece used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color { return colorOf(p) }

// PieceFromType combines a colorless type with a side to produce a concrete Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	p := Piece(pt)
	if color == Black {
		p |= 8
	}
	return p
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opponent returns the other side.
func (c Color) Opponent() Color { return 1 - c }

// Castling rights bit flags
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ
)

// Square represents a board position (0-63), a1 = 0, h8 = 63.
type Square int

const NoSquare Square = -1

// SquareAt builds a square from rank and file indices (both 0-7).
func SquareAt(rank, file int) Square { return Square(rank*8 + file) }

// Rank returns the rank index (0-7) of the square; rank 0 holds White's pieces.
func (s Square) Rank() int { return int(s) / 8 }

// File returns the file index (0-7) of the square; file 0 is the a-file.
func (s Square) File() int { return int(s) % 8 }

// String returns the coordinate name of the square (e.g. "e4").
func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// Board represents the chess board state: piece placement plus the game
// bookkeeping the rules need (side to move, castling rights, en passant
// target, clocks and the Zobrist key of the position).
type Board struct {
	// Piece placement array for each square (0 = NoPiece, otherwise a Piece constant).
	// This mailbox array is the single source of truth for occupancy.
	pieces [64]Piece

	// Side to move (which player's turn it is)
	sideToMove Color

	// Castling rights for both sides (bitmask using CastlingRights flags)
	castlingRights CastlingRights

	// En passant target square (if a pawn moved two steps last move, otherwise NoSquare)
	enPassantSquare Square

	// Halfmove clock (number of half-moves since last capture or pawn advance, for 50-move rule)
	halfmoveClock int

	// Fullmove number (starts at 1, incremented after Black's move)
	fullmoveNumber int

	// Zobrist hash key for the current position (for move repetition tracking)
	zobristKey uint64
}

// NewBoard returns a board set up with the standard initial position.
func NewBoard() *Board {
	b, err := ParseFEN(FENStartPos)
	if err != nil {
		panic("heronmg: start position FEN failed to parse: " + err.Error())
	}
	return b
}

// PieceAt returns the piece on a square.
func (b *Board) PieceAt(sq Square) Piece { return b.pieces[int(sq)] }

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// CastlingRightsMask returns the current castling rights bitmask.
func (b *Board) CastlingRightsMask() CastlingRights { return b.castlingRights }

// EnPassantSquare returns the current en-passant target square or NoSquare.
func (b *Board) EnPassantSquare() Square { return b.enPassantSquare }

// HalfmoveClock accessor for testing/consumers that want read-only access.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full move counter (incremented after Black's move).
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// Hash returns the current Zobrist hash key.
func (b *Board) Hash() uint64 { return b.zobristKey }

// KingSquare returns the square of the given side's king, or NoSquare if
// absent. Positions without a king are a caller precondition violation for
// check logic; this accessor merely reports what is on the board.
func (b *Board) KingSquare(color Color) Square {
	king := PieceFromType(color, PieceTypeKing)
	for sq := 0; sq < 64; sq++ {
		if b.pieces[sq] == king {
			return Square(sq)
		}
	}
	return NoSquare
}

// SetPiece sets a piece on a square, replacing any existing piece, and keeps
// the Zobrist key in sync.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.removePiece(sq)
	b.addPiece(sq, p)
}

// ClearSquare removes any piece from the given square.
func (b *Board) ClearSquare(sq Square) { _ = b.removePiece(sq) }

// SetSideToMove updates the side to play. Use with care; normal move making
// toggles automatically.
func (b *Board) SetSideToMove(c Color) {
	if b.sideToMove == c {
		return
	}
	b.sideToMove = c
	b.zobristKey ^= zobristSide
}

// addPiece places a piece on an empty square and updates the Zobrist key.
func (b *Board) addPiece(sq Square, p Piece) {
	if p == NoPiece {
		return
	}
	b.pieces[int(sq)] = p
	b.zobristKey ^= zobristPiece[p][int(sq)]
}

// removePiece removes a piece from a square and updates the Zobrist key.
func (b *Board) removePiece(sq Square) Piece {
	p := b.pieces[int(sq)]
	if p == NoPiece {
		return NoPiece
	}
	b.pieces[int(sq)] = NoPiece
	b.zobristKey ^= zobristPiece[p][int(sq)]
	return p
}

// colorOf returns the color of a piece. NoPiece is treated as White.
func colorOf(p Piece) Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// typeOf returns the piece type in [1..6] with color stripped.
func typeOf(p Piece) Piece { return p & 7 }

// HasLegalMoves reports whether the side to move has any legal moves.
func (b *Board) HasLegalMoves() bool {
	pseudo := b.GeneratePseudoMoves()
	for _, m := range pseudo {
		ok, st := b.MakeMove(m)
		if ok {
			b.UnmakeMove(m, st)
			return true
		}
	}
	return false
}

// InCheckmate reports whether the side to move is checkmated.
func (b *Board) InCheckmate() bool {
	return b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// InStalemate reports whether the side to move is stalemated.
func (b *Board) InStalemate() bool {
	return !b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// IsDrawBy50 reports a 50-move rule draw (halfmoveClock counts half-moves).
// Advisory only: the engine does not adjudicate draws itself.
func (b *Board) IsDrawBy50() bool {
	return b.halfmoveClock >= 100
}

// IsDrawByRepetition reports a draw by threefold repetition based on the
// provided history of Zobrist keys. The check counts occurrences of the
// current position's Zobrist key in the history plus the current position
// itself. Advisory only, like IsDrawBy50.
func (b *Board) IsDrawByRepetition(history []uint64) bool {
	target := b.zobristKey
	// Do not double-count if the last history entry is the current position.
	end := len(history)
	if end > 0 && history[end-1] == target {
		end--
	}
	matches := 0
	for i := 0; i < end; i++ {
		if history[i] == target {
			matches++
			if matches >= 2 { // plus current occurrence makes threefold
				return true
			}
		}
	}
	return false
}

// PushMove attempts to make the move, and if legal, appends the resulting
// Zobrist key to the provided history and pushes the MoveState onto the stack
// for later undo. Returns true on success; on failure, board state is
// unchanged and nothing is appended.
func (b *Board) PushMove(m Move, stack *[]MoveState, history *[]uint64) bool {
	ok, st := b.MakeMove(m)
	if !ok {
		return false
	}
	*stack = append(*stack, st)
	*history = append(*history, b.zobristKey)
	return true
}

// PopMove undoes the last move pushed with PushMove, restoring the board
// state and truncating the history by one entry.
// It panics if the stack is empty.
func (b *Board) PopMove(stack *[]MoveState, history *[]uint64) {
	n := len(*stack)
	if n == 0 {
		panic("PopMove: empty stack")
	}
	st := (*stack)[n-1]
	*stack = (*stack)[:n-1]
	b.UnmakeMove(st.move, st)
	if len(*history) > 0 {
		*history = (*history)[:len(*history)-1]
	}
}
