package heronmg

import "strings"

// Move encodes a chess move in a 32-bit value. A Move is a plain value; it
// never references board storage.
type Move uint32

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift    = 0  // 6 bits
	moveToShift      = 6  // 6 bits
	movePieceShift   = 12 // 4 bits
	moveCaptureShift = 16 // 4 bits
	movePromoteShift = 20 // 4 bits
	moveFlagShift    = 24 // 2 bits
)

// Move flags
const (
	FlagNone       = 0
	FlagCastle     = 1
	FlagEnPassant  = 2
	FlagDoublePush = 3
	// (Promotion is indicated by a non-zero promotion piece)
)

// NewMove constructs a Move value from components.
func NewMove(from, to Square, piece, captured Piece, promotion Piece, flag uint8) Move {
	m := uint32(from&0x3F) |
		(uint32(to&0x3F) << moveToShift) |
		(uint32(piece&0xF) << movePieceShift) |
		(uint32(captured&0xF) << moveCaptureShift) |
		(uint32(promotion&0xF) << movePromoteShift) |
		(uint32(flag&0x3) << moveFlagShift)
	return Move(m)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0x3F) }

// MovedPiece returns the piece code that is moved.
func (m Move) MovedPiece() Piece { return Piece((uint32(m) >> movePieceShift) & 0xF) }

// CapturedPiece returns the piece code that was captured (or NoPiece if none).
// En passant captures carry NoPiece here; the captured pawn is implied by the flag.
func (m Move) CapturedPiece() Piece { return Piece((uint32(m) >> moveCaptureShift) & 0xF) }

// PromotionPiece returns the promotion piece code (or NoPiece if not a promotion).
func (m Move) PromotionPiece() Piece { return Piece((uint32(m) >> movePromoteShift) & 0xF) }

// PromotionPieceType returns the colorless type of the promoted piece (or PieceTypeNone).
func (m Move) PromotionPieceType() PieceType { return m.PromotionPiece().Type() }

// Flags returns the special move flags.
func (m Move) Flags() uint8 { return uint8((uint32(m) >> moveFlagShift) & 0x3) }

// IsCastleKingside reports whether the move is a king-side castle.
func (m Move) IsCastleKingside() bool {
	return m.Flags() == FlagCastle && m.To().File() == 6
}

// IsCastleQueenside reports whether the move is a queen-side castle.
func (m Move) IsCastleQueenside() bool {
	return m.Flags() == FlagCastle && m.To().File() == 2
}

// IsEnPassantCapture reports whether the move captures en passant.
func (m Move) IsEnPassantCapture() bool { return m.Flags() == FlagEnPassant }

// IsDoublePawnPush reports whether the move is a two-square pawn advance.
func (m Move) IsDoublePawnPush() bool { return m.Flags() == FlagDoublePush }

// IsCapture reports whether the move captures a piece (including en passant).
func (m Move) IsCapture() bool {
	return m.CapturedPiece() != NoPiece || m.Flags() == FlagEnPassant
}

// String produces the coordinate notation of the move (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	str := m.From().String() + m.To().String()
	if promo := m.PromotionPiece(); promo != NoPiece {
		ch := charFromPiece(promo)
		str += strings.ToLower(string(ch))
	}
	return str
}
