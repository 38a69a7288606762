package model

import (
	"fmt"
	"strings"
)

// Board maps each of the 64 squares to a piece or NoPiece.
type Board struct {
	squares [8][8]Piece
}

func NewEmptyBoard() *Board {
	return &Board{}
}

// NewBoard returns a board holding the standard initial position.
func NewBoard() *Board {
	board := &Board{}
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, pieceType := range backRank {
		board.squares[0][col] = NewPiece(White, pieceType)
		board.squares[7][col] = NewPiece(Black, pieceType)
		board.squares[1][col] = NewPiece(White, Pawn)
		board.squares[6][col] = NewPiece(Black, Pawn)
	}
	return board
}

// Get returns the piece on sq, NoPiece if it is empty.
func (b *Board) Get(sq Square) (Piece, error) {
	if !sq.IsValid() {
		return NoPiece, fmt.Errorf("get %v: %w", sq, ErrInvalidSquare)
	}
	return b.squares[sq.Row][sq.Col], nil
}

// Set places piece on sq. Passing NoPiece clears the square.
func (b *Board) Set(sq Square, piece Piece) error {
	if !sq.IsValid() {
		return fmt.Errorf("set %v: %w", sq, ErrInvalidSquare)
	}
	b.squares[sq.Row][sq.Col] = piece
	return nil
}

// At is Get for squares already known to be valid. It returns NoPiece for
// off-board squares.
func (b *Board) At(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return b.squares[sq.Row][sq.Col]
}

func (b *Board) put(sq Square, piece Piece) {
	b.squares[sq.Row][sq.Col] = piece
}

// IsEmpty reports whether sq is on the board and holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.IsValid() && b.squares[sq.Row][sq.Col].IsEmpty()
}

// HasPiece reports whether sq holds a piece of the given color.
func (b *Board) HasPiece(sq Square, color Color) bool {
	if !sq.IsValid() {
		return false
	}
	piece := b.squares[sq.Row][sq.Col]
	return !piece.IsEmpty() && piece.Color == color
}

// SquaresWithPieces returns every square holding a piece of color, rank by rank.
func (b *Board) SquaresWithPieces(color Color) []Square {
	squares := []Square{}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := b.squares[row][col]
			if !piece.IsEmpty() && piece.Color == color {
				squares = append(squares, Square{Row: row, Col: col})
			}
		}
	}
	return squares
}

// EmptySquares returns every square holding no piece.
func (b *Board) EmptySquares() []Square {
	squares := []Square{}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if b.squares[row][col].IsEmpty() {
				squares = append(squares, Square{Row: row, Col: col})
			}
		}
	}
	return squares
}

// KingSquare locates the king of color.
func (b *Board) KingSquare(color Color) (Square, error) {
	king := NewPiece(color, King)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if b.squares[row][col] == king {
				return Square{Row: row, Col: col}, nil
			}
		}
	}
	return Square{}, fmt.Errorf("%s king: %w", color, ErrNoKingFound)
}

// Copy returns an independent board with the same contents.
func (b *Board) Copy() *Board {
	board := *b
	return &board
}

// Rows returns the board as an 8x8 grid indexed [row][col], empty squares as nil.
func (b *Board) Rows() [][]*Piece {
	rows := make([][]*Piece, 8)
	for row := 0; row < 8; row++ {
		rows[row] = make([]*Piece, 8)
		for col := 0; col < 8; col++ {
			if piece := b.squares[row][col]; !piece.IsEmpty() {
				rows[row][col] = &piece
			}
		}
	}
	return rows
}

// String draws the board with rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		for col := 0; col < 8; col++ {
			sb.WriteString(b.squares[row][col].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// PawnDirection is the row delta of a pawn advance for color.
func PawnDirection(color Color) int {
	if color == White {
		return 1
	}
	return -1
}

// PawnStartRow is the row pawns of color start on.
func PawnStartRow(color Color) int {
	if color == White {
		return 1
	}
	return 6
}

// PromotionRow is the row on which pawns of color promote.
func PromotionRow(color Color) int {
	if color == White {
		return 7
	}
	return 0
}

// BackRow is the row the king and rooks of color start on.
func BackRow(color Color) int {
	if color == White {
		return 0
	}
	return 7
}
