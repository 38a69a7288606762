package model

import "strings"

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) index() int {
	if c == Black {
		return 1
	}
	return 0
}

type PieceType string

const (
	Pawn   PieceType = "pawn"
	Knight PieceType = "knight"
	Bishop PieceType = "bishop"
	Rook   PieceType = "rook"
	Queen  PieceType = "queen"
	King   PieceType = "king"
)

func (p PieceType) notation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	}
	return ""
}

// Piece is an immutable (color, type) pair. The zero value is the absence of a piece.
type Piece struct {
	Color Color     `json:"color"`
	Type  PieceType `json:"type"`
}

// NoPiece marks an empty square.
var NoPiece = Piece{}

func NewPiece(color Color, pieceType PieceType) Piece {
	return Piece{Color: color, Type: pieceType}
}

func (p Piece) IsEmpty() bool {
	return p.Type == ""
}

// String returns the piece letter, upper-case for white, or "." for an empty square.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	if p.Color == Black {
		return strings.ToLower(p.Type.notation())
	}
	return p.Type.notation()
}
