package model

import "fmt"

// Square is a board coordinate. Row 0 is rank 1, column 0 is the a-file.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewSquare(row, col int) Square {
	return Square{Row: row, Col: col}
}

// IsValid reports whether both coordinates lie on the board.
func (s Square) IsValid() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

// Offset returns the square shifted by the given row and column deltas. The
// result may be off the board.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// String returns the algebraic name of the square, e.g. "e2".
func (s Square) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col, s.Row+1)
}

// ParseSquare is the inverse of Square.String.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", name, ErrInvalidNotation)
	}
	sq := Square{Row: int(name[1] - '1'), Col: int(name[0] - 'a')}
	if !sq.IsValid() {
		return Square{}, fmt.Errorf("square %q: %w", name, ErrInvalidNotation)
	}
	return sq, nil
}

// MustParseSquare is ParseSquare for literals known to be valid.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}
