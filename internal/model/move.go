package model

import "fmt"

type MoveKind string

const (
	Ordinary       MoveKind = "ordinary"
	DoublePawnPush MoveKind = "doublePawnPush"
	PawnPromotion  MoveKind = "pawnPromotion"
	ShortCastle    MoveKind = "shortCastle"
	LongCastle     MoveKind = "longCastle"
)

// Move is a value; two moves are equal when start, end and kind all match.
type Move struct {
	From Square   `json:"from"`
	To   Square   `json:"to"`
	Kind MoveKind `json:"kind"`
}

// NewMove returns an Ordinary move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to, Kind: Ordinary}
}

func NewMoveOfKind(from, to Square, kind MoveKind) Move {
	return Move{From: from, To: to, Kind: kind}
}

// String returns coordinate notation, e.g. "e2e4" or "e7e8q" for a promotion.
func (m Move) String() string {
	if m.Kind == PawnPromotion {
		return fmt.Sprintf("%s%sq", m.From, m.To)
	}
	return fmt.Sprintf("%s%s", m.From, m.To)
}

// SimpleMove is a (from, to) pair as chosen by a player, without a kind.
type SimpleMove struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// ParseSimpleMove reads coordinate notation ("e2e4", optionally with a trailing
// promotion letter, which is ignored because promotion is always to a queen).
func ParseSimpleMove(text string) (SimpleMove, error) {
	if len(text) != 4 && len(text) != 5 {
		return SimpleMove{}, fmt.Errorf("move %q: %w", text, ErrInvalidNotation)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return SimpleMove{}, err
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return SimpleMove{}, err
	}
	return SimpleMove{From: from, To: to}, nil
}
