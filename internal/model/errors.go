package model

import "errors"

var (
	// ErrInvalidSquare is returned for board access outside a1..h8.
	ErrInvalidSquare = errors.New("invalid square")
	// ErrNoKingFound is returned when a check query targets a color with no king on the board.
	ErrNoKingFound = errors.New("no king found")
	// ErrInvalidNotation is returned when an algebraic square or move cannot be parsed.
	ErrInvalidNotation = errors.New("invalid notation")
)
