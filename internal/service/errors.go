package service

import "errors"

var (
	ErrGameNotFound        = errors.New("game not found")
	ErrGameExists          = errors.New("game already exists")
	ErrIllegalMove         = errors.New("illegal move")
	ErrGameOver            = errors.New("game is over")
	ErrNotOwner            = errors.New("player does not own this game")
	ErrDuplicateConnection = errors.New("connection already exists")
)
