package service

import (
	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/benbeisheim/chess-backend/internal/rules"
)

// GameState is the snapshot handed to the rendering layer after every change.
type GameState struct {
	ID              string           `json:"id"`
	Sound           string           `json:"sound"`
	Board           [][]*model.Piece `json:"board"`
	ToMove          model.Color      `json:"toMove"`
	IsCheck         bool             `json:"isCheck"`
	LegalMoves      []model.Move     `json:"legalMoves"`
	EnPassantTarget *model.Square    `json:"enPassantTarget"`
	Castling        CastlingState    `json:"castling"`
	MoveHistory     []string         `json:"moveHistory"`
	LastMove        *model.Move      `json:"lastMove"`
	Result          rules.Result     `json:"result"`
}

type CastlingState struct {
	White model.CastlingRights `json:"white"`
	Black model.CastlingRights `json:"black"`
}

// Sounds the renderer plays for the last move.
const (
	SoundMove     = "move"
	SoundCapture  = "capture"
	SoundCastle   = "castle"
	SoundPromote  = "promote"
	SoundCheck    = "check"
	SoundGameOver = "gameOver"
)
