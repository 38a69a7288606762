package service

import (
	"fmt"

	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame(playerID string) (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID, playerID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) GetGameState(gameID string) (GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

// LegalMovesFrom lists the legal moves starting on the algebraic square from.
func (gs *GameService) LegalMovesFrom(gameID string, from string) ([]model.Move, error) {
	sq, err := model.ParseSquare(from)
	if err != nil {
		return nil, err
	}
	return gs.gameManager.LegalMovesFrom(gameID, sq)
}

// HandleMove plays the move given by two algebraic squares.
func (gs *GameService) HandleMove(gameID string, playerID string, from, to string) (GameState, error) {
	fromSq, err := model.ParseSquare(from)
	if err != nil {
		return GameState{}, err
	}
	toSq, err := model.ParseSquare(to)
	if err != nil {
		return GameState{}, err
	}
	return gs.gameManager.MakeMove(gameID, playerID, fromSq, toSq)
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn Conn) {
	gs.gameManager.UnregisterConnection(gameID, playerID, conn)
}

// SendError reports errText on conn, serialized with the game's broadcasts.
func (gs *GameService) SendError(gameID string, conn Conn, errText string) {
	session, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return
	}
	session.SendError(conn, errText)
}

// DeleteGame removes a game owned by playerID.
func (gs *GameService) DeleteGame(gameID string, playerID string) error {
	return gs.gameManager.DeleteGame(gameID, playerID)
}
