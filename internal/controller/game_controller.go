package controller

import (
	"errors"
	"log"

	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/benbeisheim/chess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// moveRequest is the body of POST /api/game/:gameId/move.
type moveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	gameID, err := gc.gameService.CreateGame(playerID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(gameState)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move body",
		})
	}

	gameState, err := gc.gameService.HandleMove(gameID, playerID, req.From, req.To)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(gameState)
}

// DeleteGame removes a game. Only its owner may delete it.
func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	if err := gc.gameService.DeleteGame(gameID, playerID); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LegalMoves lists the legal moves, optionally only those starting on ?from=.
func (gc *GameController) LegalMoves(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	from := c.Query("from")
	if from == "" {
		gameState, err := gc.gameService.GetGameState(gameID)
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(fiber.Map{"moves": gameState.LegalMoves})
	}

	moves, err := gc.gameService.LegalMovesFrom(gameID, from)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"moves": moves})
}

// statusFor maps a service error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrGameExists), errors.Is(err, service.ErrGameOver):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrIllegalMove), errors.Is(err, model.ErrInvalidNotation):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, service.ErrNotOwner):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		return c.Status(status).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
