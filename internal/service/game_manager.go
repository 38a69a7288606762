// service/game_manager.go
package service

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/benbeisheim/chess-backend/internal/storage"
)

// GameStore persists game records between restarts.
type GameStore interface {
	SaveGame(rec *storage.GameRecord) error
	LoadGame(id string) (*storage.GameRecord, error)
	ListGames() ([]*storage.GameRecord, error)
	DeleteGame(id string) error
}

type GameManager struct {
	sessions map[string]*Session
	store    GameStore
	mu       sync.RWMutex
}

func NewGameManager(store GameStore) *GameManager {
	return &GameManager{
		sessions: make(map[string]*Session),
		store:    store,
	}
}

// Restore loads every stored game by replaying its moves. Records that fail to
// replay are logged and skipped. It returns the number of games restored.
func (gm *GameManager) Restore() (int, error) {
	records, err := gm.store.ListGames()
	if err != nil {
		return 0, fmt.Errorf("list stored games: %w", err)
	}

	gm.mu.Lock()
	defer gm.mu.Unlock()

	restored := 0
	for _, rec := range records {
		session, err := restoreSession(rec)
		if err != nil {
			log.Printf("skipping stored game %s: %v", rec.ID, err)
			continue
		}
		gm.sessions[rec.ID] = session
		restored++
	}
	return restored, nil
}

func (gm *GameManager) CreateGame(gameID string, owner string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.sessions[gameID]; exists {
		return ErrGameExists
	}

	session, err := NewSession(gameID, owner)
	if err != nil {
		return err
	}
	if err := session.Save(gm.store.SaveGame); err != nil {
		return fmt.Errorf("save game %s: %w", gameID, err)
	}
	gm.sessions[gameID] = session
	log.Printf("game %s: created for player %s", gameID, owner)
	return nil
}

// GetSession returns the live session for gameID, loading and replaying its
// stored record when it is not in memory yet.
func (gm *GameManager) GetSession(gameID string) (*Session, error) {
	gm.mu.RLock()
	session, exists := gm.sessions[gameID]
	gm.mu.RUnlock()
	if exists {
		return session, nil
	}

	rec, err := gm.store.LoadGame(gameID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load game %s: %w", gameID, err)
	}
	loaded, err := restoreSession(rec)
	if err != nil {
		log.Printf("game %s: stored record does not replay: %v", gameID, err)
		return nil, ErrGameNotFound
	}

	gm.mu.Lock()
	defer gm.mu.Unlock()
	// another caller may have loaded it meanwhile
	if session, exists := gm.sessions[gameID]; exists {
		return session, nil
	}
	gm.sessions[gameID] = loaded
	log.Printf("game %s: loaded from storage", gameID)
	return loaded, nil
}

// DeleteGame removes gameID from memory and storage and disconnects its observers.
func (gm *GameManager) DeleteGame(gameID string, playerID string) error {
	session, err := gm.GetSession(gameID)
	if err != nil {
		return err
	}
	if session.Owner != playerID {
		return ErrNotOwner
	}

	if err := session.Delete(gm.store.DeleteGame); err != nil {
		return fmt.Errorf("delete game %s: %w", gameID, err)
	}
	gm.mu.Lock()
	delete(gm.sessions, gameID)
	gm.mu.Unlock()

	session.CloseConnections("game deleted")
	log.Printf("game %s: deleted by player %s", gameID, playerID)
	return nil
}

func (gm *GameManager) GetGameState(gameID string) (GameState, error) {
	session, err := gm.GetSession(gameID)
	if err != nil {
		return GameState{}, err
	}
	return session.State(), nil
}

func (gm *GameManager) LegalMovesFrom(gameID string, from model.Square) ([]model.Move, error) {
	session, err := gm.GetSession(gameID)
	if err != nil {
		return nil, err
	}
	return session.LegalMovesFrom(from), nil
}

// MakeMove plays a move in gameID. The move only takes effect if its record
// is persisted.
func (gm *GameManager) MakeMove(gameID string, playerID string, from, to model.Square) (GameState, error) {
	session, err := gm.GetSession(gameID)
	if err != nil {
		return GameState{}, err
	}

	return session.MakeMove(playerID, from, to, gm.store.SaveGame)
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn Conn) error {
	session, err := gm.GetSession(gameID)
	if err != nil {
		return err
	}

	return session.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string, conn Conn) {
	session, err := gm.GetSession(gameID)
	if err != nil {
		return
	}

	session.UnregisterConnection(playerID, conn)
}
