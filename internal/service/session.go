package service

import (
	"fmt"
	"log"
	"sync"

	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/benbeisheim/chess-backend/internal/rules"
	"github.com/benbeisheim/chess-backend/internal/storage"
	"github.com/benbeisheim/chess-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
)

// Conn is the part of a websocket connection a session writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// The observers of a specific game
type SessionConnections struct {
	connections map[string]Conn // playerID -> connection
	mu          sync.RWMutex
	writeMu     sync.Mutex // serializes writes, connections allow one writer
}

func NewSessionConnections() *SessionConnections {
	return &SessionConnections{
		connections: make(map[string]Conn),
	}
}

// Session owns one game together with everything the input layer needs
// between moves: the legal move list, the result and the move history.
type Session struct {
	ID          string
	Owner       string
	mu          sync.Mutex
	game        *model.Game
	legalMoves  []model.Move
	result      rules.Result
	isCheck     bool
	history     []model.Move
	sound       string
	connections *SessionConnections
	record      storage.GameRecord
	deleted     bool
}

func NewSession(id, owner string) (*Session, error) {
	s := &Session{
		ID:          id,
		Owner:       owner,
		game:        model.NewGame(),
		history:     make([]model.Move, 0),
		connections: NewSessionConnections(),
		record:      storage.GameRecord{ID: id, Owner: owner, Moves: []string{}},
	}
	if err := s.refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

// restoreSession rebuilds a session by replaying a stored move list.
func restoreSession(rec *storage.GameRecord) (*Session, error) {
	s, err := NewSession(rec.ID, rec.Owner)
	if err != nil {
		return nil, err
	}
	s.record.CreatedAt = rec.CreatedAt
	for i, text := range rec.Moves {
		simple, err := model.ParseSimpleMove(text)
		if err != nil {
			return nil, fmt.Errorf("replay ply %d: %w", i+1, err)
		}
		if err := s.applyMove(simple.From, simple.To); err != nil {
			return nil, fmt.Errorf("replay ply %d %s: %w", i+1, text, err)
		}
	}
	return s, nil
}

// refresh recomputes the legal moves, check flag and result after a change.
func (s *Session) refresh() error {
	legalMoves, err := rules.LegalMoves(s.game)
	if err != nil {
		return err
	}
	isCheck, err := rules.IsCheck(s.game.Board(), s.game.Turn())
	if err != nil {
		return err
	}
	result, err := rules.ResultFor(s.game, legalMoves)
	if err != nil {
		return err
	}
	s.legalMoves = legalMoves
	s.isCheck = isCheck
	s.result = result
	return nil
}

// MakeMove plays from -> to for the session owner, persists the new record
// with save and notifies observers. If save fails the move is rolled back and
// observers hear nothing.
func (s *Session) MakeMove(playerID string, from, to model.Square, save func(*storage.GameRecord) error) (GameState, error) {
	s.mu.Lock()
	if s.deleted {
		s.mu.Unlock()
		return GameState{}, ErrGameNotFound
	}
	if playerID != s.Owner {
		s.mu.Unlock()
		return GameState{}, ErrNotOwner
	}
	cp := s.takeCheckpoint()
	if err := s.applyMove(from, to); err != nil {
		s.rollback(cp)
		s.mu.Unlock()
		return GameState{}, err
	}
	if err := s.saveLocked(save); err != nil {
		s.rollback(cp)
		s.mu.Unlock()
		return GameState{}, fmt.Errorf("save game %s: %w", s.ID, err)
	}
	log.Printf("game %s: %s played %s", s.ID, s.game.Turn().Opponent(), s.history[len(s.history)-1])
	if s.result.IsOver() {
		log.Printf("game %s: over, result %s", s.ID, s.result)
	}
	state := s.snapshot()

	// take the write lock before releasing the game so states go out in move order
	s.connections.writeMu.Lock()
	s.mu.Unlock()
	defer s.connections.writeMu.Unlock()
	s.writeState(state)
	return state, nil
}

// checkpoint is everything applyMove changes.
type checkpoint struct {
	game       *model.Game
	legalMoves []model.Move
	result     rules.Result
	isCheck    bool
	plies      int
	sound      string
	record     storage.GameRecord
}

func (s *Session) takeCheckpoint() checkpoint {
	return checkpoint{
		game:       s.game.Clone(),
		legalMoves: s.legalMoves,
		result:     s.result,
		isCheck:    s.isCheck,
		plies:      len(s.history),
		sound:      s.sound,
		record:     s.recordLocked(),
	}
}

func (s *Session) rollback(cp checkpoint) {
	s.game = cp.game
	s.legalMoves = cp.legalMoves
	s.result = cp.result
	s.isCheck = cp.isCheck
	s.history = s.history[:cp.plies]
	s.sound = cp.sound
	s.record = cp.record
}

// Save persists the current record with save.
func (s *Session) Save(save func(*storage.GameRecord) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(save)
}

// Delete removes the session's record with del. Later moves fail with ErrGameNotFound.
func (s *Session) Delete(del func(id string) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := del(s.ID); err != nil {
		return err
	}
	s.deleted = true
	return nil
}

// saveLocked hands save a copy of the record and keeps the timestamps it sets.
func (s *Session) saveLocked(save func(*storage.GameRecord) error) error {
	rec := s.recordLocked()
	if err := save(&rec); err != nil {
		return err
	}
	s.record.CreatedAt = rec.CreatedAt
	s.record.UpdatedAt = rec.UpdatedAt
	return nil
}

// applyMove validates the pair against the legal move list, which is the
// precondition of model.Game.MakeMove, then plays it.
func (s *Session) applyMove(from, to model.Square) error {
	if s.result.IsOver() {
		return ErrGameOver
	}
	move, ok := rules.FindMove(s.legalMoves, from, to)
	if !ok {
		return fmt.Errorf("%s%s: %w", from, to, ErrIllegalMove)
	}

	sound := soundFor(s.game, move)
	if err := s.game.MakeMove(move); err != nil {
		return err
	}
	s.history = append(s.history, move)
	s.record.Moves = append(s.record.Moves, move.String())
	if err := s.refresh(); err != nil {
		return err
	}
	s.record.Result = string(s.result)

	switch {
	case s.result.IsOver():
		sound = SoundGameOver
	case s.isCheck:
		sound = SoundCheck
	}
	s.sound = sound
	return nil
}

func soundFor(game *model.Game, move model.Move) string {
	switch move.Kind {
	case model.ShortCastle, model.LongCastle:
		return SoundCastle
	case model.PawnPromotion:
		return SoundPromote
	}
	if !game.Board().At(move.To).IsEmpty() {
		return SoundCapture
	}
	if ep := game.EnPassant(); ep != nil && *ep == move.To && game.Board().At(move.From).Type == model.Pawn {
		return SoundCapture
	}
	return SoundMove
}

// State returns a snapshot of the session.
func (s *Session) State() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() GameState {
	legalMoves := make([]model.Move, len(s.legalMoves))
	copy(legalMoves, s.legalMoves)
	history := make([]string, 0, len(s.history))
	for _, move := range s.history {
		history = append(history, move.String())
	}
	var lastMove *model.Move
	if len(s.history) > 0 {
		last := s.history[len(s.history)-1]
		lastMove = &last
	}
	return GameState{
		ID:              s.ID,
		Sound:           s.sound,
		Board:           s.game.Board().Rows(),
		ToMove:          s.game.Turn(),
		IsCheck:         s.isCheck,
		LegalMoves:      legalMoves,
		EnPassantTarget: s.game.EnPassant(),
		Castling: CastlingState{
			White: s.game.Rights(model.White),
			Black: s.game.Rights(model.Black),
		},
		MoveHistory: history,
		LastMove:    lastMove,
		Result:      s.result,
	}
}

// LegalMovesFrom returns the legal moves starting on from.
func (s *Session) LegalMovesFrom(from model.Square) []model.Move {
	s.mu.Lock()
	defer s.mu.Unlock()

	moves := []model.Move{}
	for _, move := range s.legalMoves {
		if move.From == from {
			moves = append(moves, move)
		}
	}
	return moves
}

// recordLocked returns a copy of the persistent form of the session.
func (s *Session) recordLocked() storage.GameRecord {
	rec := s.record
	rec.Moves = append([]string(nil), s.record.Moves...)
	return rec
}

// RegisterConnection adds conn as playerID's observer and sends it the current
// state. A player may hold only one connection per game.
func (s *Session) RegisterConnection(playerID string, conn Conn) error {
	log.Printf("game %s: registering connection %p for player %s", s.ID, conn, playerID)

	s.mu.Lock()
	s.connections.mu.Lock()
	if _, exists := s.connections.connections[playerID]; exists {
		// keep the healthy connection, reject the new one
		s.connections.mu.Unlock()
		s.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ErrDuplicateConnection.Error()),
		)
		conn.Close()
		return ErrDuplicateConnection
	}
	s.connections.connections[playerID] = conn
	s.connections.mu.Unlock()
	state := s.snapshot()

	// same lock order as MakeMove: any later move is written after this state
	s.connections.writeMu.Lock()
	s.mu.Unlock()
	defer s.connections.writeMu.Unlock()
	if msg, ok := s.stateMessage(state); ok {
		s.send(playerID, conn, msg)
	}
	return nil
}

// UnregisterConnection drops playerID's connection if conn is still the current one.
func (s *Session) UnregisterConnection(playerID string, conn Conn) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	if current, exists := s.connections.connections[playerID]; exists && current == conn {
		log.Printf("game %s: unregistering connection %p for player %s", s.ID, conn, playerID)
		delete(s.connections.connections, playerID)
	}
}

// SendError reports errText to a single connection.
func (s *Session) SendError(conn Conn, errText string) {
	msg, err := ws.NewErrorMessage(errText)
	if err != nil {
		log.Printf("game %s: failed to marshal error: %v", s.ID, err)
		return
	}
	s.connections.writeMu.Lock()
	defer s.connections.writeMu.Unlock()
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("game %s: failed to send error: %v", s.ID, err)
	}
}

// CloseConnections says goodbye to every observer and forgets them.
func (s *Session) CloseConnections(reason string) {
	s.connections.writeMu.Lock()
	defer s.connections.writeMu.Unlock()

	s.connections.mu.Lock()
	active := s.connections.connections
	s.connections.connections = make(map[string]Conn)
	s.connections.mu.Unlock()

	for _, conn := range active {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason))
		conn.Close()
	}
}

// writeState sends state to every observer. Callers hold writeMu.
func (s *Session) writeState(state GameState) {
	s.connections.mu.RLock()
	activeConnections := make(map[string]Conn, len(s.connections.connections))
	for playerID, conn := range s.connections.connections {
		activeConnections[playerID] = conn
	}
	s.connections.mu.RUnlock()

	msg, ok := s.stateMessage(state)
	if !ok {
		return
	}
	for playerID, conn := range activeConnections {
		s.send(playerID, conn, msg)
	}
}

func (s *Session) stateMessage(state GameState) (ws.Message, bool) {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, state)
	if err != nil {
		log.Printf("game %s: failed to marshal state: %v", s.ID, err)
		return ws.Message{}, false
	}
	return msg, true
}

// send writes msg to one observer, dropping it if the write fails. Callers hold writeMu.
func (s *Session) send(playerID string, conn Conn, msg ws.Message) {
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("game %s: failed to send state to player %s: %v", s.ID, playerID, err)
		s.UnregisterConnection(playerID, conn)
	}
}
