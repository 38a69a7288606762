package model

import "fmt"

// CastlingRights records whether a side may still castle on either wing.
// Rights are only ever revoked.
type CastlingRights struct {
	Short bool `json:"short"`
	Long  bool `json:"long"`
}

// Game is the mutable state of one game: the board, the side to move, the
// en passant target and both sides' castling rights.
type Game struct {
	board     *Board
	turn      Color
	enPassant *Square
	rights    [2]CastlingRights
}

// NewGame returns a game at the standard initial position.
func NewGame() *Game {
	return &Game{
		board:  NewBoard(),
		turn:   White,
		rights: [2]CastlingRights{{Short: true, Long: true}, {Short: true, Long: true}},
	}
}

// NewGameFromBoard composes a game from an arbitrary position. The board is
// owned by the returned game.
func NewGameFromBoard(board *Board, turn Color, white, black CastlingRights, enPassant *Square) *Game {
	g := &Game{
		board:  board,
		turn:   turn,
		rights: [2]CastlingRights{white, black},
	}
	if enPassant != nil {
		ep := *enPassant
		g.enPassant = &ep
	}
	return g
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Turn() Color {
	return g.turn
}

// EnPassant returns the square a pawn would land on to capture en passant, or
// nil if no such capture is available this ply.
func (g *Game) EnPassant() *Square {
	if g.enPassant == nil {
		return nil
	}
	ep := *g.enPassant
	return &ep
}

func (g *Game) Rights(color Color) CastlingRights {
	return g.rights[color.index()]
}

// Clone returns a deep copy of the game.
func (g *Game) Clone() *Game {
	return NewGameFromBoard(g.board.Copy(), g.turn, g.rights[0], g.rights[1], g.enPassant)
}

// MakeMove applies move for the side to move and passes the turn. The move must
// come from the current legal move list; no legality check is made here.
func (g *Game) MakeMove(move Move) error {
	if !move.From.IsValid() || !move.To.IsValid() {
		return fmt.Errorf("make move %v -> %v: %w", move.From, move.To, ErrInvalidSquare)
	}

	piece := g.board.At(move.From)
	g.board.put(move.To, piece)
	g.board.put(move.From, NoPiece)

	// the captured pawn sits one rank behind the landing square
	if piece.Type == Pawn && g.enPassant != nil && move.To == *g.enPassant {
		g.board.put(move.To.Offset(-PawnDirection(piece.Color), 0), NoPiece)
	}
	g.enPassant = nil

	g.revokeCorner(move.From)
	g.revokeCorner(move.To)

	switch move.Kind {
	case Ordinary:
		if piece.Type == King {
			g.rights[g.turn.index()] = CastlingRights{}
		}
	case DoublePawnPush:
		skipped := move.From.Offset(PawnDirection(piece.Color), 0)
		g.enPassant = &skipped
	case PawnPromotion:
		g.board.put(move.To, NewPiece(g.turn, Queen))
	case ShortCastle:
		g.castle(5, 6, 7)
	case LongCastle:
		g.castle(3, 2, 0)
	}

	g.turn = g.turn.Opponent()
	return nil
}

// castle places the king and rook of the side to move on their castled
// columns and clears the squares they left.
func (g *Game) castle(rookTo, kingTo, rookFrom int) {
	row := BackRow(g.turn)
	g.board.put(NewSquare(row, 4), NoPiece)
	g.board.put(NewSquare(row, rookFrom), NoPiece)
	g.board.put(NewSquare(row, kingTo), NewPiece(g.turn, King))
	g.board.put(NewSquare(row, rookTo), NewPiece(g.turn, Rook))
	g.rights[g.turn.index()] = CastlingRights{}
}

// revokeCorner drops the castling right tied to a rook home corner once
// anything leaves or lands on it.
func (g *Game) revokeCorner(sq Square) {
	for _, color := range []Color{White, Black} {
		if sq.Row != BackRow(color) {
			continue
		}
		switch sq.Col {
		case 0:
			g.rights[color.index()].Long = false
		case 7:
			g.rights[color.index()].Short = false
		}
	}
}

// SimulateMove returns a copy of the board with the piece on move.From
// relocated to move.To. The game itself is untouched and no en passant or
// castling side effects are applied.
func (g *Game) SimulateMove(move Move) (*Board, error) {
	if !move.From.IsValid() || !move.To.IsValid() {
		return nil, fmt.Errorf("simulate move %v -> %v: %w", move.From, move.To, ErrInvalidSquare)
	}
	board := g.board.Copy()
	board.put(move.To, board.At(move.From))
	board.put(move.From, NoPiece)
	return board, nil
}
