package rules

import "github.com/benbeisheim/chess-backend/internal/model"

// Result is the outcome of a finished game. The zero value means the game goes on.
type Result string

const (
	Ongoing              Result = ""
	WhiteWin             Result = "whiteWin"
	BlackWin             Result = "blackWin"
	Stalemate            Result = "stalemate"
	InsufficientMaterial Result = "insufficientMaterial"
)

func (r Result) IsOver() bool {
	return r != Ongoing
}

// winFor returns the result in which color wins.
func winFor(color model.Color) Result {
	if color == model.White {
		return WhiteWin
	}
	return BlackWin
}

// GameResult classifies the current position of game.
func GameResult(game *model.Game) (Result, error) {
	legalMoves, err := LegalMoves(game)
	if err != nil {
		return Ongoing, err
	}
	return ResultFor(game, legalMoves)
}

// ResultFor classifies game given its already computed legal move list.
func ResultFor(game *model.Game, legalMoves []model.Move) (Result, error) {
	if len(legalMoves) == 0 {
		inCheck, err := IsCheck(game.Board(), game.Turn())
		if err != nil {
			return Ongoing, err
		}
		if inCheck {
			return winFor(game.Turn().Opponent()), nil
		}
		return Stalemate, nil
	}
	if HasInsufficientMaterial(game.Board()) {
		return InsufficientMaterial, nil
	}
	return Ongoing, nil
}

// HasInsufficientMaterial reports whether no sequence of legal moves can end in
// checkmate: bare kings, a single minor piece, or bishops that all stand on
// squares of one color.
func HasInsufficientMaterial(board *model.Board) bool {
	minors := 0
	bishopSquareColors := map[int]bool{}
	onlyBishops := true
	for _, color := range []model.Color{model.White, model.Black} {
		for _, sq := range board.SquaresWithPieces(color) {
			switch board.At(sq).Type {
			case model.King:
			case model.Bishop:
				minors++
				bishopSquareColors[(sq.Row+sq.Col)%2] = true
			case model.Knight:
				minors++
				onlyBishops = false
			default:
				return false
			}
		}
	}
	if minors <= 1 {
		return true
	}
	return onlyBishops && len(bishopSquareColors) == 1
}
