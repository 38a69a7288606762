package rules

import "github.com/benbeisheim/chess-backend/internal/model"

// AttackedSquares returns the set of squares attacked by the pieces of color.
// Pawns attack both forward diagonals whether or not anything stands there;
// every other piece attacks the destinations of its pseudo-legal moves.
func AttackedSquares(board *model.Board, color model.Color) map[model.Square]bool {
	attacked := make(map[model.Square]bool)
	for _, from := range board.SquaresWithPieces(color) {
		piece := board.At(from)
		if piece.Type == model.Pawn {
			dir := model.PawnDirection(color)
			for _, dCol := range []int{-1, 1} {
				if target := from.Offset(dir, dCol); target.IsValid() {
					attacked[target] = true
				}
			}
			continue
		}
		for _, move := range PseudoLegalMoves(piece, from, board, nil) {
			attacked[move.To] = true
		}
	}
	return attacked
}

// IsCheck reports whether the king of color stands on a square attacked by
// the opponent. It fails with model.ErrNoKingFound if that king is missing.
func IsCheck(board *model.Board, color model.Color) (bool, error) {
	kingSquare, err := board.KingSquare(color)
	if err != nil {
		return false, err
	}
	return AttackedSquares(board, color.Opponent())[kingSquare], nil
}
