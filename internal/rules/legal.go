package rules

import "github.com/benbeisheim/chess-backend/internal/model"

// LegalMoves returns every legal move for the side to move: the pseudo-legal
// moves that do not leave the mover's king in check, plus any legal castles.
func LegalMoves(game *model.Game) ([]model.Move, error) {
	board := game.Board()
	mover := game.Turn()
	enPassant := game.EnPassant()

	legalMoves := []model.Move{}
	for _, from := range board.SquaresWithPieces(mover) {
		for _, move := range PseudoLegalMoves(board.At(from), from, board, enPassant) {
			simulated, err := game.SimulateMove(move)
			if err != nil {
				return nil, err
			}
			inCheck, err := IsCheck(simulated, mover)
			if err != nil {
				return nil, err
			}
			if !inCheck {
				legalMoves = append(legalMoves, move)
			}
		}
	}

	castles, err := CastlingMoves(game)
	if err != nil {
		return nil, err
	}
	return append(legalMoves, castles...), nil
}

type castleSpec struct {
	kind     model.MoveKind
	rookCol  int
	kingTo   int
	empty    []int // columns between king and rook
	traverse []int // columns the king crosses or lands on
}

var castleSpecs = []castleSpec{
	{kind: model.ShortCastle, rookCol: 7, kingTo: 6, empty: []int{5, 6}, traverse: []int{5, 6}},
	{kind: model.LongCastle, rookCol: 0, kingTo: 2, empty: []int{1, 2, 3}, traverse: []int{2, 3}},
}

// CastlingMoves returns the castles available to the side to move. A castle
// needs its right intact, the king out of check, the squares between king and
// rook empty, and no attacked square on the king's path.
func CastlingMoves(game *model.Game) ([]model.Move, error) {
	board := game.Board()
	mover := game.Turn()
	rights := game.Rights(mover)
	moves := []model.Move{}
	if !rights.Short && !rights.Long {
		return moves, nil
	}

	row := model.BackRow(mover)
	kingFrom := model.NewSquare(row, 4)
	if board.At(kingFrom) != model.NewPiece(mover, model.King) {
		return moves, nil
	}

	inCheck, err := IsCheck(board, mover)
	if err != nil {
		return nil, err
	}
	if inCheck {
		return moves, nil
	}
	attacked := AttackedSquares(board, mover.Opponent())

	for _, spec := range castleSpecs {
		if spec.kind == model.ShortCastle && !rights.Short || spec.kind == model.LongCastle && !rights.Long {
			continue
		}
		if board.At(model.NewSquare(row, spec.rookCol)) != model.NewPiece(mover, model.Rook) {
			continue
		}
		if !allEmpty(board, row, spec.empty) || anyAttacked(attacked, row, spec.traverse) {
			continue
		}
		moves = append(moves, model.NewMoveOfKind(kingFrom, model.NewSquare(row, spec.kingTo), spec.kind))
	}
	return moves, nil
}

func allEmpty(board *model.Board, row int, cols []int) bool {
	for _, col := range cols {
		if !board.IsEmpty(model.NewSquare(row, col)) {
			return false
		}
	}
	return true
}

func anyAttacked(attacked map[model.Square]bool, row int, cols []int) bool {
	for _, col := range cols {
		if attacked[model.NewSquare(row, col)] {
			return true
		}
	}
	return false
}

// FindMove resolves a (from, to) pair picked by a player to the matching legal
// move. It reports false when the pair is not legal.
func FindMove(legalMoves []model.Move, from, to model.Square) (model.Move, bool) {
	for _, move := range legalMoves {
		if move.From == from && move.To == to {
			return move, true
		}
	}
	return model.Move{}, false
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(game *model.Game, depth int) (int, error) {
	if depth == 0 {
		return 1, nil
	}
	moves, err := LegalMoves(game)
	if err != nil {
		return 0, err
	}
	if depth == 1 {
		return len(moves), nil
	}
	nodes := 0
	for _, move := range moves {
		child := game.Clone()
		if err := child.MakeMove(move); err != nil {
			return 0, err
		}
		n, err := Perft(child, depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}
