// Package rules holds the stateless chess rules: per-piece move generation,
// attacked squares, check detection, legal move filtering and game results.
// Nothing in this package mutates the boards or games passed to it.
package rules

import "github.com/benbeisheim/chess-backend/internal/model"

type offset struct {
	dRow, dCol int
}

var (
	knightOffsets = []offset{{1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {2, 1}, {2, -1}, {-2, 1}, {-2, -1}}
	kingOffsets   = []offset{{1, 1}, {1, 0}, {1, -1}, {0, 1}, {0, -1}, {-1, 1}, {-1, 0}, {-1, -1}}
	bishopDirs    = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirs      = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

// PseudoLegalMoves returns the moves of piece standing on from, obeying its
// movement geometry and board occupancy but ignoring the safety of its king.
// enPassant is the live en passant target, or nil.
func PseudoLegalMoves(piece model.Piece, from model.Square, board *model.Board, enPassant *model.Square) []model.Move {
	switch piece.Type {
	case model.Pawn:
		return pawnMoves(piece.Color, from, board, enPassant)
	case model.Knight:
		return stepMoves(piece.Color, from, board, knightOffsets)
	case model.Bishop:
		return slidingMoves(piece.Color, from, board, bishopDirs)
	case model.Rook:
		return slidingMoves(piece.Color, from, board, rookDirs)
	case model.Queen:
		return append(slidingMoves(piece.Color, from, board, bishopDirs), slidingMoves(piece.Color, from, board, rookDirs)...)
	case model.King:
		return stepMoves(piece.Color, from, board, kingOffsets)
	default:
		return []model.Move{}
	}
}

func pawnMoves(color model.Color, from model.Square, board *model.Board, enPassant *model.Square) []model.Move {
	moves := []model.Move{}
	dir := model.PawnDirection(color)

	oneForward := from.Offset(dir, 0)
	if board.IsEmpty(oneForward) {
		moves = append(moves, pawnMove(color, from, oneForward))
		twoForward := from.Offset(2*dir, 0)
		if from.Row == model.PawnStartRow(color) && board.IsEmpty(twoForward) {
			moves = append(moves, model.NewMoveOfKind(from, twoForward, model.DoublePawnPush))
		}
	}

	for _, dCol := range []int{-1, 1} {
		target := from.Offset(dir, dCol)
		if !target.IsValid() {
			continue
		}
		if board.HasPiece(target, color.Opponent()) || (enPassant != nil && *enPassant == target) {
			moves = append(moves, pawnMove(color, from, target))
		}
	}
	return moves
}

// pawnMove is a single-step pawn move, a promotion when it reaches the far rank.
func pawnMove(color model.Color, from, to model.Square) model.Move {
	if to.Row == model.PromotionRow(color) {
		return model.NewMoveOfKind(from, to, model.PawnPromotion)
	}
	return model.NewMove(from, to)
}

func stepMoves(color model.Color, from model.Square, board *model.Board, offsets []offset) []model.Move {
	moves := []model.Move{}
	for _, o := range offsets {
		target := from.Offset(o.dRow, o.dCol)
		if board.IsEmpty(target) || board.HasPiece(target, color.Opponent()) {
			moves = append(moves, model.NewMove(from, target))
		}
	}
	return moves
}

func slidingMoves(color model.Color, from model.Square, board *model.Board, dirs []offset) []model.Move {
	moves := []model.Move{}
	for _, dir := range dirs {
		target := from.Offset(dir.dRow, dir.dCol)
		for board.IsEmpty(target) {
			moves = append(moves, model.NewMove(from, target))
			target = target.Offset(dir.dRow, dir.dCol)
		}
		if board.HasPiece(target, color.Opponent()) {
			moves = append(moves, model.NewMove(from, target))
		}
	}
	return moves
}
