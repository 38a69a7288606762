package rules

import (
	"sort"
	"testing"

	"github.com/benbeisheim/chess-backend/internal/model"
)

func sq(name string) model.Square {
	return model.MustParseSquare(name)
}

// play applies coordinate-notation moves, failing the test if any is illegal.
func play(t *testing.T, game *model.Game, moves ...string) {
	t.Helper()
	for _, text := range moves {
		simple, err := model.ParseSimpleMove(text)
		if err != nil {
			t.Fatalf("parse %q: %v", text, err)
		}
		legal, err := LegalMoves(game)
		if err != nil {
			t.Fatalf("LegalMoves before %q: %v", text, err)
		}
		move, ok := FindMove(legal, simple.From, simple.To)
		if !ok {
			t.Fatalf("move %q not legal; legal moves: %v", text, moveStrings(legal))
		}
		if err := game.MakeMove(move); err != nil {
			t.Fatalf("MakeMove(%q): %v", text, err)
		}
	}
}

func moveStrings(moves []model.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

func mustLegal(t *testing.T, game *model.Game) []model.Move {
	t.Helper()
	legal, err := LegalMoves(game)
	if err != nil {
		t.Fatalf("LegalMoves: %v", err)
	}
	return legal
}

func containsMove(moves []model.Move, text string) bool {
	for _, m := range moves {
		if m.String() == text {
			return true
		}
	}
	return false
}

// position builds a game from a piece list like {"e1": "K", "e8": "k"}.
func position(turn model.Color, pieces map[string]string, white, black model.CastlingRights) *model.Game {
	letters := map[byte]model.PieceType{
		'p': model.Pawn, 'n': model.Knight, 'b': model.Bishop,
		'r': model.Rook, 'q': model.Queen, 'k': model.King,
	}
	board := model.NewEmptyBoard()
	for name, letter := range pieces {
		color := model.White
		c := letter[0]
		if c >= 'a' {
			color = model.Black
		} else {
			c += 'a' - 'A'
		}
		board.Set(model.MustParseSquare(name), model.NewPiece(color, letters[c]))
	}
	return model.NewGameFromBoard(board, turn, white, black, nil)
}
