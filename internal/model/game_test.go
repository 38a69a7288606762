package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sq(name string) Square {
	return MustParseSquare(name)
}

func mustMake(t *testing.T, g *Game, move Move) {
	t.Helper()
	if err := g.MakeMove(move); err != nil {
		t.Fatalf("MakeMove(%v): %v", move, err)
	}
}

func TestNewGame(t *testing.T) {
	g := NewGame()
	if g.Turn() != White {
		t.Errorf("Turn() = %v; want white", g.Turn())
	}
	if g.EnPassant() != nil {
		t.Errorf("EnPassant() = %v; want nil", g.EnPassant())
	}
	full := CastlingRights{Short: true, Long: true}
	for _, color := range []Color{White, Black} {
		if got := g.Rights(color); got != full {
			t.Errorf("Rights(%v) = %+v; want %+v", color, got, full)
		}
	}
}

func TestMakeMoveDoublePushSetsEnPassant(t *testing.T) {
	g := NewGame()
	mustMake(t, g, NewMoveOfKind(sq("e2"), sq("e4"), DoublePawnPush))

	if g.Turn() != Black {
		t.Errorf("Turn() = %v; want black", g.Turn())
	}
	ep := g.EnPassant()
	if ep == nil || *ep != sq("e3") {
		t.Fatalf("EnPassant() = %v; want e3", ep)
	}

	mustMake(t, g, NewMove(sq("g8"), sq("f6")))
	if g.EnPassant() != nil {
		t.Errorf("EnPassant() = %v after a quiet reply; want nil", g.EnPassant())
	}
}

func TestMakeMoveEnPassantCapture(t *testing.T) {
	b := NewEmptyBoard()
	b.Set(sq("e1"), NewPiece(White, King))
	b.Set(sq("e8"), NewPiece(Black, King))
	b.Set(sq("e5"), NewPiece(White, Pawn))
	b.Set(sq("d7"), NewPiece(Black, Pawn))
	g := NewGameFromBoard(b, Black, CastlingRights{}, CastlingRights{}, nil)

	mustMake(t, g, NewMoveOfKind(sq("d7"), sq("d5"), DoublePawnPush))
	mustMake(t, g, NewMove(sq("e5"), sq("d6")))

	if got := g.Board().At(sq("d5")); !got.IsEmpty() {
		t.Errorf("d5 = %v after en passant; want empty", got)
	}
	if got := g.Board().At(sq("d6")); got != NewPiece(White, Pawn) {
		t.Errorf("d6 = %v; want white pawn", got)
	}
	if got := g.Board().At(sq("e5")); !got.IsEmpty() {
		t.Errorf("e5 = %v; want empty", got)
	}
}

func TestMakeMovePromotion(t *testing.T) {
	b := NewEmptyBoard()
	b.Set(sq("e1"), NewPiece(White, King))
	b.Set(sq("h8"), NewPiece(Black, King))
	b.Set(sq("a7"), NewPiece(White, Pawn))
	g := NewGameFromBoard(b, White, CastlingRights{}, CastlingRights{}, nil)

	mustMake(t, g, NewMoveOfKind(sq("a7"), sq("a8"), PawnPromotion))
	if got := g.Board().At(sq("a8")); got != NewPiece(White, Queen) {
		t.Errorf("a8 = %v; want white queen", got)
	}
}

func castlingBoard() *Board {
	b := NewEmptyBoard()
	b.Set(sq("e1"), NewPiece(White, King))
	b.Set(sq("a1"), NewPiece(White, Rook))
	b.Set(sq("h1"), NewPiece(White, Rook))
	b.Set(sq("e8"), NewPiece(Black, King))
	b.Set(sq("a8"), NewPiece(Black, Rook))
	b.Set(sq("h8"), NewPiece(Black, Rook))
	return b
}

func TestMakeMoveCastling(t *testing.T) {
	full := CastlingRights{Short: true, Long: true}
	g := NewGameFromBoard(castlingBoard(), White, full, full, nil)

	mustMake(t, g, NewMoveOfKind(sq("e1"), sq("g1"), ShortCastle))
	mustMake(t, g, NewMoveOfKind(sq("e8"), sq("c8"), LongCastle))

	want := "..kr...r\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"R....RK.\n"
	if diff := cmp.Diff(want, g.Board().String()); diff != "" {
		t.Errorf("board after castling mismatch (-want +got):\n%s", diff)
	}
	for _, color := range []Color{White, Black} {
		if got := g.Rights(color); got != (CastlingRights{}) {
			t.Errorf("Rights(%v) = %+v after castling; want none", color, got)
		}
	}
}

func TestMakeMoveRevokesCastlingRights(t *testing.T) {
	full := CastlingRights{Short: true, Long: true}
	tests := []struct {
		name         string
		turn         Color
		move         Move
		white, black CastlingRights
	}{
		{"king move", White, NewMove(sq("e1"), sq("e2")), CastlingRights{}, full},
		{"queen rook move", White, NewMove(sq("a1"), sq("a5")), CastlingRights{Short: true}, full},
		{"king rook move", Black, NewMove(sq("h8"), sq("h3")), full, CastlingRights{Long: true}},
		{"rook captured on its corner", White, NewMove(sq("a1"), sq("a8")), CastlingRights{Short: true}, CastlingRights{Short: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGameFromBoard(castlingBoard(), tt.turn, full, full, nil)
			mustMake(t, g, tt.move)
			if got := g.Rights(White); got != tt.white {
				t.Errorf("Rights(white) = %+v; want %+v", got, tt.white)
			}
			if got := g.Rights(Black); got != tt.black {
				t.Errorf("Rights(black) = %+v; want %+v", got, tt.black)
			}
		})
	}
}

func TestCastlingRightsNeverRestored(t *testing.T) {
	full := CastlingRights{Short: true, Long: true}
	g := NewGameFromBoard(castlingBoard(), White, full, full, nil)
	mustMake(t, g, NewMove(sq("h1"), sq("h2")))
	mustMake(t, g, NewMove(sq("e8"), sq("d8")))
	mustMake(t, g, NewMove(sq("h2"), sq("h1")))
	mustMake(t, g, NewMove(sq("d8"), sq("e8")))

	if got := g.Rights(White); got != (CastlingRights{Long: true}) {
		t.Errorf("Rights(white) = %+v; want long only", got)
	}
	if got := g.Rights(Black); got != (CastlingRights{}) {
		t.Errorf("Rights(black) = %+v; want none", got)
	}
}

func TestSimulateMoveLeavesGameUntouched(t *testing.T) {
	g := NewGame()
	before := g.Board().String()

	simulated, err := g.SimulateMove(NewMoveOfKind(sq("e2"), sq("e4"), DoublePawnPush))
	if err != nil {
		t.Fatalf("SimulateMove: %v", err)
	}
	if got := simulated.At(sq("e4")); got != NewPiece(White, Pawn) {
		t.Errorf("simulated e4 = %v; want white pawn", got)
	}
	if got := simulated.At(sq("e2")); !got.IsEmpty() {
		t.Errorf("simulated e2 = %v; want empty", got)
	}
	if diff := cmp.Diff(before, g.Board().String()); diff != "" {
		t.Errorf("live board changed by SimulateMove (-want +got):\n%s", diff)
	}
	if g.Turn() != White || g.EnPassant() != nil {
		t.Errorf("game state changed by SimulateMove: turn=%v ep=%v", g.Turn(), g.EnPassant())
	}
}

func TestMakeMoveInvalidSquare(t *testing.T) {
	g := NewGame()
	err := g.MakeMove(NewMove(sq("e2"), NewSquare(8, 4)))
	if !errors.Is(err, ErrInvalidSquare) {
		t.Errorf("MakeMove off-board error = %v; want ErrInvalidSquare", err)
	}
	if _, err := g.SimulateMove(NewMove(NewSquare(-1, 0), sq("a1"))); !errors.Is(err, ErrInvalidSquare) {
		t.Errorf("SimulateMove off-board error = %v; want ErrInvalidSquare", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGame()
	c := g.Clone()
	mustMake(t, c, NewMoveOfKind(sq("d2"), sq("d4"), DoublePawnPush))
	if g.Turn() != White || g.EnPassant() != nil {
		t.Errorf("original changed after moving clone: turn=%v ep=%v", g.Turn(), g.EnPassant())
	}
	if got := g.Board().At(sq("d2")); got != NewPiece(White, Pawn) {
		t.Errorf("original d2 = %v; want white pawn", got)
	}
}
