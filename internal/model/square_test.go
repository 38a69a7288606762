package model

import (
	"errors"
	"testing"
)

func TestSquareString(t *testing.T) {
	tests := []struct {
		sq   Square
		want string
	}{
		{NewSquare(0, 0), "a1"},
		{NewSquare(1, 4), "e2"},
		{NewSquare(7, 7), "h8"},
		{NewSquare(3, 3), "d4"},
	}
	for _, tt := range tests {
		if got := tt.sq.String(); got != tt.want {
			t.Errorf("%#v.String() = %q; want %q", tt.sq, got, tt.want)
		}
	}
}

func TestSquareIsValid(t *testing.T) {
	tests := []struct {
		sq   Square
		want bool
	}{
		{NewSquare(0, 0), true},
		{NewSquare(7, 7), true},
		{NewSquare(-1, 0), false},
		{NewSquare(0, 8), false},
		{NewSquare(8, 3), false},
	}
	for _, tt := range tests {
		if got := tt.sq.IsValid(); got != tt.want {
			t.Errorf("%#v.IsValid() = %v; want %v", tt.sq, got, tt.want)
		}
	}
}

func TestParseSquare(t *testing.T) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := NewSquare(row, col)
			got, err := ParseSquare(sq.String())
			if err != nil {
				t.Fatalf("ParseSquare(%q): %v", sq, err)
			}
			if got != sq {
				t.Errorf("ParseSquare(%q) = %#v; want %#v", sq, got, sq)
			}
		}
	}

	for _, bad := range []string{"", "e", "e9", "i1", "a0", "e22", "E2"} {
		if _, err := ParseSquare(bad); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidNotation", bad, err)
		}
	}
}

func TestParseSimpleMove(t *testing.T) {
	got, err := ParseSimpleMove("e7e8q")
	if err != nil {
		t.Fatalf("ParseSimpleMove: %v", err)
	}
	want := SimpleMove{From: MustParseSquare("e7"), To: MustParseSquare("e8")}
	if got != want {
		t.Errorf("ParseSimpleMove(e7e8q) = %v; want %v", got, want)
	}
	if _, err := ParseSimpleMove("e7"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("ParseSimpleMove(e7) error = %v; want ErrInvalidNotation", err)
	}
}

func TestMoveString(t *testing.T) {
	e2, e4 := MustParseSquare("e2"), MustParseSquare("e4")
	if got := NewMoveOfKind(e2, e4, DoublePawnPush).String(); got != "e2e4" {
		t.Errorf("String() = %q; want e2e4", got)
	}
	promo := NewMoveOfKind(MustParseSquare("b7"), MustParseSquare("a8"), PawnPromotion)
	if got := promo.String(); got != "b7a8q" {
		t.Errorf("String() = %q; want b7a8q", got)
	}
	if NewMove(e2, e4) == NewMoveOfKind(e2, e4, DoublePawnPush) {
		t.Error("moves differing only in kind compare equal")
	}
}
