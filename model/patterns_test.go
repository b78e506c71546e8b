package model

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestGliderTranslates(t *testing.T) {
	b := NewEmptyBoard(8, 8)
	b.Stamp(Glider, 1, 1)
	want := NewEmptyBoard(8, 8)
	want.Stamp(Glider, 2, 2)

	for range 4 {
		b = b.Next()
	}
	if !b.Equal(want) {
		t.Fatal("glider did not move one cell diagonally after four generations")
	}
}

func TestSeed(t *testing.T) {
	tests := []struct {
		pattern string
		pop     int
	}{
		{PatternEmpty, 0},
		{PatternBlinker, 3},
		{PatternGlider, 10},
		{"GLIDER", 10},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			b, err := Seed(tt.pattern, 30, 20, testRand(1))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := b.Population(); got != tt.pop {
				t.Fatalf("population = %d, expected %d", got, tt.pop)
			}
		})
	}

	random, err := Seed(PatternRandom, 30, 20, testRand(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !random.Equal(NewBoard(30, 20, testRand(1))) {
		t.Fatal("random pattern does not match NewBoard for the same seed")
	}

	if _, err := Seed("acorn", 30, 20, testRand(1)); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("error = %v, expected ErrUnknownPattern", err)
	}
}

func TestTerminalRenderer(t *testing.T) {
	var sb strings.Builder
	r := &TerminalRenderer{Out: &sb}

	b := boardFromRows("O.", ".O")
	if err := r.Display(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := gridPosBlock + gridPosEmpty + "\n" + gridPosEmpty + gridPosBlock + "\n"
	if sb.String() != want {
		t.Fatalf("rendered %q, expected %q", sb.String(), want)
	}

	sb.Reset()
	if err := r.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sb.String() != ansiClearScreen {
		t.Fatalf("clear wrote %q", sb.String())
	}
}
