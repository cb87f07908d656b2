package generate

import (
	"testing"

	_ "github.com/playform/playform/internal/games/bouncer"
	_ "github.com/playform/playform/internal/games/snake"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		prompt   string
		expected string
	}{
		{"a snake game please", "snake"},
		{"SNAKE!!!", "snake"},
		{"pong but angry", "pong"},
		{"breakout clone", "breakout"},
		{"smash some bricks", "breakout"},
		{"flappy thing", "flappy"},
		{"an endless runner", "runner"},
		{"space adventure", "shooter"},
		{"a shooter with lasers", "shooter"},
		{"something completely random", Fallback},
		{"", Fallback},
	}

	for _, tc := range tests {
		t.Run(tc.prompt, func(t *testing.T) {
			if got := Select(tc.prompt); got != tc.expected {
				t.Errorf("Select(%q) = %q, expected %q", tc.prompt, got, tc.expected)
			}
		})
	}
}

func TestSelectIsDeterministic(t *testing.T) {
	prompt := "a cozy farming sim with cats"
	first := Select(prompt)
	for i := 0; i < 10; i++ {
		if got := Select(prompt); got != first {
			t.Fatalf("Select changed its answer: %q then %q", first, got)
		}
	}
}

func TestFirstMatchWins(t *testing.T) {
	// "snake" is checked before "pong"
	if got := Select("snake vs pong"); got != "snake" {
		t.Errorf("Select(snake vs pong) = %q, expected snake", got)
	}
}

func TestDefinitionAlwaysValid(t *testing.T) {
	def := Definition("garbage prompt with no keywords")
	if def == nil {
		t.Fatal("Definition returned nil")
	}
	if def.Name() != Fallback {
		t.Errorf("fallback definition Name() = %q, expected %q", def.Name(), Fallback)
	}

	def = Definition("give me snake")
	if def.Name() != "snake" {
		t.Errorf("Definition Name() = %q, expected snake", def.Name())
	}
}
