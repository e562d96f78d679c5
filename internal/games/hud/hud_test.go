package hud

import (
	"strings"
	"testing"

	"github.com/vovakirdan/actor-arcade/internal/core"
)

func TestDrawMessage(t *testing.T) {
	s := core.NewScreen(40, 11)
	DrawMessage(s, "PAUSED", "Press P to resume")

	if !strings.Contains(s.Row(4), "PAUSED") {
		t.Errorf("row 4 = %q, expected title", s.Row(4))
	}
	if !strings.Contains(s.Row(6), "Press P to resume") {
		t.Errorf("row 6 = %q, expected subtitle", s.Row(6))
	}
}

func TestDrawStatus(t *testing.T) {
	s := core.NewScreen(20, 1)
	DrawStatus(s, 0, "P1 3", "CPU 1")

	row := s.Row(0)
	if !strings.HasPrefix(row, " P1 3") {
		t.Errorf("row = %q, expected left text", row)
	}
	if !strings.HasSuffix(row, "CPU 1 ") {
		t.Errorf("row = %q, expected right text", row)
	}
}

func TestFill(t *testing.T) {
	if got := Fill([]string{"", "█"}); got != '█' {
		t.Errorf("Fill() = %q, expected █", got)
	}
	if got := Fill(nil); got != '?' {
		t.Errorf("Fill(nil) = %q, expected ?", got)
	}
}
