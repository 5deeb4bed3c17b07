package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := 0; active < 2; active++ {
		a := App{active: active}
		pos := 0

		for i := 0; i < 2; i++ {
			w := tabWidthForTest(i, active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < 1 {
				pos++ // separator
			}
		}

		if got := a.tabAtX(pos + 5); got != -1 {
			t.Errorf("active=%d x past last tab -> %d, want -1", active, got)
		}
	}
}

func tabWidthForTest(tabIdx, activeIdx int) int {
	nameWidths := []int{
		len("Summer"),
		len("Winter"),
	}

	w := nameWidths[tabIdx] + 2 // horizontal padding in tab renderer
	if tabIdx != activeIdx {
		w += len("[tab]")
	}
	return w
}

func TestMouseClickSwitchesSeason(t *testing.T) {
	a := newTestApp(t, 0)

	// Winter is inactive, so it starts after Summer's padded name and the separator.
	x := len("Summer") + 2 + 1 + 2
	m, _ := a.Update(tea.MouseMsg{X: x, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	a = m.(App)
	if a.active != 1 {
		t.Fatalf("active = %d after clicking Winter, want 1", a.active)
	}

	// Clicks below the tab bar are ignored.
	m, _ = a.Update(tea.MouseMsg{X: 1, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.(App).active != 1 {
		t.Error("click outside the tab bar changed the season")
	}
}
