package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestHeaderView(t *testing.T) {
	h := NewHeader("Главная", "Ассортимент")
	view := h.View()

	for _, want := range []string{AppTitle, "Главная", "Ассортимент"} {
		if !strings.Contains(view, want) {
			t.Errorf("header should contain %q", want)
		}
	}
}

func TestHeaderSetActive(t *testing.T) {
	h := NewHeader("Главная", "Ассортимент")

	h.SetActive(1)
	if h.Active() != 1 {
		t.Errorf("Active() = %d, want 1", h.Active())
	}

	h.SetActive(5)
	if h.Active() != 1 {
		t.Error("out of range index should be ignored")
	}
	h.SetActive(-1)
	if h.Active() != 1 {
		t.Error("negative index should be ignored")
	}
}

func TestHeaderWidth(t *testing.T) {
	h := NewHeader("Главная", "Ассортимент")
	h.SetWidth(60)
	if w := lipgloss.Width(h.View()); w != 60 {
		t.Errorf("header width = %d, want 60", w)
	}
}

func TestHeaderTabAt(t *testing.T) {
	h := NewHeader("Главная", "Ассортимент")
	view := h.View()

	titleEnd := lipgloss.Width(AppTitle)
	if _, ok := h.TabAt(0); ok {
		t.Error("title should not be a tab")
	}
	if _, ok := h.TabAt(titleEnd - 1); ok {
		t.Error("title should not be a tab")
	}

	seen := map[int]bool{}
	for x := 0; x < lipgloss.Width(view); x++ {
		if i, ok := h.TabAt(x); ok {
			seen[i] = true
		}
	}
	if !seen[0] || !seen[1] {
		t.Errorf("tabs found = %v, want both", seen)
	}

	// Tabs are laid out in order.
	first, last := -1, -1
	for x := 0; x < lipgloss.Width(view); x++ {
		i, ok := h.TabAt(x)
		if !ok {
			continue
		}
		if i == 0 {
			last = x
		}
		if i == 1 && first < 0 {
			first = x
		}
	}
	if first <= last {
		t.Errorf("second tab starts at %d, first ends at %d", first, last)
	}

	if _, ok := h.TabAt(1000); ok {
		t.Error("columns past the tabs should not hit")
	}
}
