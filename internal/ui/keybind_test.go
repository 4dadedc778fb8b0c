package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+c", tea.Quit, "quit")
	reg.BindForFocus("q", tea.Quit, "quit", []FocusID{FocusList})

	if reg.Lookup("ctrl+c", FocusSearch) == nil {
		t.Error("expected ctrl+c to be bound everywhere")
	}
	if reg.Lookup("q", FocusList) == nil {
		t.Error("expected q to be bound on the list")
	}
	if reg.Lookup("q", FocusSearch) != nil {
		t.Error("expected q to be free while typing a search")
	}
	if reg.Lookup("unknown", FocusList) != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_RebindClearsFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindForFocus("q", tea.Quit, "quit", []FocusID{FocusList})
	reg.Bind("q", tea.Quit, "")

	if reg.Lookup("q", FocusSearch) == nil {
		t.Error("expected rebinding without focuses to apply everywhere")
	}
	if _, ok := reg.Hints(FocusSearch)["q"]; ok {
		t.Error("expected no hint after rebinding without description")
	}
}

func TestKeybindRegistry_Handle(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("tab", func() tea.Msg { return FocusNextMsg{} }, "next")

	consumed, cmd := reg.Handle(tea.KeyMsg{Type: tea.KeyTab}, FocusSearch)
	if !consumed || cmd == nil {
		t.Fatal("expected tab to be consumed")
	}
	if _, ok := cmd().(FocusNextMsg); !ok {
		t.Errorf("expected FocusNextMsg, got %T", cmd())
	}

	consumed, _ = reg.Handle(keyMsg("x"), FocusSearch)
	if consumed {
		t.Error("expected unbound key to pass through")
	}
}

func TestKeybindRegistry_HintsFilteredByFocus(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+c", tea.Quit, "quit")
	reg.BindForFocus("q", tea.Quit, "quit", []FocusID{FocusList})

	if len(reg.Hints(FocusSearch)) != 1 {
		t.Errorf("expected 1 hint on search, got %v", reg.Hints(FocusSearch))
	}
	if len(reg.Hints(FocusList)) != 2 {
		t.Errorf("expected 2 hints on list, got %v", reg.Hints(FocusList))
	}
}

func TestKeyMap_ShortHelpIncludesLocalKeys(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+c", tea.Quit, "quit")

	km := NewKeyMap(reg, FocusList)
	bindings := km.ShortHelp()
	if len(bindings) != 3 {
		t.Fatalf("expected ctrl+c plus 2 list keys, got %d", len(bindings))
	}
	if bindings[0].Help().Key != "ctrl+c" {
		t.Errorf("expected registry hints first, got %q", bindings[0].Help().Key)
	}
	if len(km.FullHelp()) != 1 {
		t.Error("expected a single FullHelp column")
	}

	if got := NewKeyMap(nil, FocusSearch).ShortHelp(); len(got) != 0 {
		t.Errorf("expected no bindings for nil registry on search, got %d", len(got))
	}
}

// keyMsg builds a tea.KeyMsg whose String() is s.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// typeText feeds s to m one rune at a time.
func typeText(m interface {
	Update(tea.Msg) (tea.Model, tea.Cmd)
}, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}
