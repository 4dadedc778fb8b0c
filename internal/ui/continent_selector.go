package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"countrydeck/internal/country"
)

// ContinentSelector cycles through the continent filter options.
type ContinentSelector struct {
	Options []country.ContinentOption
	Index   int
	Focused bool
}

// Ensure ContinentSelector implements View.
var _ View = (*ContinentSelector)(nil)

// NewContinentSelector starts on the "all continents" option.
func NewContinentSelector() *ContinentSelector {
	return &ContinentSelector{Options: country.ContinentOptions()}
}

// Value returns the source continent name to filter on ("" = all).
func (s *ContinentSelector) Value() string {
	if s.Index < 0 || s.Index >= len(s.Options) {
		return ""
	}
	return s.Options[s.Index].Value
}

// Label returns the label of the current option.
func (s *ContinentSelector) Label() string {
	if s.Index < 0 || s.Index >= len(s.Options) {
		return country.AllContinentsLabel
	}
	return s.Options[s.Index].Label
}

// SetValue selects the option whose value is v. Returns false if none matches.
func (s *ContinentSelector) SetValue(v string) bool {
	for i, o := range s.Options {
		if o.Value == v {
			s.Index = i
			return true
		}
	}
	return false
}

// Init implements View.
func (s *ContinentSelector) Init() tea.Cmd {
	return nil
}

// Update implements View. Only key presses received while focused move the selection.
func (s *ContinentSelector) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !s.Focused || len(s.Options) == 0 {
		return s, nil
	}
	switch km.String() {
	case "right", "l":
		s.Index = (s.Index + 1) % len(s.Options)
	case "left", "h":
		s.Index = (s.Index - 1 + len(s.Options)) % len(s.Options)
	case "home", "g":
		s.Index = 0
	}
	return s, nil
}

// View implements View.
func (s *ContinentSelector) View() string {
	style := Styles.Control
	label := Styles.Normal.Render(s.Label())
	if s.Focused {
		style = Styles.Focused
		label = Styles.Selected.Render(s.Label())
	}
	return style.Render("◀ " + label + " ▶")
}
