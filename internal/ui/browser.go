package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"countrydeck/internal/country"
)

// SearchPlaceholder is shown in the empty search box.
const SearchPlaceholder = "Rechercher un pays..."

// BrowserView is the interactive country browser shown once the query has
// succeeded. It owns the search text, the continent filter and the selection.
type BrowserView struct {
	Countries []country.Country  // fetched list, never mutated
	Selected  *country.Country   // nil until the user picks a country
	Focus     *FocusManager
	Keys      *KeybindRegistry // for the help bar; may be nil

	search    textinput.Model
	continent *ContinentSelector
	list      *CountryListView

	width, height int
	listTop       int // screen row of the first list line, set by View

	lastSearch    string
	lastContinent string
}

// Ensure BrowserView implements View.
var _ View = (*BrowserView)(nil)

// NewBrowserView creates a browser with the search box focused.
func NewBrowserView(keys *KeybindRegistry) *BrowserView {
	ti := textinput.New()
	ti.Placeholder = SearchPlaceholder
	ti.Prompt = "⌕ "
	ti.Width = 30
	ti.Focus()

	b := &BrowserView{
		Keys:      keys,
		search:    ti,
		continent: NewContinentSelector(),
		list:      NewCountryListView(),
	}
	b.Focus = NewFocusManager(DefaultFocusOrder)
	b.Focus.OnChange = func(_, to FocusID) { b.applyFocus(to) }
	b.applyFocus(b.Focus.Current)
	return b
}

// SetCountries replaces the fetched list. The selection is kept.
func (b *BrowserView) SetCountries(countries []country.Country) {
	if countries == nil {
		countries = []country.Country{}
	}
	b.Countries = countries
	b.refresh(true)
}

// Search returns the current search text.
func (b *BrowserView) Search() string {
	return b.search.Value()
}

// SetSearch replaces the search text.
func (b *BrowserView) SetSearch(s string) {
	b.search.SetValue(s)
	b.refresh(false)
}

// ContinentFilter returns the source continent name being filtered on ("" = all).
func (b *BrowserView) ContinentFilter() string {
	return b.continent.Value()
}

// SetContinentFilter selects the continent option with value v.
func (b *BrowserView) SetContinentFilter(v string) bool {
	ok := b.continent.SetValue(v)
	b.refresh(false)
	return ok
}

// Filtered returns the countries currently listed.
func (b *BrowserView) Filtered() []country.Country {
	return country.Filter(b.Countries, b.search.Value(), b.continent.Value())
}

// List exposes the list component.
func (b *BrowserView) List() *CountryListView {
	return b.list
}

// Init implements View.
func (b *BrowserView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (b *BrowserView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
	case FocusNextMsg:
		b.Focus.Next()
	case FocusPrevMsg:
		b.Focus.Prev()
	case SelectCountryMsg:
		c := msg.Country
		b.Selected = &c
	case tea.MouseMsg:
		cmd = b.handleMouse(msg)
	case tea.KeyMsg:
		switch b.Focus.Current {
		case FocusSearch:
			b.search, cmd = b.search.Update(msg)
		case FocusContinent:
			_, cmd = b.continent.Update(msg)
		case FocusList:
			_, cmd = b.list.Update(msg)
		}
	default:
		b.search, cmd = b.search.Update(msg)
	}
	b.refresh(false)
	return b, cmd
}

// handleMouse selects the list row under a left click.
func (b *BrowserView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	c, ok := b.list.RowAt(msg.Y - b.listTop)
	if !ok {
		return nil
	}
	b.Focus.SetFocus(FocusList)
	return func() tea.Msg { return SelectCountryMsg{Country: c} }
}

// refresh re-derives the listed countries from the current filters.
// The cursor returns to the top when the filters changed.
func (b *BrowserView) refresh(force bool) {
	s, c := b.search.Value(), b.continent.Value()
	changed := force || s != b.lastSearch || c != b.lastContinent
	b.lastSearch, b.lastContinent = s, c
	b.list.SetCountries(country.Filter(b.Countries, s, c), changed)
}

func (b *BrowserView) applyFocus(to FocusID) {
	if to == FocusSearch {
		b.search.Focus()
	} else {
		b.search.Blur()
	}
	b.continent.Focused = to == FocusContinent
	b.list.Focused = to == FocusList
}

// View implements View.
func (b *BrowserView) View() string {
	width, height := b.width, b.height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	filtered := b.list.Countries
	title := Styles.Title.Render("Pays") +
		Styles.Muted.Render(fmt.Sprintf(" (%d/%d)", len(filtered), len(b.Countries)))

	searchStyle := Styles.Control
	if b.Focus.Current == FocusSearch {
		searchStyle = Styles.Focused
	}
	controls := lipgloss.JoinHorizontal(lipgloss.Top,
		searchStyle.Render(b.search.View()),
		" ",
		b.continent.View(),
	)

	sections := []string{title, controls}
	if b.Selected != nil {
		sections = append(sections, RenderDetailPanel(*b.Selected))
	}
	top := strings.Join(sections, "\n")
	helpBar := RenderKeybindHelp(b.Keys, b.Focus.Current, width)

	b.listTop = lipgloss.Height(top) + 1
	listHeight := height - b.listTop - lipgloss.Height(helpBar) - 1
	if listHeight < 3 {
		listHeight = 3
	}
	b.list.SetSize(width, listHeight)

	return top + "\n\n" + b.list.View() + "\n" + helpBar
}
