package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"countrydeck/internal/country"
	"countrydeck/internal/ui/textutil"
)

// NoCountriesText replaces the list when the filters match nothing.
const NoCountriesText = "Aucun pays trouvé"

// countryItem implements list.Item for a country row.
type countryItem struct {
	country.Country
	width int
}

func (i countryItem) FilterValue() string { return i.Name }
func (i countryItem) Title() string {
	line := fmt.Sprintf("%s %s - %s", i.Flag(), i.Name, i.ContinentLabel())
	if i.width > 0 {
		return textutil.Truncate(line, i.width)
	}
	return line
}
func (i countryItem) Description() string { return "" }

// CountryListView shows the filtered countries and emits SelectCountryMsg
// for the row the user picks.
type CountryListView struct {
	list      list.Model
	Countries []country.Country
	Focused   bool
}

// Ensure CountryListView implements View.
var _ View = (*CountryListView)(nil)

// NewCountryListView creates an empty list.
func NewCountryListView() *CountryListView {
	l := list.New(nil, NewCompactListDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return &CountryListView{list: l}
}

// SetCountries replaces the rows. resetCursor moves the cursor back to the top.
func (v *CountryListView) SetCountries(countries []country.Country, resetCursor bool) {
	v.Countries = countries
	width := v.list.Width() - 3 // cursor padding
	items := make([]list.Item, len(countries))
	for i, c := range countries {
		items[i] = countryItem{Country: c, width: width}
	}
	v.list.SetItems(items)
	if resetCursor || v.list.Index() >= len(items) {
		v.list.ResetSelected()
	}
}

// SetSize sets the list dimensions.
func (v *CountryListView) SetSize(width, height int) {
	v.list.SetSize(width, height)
}

// Cursor returns the index of the highlighted row.
func (v *CountryListView) Cursor() int {
	return v.list.Index()
}

// Highlighted returns the country under the cursor.
func (v *CountryListView) Highlighted() (country.Country, bool) {
	item, ok := v.list.SelectedItem().(countryItem)
	if !ok {
		return country.Country{}, false
	}
	return item.Country, true
}

// RowAt returns the country rendered on the given row of the list,
// counting from the list's first line.
func (v *CountryListView) RowAt(row int) (country.Country, bool) {
	per := v.list.Paginator.PerPage
	if row < 0 || per <= 0 || row >= per {
		return country.Country{}, false
	}
	idx := v.list.Paginator.Page*per + row
	items := v.list.VisibleItems()
	if idx >= len(items) {
		return country.Country{}, false
	}
	item, ok := items[idx].(countryItem)
	if !ok {
		return country.Country{}, false
	}
	return item.Country, true
}

// Init implements View.
func (v *CountryListView) Init() tea.Cmd {
	return nil
}

// Update implements View. Keys are ignored unless the list has focus.
func (v *CountryListView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !v.Focused {
		return v, nil
	}
	if km.String() == "enter" {
		if c, ok := v.Highlighted(); ok {
			return v, func() tea.Msg { return SelectCountryMsg{Country: c} }
		}
		return v, nil
	}
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View implements View.
func (v *CountryListView) View() string {
	if len(v.Countries) == 0 {
		return Styles.Empty.Render(NoCountriesText)
	}
	if v.list.Width() == 0 || v.list.Height() == 0 {
		v.SetSize(80, 20)
	}
	return v.list.View()
}
