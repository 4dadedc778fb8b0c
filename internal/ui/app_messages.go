package ui

import "countrydeck/internal/country"

// CountriesLoadedMsg is sent when the countries query succeeds.
type CountriesLoadedMsg struct {
	Load      int // load sequence number the result belongs to
	Countries []country.Country
}

// CountriesFailedMsg is sent when the countries query fails.
type CountriesFailedMsg struct {
	Load int
	Err  error
}

// RefetchMsg starts a new load of the countries query (ctrl+r).
type RefetchMsg struct{}

// FocusNextMsg moves focus to the next control (tab).
type FocusNextMsg struct{}

// FocusPrevMsg moves focus to the previous control (shift+tab).
type FocusPrevMsg struct{}

// SelectCountryMsg is sent when the user picks a country from the list.
type SelectCountryMsg struct {
	Country country.Country
}
