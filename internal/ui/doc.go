// Package ui is the Bubble Tea front end of countrydeck.
//
// The root AppModel owns the load state of the countries query and hands the
// fetched list to a BrowserView, which composes:
//   - a search box (case-insensitive name filter)
//   - a continent selector (exact match on the source continent name)
//   - the filtered country list
//   - a detail panel for the selected country
//
// Focus rotates across the three controls with a FocusManager; global keys
// go through a KeybindRegistry.
package ui
