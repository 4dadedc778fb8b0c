package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"countrydeck/internal/graphql"
)

// fetchCountriesCmd runs one countries query and reports the outcome for load.
// A zero timeout leaves the deadline to the fetcher.
func fetchCountriesCmd(fetcher graphql.Fetcher, timeout time.Duration, load int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		countries, err := fetcher.Countries(ctx)
		if err != nil {
			return CountriesFailedMsg{Load: load, Err: err}
		}
		return CountriesLoadedMsg{Load: load, Countries: countries}
	}
}
