package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"countrydeck/internal/country"
	"countrydeck/internal/graphql"
	"countrydeck/internal/ui"
)

func newListCmd(opts *options) *cobra.Command {
	var search, continent string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the countries matching a search and continent filter",
		Long: `Fetches the country list once and prints one line per match:

  <flag> <name> - <continent label>

--continent takes the source continent name (e.g. "Europe", "North America"),
not the displayed label. Run "countrydeck continents" for the accepted values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, a *app) error {
				ctx, cancel := context.WithTimeout(ctx, a.timeout)
				defer cancel()
				return printCountries(ctx, cmd.OutOrStdout(), a.client, search, continent)
			})
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive name substring")
	cmd.Flags().StringVarP(&continent, "continent", "c", "", "source continent name to keep")
	return cmd
}

// printCountries fetches once and writes the filtered rows to w.
func printCountries(ctx context.Context, w io.Writer, fetcher graphql.Fetcher, search, continent string) error {
	countries, err := fetcher.Countries(ctx)
	if err != nil {
		return err
	}
	filtered := country.Filter(countries, search, continent)
	if len(filtered) == 0 {
		_, err := fmt.Fprintln(w, ui.NoCountriesText)
		return err
	}
	for _, c := range filtered {
		if _, err := fmt.Fprintf(w, "%s %s - %s\n", c.Flag(), c.Name, c.ContinentLabel()); err != nil {
			return err
		}
	}
	return nil
}

func newContinentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "continents",
		Short: "Print the continent filter values and their labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printContinents(cmd.OutOrStdout())
		},
	}
}

func printContinents(w io.Writer) error {
	for _, o := range country.ContinentOptions() {
		if o.Value == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%-14s %s\n", o.Value, o.Label); err != nil {
			return err
		}
	}
	return nil
}
