// Package country holds the country record returned by the countries query
// and the pure derivations the views run over it: filtering, flag glyphs and
// continent display labels.
package country

// MissingPlaceholder is shown for optional fields the source left empty.
const MissingPlaceholder = "Non renseignée"

// Continent is the continent embedded in each country record.
type Continent struct {
	Name string `json:"name"`
}

// Country is an immutable snapshot of one entry of the countries query.
type Country struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Capital   *string   `json:"capital"`
	Currency  *string   `json:"currency"`
	Continent Continent `json:"continent"`
}

// Flag returns the country's flag glyph.
func (c Country) Flag() string {
	return FlagEmoji(c.Code)
}

// ContinentLabel returns the display label of the country's continent.
func (c Country) ContinentLabel() string {
	return ContinentLabel(c.Continent.Name)
}

// CapitalOrPlaceholder returns the capital, or MissingPlaceholder when absent.
func (c Country) CapitalOrPlaceholder() string {
	return orPlaceholder(c.Capital)
}

// CurrencyOrPlaceholder returns the currency, or MissingPlaceholder when absent.
func (c Country) CurrencyOrPlaceholder() string {
	return orPlaceholder(c.Currency)
}

func orPlaceholder(s *string) string {
	if s == nil || *s == "" {
		return MissingPlaceholder
	}
	return *s
}
