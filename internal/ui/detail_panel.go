package ui

import (
	"strings"

	"countrydeck/internal/country"
	"countrydeck/internal/ui/textutil"
)

// detailLabelWidth aligns the field values of the detail panel.
const detailLabelWidth = 11

// RenderDetailPanel renders the card for the selected country: flag and
// name, then code, continent, capital and currency.
func RenderDetailPanel(c country.Country) string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(c.Flag() + " " + c.Name))
	b.WriteString("\n")
	writeField(&b, "Code", c.Code)
	writeField(&b, "Continent", c.ContinentLabel())
	writeField(&b, "Capitale", c.CapitalOrPlaceholder())
	writeField(&b, "Devise", c.CurrencyOrPlaceholder())
	return Styles.Detail.Render(b.String())
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString("\n")
	b.WriteString(Styles.Field.Render(textutil.PadRightVisual(label, detailLabelWidth-2) + ": "))
	b.WriteString(value)
}
