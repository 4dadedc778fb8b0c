package country

import "strings"

// regionalIndicatorOffset maps 'A' to U+1F1E6 (REGIONAL INDICATOR SYMBOL LETTER A).
const regionalIndicatorOffset = 127397

// FlagEmoji turns a two-letter country code into its flag glyph by shifting
// each uppercased rune into the regional indicator block. Input is not
// validated: codes that are not two ASCII letters produce meaningless runes.
func FlagEmoji(code string) string {
	upper := strings.ToUpper(code)
	var b strings.Builder
	b.Grow(len(upper) * 4)
	for _, r := range upper {
		b.WriteRune(r + regionalIndicatorOffset)
	}
	return b.String()
}
