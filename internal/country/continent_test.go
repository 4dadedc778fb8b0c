package country

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContinentLabel(t *testing.T) {
	assert.Equal(t, "Afrique", ContinentLabel("Africa"))
	assert.Equal(t, "Amérique du Nord", ContinentLabel("North America"))
	assert.Equal(t, "Europe", ContinentLabel("Europe"))
	assert.Equal(t, "Atlantis", ContinentLabel("Atlantis"), "unknown names pass through")
	assert.Equal(t, "", ContinentLabel(""))
}

func TestContinentOptions(t *testing.T) {
	opts := ContinentOptions()
	require.Len(t, opts, 8)
	assert.Equal(t, ContinentOption{Value: "", Label: AllContinentsLabel}, opts[0])

	seen := map[string]bool{}
	for _, o := range opts[1:] {
		assert.NotEmpty(t, o.Value)
		assert.False(t, seen[o.Value], "duplicate option %q", o.Value)
		seen[o.Value] = true
		assert.Equal(t, o.Label, ContinentLabel(o.Value))
	}
}

func TestContinentOptions_ReturnsCopy(t *testing.T) {
	opts := ContinentOptions()
	opts[1].Label = "changed"
	assert.Equal(t, "Afrique", ContinentLabel("Africa"))
}

func TestCountry_Placeholders(t *testing.T) {
	c := Country{Code: "AQ", Name: "Antarctica", Continent: Continent{Name: "Antarctica"}}
	assert.Equal(t, MissingPlaceholder, c.CapitalOrPlaceholder())
	assert.Equal(t, MissingPlaceholder, c.CurrencyOrPlaceholder())

	empty := ""
	c.Capital = &empty
	assert.Equal(t, MissingPlaceholder, c.CapitalOrPlaceholder())

	c = sampleCountries()[0]
	assert.Equal(t, "Paris", c.CapitalOrPlaceholder())
	assert.Equal(t, "EUR", c.CurrencyOrPlaceholder())
	assert.Equal(t, "🇫🇷", c.Flag())
	assert.Equal(t, "Europe", c.ContinentLabel())
}
