package country

// AllContinentsLabel is the label of the option that disables the continent filter.
const AllContinentsLabel = "Tous les continents"

// ContinentOption is one entry of the continent filter. Value is matched
// against the continent names returned by the source; Label is shown.
type ContinentOption struct {
	Value string
	Label string
}

// continentLabels enumerates every continent name the countries endpoint
// returns, in display order.
var continentLabels = []ContinentOption{
	{Value: "Africa", Label: "Afrique"},
	{Value: "Antarctica", Label: "Antarctique"},
	{Value: "Asia", Label: "Asie"},
	{Value: "Europe", Label: "Europe"},
	{Value: "North America", Label: "Amérique du Nord"},
	{Value: "South America", Label: "Amérique du Sud"},
	{Value: "Oceania", Label: "Océanie"},
}

// ContinentLabel returns the French label for a source continent name.
// Unknown names are returned unchanged.
func ContinentLabel(name string) string {
	for _, o := range continentLabels {
		if o.Value == name {
			return o.Label
		}
	}
	return name
}

// ContinentOptions returns the filter options: "all continents" first, then
// one option per known continent.
func ContinentOptions() []ContinentOption {
	opts := make([]ContinentOption, 0, len(continentLabels)+1)
	opts = append(opts, ContinentOption{Value: "", Label: AllContinentsLabel})
	opts = append(opts, continentLabels...)
	return opts
}
