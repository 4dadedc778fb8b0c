package ui

// LoadState is the state of the countries query for the current load.
type LoadState int

const (
	StateLoading LoadState = iota
	StateReady
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateReady:
		return "Ready"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}
