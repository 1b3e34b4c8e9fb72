package collabkit

// Bias disambiguates boundary positions when a comparison is otherwise equal:
// Before selects the slot ahead of existing equal-ranked entries, After the
// slot behind them. Bias values are totally ordered with Before < After.
type Bias int

const (
	Before Bias = iota
	After
)

// Compare returns -1 if b orders before other, 0 if they are equal,
// and +1 if b orders after other.
func (b Bias) Compare(other Bias) int {
	switch {
	case b == other:
		return 0
	case b == Before:
		return -1
	default:
		return 1
	}
}

func (b Bias) String() string {
	if b == Before {
		return "before"
	}
	return "after"
}
