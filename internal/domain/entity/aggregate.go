package entity

// AggregationKey is an ordered subset of hierarchy dimensions defining the
// current drill-down granularity. A valid key lists its fields in hierarchy
// order: [region], [region country], or [region division], but never
// [country region]. Extending a key drills the view further down.
type AggregationKey []Dimension

// AggregatedGroup holds the summed amount and record count for one distinct
// combination of key values. Groups are derived on every request and never
// persisted.
type AggregatedGroup struct {
	Values []string `json:"values"`
	Amount float64  `json:"amount"`
	Count  int      `json:"count"`
}

// Leaf returns the value for the finest dimension in the group's key.
func (g AggregatedGroup) Leaf() string {
	if len(g.Values) == 0 {
		return ""
	}
	return g.Values[len(g.Values)-1]
}
