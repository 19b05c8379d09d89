package entity

// UnknownValue is the category assigned to blank or missing dimension values
// so that aggregation never fails on incomplete rows.
const UnknownValue = "Unknown"

// Dimension identifies one level of the cost hierarchy.
type Dimension string

const (
	DimensionRegion   Dimension = "region"
	DimensionCountry  Dimension = "country"
	DimensionDivision Dimension = "division"
	DimensionService  Dimension = "service"
)

// Hierarchy lists the dimensions in drill-down order, coarsest first.
func Hierarchy() []Dimension {
	return []Dimension{DimensionRegion, DimensionCountry, DimensionDivision, DimensionService}
}

// DisplayName returns the human-readable label for a dimension.
func (d Dimension) DisplayName() string {
	switch d {
	case DimensionRegion:
		return "Region"
	case DimensionCountry:
		return "Country"
	case DimensionDivision:
		return "Division"
	case DimensionService:
		return "Service"
	}
	return string(d)
}

// CostRecord is one row of the source cost table. Records are immutable once
// loaded; every computation reads them and produces derived structures.
type CostRecord struct {
	Region   string  `json:"region"`
	Country  string  `json:"country"`
	Division string  `json:"division"`
	Service  string  `json:"service"`
	Period   string  `json:"period,omitempty"`
	Amount   float64 `json:"amount"`
}

// Value returns the record's value for the given dimension. Unmapped
// dimensions report as Unknown rather than panicking.
func (r CostRecord) Value(d Dimension) string {
	switch d {
	case DimensionRegion:
		return r.Region
	case DimensionCountry:
		return r.Country
	case DimensionDivision:
		return r.Division
	case DimensionService:
		return r.Service
	}
	return UnknownValue
}

// Dataset is the immutable data handle threaded through every computation.
// It is built once at startup and never mutated afterwards.
type Dataset struct {
	Organization string       `json:"organization"`
	Records      []CostRecord `json:"records"`
	SkippedRows  int          `json:"skipped_rows,omitempty"`
}

// TotalAmount sums the amounts of all records in the dataset.
func (ds *Dataset) TotalAmount() float64 {
	total := 0.0
	for _, r := range ds.Records {
		total += r.Amount
	}
	return total
}
