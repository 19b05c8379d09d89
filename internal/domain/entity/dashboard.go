package entity

// Filter is the multi-select drill-down filter applied before aggregation.
// An empty slice at a level means no filtering at that level.
type Filter struct {
	Regions   []string `json:"regions,omitempty"`
	Countries []string `json:"countries,omitempty"`
	Divisions []string `json:"divisions,omitempty"`
	Services  []string `json:"services,omitempty"`
}

// Selection returns the filter values for the given dimension.
func (f Filter) Selection(d Dimension) []string {
	switch d {
	case DimensionRegion:
		return f.Regions
	case DimensionCountry:
		return f.Countries
	case DimensionDivision:
		return f.Divisions
	case DimensionService:
		return f.Services
	}
	return nil
}

// IsEmpty reports whether the filter selects the whole dataset.
func (f Filter) IsEmpty() bool {
	return len(f.Regions) == 0 && len(f.Countries) == 0 &&
		len(f.Divisions) == 0 && len(f.Services) == 0
}

// KPISummary carries the headline numbers shown above the charts.
type KPISummary struct {
	TotalCost     float64 `json:"total_cost"`
	AverageCost   float64 `json:"average_cost"`
	RegionCount   int     `json:"region_count"`
	DivisionCount int     `json:"division_count"`
	RecordCount   int     `json:"record_count"`
}

// FilterOptions lists the selectable values per level after cascading the
// coarser-level selections down.
type FilterOptions struct {
	Regions   []string `json:"regions"`
	Countries []string `json:"countries"`
	Divisions []string `json:"divisions"`
	Services  []string `json:"services"`
}

// DashboardData is the composed response for one dashboard refresh: KPIs plus
// every chart view model, built fresh from the filtered records.
type DashboardData struct {
	KPIs         KPISummary      `json:"kpis"`
	Sankey       SankeyChart     `json:"sankey"`
	RegionBar    SeriesChart     `json:"region_bar"`
	DivisionPie  SeriesChart     `json:"division_pie"`
	TopServices  SeriesChart     `json:"top_services"`
	TopCountries SeriesChart     `json:"top_countries"`
	ServiceDonut SeriesChart     `json:"service_donut"`
	Heatmap      HeatmapChart    `json:"heatmap"`
	Cumulative   CumulativeChart `json:"cumulative"`
	BoxPlot      BoxPlotChart    `json:"box_plot"`
	Sunburst     SunburstChart   `json:"sunburst"`
	Radar        RadarChart      `json:"radar"`
}
