package entity

// ChartKind tags the view-model variant a chart request produces. Dispatch on
// it is always an explicit switch, never runtime attribute lookup.
type ChartKind string

const (
	ChartSankey     ChartKind = "sankey"
	ChartBar        ChartKind = "bar"
	ChartPie        ChartKind = "pie"
	ChartDonut      ChartKind = "donut"
	ChartHeatmap    ChartKind = "heatmap"
	ChartCumulative ChartKind = "cumulative"
	ChartBox        ChartKind = "box"
	ChartSunburst   ChartKind = "sunburst"
	ChartRadar      ChartKind = "radar"
)

// CategoryValue is one category/amount pair for bar, pie, and donut charts.
type CategoryValue struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// SeriesChart is the view model for bar, pie, and donut charts: one entry per
// distinct value of the chart's dimension.
type SeriesChart struct {
	Kind      ChartKind       `json:"kind"`
	Dimension Dimension       `json:"dimension"`
	Items     []CategoryValue `json:"items"`
}

// SankeyNode is one node of a flow diagram. ID is the full hierarchy path so
// a value appearing under two parents stays two distinct nodes.
type SankeyNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Level int    `json:"level"`
}

// SankeyLink is a parent-child flow weighted by the summed amount passing
// through that pair. Source and Target index into the node list.
type SankeyLink struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	Value  float64 `json:"value"`
}

// SankeyChart is the node/link view model for the cost flow diagram.
type SankeyChart struct {
	Kind  ChartKind    `json:"kind"`
	Nodes []SankeyNode `json:"nodes"`
	Links []SankeyLink `json:"links"`
}

// HeatmapChart is a rectangular matrix over two dimensions. Values is indexed
// [row][column] and every cell is present, zero when no record matches.
type HeatmapChart struct {
	Kind            ChartKind   `json:"kind"`
	RowDimension    Dimension   `json:"row_dimension"`
	ColumnDimension Dimension   `json:"column_dimension"`
	Rows            []string    `json:"rows"`
	Columns         []string    `json:"columns"`
	Values          [][]float64 `json:"values"`
}

// CumulativePoint is one step of the ranked running-total curve.
type CumulativePoint struct {
	Rank       int     `json:"rank"`
	Amount     float64 `json:"amount"`
	Cumulative float64 `json:"cumulative"`
	Percent    float64 `json:"percent"`
}

// CumulativeChart shows how fast total cost accumulates across records
// sorted by amount, largest first.
type CumulativeChart struct {
	Kind   ChartKind         `json:"kind"`
	Points []CumulativePoint `json:"points"`
}

// BoxSeries is the raw amount sample for one category of a box plot. The
// quartile statistics are computed by the renderer, so the view model ships
// the amounts themselves.
type BoxSeries struct {
	Label   string    `json:"label"`
	Amounts []float64 `json:"amounts"`
}

// BoxPlotChart shows the amount distribution per value of one dimension.
type BoxPlotChart struct {
	Kind      ChartKind   `json:"kind"`
	Dimension Dimension   `json:"dimension"`
	Series    []BoxSeries `json:"series"`
}

// SunburstNode is one ring segment of the hierarchy sunburst. Parent is the
// ID of the enclosing segment, empty for the innermost ring, and IDs are
// path-qualified the same way as sankey nodes.
type SunburstNode struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Parent string  `json:"parent"`
	Value  float64 `json:"value"`
}

// SunburstChart renders the whole hierarchy as nested rings, one ring per
// level, segment size proportional to summed amount.
type SunburstChart struct {
	Kind  ChartKind      `json:"kind"`
	Nodes []SunburstNode `json:"nodes"`
}

// RadarSeries is one polygon of a radar chart: a value per axis.
type RadarSeries struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// RadarChart compares the largest values of one dimension (the series)
// across the largest values of another (the axes).
type RadarChart struct {
	Kind            ChartKind     `json:"kind"`
	AxisDimension   Dimension     `json:"axis_dimension"`
	SeriesDimension Dimension     `json:"series_dimension"`
	Axes            []string      `json:"axes"`
	Series          []RadarSeries `json:"series"`
}
