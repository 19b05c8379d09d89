package usecase

import (
	"sort"
	"strings"

	"github.com/costdash/cost-dashboard-go/internal/domain/entity"
)

// pathSeparator joins hierarchy values into sankey node IDs. Unit separator
// keeps IDs unambiguous even when values contain slashes or spaces.
const pathSeparator = "\x1f"

// BuildSankey builds the flow diagram across every hierarchy level, with the
// organization as the single root feeding the regions. Node IDs are the full
// path from the root, so a value appearing under two different parents stays
// two distinct nodes and the diagram remains a tree.
func BuildSankey(records []entity.CostRecord, organization string) entity.SankeyChart {
	chart := entity.SankeyChart{Kind: entity.ChartSankey, Nodes: []entity.SankeyNode{}, Links: []entity.SankeyLink{}}
	if len(records) == 0 {
		return chart
	}
	if organization == "" {
		organization = "Total"
	}

	nodeIndex := make(map[string]int)
	addNode := func(path []string, label string) int {
		id := strings.Join(path, pathSeparator)
		if idx, ok := nodeIndex[id]; ok {
			return idx
		}
		idx := len(chart.Nodes)
		nodeIndex[id] = idx
		chart.Nodes = append(chart.Nodes, entity.SankeyNode{
			ID:    id,
			Label: label,
			Level: len(path) - 1,
		})
		return idx
	}

	addNode([]string{organization}, organization)

	hierarchy := entity.Hierarchy()
	for depth := range hierarchy {
		// One stage of links: level depth-1 -> level depth, weighted by the
		// amount flowing through each parent/child pair.
		key := entity.AggregationKey(hierarchy[:depth+1])
		groups, err := Aggregate(records, key)
		if err != nil {
			return chart
		}
		sort.Slice(groups, func(i, j int) bool {
			return strings.Join(groups[i].Values, pathSeparator) < strings.Join(groups[j].Values, pathSeparator)
		})

		for _, g := range groups {
			childPath := append([]string{organization}, g.Values...)
			parentPath := childPath[:len(childPath)-1]

			parentIdx := addNode(parentPath, parentPath[len(parentPath)-1])
			childIdx := addNode(childPath, g.Leaf())

			chart.Links = append(chart.Links, entity.SankeyLink{
				Source: parentIdx,
				Target: childIdx,
				Value:  g.Amount,
			})
		}
	}

	return chart
}

// BuildSeries builds a bar, pie, or donut view model from aggregated groups:
// one category per distinct top-level key value. Bars are sorted ascending by
// amount for horizontal display, pies and donuts descending.
func BuildSeries(groups []entity.AggregatedGroup, dim entity.Dimension, kind entity.ChartKind) entity.SeriesChart {
	items := mergeByTopValue(groups)
	switch kind {
	case entity.ChartBar:
		sort.Slice(items, func(i, j int) bool { return items[i].Value < items[j].Value })
	default:
		sort.Slice(items, func(i, j int) bool { return items[i].Value > items[j].Value })
	}
	return entity.SeriesChart{Kind: kind, Dimension: dim, Items: items}
}

// BuildTopSeries keeps only the n largest categories, ascending so the
// biggest bar renders on top of a horizontal chart.
func BuildTopSeries(groups []entity.AggregatedGroup, dim entity.Dimension, n int) entity.SeriesChart {
	items := mergeByTopValue(groups)
	sort.Slice(items, func(i, j int) bool { return items[i].Value > items[j].Value })
	if n > 0 && len(items) > n {
		items = items[:n]
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Value < items[j].Value })
	return entity.SeriesChart{Kind: entity.ChartBar, Dimension: dim, Items: items}
}

// BuildDonut keeps the n largest categories and folds the rest into a single
// "Other" bucket so the tail still sums into the chart.
func BuildDonut(groups []entity.AggregatedGroup, dim entity.Dimension, n int) entity.SeriesChart {
	items := mergeByTopValue(groups)
	sort.Slice(items, func(i, j int) bool { return items[i].Value > items[j].Value })

	if n > 0 && len(items) > n {
		other := 0.0
		for _, it := range items[n:] {
			other += it.Value
		}
		items = append(items[:n:n], entity.CategoryValue{Category: "Other", Value: other})
	}
	return entity.SeriesChart{Kind: entity.ChartDonut, Dimension: dim, Items: items}
}

// BuildHeatmap builds a rectangular matrix over two dimensions. Every (row,
// column) pair from the records' value sets appears exactly once; pairs with
// no matching record stay at zero rather than being omitted.
func BuildHeatmap(records []entity.CostRecord, rowDim, colDim entity.Dimension) (entity.HeatmapChart, error) {
	groups, err := Aggregate(records, entity.AggregationKey{rowDim, colDim})
	if err != nil {
		return entity.HeatmapChart{}, err
	}

	rows := DistinctValues(records, rowDim)
	cols := DistinctValues(records, colDim)

	rowIndex := make(map[string]int, len(rows))
	for i, r := range rows {
		rowIndex[r] = i
	}
	colIndex := make(map[string]int, len(cols))
	for i, c := range cols {
		colIndex[c] = i
	}

	values := make([][]float64, len(rows))
	for i := range values {
		values[i] = make([]float64, len(cols))
	}
	for _, g := range groups {
		values[rowIndex[g.Values[0]]][colIndex[g.Values[1]]] += g.Amount
	}

	return entity.HeatmapChart{
		Kind:            entity.ChartHeatmap,
		RowDimension:    rowDim,
		ColumnDimension: colDim,
		Rows:            rows,
		Columns:         cols,
		Values:          values,
	}, nil
}

// BuildCumulative sorts the records by amount descending and walks the
// running total, reporting each step as a share of the grand total. The last
// point always sits at 100% for a non-empty input.
func BuildCumulative(records []entity.CostRecord) entity.CumulativeChart {
	chart := entity.CumulativeChart{Kind: entity.ChartCumulative, Points: []entity.CumulativePoint{}}
	if len(records) == 0 {
		return chart
	}

	amounts := make([]float64, len(records))
	total := 0.0
	for i, r := range records {
		amounts[i] = r.Amount
		total += r.Amount
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(amounts)))

	running := 0.0
	for i, a := range amounts {
		running += a
		percent := 0.0
		if total != 0 {
			percent = running / total * 100
		}
		chart.Points = append(chart.Points, entity.CumulativePoint{
			Rank:       i + 1,
			Amount:     a,
			Cumulative: running,
			Percent:    percent,
		})
	}
	return chart
}

// BuildBoxPlot collects the raw amounts per value of one dimension, sorted by
// value name. Quartiles and whiskers are the renderer's job, so the series
// carry the samples themselves.
func BuildBoxPlot(records []entity.CostRecord, dim entity.Dimension) entity.BoxPlotChart {
	chart := entity.BoxPlotChart{Kind: entity.ChartBox, Dimension: dim, Series: []entity.BoxSeries{}}

	index := make(map[string]int)
	for _, r := range records {
		v := normalizeValue(r.Value(dim))
		pos, ok := index[v]
		if !ok {
			pos = len(chart.Series)
			index[v] = pos
			chart.Series = append(chart.Series, entity.BoxSeries{Label: v})
		}
		chart.Series[pos].Amounts = append(chart.Series[pos].Amounts, r.Amount)
	}

	sort.Slice(chart.Series, func(i, j int) bool {
		return chart.Series[i].Label < chart.Series[j].Label
	})
	return chart
}

// BuildSunburst renders the hierarchy as nested rings: one ring per level,
// segment size = summed amount. Segment IDs are path-qualified like sankey
// nodes, so a value under two parents stays two segments; the innermost ring
// has no parent.
func BuildSunburst(records []entity.CostRecord) entity.SunburstChart {
	chart := entity.SunburstChart{Kind: entity.ChartSunburst, Nodes: []entity.SunburstNode{}}
	if len(records) == 0 {
		return chart
	}

	hierarchy := entity.Hierarchy()
	for depth := range hierarchy {
		key := entity.AggregationKey(hierarchy[:depth+1])
		groups, err := Aggregate(records, key)
		if err != nil {
			return chart
		}
		sort.Slice(groups, func(i, j int) bool {
			return strings.Join(groups[i].Values, pathSeparator) < strings.Join(groups[j].Values, pathSeparator)
		})

		for _, g := range groups {
			parent := ""
			if depth > 0 {
				parent = strings.Join(g.Values[:depth], pathSeparator)
			}
			chart.Nodes = append(chart.Nodes, entity.SunburstNode{
				ID:     strings.Join(g.Values, pathSeparator),
				Label:  g.Leaf(),
				Parent: parent,
				Value:  g.Amount,
			})
		}
	}
	return chart
}

// BuildRadar compares the top-n values of the series dimension across the
// top-n values of the axis dimension. Missing axis/series pairs stay at zero
// so every polygon spans all axes.
func BuildRadar(records []entity.CostRecord, axisDim, seriesDim entity.Dimension, n int) (entity.RadarChart, error) {
	chart := entity.RadarChart{
		Kind:            entity.ChartRadar,
		AxisDimension:   axisDim,
		SeriesDimension: seriesDim,
		Axes:            []string{},
		Series:          []entity.RadarSeries{},
	}

	axisGroups, err := Aggregate(records, entity.AggregationKey{axisDim})
	if err != nil {
		return entity.RadarChart{}, err
	}
	seriesGroups, err := Aggregate(records, entity.AggregationKey{seriesDim})
	if err != nil {
		return entity.RadarChart{}, err
	}

	chart.Axes = topValues(axisGroups, n)
	axisIndex := make(map[string]int, len(chart.Axes))
	for i, a := range chart.Axes {
		axisIndex[a] = i
	}

	for _, label := range topValues(seriesGroups, n) {
		values := make([]float64, len(chart.Axes))
		for _, r := range records {
			if normalizeValue(r.Value(seriesDim)) != label {
				continue
			}
			if i, ok := axisIndex[normalizeValue(r.Value(axisDim))]; ok {
				values[i] += r.Amount
			}
		}
		chart.Series = append(chart.Series, entity.RadarSeries{Label: label, Values: values})
	}

	return chart, nil
}

// topValues returns the n largest categories by amount, largest first.
func topValues(groups []entity.AggregatedGroup, n int) []string {
	items := mergeByTopValue(groups)
	sort.Slice(items, func(i, j int) bool { return items[i].Value > items[j].Value })
	if n > 0 && len(items) > n {
		items = items[:n]
	}
	values := make([]string, len(items))
	for i, it := range items {
		values[i] = it.Category
	}
	return values
}

func mergeByTopValue(groups []entity.AggregatedGroup) []entity.CategoryValue {
	index := make(map[string]int)
	items := []entity.CategoryValue{}
	for _, g := range groups {
		if len(g.Values) == 0 {
			continue
		}
		category := g.Values[0]
		pos, ok := index[category]
		if !ok {
			pos = len(items)
			index[category] = pos
			items = append(items, entity.CategoryValue{Category: category})
		}
		items[pos].Value += g.Amount
	}
	return items
}
