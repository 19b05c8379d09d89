package entity

import "time"

// SummaryReport is the exportable rollup produced by the summary command:
// the aggregated groups for one drill-down key plus the headline totals.
type SummaryReport struct {
	Organization string            `json:"organization"`
	GroupBy      []string          `json:"group_by"`
	Groups       []AggregatedGroup `json:"groups"`
	TotalCost    float64           `json:"total_cost"`
	RecordCount  int               `json:"record_count"`
	GeneratedAt  time.Time         `json:"generated_at"`
}
