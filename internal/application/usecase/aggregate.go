package usecase

import (
	"sort"
	"strings"

	"github.com/costdash/cost-dashboard-go/internal/domain/entity"
	"github.com/costdash/cost-dashboard-go/internal/shared/types"
)

// ValidateKey checks that the aggregation key is an ordered subset of the
// dimension hierarchy: fields must appear in hierarchy order without repeats,
// so extending a key always drills further down. Unknown fields or fields out
// of order are a configuration error, not a data error.
func ValidateKey(key entity.AggregationKey) error {
	hierarchy := entity.Hierarchy()
	pos := 0
	for _, d := range key {
		found := false
		for pos < len(hierarchy) {
			if hierarchy[pos] == d {
				found = true
				pos++
				break
			}
			pos++
		}
		if !found {
			return types.ErrInvalidKind
		}
	}
	return nil
}

// ParseKey converts dimension names into an AggregationKey, validating the
// field order as it goes.
func ParseKey(fields []string) (entity.AggregationKey, error) {
	key := make(entity.AggregationKey, 0, len(fields))
	for _, f := range fields {
		key = append(key, entity.Dimension(strings.ToLower(strings.TrimSpace(f))))
	}
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	return key, nil
}

// Aggregate groups the records by the given key in a single pass, summing
// amounts and counting rows per distinct key-tuple. Empty input or an empty
// key yields an empty group set, never an error. The total across all groups
// equals the total of the input amounts.
func Aggregate(records []entity.CostRecord, key entity.AggregationKey) ([]entity.AggregatedGroup, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	if len(key) == 0 || len(records) == 0 {
		return []entity.AggregatedGroup{}, nil
	}

	index := make(map[string]int)
	groups := []entity.AggregatedGroup{}

	for _, r := range records {
		values := make([]string, len(key))
		for i, d := range key {
			values[i] = normalizeValue(r.Value(d))
		}
		id := strings.Join(values, "\x1f")

		pos, ok := index[id]
		if !ok {
			pos = len(groups)
			index[id] = pos
			groups = append(groups, entity.AggregatedGroup{Values: values})
		}
		groups[pos].Amount += r.Amount
		groups[pos].Count++
	}

	return groups, nil
}

// ApplyFilter returns the records matching every non-empty level selection.
func ApplyFilter(records []entity.CostRecord, filter entity.Filter) []entity.CostRecord {
	if filter.IsEmpty() {
		return records
	}

	filtered := make([]entity.CostRecord, 0, len(records))
	for _, r := range records {
		if matchesFilter(r, filter) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func matchesFilter(r entity.CostRecord, filter entity.Filter) bool {
	for _, d := range entity.Hierarchy() {
		selection := filter.Selection(d)
		if len(selection) == 0 {
			continue
		}
		value := normalizeValue(r.Value(d))
		found := false
		for _, s := range selection {
			if s == value {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// DistinctValues returns the sorted distinct values of one dimension.
func DistinctValues(records []entity.CostRecord, d entity.Dimension) []string {
	seen := make(map[string]struct{})
	values := []string{}
	for _, r := range records {
		v := normalizeValue(r.Value(d))
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}

// normalizeValue maps blank dimension values to the Unknown category so that
// aggregation never fails on incomplete rows.
func normalizeValue(v string) string {
	if strings.TrimSpace(v) == "" {
		return entity.UnknownValue
	}
	return v
}
