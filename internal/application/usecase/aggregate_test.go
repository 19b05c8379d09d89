package usecase

import (
	"testing"

	"github.com/costdash/cost-dashboard-go/internal/domain/entity"
	"github.com/costdash/cost-dashboard-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []entity.CostRecord {
	return []entity.CostRecord{
		{Region: "Europe", Country: "Germany", Division: "IT", Service: "Cloud Hosting", Amount: 100},
		{Region: "Europe", Country: "France", Division: "IT", Service: "Cloud Hosting", Amount: 50},
		{Region: "North America", Country: "USA", Division: "Sales", Service: "CRM", Amount: 30},
	}
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     entity.AggregationKey
		wantErr bool
	}{
		{"empty", entity.AggregationKey{}, false},
		{"single region", entity.AggregationKey{entity.DimensionRegion}, false},
		{"full hierarchy", entity.AggregationKey(entity.Hierarchy()), false},
		{"skip a level", entity.AggregationKey{entity.DimensionRegion, entity.DimensionDivision}, false},
		{"service alone", entity.AggregationKey{entity.DimensionService}, false},
		{"out of order", entity.AggregationKey{entity.DimensionCountry, entity.DimensionRegion}, true},
		{"repeated field", entity.AggregationKey{entity.DimensionRegion, entity.DimensionRegion}, true},
		{"unknown field", entity.AggregationKey{entity.Dimension("planet")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if tt.wantErr {
				assert.ErrorIs(t, err, types.ErrInvalidKind)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseKey(t *testing.T) {
	key, err := ParseKey([]string{" Region ", "DIVISION"})
	require.NoError(t, err)
	assert.Equal(t, entity.AggregationKey{entity.DimensionRegion, entity.DimensionDivision}, key)

	_, err = ParseKey([]string{"division", "region"})
	assert.ErrorIs(t, err, types.ErrInvalidKind)
}

func TestAggregateByRegion(t *testing.T) {
	groups, err := Aggregate(sampleRecords(), entity.AggregationKey{entity.DimensionRegion})
	require.NoError(t, err)
	require.Len(t, groups, 2)

	byRegion := map[string]entity.AggregatedGroup{}
	for _, g := range groups {
		byRegion[g.Values[0]] = g
	}
	assert.Equal(t, 150.0, byRegion["Europe"].Amount)
	assert.Equal(t, 2, byRegion["Europe"].Count)
	assert.Equal(t, 30.0, byRegion["North America"].Amount)
	assert.Equal(t, 1, byRegion["North America"].Count)
}

func TestAggregateConservesTotal(t *testing.T) {
	records := sampleRecords()
	want := 0.0
	for _, r := range records {
		want += r.Amount
	}

	for _, key := range []entity.AggregationKey{
		{entity.DimensionRegion},
		{entity.DimensionRegion, entity.DimensionCountry},
		{entity.DimensionRegion, entity.DimensionDivision},
		entity.Hierarchy(),
	} {
		groups, err := Aggregate(records, key)
		require.NoError(t, err)

		got := 0.0
		for _, g := range groups {
			got += g.Amount
		}
		assert.InDelta(t, want, got, 1e-9)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	groups, err := Aggregate(nil, entity.AggregationKey{entity.DimensionRegion})
	require.NoError(t, err)
	assert.Empty(t, groups)

	groups, err = Aggregate(sampleRecords(), entity.AggregationKey{})
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestAggregateBlankValuesBecomeUnknown(t *testing.T) {
	records := []entity.CostRecord{
		{Region: "", Country: "Germany", Amount: 10},
		{Region: "  ", Country: "France", Amount: 5},
	}

	groups, err := Aggregate(records, entity.AggregationKey{entity.DimensionRegion})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, entity.UnknownValue, groups[0].Values[0])
	assert.Equal(t, 15.0, groups[0].Amount)
}

func TestAggregateInvalidKey(t *testing.T) {
	_, err := Aggregate(sampleRecords(), entity.AggregationKey{entity.DimensionService, entity.DimensionRegion})
	assert.ErrorIs(t, err, types.ErrInvalidKind)
}

func TestApplyFilter(t *testing.T) {
	records := sampleRecords()

	filtered := ApplyFilter(records, entity.Filter{Regions: []string{"Europe"}})
	assert.Len(t, filtered, 2)

	filtered = ApplyFilter(records, entity.Filter{
		Regions:   []string{"Europe"},
		Countries: []string{"France"},
	})
	require.Len(t, filtered, 1)
	assert.Equal(t, "France", filtered[0].Country)

	filtered = ApplyFilter(records, entity.Filter{Regions: []string{"Antarctica"}})
	assert.Empty(t, filtered)

	filtered = ApplyFilter(records, entity.Filter{})
	assert.Len(t, filtered, 3)
}

func TestDistinctValues(t *testing.T) {
	values := DistinctValues(sampleRecords(), entity.DimensionCountry)
	assert.Equal(t, []string{"France", "Germany", "USA"}, values)

	values = DistinctValues([]entity.CostRecord{{Region: ""}}, entity.DimensionRegion)
	assert.Equal(t, []string{entity.UnknownValue}, values)
}
