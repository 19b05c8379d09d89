package usecase

import (
	"testing"

	"github.com/costdash/cost-dashboard-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dashboardDataset() *entity.Dataset {
	return &entity.Dataset{
		Organization: "Acme Group",
		Records: []entity.CostRecord{
			{Region: "Europe", Country: "Germany", Division: "IT", Service: "Cloud Hosting", Amount: 100},
			{Region: "Europe", Country: "France", Division: "Sales", Service: "CRM", Amount: 50},
			{Region: "North America", Country: "USA", Division: "IT", Service: "Cloud Hosting", Amount: 30},
		},
	}
}

func TestBuildDashboard(t *testing.T) {
	uc := NewDashboardUseCase(dashboardDataset(), nil, nil)

	data, err := uc.BuildDashboard(entity.Filter{})
	require.NoError(t, err)

	assert.InDelta(t, 180.0, data.KPIs.TotalCost, 1e-9)
	assert.InDelta(t, 60.0, data.KPIs.AverageCost, 1e-9)
	assert.Equal(t, 2, data.KPIs.RegionCount)
	assert.Equal(t, 2, data.KPIs.DivisionCount)
	assert.Equal(t, 3, data.KPIs.RecordCount)

	assert.Len(t, data.RegionBar.Items, 2)
	assert.Len(t, data.DivisionPie.Items, 2)
	assert.Len(t, data.Cumulative.Points, 3)
	assert.NotEmpty(t, data.Sankey.Nodes)
	assert.Equal(t, len(data.Heatmap.Rows), len(data.Heatmap.Values))
	assert.Len(t, data.BoxPlot.Series, 2)
	assert.NotEmpty(t, data.Sunburst.Nodes)
	assert.Equal(t, []string{"IT", "Sales"}, data.Radar.Axes)
	require.Len(t, data.Radar.Series, 2)
	assert.Len(t, data.Radar.Series[0].Values, 2)
}

func TestBuildDashboardWithFilter(t *testing.T) {
	uc := NewDashboardUseCase(dashboardDataset(), nil, nil)

	data, err := uc.BuildDashboard(entity.Filter{Regions: []string{"Europe"}})
	require.NoError(t, err)

	assert.InDelta(t, 150.0, data.KPIs.TotalCost, 1e-9)
	assert.Equal(t, 1, data.KPIs.RegionCount)
	require.Len(t, data.RegionBar.Items, 1)
	assert.Equal(t, "Europe", data.RegionBar.Items[0].Category)
}

func TestBuildDashboardEmptySelection(t *testing.T) {
	uc := NewDashboardUseCase(dashboardDataset(), nil, nil)

	data, err := uc.BuildDashboard(entity.Filter{Regions: []string{"Antarctica"}})
	require.NoError(t, err)

	assert.Zero(t, data.KPIs.TotalCost)
	assert.Empty(t, data.RegionBar.Items)
	assert.Empty(t, data.Sankey.Nodes)
	assert.Empty(t, data.Cumulative.Points)
}

func TestFilterOptionsCascade(t *testing.T) {
	uc := NewDashboardUseCase(dashboardDataset(), nil, nil)

	// No selection: every level offers all values.
	options := uc.FilterOptions(entity.Filter{})
	assert.Equal(t, []string{"Europe", "North America"}, options.Regions)
	assert.Equal(t, []string{"France", "Germany", "USA"}, options.Countries)

	// Selecting a region narrows the levels below it but not the region list.
	options = uc.FilterOptions(entity.Filter{Regions: []string{"Europe"}})
	assert.Equal(t, []string{"Europe", "North America"}, options.Regions)
	assert.Equal(t, []string{"France", "Germany"}, options.Countries)
	assert.Equal(t, []string{"IT", "Sales"}, options.Divisions)

	// A country selection narrows divisions and services further.
	options = uc.FilterOptions(entity.Filter{
		Regions:   []string{"Europe"},
		Countries: []string{"France"},
	})
	assert.Equal(t, []string{"Sales"}, options.Divisions)
	assert.Equal(t, []string{"CRM"}, options.Services)
}

func TestBuildSummary(t *testing.T) {
	uc := NewDashboardUseCase(dashboardDataset(), nil, nil)

	report, err := uc.BuildSummary([]string{"region", "division"})
	require.NoError(t, err)

	assert.Equal(t, "Acme Group", report.Organization)
	assert.Equal(t, []string{"Region", "Division"}, report.GroupBy)
	assert.Len(t, report.Groups, 3)
	assert.InDelta(t, 180.0, report.TotalCost, 1e-9)
	assert.Equal(t, 3, report.RecordCount)

	_, err = uc.BuildSummary([]string{"division", "region"})
	assert.Error(t, err)
}
