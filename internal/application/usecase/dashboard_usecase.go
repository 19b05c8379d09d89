package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/pterm/pterm"

	"github.com/costdash/cost-dashboard-go/internal/domain/entity"
	"github.com/costdash/cost-dashboard-go/internal/domain/repository"
	"github.com/costdash/cost-dashboard-go/internal/shared/types"
)

// Default chart sizes matching the original dashboard layout.
const (
	defaultTopN  = 10
	defaultDonut = 8
	defaultRadar = 5
)

// DashboardUseCase builds the dashboard view models and the terminal summary
// from the immutable dataset handle.
type DashboardUseCase struct {
	dataset    *entity.Dataset
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	dataset *entity.Dataset,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		dataset:    dataset,
		exportRepo: exportRepo,
		console:    console,
	}
}

// Dataset exposes the loaded data handle to the driving adapters.
func (uc *DashboardUseCase) Dataset() *entity.Dataset {
	return uc.dataset
}

// BuildDashboard recomputes every KPI and chart view model for the given
// filter. Nothing is cached between calls: each request reads the records and
// produces fresh structures.
func (uc *DashboardUseCase) BuildDashboard(filter entity.Filter) (entity.DashboardData, error) {
	records := ApplyFilter(uc.dataset.Records, filter)

	regionGroups, err := Aggregate(records, entity.AggregationKey{entity.DimensionRegion})
	if err != nil {
		return entity.DashboardData{}, err
	}
	countryGroups, err := Aggregate(records, entity.AggregationKey{entity.DimensionCountry})
	if err != nil {
		return entity.DashboardData{}, err
	}
	divisionGroups, err := Aggregate(records, entity.AggregationKey{entity.DimensionDivision})
	if err != nil {
		return entity.DashboardData{}, err
	}
	serviceGroups, err := Aggregate(records, entity.AggregationKey{entity.DimensionService})
	if err != nil {
		return entity.DashboardData{}, err
	}

	heatmap, err := BuildHeatmap(records, entity.DimensionRegion, entity.DimensionDivision)
	if err != nil {
		return entity.DashboardData{}, err
	}
	radar, err := BuildRadar(records, entity.DimensionDivision, entity.DimensionRegion, defaultRadar)
	if err != nil {
		return entity.DashboardData{}, err
	}

	return entity.DashboardData{
		KPIs:         uc.buildKPIs(records),
		Sankey:       BuildSankey(records, uc.dataset.Organization),
		RegionBar:    BuildSeries(regionGroups, entity.DimensionRegion, entity.ChartBar),
		DivisionPie:  BuildSeries(divisionGroups, entity.DimensionDivision, entity.ChartPie),
		TopServices:  BuildTopSeries(serviceGroups, entity.DimensionService, defaultTopN),
		TopCountries: BuildTopSeries(countryGroups, entity.DimensionCountry, defaultTopN),
		ServiceDonut: BuildDonut(serviceGroups, entity.DimensionService, defaultDonut),
		Heatmap:      heatmap,
		Cumulative:   BuildCumulative(records),
		BoxPlot:      BuildBoxPlot(records, entity.DimensionRegion),
		Sunburst:     BuildSunburst(records),
		Radar:        radar,
	}, nil
}

// FilterOptions computes the cascading drill-down options: the choices at
// each level are the distinct values remaining after applying the selections
// of the coarser levels above it.
func (uc *DashboardUseCase) FilterOptions(filter entity.Filter) entity.FilterOptions {
	records := uc.dataset.Records

	regions := DistinctValues(records, entity.DimensionRegion)
	records = ApplyFilter(records, entity.Filter{Regions: filter.Regions})

	countries := DistinctValues(records, entity.DimensionCountry)
	records = ApplyFilter(records, entity.Filter{Countries: filter.Countries})

	divisions := DistinctValues(records, entity.DimensionDivision)
	records = ApplyFilter(records, entity.Filter{Divisions: filter.Divisions})

	services := DistinctValues(records, entity.DimensionService)

	return entity.FilterOptions{
		Regions:   regions,
		Countries: countries,
		Divisions: divisions,
		Services:  services,
	}
}

// BuildSummary aggregates the whole dataset by the given key fields into an
// exportable report.
func (uc *DashboardUseCase) BuildSummary(groupBy []string) (entity.SummaryReport, error) {
	key, err := ParseKey(groupBy)
	if err != nil {
		return entity.SummaryReport{}, fmt.Errorf("invalid --group-by: %w", err)
	}

	groups, err := Aggregate(uc.dataset.Records, key)
	if err != nil {
		return entity.SummaryReport{}, err
	}

	names := make([]string, len(key))
	for i, d := range key {
		names[i] = d.DisplayName()
	}

	return entity.SummaryReport{
		Organization: uc.dataset.Organization,
		GroupBy:      names,
		Groups:       groups,
		TotalCost:    uc.dataset.TotalAmount(),
		RecordCount:  len(uc.dataset.Records),
		GeneratedAt:  time.Now(),
	}, nil
}

// RunSummary renders the aggregation as a terminal table with per-region cost
// bars, exporting report files when a report name is set.
func (uc *DashboardUseCase) RunSummary(args *types.CLIArgs) error {
	status := uc.console.Status("Aggregating cost data...")

	report, err := uc.BuildSummary(args.GroupBy)
	if err != nil {
		status.Stop()
		return err
	}
	status.Stop()

	sort.Slice(report.Groups, func(i, j int) bool {
		return report.Groups[i].Amount > report.Groups[j].Amount
	})
	if args.TopN > 0 && len(report.Groups) > args.TopN {
		report.Groups = report.Groups[:args.TopN]
	}

	table := uc.console.CreateTable()
	for _, name := range report.GroupBy {
		table.AddColumn(name)
	}
	table.AddColumn("Cost")
	table.AddColumn("Records")
	table.AddColumn("Share")

	for _, g := range report.Groups {
		cells := make([]interface{}, 0, len(g.Values)+3)
		for _, v := range g.Values {
			cells = append(cells, v)
		}
		share := 0.0
		if report.TotalCost != 0 {
			share = g.Amount / report.TotalCost * 100
		}
		cells = append(cells,
			pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprintf("€%.2f", g.Amount),
			fmt.Sprintf("%d", g.Count),
			fmt.Sprintf("%.1f%%", share),
		)
		table.AddRow(cells...)
	}

	uc.console.Print(table.Render())
	uc.console.Printf("\n%s\n",
		pterm.FgYellow.Sprintf("%s: %d records, €%.2f total", report.Organization, report.RecordCount, report.TotalCost))

	regionGroups, err := Aggregate(uc.dataset.Records, entity.AggregationKey{entity.DimensionRegion})
	if err != nil {
		return err
	}
	regionSeries := BuildSeries(regionGroups, entity.DimensionRegion, entity.ChartPie)
	totals := make([]types.CategoryTotal, len(regionSeries.Items))
	for i, item := range regionSeries.Items {
		totals[i] = types.CategoryTotal{Label: item.Category, Amount: item.Value}
	}
	uc.console.DisplayCostBars(totals)

	if args.ReportName != "" {
		uc.exportReport(report, args)
	}

	return nil
}

func (uc *DashboardUseCase) exportReport(report entity.SummaryReport, args *types.CLIArgs) {
	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			path, err := uc.exportRepo.ExportSummaryToCSV(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", path)
			}
		case "json":
			path, err := uc.exportRepo.ExportSummaryToJSON(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", path)
			}
		case "pdf":
			path, err := uc.exportRepo.ExportSummaryToPDF(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", path)
			}
		default:
			uc.console.LogWarning("Unknown report type '%s' (expected csv, json, or pdf)", reportType)
		}
	}
}

func (uc *DashboardUseCase) buildKPIs(records []entity.CostRecord) entity.KPISummary {
	total := 0.0
	for _, r := range records {
		total += r.Amount
	}
	avg := 0.0
	if len(records) > 0 {
		avg = total / float64(len(records))
	}
	return entity.KPISummary{
		TotalCost:     total,
		AverageCost:   avg,
		RegionCount:   len(DistinctValues(records, entity.DimensionRegion)),
		DivisionCount: len(DistinctValues(records, entity.DimensionDivision)),
		RecordCount:   len(records),
	}
}
