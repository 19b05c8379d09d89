package dataset

import (
	"math/rand"
	"sort"

	"github.com/costdash/cost-dashboard-go/internal/domain/entity"
)

// sampleSeed keeps the generated demo dataset stable across runs so the
// charts look the same on every start.
const sampleSeed = 20240915

var sampleRegions = map[string][]string{
	"Europe":        {"Germany", "France", "Netherlands", "Poland"},
	"North America": {"USA", "Canada"},
	"Asia Pacific":  {"Singapore", "Japan", "India"},
	"Latin America": {"Brazil", "Mexico"},
}

var sampleDivisions = []string{
	"Corporate Banking", "Investment Banking", "Private Clients",
	"Asset Management", "Technology & Operations",
}

var sampleServices = []string{
	"Cloud Hosting", "Data Center", "Workplace IT", "Market Data",
	"Core Banking Platform", "Payments Processing", "Risk Analytics",
	"Compliance Tooling", "Network & Connectivity", "End User Support",
}

var samplePeriods = []string{"2024-01", "2024-02", "2024-03", "2024-04", "2024-05", "2024-06"}

// Generate builds the in-memory demo dataset used when no data file is
// supplied: every region/country gets a spread of divisions and services
// with deterministic pseudo-random amounts.
func (r *CSVRepositoryImpl) Generate(organization string) *entity.Dataset {
	if organization == "" {
		organization = "Acme Group"
	}

	rng := rand.New(rand.NewSource(sampleSeed))
	ds := &entity.Dataset{Organization: organization}

	regions := make([]string, 0, len(sampleRegions))
	for region := range sampleRegions {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	for _, region := range regions {
		for _, country := range sampleRegions[region] {
			for _, division := range sampleDivisions {
				// Not every division buys every service everywhere; skip a
				// few combinations so drill-downs show uneven shapes.
				for _, service := range sampleServices {
					if rng.Float64() < 0.35 {
						continue
					}
					period := samplePeriods[rng.Intn(len(samplePeriods))]
					amount := 5_000 + rng.Float64()*245_000
					ds.Records = append(ds.Records, entity.CostRecord{
						Region:   region,
						Country:  country,
						Division: division,
						Service:  service,
						Period:   period,
						Amount:   float64(int(amount*100)) / 100,
					})
				}
			}
		}
	}

	return ds
}
