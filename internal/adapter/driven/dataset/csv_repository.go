package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/costdash/cost-dashboard-go/internal/domain/entity"
	"github.com/costdash/cost-dashboard-go/internal/domain/repository"
)

// Header aliases accepted in source files. The original dataset ships with
// LevelN column names; friendlier names work too.
var columnAliases = map[string]string{
	"level1":       "organization",
	"organization": "organization",
	"level2":       "region",
	"region":       "region",
	"level3":       "country",
	"country":      "country",
	"level4":       "division",
	"division":     "division",
	"level5":       "service",
	"service":      "service",
	"cost":         "amount",
	"amount":       "amount",
	"period":       "period",
	"month":        "period",
}

// CSVRepositoryImpl implements the DatasetRepository over CSV files.
type CSVRepositoryImpl struct{}

// NewCSVRepository creates a new CSV-backed DatasetRepository.
func NewCSVRepository() repository.DatasetRepository {
	return &CSVRepositoryImpl{}
}

// Load reads the flat cost table from a CSV file. Blank dimension values
// become the Unknown category; rows with unparseable amounts are skipped and
// counted rather than failing the load.
func (r *CSVRepositoryImpl) Load(path string) (*entity.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening data file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}

	columns := make(map[string]int)
	for i, name := range header {
		canonical, ok := columnAliases[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			continue
		}
		if _, dup := columns[canonical]; !dup {
			columns[canonical] = i
		}
	}
	if _, ok := columns["amount"]; !ok {
		return nil, fmt.Errorf("data file %s has no cost/amount column", path)
	}

	ds := &entity.Dataset{Records: []entity.CostRecord{}}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV row: %w", err)
		}

		amount, err := strconv.ParseFloat(strings.TrimSpace(cell(row, columns, "amount")), 64)
		if err != nil {
			ds.SkippedRows++
			continue
		}

		if ds.Organization == "" {
			ds.Organization = strings.TrimSpace(cell(row, columns, "organization"))
		}

		ds.Records = append(ds.Records, entity.CostRecord{
			Region:   dimensionValue(cell(row, columns, "region")),
			Country:  dimensionValue(cell(row, columns, "country")),
			Division: dimensionValue(cell(row, columns, "division")),
			Service:  dimensionValue(cell(row, columns, "service")),
			Period:   strings.TrimSpace(cell(row, columns, "period")),
			Amount:   amount,
		})
	}

	return ds, nil
}

func cell(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func dimensionValue(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return entity.UnknownValue
	}
	return v
}
