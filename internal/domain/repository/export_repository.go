package repository

import (
	"github.com/costdash/cost-dashboard-go/internal/domain/entity"
)

// ExportRepository defines the interface for writing summary reports to disk.
type ExportRepository interface {
	ExportSummaryToCSV(report entity.SummaryReport, filename string, outputDir string) (string, error)
	ExportSummaryToJSON(report entity.SummaryReport, filename string, outputDir string) (string, error)
	ExportSummaryToPDF(report entity.SummaryReport, filename string, outputDir string) (string, error)
}
