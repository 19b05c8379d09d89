package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/costdash/cost-dashboard-go/internal/domain/entity"
	"github.com/costdash/cost-dashboard-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implements the ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository creates a new implementation of the ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

func (r *ExportRepositoryImpl) ExportSummaryToCSV(report entity.SummaryReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := append([]string{}, report.GroupBy...)
	headers = append(headers, "Cost", "Records", "Share")
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, g := range report.Groups {
		record := append([]string{}, g.Values...)
		record = append(record,
			fmt.Sprintf("%.2f", g.Amount),
			fmt.Sprintf("%d", g.Count),
			fmt.Sprintf("%.1f%%", share(g.Amount, report.TotalCost)),
		)
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportSummaryToJSON(report entity.SummaryReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportSummaryToPDF(report entity.SummaryReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	title := report.Organization
	if title == "" {
		title = "Cost Summary"
	}
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s", title)), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	meta := fmt.Sprintf("  Grouped by %s | %d records | generated %s",
		strings.Join(report.GroupBy, " / "),
		report.RecordCount,
		report.GeneratedAt.Format("2006-01-02 15:04"))
	pdf.CellFormat(0, 8, tr(meta), "", 1, "L", true, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 8, "Aggregated Costs")
	pdf.Ln(7)
	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
	pdf.Ln(4)

	keyWidth := 130.0
	if len(report.GroupBy) > 0 {
		keyWidth = 130.0 / float64(len(report.GroupBy))
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	for _, name := range report.GroupBy {
		pdf.CellFormat(keyWidth, 7, tr(name), "B", 0, "L", false, 0, "")
	}
	pdf.CellFormat(35, 7, "Cost", "B", 0, "R", false, 0, "")
	pdf.CellFormat(25, 7, "Share", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, g := range report.Groups {
		for _, v := range g.Values {
			pdf.CellFormat(keyWidth, 6, tr(v), "", 0, "L", false, 0, "")
		}
		pdf.CellFormat(35, 6, tr(fmt.Sprintf("€%.2f", g.Amount)), "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.1f%%", share(g.Amount, report.TotalCost)), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(keyWidth*float64(maxInt(len(report.GroupBy), 1)), 8, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(35, 8, tr(fmt.Sprintf("€%.2f", report.TotalCost)), "T", 0, "R", false, 0, "")
	pdf.CellFormat(25, 8, "100.0%", "T", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

func share(amount, total float64) float64 {
	if total == 0 {
		return 0
	}
	return amount / total * 100
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
