package console

import (
	"fmt"
	"strings"

	"github.com/costdash/cost-dashboard-go/internal/shared/types"
	"github.com/pterm/pterm"
)

// Console is an implementation of the ConsoleInterface.
type Console struct{}

// NewConsole creates a new Console.
func NewConsole() *Console {
	return &Console{}
}

// Print writes to the console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf writes a formatted string to the console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println writes to the console with a trailing newline.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo logs an informational message.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning logs a warning message.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError logs an error message.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess logs a success message.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle is an implementation of the StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status starts a status spinner with the given message.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update updates the status message.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop stops the status spinner.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table is an implementation of the TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable creates a new table.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn appends a column to the table.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow appends a row to the table.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renders the table as a string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayCostBars renders horizontal bars for the given category totals,
// scaled against the largest amount.
func (c *Console) DisplayCostBars(totals []types.CategoryTotal) {
	maxAmount := 0.0
	for _, t := range totals {
		if t.Amount > maxAmount {
			maxAmount = t.Amount
		}
	}
	if maxAmount == 0 {
		pterm.Warning.Println("All costs are €0.00")
		return
	}

	tableData := pterm.TableData{
		{"Category", "Cost", "", "Share"},
	}

	total := 0.0
	for _, t := range totals {
		total += t.Amount
	}

	for _, t := range totals {
		barLength := int((t.Amount / maxAmount) * 40)
		bar := strings.Repeat("█", barLength)

		share := 0.0
		if total != 0 {
			share = t.Amount / total * 100
		}

		tableData = append(tableData, []string{
			t.Label,
			fmt.Sprintf("€%.2f", t.Amount),
			pterm.FgBlue.Sprint(bar),
			fmt.Sprintf("%.1f%%", share),
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle("Cost by Region").WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}
