package types

// ConsoleInterface defines the terminal output port used by the use cases.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle

	CreateTable() TableInterface
	DisplayCostBars(totals []CategoryTotal)
}

// StatusHandle updates a running status message.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// TableInterface builds and renders a display table.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// CategoryTotal is one labelled amount for the terminal bar display.
type CategoryTotal struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}
