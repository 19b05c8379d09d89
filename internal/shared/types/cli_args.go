package types

// CLIArgs represents the command-line arguments shared by the subcommands.
type CLIArgs struct {
	ConfigFile   string
	Addr         string
	DataFile     string
	UsersFile    string
	Organization string
	GroupBy      []string
	TopN         int
	ReportName   string
	ReportType   []string
	Dir          string
}
