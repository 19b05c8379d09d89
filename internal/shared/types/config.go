package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Addr         string   `json:"addr" yaml:"addr" toml:"addr"`
	DataFile     string   `json:"data_file" yaml:"data_file" toml:"data_file"`
	UsersFile    string   `json:"users_file" yaml:"users_file" toml:"users_file"`
	Organization string   `json:"organization" yaml:"organization" toml:"organization"`
	GroupBy      []string `json:"group_by" yaml:"group_by" toml:"group_by"`
	TopN         int      `json:"top_n" yaml:"top_n" toml:"top_n"`
	ReportName   string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType   []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir          string   `json:"dir" yaml:"dir" toml:"dir"`
}
