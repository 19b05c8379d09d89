package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/costdash/cost-dashboard-go/internal/application/usecase"
	"github.com/costdash/cost-dashboard-go/internal/domain/repository"
	"github.com/costdash/cost-dashboard-go/internal/shared/types"
	"github.com/costdash/cost-dashboard-go/pkg/version"
	"github.com/spf13/cobra"
)

// Runtime bundles everything a subcommand needs once the dataset and user
// store named by the parsed arguments have been opened.
type Runtime struct {
	Dashboard *usecase.DashboardUseCase
	Serve     func(ctx context.Context, addr string) error
}

// RuntimeFactory builds the runtime for a parsed set of arguments. The data
// file is only read here, after flag and config-file parsing has settled.
type RuntimeFactory func(args *types.CLIArgs) (*Runtime, error)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	factory    RuntimeFactory
	configRepo repository.ConfigRepository
	version    string
}

// NewCLIApp creates a new CLI application.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "cost-dashboard",
		Short:   "Organizational cost dashboard",
		Version: formattedVersion,
	}

	rootCmd.SetVersionTemplate(`{{printf "Cost Dashboard version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("data-file", "f", "", "Path to the cost data CSV (generated sample when omitted)")
	rootCmd.PersistentFlags().StringP("users-file", "u", "users.json", "Path to the user store file")
	rootCmd.PersistentFlags().StringP("organization", "o", "", "Organization name shown on the dashboard")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard web server",
		RunE:  app.runServe,
	}
	serveCmd.Flags().StringP("addr", "a", "localhost:8050", "Address for the HTTP server")

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print a cost summary table to the terminal",
		RunE:  app.runSummary,
	}
	summaryCmd.Flags().StringSliceP("group-by", "g", []string{"region"}, "Dimensions to group costs by: region, country, division, service")
	summaryCmd.Flags().IntP("top", "t", 0, "Limit the table to the top N groups (0 shows all)")
	summaryCmd.Flags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	summaryCmd.Flags().StringSliceP("report-type", "y", nil, "Export report types: csv, json, pdf")
	summaryCmd.Flags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	rootCmd.AddCommand(serveCmd, summaryCmd)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses the shared and per-command flags into a CLIArgs struct,
// layering any config file underneath the flags that were not set.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	configFile, _ := cmd.Flags().GetString("config-file")
	dataFile, _ := cmd.Flags().GetString("data-file")
	usersFile, _ := cmd.Flags().GetString("users-file")
	organization, _ := cmd.Flags().GetString("organization")

	args := &types.CLIArgs{
		ConfigFile:   configFile,
		DataFile:     dataFile,
		UsersFile:    usersFile,
		Organization: organization,
	}

	if addr := cmd.Flags().Lookup("addr"); addr != nil {
		args.Addr = addr.Value.String()
	}
	if cmd.Flags().Lookup("group-by") != nil {
		args.GroupBy, _ = cmd.Flags().GetStringSlice("group-by")
		args.TopN, _ = cmd.Flags().GetInt("top")
		args.ReportName, _ = cmd.Flags().GetString("report-name")
		args.ReportType, _ = cmd.Flags().GetStringSlice("report-type")
		args.Dir, _ = cmd.Flags().GetString("dir")
	}

	if configFile != "" && app.configRepo != nil {
		cfg, err := app.configRepo.LoadConfigFile(configFile)
		if err != nil {
			return nil, err
		}
		mergeConfig(args, cfg, cmd)
	}

	if args.Dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		args.Dir = cwd
	} else {
		absDir, err := filepath.Abs(args.Dir)
		if err != nil {
			return nil, err
		}
		args.Dir = absDir
	}

	return args, nil
}

// mergeConfig fills args fields from the config file. Flags explicitly set on
// the command line win over the file.
func mergeConfig(args *types.CLIArgs, cfg *types.Config, cmd *cobra.Command) {
	if cfg.Addr != "" && !cmd.Flags().Changed("addr") {
		args.Addr = cfg.Addr
	}
	if cfg.DataFile != "" && !cmd.Flags().Changed("data-file") {
		args.DataFile = cfg.DataFile
	}
	if cfg.UsersFile != "" && !cmd.Flags().Changed("users-file") {
		args.UsersFile = cfg.UsersFile
	}
	if cfg.Organization != "" && !cmd.Flags().Changed("organization") {
		args.Organization = cfg.Organization
	}
	if len(cfg.GroupBy) > 0 && !cmd.Flags().Changed("group-by") {
		args.GroupBy = cfg.GroupBy
	}
	if cfg.TopN > 0 && !cmd.Flags().Changed("top") {
		args.TopN = cfg.TopN
	}
	if cfg.ReportName != "" && !cmd.Flags().Changed("report-name") {
		args.ReportName = cfg.ReportName
	}
	if len(cfg.ReportType) > 0 && !cmd.Flags().Changed("report-type") {
		args.ReportType = cfg.ReportType
	}
	if cfg.Dir != "" && !cmd.Flags().Changed("dir") {
		args.Dir = cfg.Dir
	}
}

// runServe starts the web server and blocks until interrupted.
func (app *CLIApp) runServe(cmd *cobra.Command, _ []string) error {
	displayWelcomeBanner(app.version)

	args, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	rt, err := app.factory(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rt.Serve(ctx, args.Addr)
}

// runSummary prints the grouped cost table and optionally exports reports.
func (app *CLIApp) runSummary(cmd *cobra.Command, _ []string) error {
	displayWelcomeBanner(app.version)

	args, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	rt, err := app.factory(args)
	if err != nil {
		return err
	}

	return rt.Dashboard.RunSummary(args)
}

// SetRuntimeFactory sets the function that builds the use cases for a
// subcommand once its arguments are known.
func (app *CLIApp) SetRuntimeFactory(factory RuntimeFactory) {
	app.factory = factory
}

// SetConfigRepository sets the configuration loader for the CLI app.
func (app *CLIApp) SetConfigRepository(repo repository.ConfigRepository) {
	app.configRepo = repo
}
