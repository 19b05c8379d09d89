package main

import (
	"fmt"
	"os"

	"github.com/costdash/cost-dashboard-go/internal/adapter/driven/config"
	"github.com/costdash/cost-dashboard-go/internal/adapter/driven/dataset"
	"github.com/costdash/cost-dashboard-go/internal/adapter/driven/export"
	"github.com/costdash/cost-dashboard-go/internal/adapter/driven/userstore"
	"github.com/costdash/cost-dashboard-go/internal/adapter/driving/cli"
	"github.com/costdash/cost-dashboard-go/internal/adapter/driving/web"
	"github.com/costdash/cost-dashboard-go/internal/application/usecase"
	"github.com/costdash/cost-dashboard-go/internal/domain/entity"
	"github.com/costdash/cost-dashboard-go/internal/shared/types"
	"github.com/costdash/cost-dashboard-go/pkg/console"
	"github.com/costdash/cost-dashboard-go/pkg/version"
)

func main() {
	app := cli.NewCLIApp(version.Version)
	app.SetConfigRepository(config.NewConfigRepository())
	app.SetRuntimeFactory(buildRuntime)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildRuntime opens the dataset and user store named by the arguments and
// wires the use cases together.
func buildRuntime(args *types.CLIArgs) (*cli.Runtime, error) {
	consoleImpl := console.NewConsole()
	datasetRepo := dataset.NewCSVRepository()
	exportRepo := export.NewExportRepository()

	var (
		ds  *entity.Dataset
		err error
	)
	if args.DataFile != "" {
		ds, err = datasetRepo.Load(args.DataFile)
		if err != nil {
			return nil, fmt.Errorf("loading data file %s: %w", args.DataFile, err)
		}
		consoleImpl.LogInfo("Loaded %d cost records from %s", len(ds.Records), args.DataFile)
		if ds.SkippedRows > 0 {
			consoleImpl.LogWarning("Skipped %d rows with unparseable amounts", ds.SkippedRows)
		}
	} else {
		ds = datasetRepo.Generate(args.Organization)
		consoleImpl.LogInfo("No data file given, generated %d sample cost records", len(ds.Records))
	}

	userRepo := userstore.NewJSONRepository(args.UsersFile)
	authUseCase := usecase.NewAuthUseCase(userRepo)
	if err := authUseCase.SeedDefaultUsers(); err != nil {
		return nil, fmt.Errorf("seeding default users: %w", err)
	}

	dashboardUseCase := usecase.NewDashboardUseCase(ds, exportRepo, consoleImpl)
	predictionUseCase := usecase.NewPredictionUseCase(ds)

	server, err := web.NewServer(dashboardUseCase, authUseCase, predictionUseCase, consoleImpl)
	if err != nil {
		return nil, err
	}

	return &cli.Runtime{
		Dashboard: dashboardUseCase,
		Serve:     server.ListenAndServe,
	}, nil
}
