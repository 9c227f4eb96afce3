// WoolCost — Mineral Wool Production Cost Calculator
//
// Computes the manufacturing and packaging cost of fibrous insulation
// boards across a configurable set of product densities and exports the
// result table to XLSX/PDF, with optional QR-coded pallet labels.
// Scenarios can be saved to and loaded from ~/.woolcost/scenarios/.
//
// Build:
//   go build -o woolcost ./cmd/woolcost
//
// Usage:
//   woolcost [-config scenario.yaml | -load name] [-save name]
//            [-xlsx out.xlsx] [-pdf out.pdf] [-labels labels.pdf]
//            [-report] [-export-backup out.json] [-import-backup in.json]
//            [-log-level info]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/piwi3910/WoolCost/internal/config"
	"github.com/piwi3910/WoolCost/internal/engine"
	"github.com/piwi3910/WoolCost/internal/export"
	"github.com/piwi3910/WoolCost/internal/model"
	"github.com/piwi3910/WoolCost/internal/project"
)

// initializeLogger creates a zap logger based on configuration and CLI
// overrides.
func initializeLogger(loggingConfig config.LoggingConfig, levelOverride string) (*zap.Logger, error) {
	level := loggingConfig.Level
	if levelOverride != "" {
		level = levelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "console"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
	case "json":
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)

	return zapConfig.Build()
}

// scenarioPath resolves a bare scenario name to a JSON file under the
// application's scenario directory. Names containing a path separator or a
// .json suffix are taken as literal paths.
func scenarioPath(name string) string {
	if strings.ContainsAny(name, "/\\") || strings.HasSuffix(name, ".json") {
		return name
	}
	return filepath.Join(project.DefaultConfigDir(), "scenarios", name+".json")
}

// printResultTable renders the full result table to stdout.
func printResultTable(rows []model.ResultRow) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, col := range model.ResultColumns {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, col)
	}
	fmt.Fprintln(w)
	for _, row := range rows {
		for i, cell := range row.Cells() {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprintf(w, "%v", cell)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

// importBackup restores an exported backup: the application config is written
// back and every contained scenario lands in the scenario directory.
func importBackup(path string, logger *zap.Logger) error {
	backup, err := project.ImportAllData(path)
	if err != nil {
		return err
	}
	if err := project.SaveAppConfig(project.DefaultAppConfigPath(), backup.Config); err != nil {
		return fmt.Errorf("failed to restore application config: %w", err)
	}
	for _, scenario := range backup.Scenarios {
		if err := project.SaveScenario(scenarioPath(scenario.Name), scenario); err != nil {
			return fmt.Errorf("failed to restore scenario %q: %w", scenario.Name, err)
		}
	}
	logger.Info("backup imported",
		zap.String("path", path),
		zap.String("version", backup.Version),
		zap.Int("scenarios", len(backup.Scenarios)),
	)
	return nil
}

// exportBackup bundles the application config, the current scenario and every
// loadable recent scenario into a single backup file.
func exportBackup(path string, appConfig model.AppConfig, current model.Scenario, logger *zap.Logger) error {
	scenarios := []model.Scenario{current}
	for _, recent := range appConfig.RecentScenarios {
		if recent == scenarioPath(current.Name) {
			continue
		}
		scenario, err := project.LoadScenario(recent)
		if err != nil {
			logger.Warn("skipping unreadable recent scenario", zap.String("path", recent), zap.Error(err))
			continue
		}
		scenarios = append(scenarios, scenario)
	}
	if err := project.ExportAllData(path, appConfig, scenarios); err != nil {
		return err
	}
	logger.Info("backup written", zap.String("path", path), zap.Int("scenarios", len(scenarios)))
	return nil
}

func main() {
	configPath := flag.String("config", "", "path to a scenario YAML file (defaults used when empty)")
	loadName := flag.String("load", "", "load a saved scenario by name or JSON path")
	saveName := flag.String("save", "", "save the scenario and its result under this name after the run")
	xlsxPath := flag.String("xlsx", "", "write the result table and parameters to this XLSX file")
	pdfPath := flag.String("pdf", "", "write the result table and detailed report to this PDF file")
	labelsPath := flag.String("labels", "", "write QR-coded pallet labels to this PDF file")
	showReport := flag.Bool("report", false, "print the detailed calculation report")
	backupOut := flag.String("export-backup", "", "export the application config and scenarios to this JSON file")
	backupIn := flag.String("import-backup", "", "restore application config and scenarios from a backup file and exit")
	logLevel := flag.String("log-level", "", "override log level (debug, info, warn, error)")
	flag.Parse()

	if *configPath != "" && *loadName != "" {
		fmt.Fprintln(os.Stderr, "-config and -load are mutually exclusive")
		os.Exit(1)
	}

	var loggingConfig config.LoggingConfig
	var conf *config.Configuration
	if *configPath != "" {
		loaded, err := config.LoadConfiguration(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", *configPath, err)
			os.Exit(1)
		}
		conf = loaded
		loggingConfig = conf.Logging
	}

	logger, err := initializeLogger(loggingConfig, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *backupIn != "" {
		if err := importBackup(*backupIn, logger); err != nil {
			logger.Error("backup import failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	appConfigPath := project.DefaultAppConfigPath()
	appConfig, err := project.LoadAppConfig(appConfigPath)
	if err != nil {
		logger.Warn("application config unreadable, using defaults", zap.Error(err))
		appConfig = model.DefaultAppConfig()
	}

	var scenario model.Scenario
	switch {
	case conf != nil:
		scenario, err = conf.BuildScenario()
		if err != nil {
			logger.Error("failed to build scenario", zap.Error(err))
			os.Exit(1)
		}
	case *loadName != "":
		path := scenarioPath(*loadName)
		scenario, err = project.LoadScenario(path)
		if err != nil {
			logger.Error("failed to load scenario", zap.String("path", path), zap.Error(err))
			os.Exit(1)
		}
		project.RememberScenario(&appConfig, path)
		if err := project.SaveAppConfig(appConfigPath, appConfig); err != nil {
			logger.Warn("failed to update recent scenario list", zap.Error(err))
		}
	default:
		scenario = model.NewScenario("Defaults")
		appConfig.ApplyToScenario(&scenario)
	}

	logger.Debug("scenario ready",
		zap.String("name", scenario.Name),
		zap.Int("densities", len(scenario.Densities)),
		zap.Float64("fixed_costs_per_hour", scenario.FixedCosts.Sum()),
	)

	rows, err := engine.Run(scenario.Config, scenario.FixedCosts, scenario.Densities)
	if err != nil {
		logger.Error("calculation failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("calculation complete",
		zap.String("scenario", scenario.Name),
		zap.Int("rows", len(rows)),
	)

	printResultTable(rows)

	if *showReport {
		fmt.Println()
		fmt.Println(engine.DetailedReport(scenario.Config, scenario.FixedCosts, scenario.Densities))
	}

	if *saveName != "" {
		scenario.Name = *saveName
		scenario.Result = rows
		path := scenarioPath(*saveName)
		if err := project.SaveScenario(path, scenario); err != nil {
			logger.Error("failed to save scenario", zap.String("path", path), zap.Error(err))
			os.Exit(1)
		}
		project.RememberScenario(&appConfig, path)
		if err := project.SaveAppConfig(appConfigPath, appConfig); err != nil {
			logger.Warn("failed to update recent scenario list", zap.Error(err))
		}
		logger.Info("scenario saved", zap.String("path", path))
	}

	if *xlsxPath != "" {
		if err := export.ExportXLSX(*xlsxPath, rows, scenario.Config, scenario.FixedCosts); err != nil {
			logger.Error("xlsx export failed", zap.String("path", *xlsxPath), zap.Error(err))
			os.Exit(1)
		}
		logger.Info("xlsx written", zap.String("path", *xlsxPath))
	}
	if *pdfPath != "" {
		report := engine.DetailedReport(scenario.Config, scenario.FixedCosts, scenario.Densities)
		if err := export.ExportPDF(*pdfPath, rows, report); err != nil {
			logger.Error("pdf export failed", zap.String("path", *pdfPath), zap.Error(err))
			os.Exit(1)
		}
		logger.Info("pdf written", zap.String("path", *pdfPath))
	}
	if *labelsPath != "" {
		if err := export.ExportPalletLabels(*labelsPath, rows); err != nil {
			logger.Error("label export failed", zap.String("path", *labelsPath), zap.Error(err))
			os.Exit(1)
		}
		logger.Info("labels written", zap.String("path", *labelsPath))
	}

	if *backupOut != "" {
		if err := exportBackup(*backupOut, appConfig, scenario, logger); err != nil {
			logger.Error("backup export failed", zap.Error(err))
			os.Exit(1)
		}
	}
}
