package main

import (
	"os"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-steputils/v2/stepenv"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-testrail-sync/output"
	"github.com/bitrise-steplib/steps-testrail-sync/step"
	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Lets the step run outside of CI with inputs from a local .env file.
	_ = godotenv.Load()

	logger := log.NewLogger()

	configParser := createConfigParser(logger)
	config, err := configParser.ProcessConfig()
	if err != nil {
		logger.Errorf("Process config: %s", err)
		return 1
	}

	syncRunner := createSyncRunner(logger)
	result, runErr := syncRunner.Run(config)
	if runErr != nil {
		logger.Errorf("Sync: %s", runErr)
	}

	if err := syncRunner.Export(result, runErr != nil); err != nil {
		logger.Errorf("Export outputs: %s", err)
		return 1
	}

	if runErr != nil {
		return 1
	}
	return 0
}

func createConfigParser(logger log.Logger) step.SyncConfigParser {
	envRepository := env.NewRepository()
	inputParser := stepconf.NewInputParser(envRepository)
	pathModifier := pathutil.NewPathModifier()

	return step.NewSyncConfigParser(inputParser, logger, pathModifier)
}

func createSyncRunner(logger log.Logger) step.SyncRunner {
	envRepository := stepenv.NewRepository(env.NewRepository())
	fileManager := fileutil.NewFileManager()
	builderFactory := step.NewBuilderFactory(fileManager, logger)
	outputExporter := output.NewExporter(envRepository, fileManager, logger)

	return step.NewSyncRunner(logger, builderFactory, outputExporter)
}
