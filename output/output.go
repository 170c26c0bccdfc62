package output

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-testrail-sync/testrail"
)

const (
	syncResultKey      = "TESTRAIL_SYNC_RESULT"
	projectIDKey       = "TESTRAIL_PROJECT_ID"
	runIDKey           = "TESTRAIL_RUN_ID"
	runURLKey          = "TESTRAIL_RUN_URL"
	caseMappingPathKey = "TESTRAIL_CASE_MAPPING_PATH"

	caseMappingFileName = "testrail_case_mapping.json"
)

// Exporter ...
type Exporter interface {
	ExportSyncResult(failed bool)
	ExportRunInfo(projectID, runID int, runURL string)
	ExportCaseMapping(deployDir string, details []testrail.CaseDetail) error
}

type exporter struct {
	envRepository env.Repository
	fileManager   fileutil.FileManager
	logger        log.Logger
}

// NewExporter ...
func NewExporter(envRepository env.Repository, fileManager fileutil.FileManager, logger log.Logger) Exporter {
	return &exporter{
		envRepository: envRepository,
		fileManager:   fileManager,
		logger:        logger,
	}
}

func (e exporter) ExportSyncResult(failed bool) {
	status := "succeeded"
	if failed {
		status = "failed"
	}
	e.set(syncResultKey, status)
}

func (e exporter) ExportRunInfo(projectID, runID int, runURL string) {
	e.set(projectIDKey, strconv.Itoa(projectID))
	e.set(runIDKey, strconv.Itoa(runID))
	if runURL != "" {
		e.set(runURLKey, runURL)
	}
}

// ExportCaseMapping writes the test id to case id pairs as JSON into the deploy dir.
func (e exporter) ExportCaseMapping(deployDir string, details []testrail.CaseDetail) error {
	if details == nil {
		details = []testrail.CaseDetail{}
	}

	content, err := json.MarshalIndent(details, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode case mapping: %w", err)
	}

	pth := filepath.Join(deployDir, caseMappingFileName)
	if err := e.fileManager.WriteBytes(pth, content); err != nil {
		return fmt.Errorf("failed to write case mapping to (%s): %w", pth, err)
	}

	e.set(caseMappingPathKey, pth)
	return nil
}

func (e exporter) set(key, value string) {
	if err := e.envRepository.Set(key, value); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", key, err)
	}
}
