package step

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/progress"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-testrail-sync/apiclient"
	"github.com/bitrise-steplib/steps-testrail-sync/output"
	"github.com/bitrise-steplib/steps-testrail-sync/testrail"
	"github.com/kballard/go-shellquote"
)

// Input ...
type Input struct {
	// Connection
	TestRailURL      string          `env:"testrail_url,required"`
	TestRailUser     string          `env:"testrail_user,required"`
	TestRailPassword stepconf.Secret `env:"testrail_password,required"`
	RequestTimeout   int             `env:"request_timeout"`

	SummaryPath string `env:"summary_path,file"`

	// Project
	ProjectName         string `env:"project_name,required"`
	ProjectAnnouncement string `env:"project_announcement"`
	SuiteMode           int    `env:"suite_mode,opt[1,2,3]"`
	RecreateProject     bool   `env:"recreate_project,opt[yes,no]"`

	// Milestone
	MilestoneName        string `env:"milestone_name,required"`
	MilestoneDescription string `env:"milestone_description"`
	MilestoneDueOn       string `env:"milestone_due_on"`

	// Suite and section
	SuiteName   string `env:"suite_name"`
	SectionName string `env:"section_name,required"`

	// Run
	RunName        string `env:"run_name,required"`
	RunDescription string `env:"run_description"`
	IncludeAll     bool   `env:"include_all,opt[yes,no]"`
	RunAttachments string `env:"run_attachments"`

	// Debug
	Verbose bool `env:"verbose,opt[yes,no]"`

	DeployDir string `env:"BITRISE_DEPLOY_DIR"`
}

// Config ...
type Config struct {
	TestRailURL    string
	Credentials    apiclient.Credentials
	RequestTimeout time.Duration

	SummaryPath string

	ProjectName         string
	ProjectAnnouncement string
	SuiteMode           testrail.SuiteMode
	RecreateProject     bool

	MilestoneName        string
	MilestoneDescription string
	MilestoneDueOn       time.Time

	SuiteName   string
	SectionName string

	RunName        string
	RunDescription string
	IncludeAll     bool
	RunAttachments []string

	DeployDir string
}

// Result ...
type Result struct {
	ProjectID   int
	RunID       int
	RunURL      string
	CaseDetails []testrail.CaseDetail

	PassedCount int
	FailedCount int

	DeployDir string
}

// PathModifier ...
type PathModifier interface {
	AbsPath(pth string) (string, error)
}

// SyncConfigParser ...
type SyncConfigParser struct {
	inputParser  stepconf.InputParser
	logger       log.Logger
	pathModifier PathModifier
	now          func() time.Time
}

// NewSyncConfigParser ...
func NewSyncConfigParser(inputParser stepconf.InputParser, logger log.Logger, pathModifier PathModifier) SyncConfigParser {
	return SyncConfigParser{
		inputParser:  inputParser,
		logger:       logger,
		pathModifier: pathModifier,
		now:          time.Now,
	}
}

// ProcessConfig ...
func (s SyncConfigParser) ProcessConfig() (Config, error) {
	var input Input
	if err := s.inputParser.Parse(&input); err != nil {
		return Config{}, err
	}

	stepconf.Print(input)
	s.logger.Println()

	s.logger.EnableDebugLog(input.Verbose)

	if input.RequestTimeout < 0 {
		return Config{}, fmt.Errorf("invalid request timeout (%d), should not be negative", input.RequestTimeout)
	}

	summaryPath, err := s.pathModifier.AbsPath(input.SummaryPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute summary path: %w", err)
	}

	dueOn, err := s.parseDueOn(input.MilestoneDueOn)
	if err != nil {
		return Config{}, err
	}

	attachments, err := s.parseAttachments(input.RunAttachments)
	if err != nil {
		return Config{}, err
	}

	return Config{
		TestRailURL: strings.TrimSpace(input.TestRailURL),
		Credentials: apiclient.Credentials{
			User:     input.TestRailUser,
			Password: string(input.TestRailPassword),
		},
		RequestTimeout: time.Duration(input.RequestTimeout) * time.Second,

		SummaryPath: summaryPath,

		ProjectName:         input.ProjectName,
		ProjectAnnouncement: input.ProjectAnnouncement,
		SuiteMode:           testrail.SuiteMode(input.SuiteMode),
		RecreateProject:     input.RecreateProject,

		MilestoneName:        input.MilestoneName,
		MilestoneDescription: input.MilestoneDescription,
		MilestoneDueOn:       dueOn,

		SuiteName:   input.SuiteName,
		SectionName: input.SectionName,

		RunName:        input.RunName,
		RunDescription: input.RunDescription,
		IncludeAll:     input.IncludeAll,
		RunAttachments: attachments,

		DeployDir: input.DeployDir,
	}, nil
}

// parseDueOn reads unix seconds; an empty value means now.
func (s SyncConfigParser) parseDueOn(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return s.now(), nil
	}

	seconds, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid milestone due date (%s), should be a unix timestamp: %w", value, err)
	}
	return time.Unix(seconds, 0), nil
}

func (s SyncConfigParser) parseAttachments(value string) ([]string, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	paths, err := shellquote.Split(value)
	if err != nil {
		return nil, fmt.Errorf("failed to parse run attachments (%s): %w", value, err)
	}

	var attachments []string
	for _, pth := range paths {
		absPath, err := s.pathModifier.AbsPath(pth)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path of attachment (%s): %w", pth, err)
		}
		attachments = append(attachments, absPath)
	}
	return attachments, nil
}

// SyncRunner ...
type SyncRunner struct {
	logger         log.Logger
	builderFactory BuilderFactory
	outputExporter output.Exporter
}

// NewSyncRunner ...
func NewSyncRunner(logger log.Logger, builderFactory BuilderFactory, outputExporter output.Exporter) SyncRunner {
	return SyncRunner{
		logger:         logger,
		builderFactory: builderFactory,
		outputExporter: outputExporter,
	}
}

// Run creates the project structure, the cases and the run, then submits one
// result per test of the summary.
func (s SyncRunner) Run(cfg Config) (Result, error) {
	result := Result{DeployDir: cfg.DeployDir}

	builder, err := s.builderFactory.NewBuilder(cfg.SummaryPath, cfg.TestRailURL, cfg.Credentials, cfg.RequestTimeout)
	if err != nil {
		return result, err
	}

	if cfg.RecreateProject {
		s.dropProject(builder, cfg.ProjectName)
	}

	s.logger.Println()
	s.logger.Infof("Creating project")

	project, err := builder.AddProject(cfg.ProjectName, cfg.ProjectAnnouncement, cfg.SuiteMode)
	if err != nil {
		return result, err
	}
	result.ProjectID = project.ID
	s.logger.Printf("- project: %s (P%d)", project.Name, project.ID)

	milestone, err := builder.AddMilestone(project.ID, testrail.AddMilestoneRequest{
		Name:        cfg.MilestoneName,
		Description: cfg.MilestoneDescription,
		DueOn:       cfg.MilestoneDueOn.Unix(),
	})
	if err != nil {
		return result, err
	}
	s.logger.Printf("- milestone: %s (M%d)", milestone.Name, milestone.ID)

	suiteID, err := s.suiteID(builder, project.ID, cfg.SuiteName)
	if err != nil {
		return result, err
	}

	section, err := builder.AddSection(project.ID, suiteID, cfg.SectionName, nil)
	if err != nil {
		return result, err
	}
	s.logger.Printf("- section: %s (%d)", section.Name, section.ID)

	s.logger.Println()
	s.logger.Infof("Creating cases")

	details, err := builder.AddCases(section.ID, milestone.ID, nil, nil)
	if err != nil {
		return result, err
	}
	result.CaseDetails = details
	s.logger.Printf("%d case(s) created", len(details))

	runRequest := testrail.AddRunRequest{
		SuiteID:     suiteID,
		Name:        cfg.RunName,
		Description: cfg.RunDescription,
		MilestoneID: milestone.ID,
	}
	if !cfg.IncludeAll {
		includeAll := false
		runRequest.IncludeAll = &includeAll
		runRequest.CaseIDs = caseIDs(details)
	}

	run, err := builder.AddRun(project.ID, runRequest)
	if err != nil {
		return result, err
	}
	result.RunID = run.ID
	result.RunURL = run.URL
	s.logger.Printf("- run: %s (R%d)", run.Name, run.ID)

	s.logger.Println()
	s.logger.Infof("Submitting results")

	var resultsErr error
	progress.NewDefaultWrapper("Submitting results").WrapAction(func() {
		_, resultsErr = builder.AddResultsForCases(details, run.ID)
	})
	if resultsErr != nil {
		return result, resultsErr
	}

	result.PassedCount, result.FailedCount = printTestResults(s.logger, builder.Document().Tests, details)

	if err := s.uploadAttachments(builder, run.ID, cfg.RunAttachments); err != nil {
		return result, err
	}

	s.logger.Println()
	s.logger.Donef("Results synced: %d passed, %d failed", result.PassedCount, result.FailedCount)
	if result.RunURL != "" {
		s.logger.Printf("Run: %s", result.RunURL)
	}

	return result, nil
}

// Export ...
func (s SyncRunner) Export(result Result, syncFailed bool) error {
	s.outputExporter.ExportSyncResult(syncFailed || result.FailedCount > 0)

	if result.RunID != 0 {
		s.outputExporter.ExportRunInfo(result.ProjectID, result.RunID, result.RunURL)
	}

	if result.CaseDetails != nil && result.DeployDir != "" {
		if err := s.outputExporter.ExportCaseMapping(result.DeployDir, result.CaseDetails); err != nil {
			return fmt.Errorf("failed to export case mapping: %w", err)
		}
	}

	return nil
}

// dropProject removes a previous project of the same name. Failures are only logged.
func (s SyncRunner) dropProject(builder testrail.Builder, name string) {
	s.logger.Println()
	s.logger.Infof("Removing existing project")

	project, err := builder.GetProject(name)
	if err != nil {
		s.logger.Warnf("Failed to look up project (%s): %s", name, err)
		return
	}
	if project == nil {
		s.logger.Printf("No project named %s", name)
		return
	}

	if err := builder.DropProject(project.ID); err != nil {
		s.logger.Warnf("Failed to remove project (%s): %s", name, err)
		return
	}
	s.logger.Printf("Project removed (P%d)", project.ID)
}

func (s SyncRunner) suiteID(builder testrail.Builder, projectID int, suiteName string) (int, error) {
	suites, err := builder.GetSuites(projectID)
	if err != nil {
		return 0, err
	}
	if len(suites) > 0 {
		s.logger.Printf("- suite: %s (S%d)", suites[0].Name, suites[0].ID)
		return suites[0].ID, nil
	}

	suite, err := builder.AddSuite(projectID, suiteName, "")
	if err != nil {
		return 0, err
	}
	s.logger.Printf("- suite: %s (S%d, created)", suite.Name, suite.ID)
	return suite.ID, nil
}

func (s SyncRunner) uploadAttachments(builder testrail.Builder, runID int, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	s.logger.Println()
	s.logger.Infof("Uploading run attachments")

	for _, pth := range paths {
		attachment, err := builder.AddAttachmentToRun(runID, pth)
		if err != nil {
			return err
		}
		s.logger.Printf("- %s (%d)", pth, attachment.AttachmentID)
	}
	return nil
}

func caseIDs(details []testrail.CaseDetail) []int {
	ids := make([]int, 0, len(details))
	for _, detail := range details {
		ids = append(ids, detail.CaseID)
	}
	return ids
}
