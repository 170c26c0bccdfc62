package testrail

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-testrail-sync/apiclient"
	"github.com/bitrise-steplib/steps-testrail-sync/summary"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Builder maps the synchronization steps to TestRail API calls.
type Builder interface {
	Document() summary.Document

	GetProject(name string) (*Project, error)
	AddProject(name, announcement string, suiteMode SuiteMode) (Project, error)
	DropProject(projectID int) error

	GetSuites(projectID int) ([]Suite, error)
	AddSuite(projectID int, name, description string) (Suite, error)
	AddMilestone(projectID int, request AddMilestoneRequest) (Milestone, error)
	AddSection(projectID, suiteID int, name string, parentID *int) (Section, error)

	GetCaseTypes() ([]CaseType, error)
	GetCases(projectID int, sectionID *int) (map[int]string, error)
	AddCases(sectionID, milestoneID int, templateID, typeID *int) ([]CaseDetail, error)

	AddRun(projectID int, request AddRunRequest) (Run, error)
	AddResultsForCases(caseDetails []CaseDetail, runID int) ([]Result, error)

	AddAttachmentToRun(runID int, pth string) (Attachment, error)
	AddAttachmentToResult(resultID int, pth string) (Attachment, error)
	GetAttachment(attachmentID int, destinationPath string) (string, error)
}

type builder struct {
	client   apiclient.Client
	document summary.Document
	logger   log.Logger
}

// NewBuilder ...
func NewBuilder(client apiclient.Client, document summary.Document, logger log.Logger) Builder {
	return &builder{
		client:   client,
		document: document,
		logger:   logger,
	}
}

func (b builder) Document() summary.Document {
	return b.document
}

// GetProject returns nil if no project is called exactly name.
func (b builder) GetProject(name string) (*Project, error) {
	value, err := b.client.Get("get_projects", "")
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := listItems(value, "projects")
	for i := 0; i < projects.Count(); i++ {
		item := projects.GetByIndex(i)
		if item.GetByKey("name").StringValue() != name {
			continue
		}

		var project Project
		if err := decode(item, &project); err != nil {
			return nil, err
		}
		return &project, nil
	}
	return nil, nil
}

func (b builder) AddProject(name, announcement string, suiteMode SuiteMode) (Project, error) {
	value, err := b.client.Post("add_project", addProjectRequest{
		Name:             name,
		Announcement:     announcement,
		ShowAnnouncement: true,
		SuiteMode:        suiteMode,
	})
	if err != nil {
		return Project{}, fmt.Errorf("failed to add project (%s): %w", name, err)
	}

	var project Project
	err = decode(value, &project)
	return project, err
}

func (b builder) DropProject(projectID int) error {
	if _, err := b.client.Post(fmt.Sprintf("delete_project/%d", projectID), struct{}{}); err != nil {
		return fmt.Errorf("failed to delete project (%d): %w", projectID, err)
	}
	return nil
}

func (b builder) GetSuites(projectID int) ([]Suite, error) {
	value, err := b.client.Get(fmt.Sprintf("get_suites/%d", projectID), "")
	if err != nil {
		return nil, fmt.Errorf("failed to list suites of project (%d): %w", projectID, err)
	}

	var suites []Suite
	err = decode(listItems(value, "suites"), &suites)
	return suites, err
}

func (b builder) AddSuite(projectID int, name, description string) (Suite, error) {
	value, err := b.client.Post(fmt.Sprintf("add_suite/%d", projectID), addSuiteRequest{
		Name:        name,
		Description: description,
	})
	if err != nil {
		return Suite{}, fmt.Errorf("failed to add suite (%s): %w", name, err)
	}

	var suite Suite
	err = decode(value, &suite)
	return suite, err
}

func (b builder) AddMilestone(projectID int, request AddMilestoneRequest) (Milestone, error) {
	value, err := b.client.Post(fmt.Sprintf("add_milestone/%d", projectID), request)
	if err != nil {
		return Milestone{}, fmt.Errorf("failed to add milestone (%s): %w", request.Name, err)
	}

	var milestone Milestone
	err = decode(value, &milestone)
	return milestone, err
}

func (b builder) AddSection(projectID, suiteID int, name string, parentID *int) (Section, error) {
	value, err := b.client.Post(fmt.Sprintf("add_section/%d", projectID), addSectionRequest{
		SuiteID:     suiteID,
		Name:        name,
		Description: name,
		ParentID:    parentID,
	})
	if err != nil {
		return Section{}, fmt.Errorf("failed to add section (%s): %w", name, err)
	}

	var section Section
	err = decode(value, &section)
	return section, err
}

func (b builder) GetCaseTypes() ([]CaseType, error) {
	value, err := b.client.Get("get_case_types", "")
	if err != nil {
		return nil, fmt.Errorf("failed to list case types: %w", err)
	}

	var caseTypes []CaseType
	err = decode(value, &caseTypes)
	return caseTypes, err
}

// GetCases returns the case titles by case id.
func (b builder) GetCases(projectID int, sectionID *int) (map[int]string, error) {
	route := fmt.Sprintf("get_cases/%d", projectID)
	if sectionID != nil {
		route += fmt.Sprintf("&section_id=%d", *sectionID)
	}

	value, err := b.client.Get(route, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list cases of project (%d): %w", projectID, err)
	}

	cases := listItems(value, "cases")
	titles := map[int]string{}
	for i := 0; i < cases.Count(); i++ {
		item := cases.GetByIndex(i)
		titles[item.GetByKey("id").IntValue()] = item.GetByKey("title").StringValue()
	}
	return titles, nil
}

// AddCases creates one case per test of the summary, in document order.
func (b builder) AddCases(sectionID, milestoneID int, templateID, typeID *int) ([]CaseDetail, error) {
	if !b.document.HasTests {
		b.logger.Warnf("The summary has no tests, no cases will be created")
	}

	route := fmt.Sprintf("add_case/%d", sectionID)
	details := make([]CaseDetail, 0, len(b.document.Tests))
	for _, test := range b.document.Tests {
		value, err := b.client.Post(route, addCaseRequest{
			Title:       test.Name,
			TemplateID:  templateID,
			Refs:        test.Name,
			MilestoneID: milestoneID,
			TypeID:      typeID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to add case for test (%s): %w", test.ID, err)
		}

		var created Case
		if err := decode(value, &created); err != nil {
			return nil, err
		}

		b.logger.Debugf("Test (%s) %s -> case C%d", test.ID, test.Name, created.ID)
		details = append(details, CaseDetail{
			CaseID: created.ID,
			Name:   test.Name,
			TestID: test.ID,
		})
	}
	return details, nil
}

func (b builder) AddRun(projectID int, request AddRunRequest) (Run, error) {
	if request.IncludeAll == nil {
		includeAll := true
		request.IncludeAll = &includeAll
	}

	value, err := b.client.Post(fmt.Sprintf("add_run/%d", projectID), request)
	if err != nil {
		return Run{}, fmt.Errorf("failed to add run (%s): %w", request.Name, err)
	}

	var run Run
	err = decode(value, &run)
	return run, err
}

// AddResultsForCases submits one result per test of the summary, in document
// order, to the case created for the test.
func (b builder) AddResultsForCases(caseDetails []CaseDetail, runID int) ([]Result, error) {
	if !b.document.HasTests {
		b.logger.Warnf("The summary has no tests, no results will be submitted")
	}

	results := make([]Result, 0, len(b.document.Tests))
	for _, test := range b.document.Tests {
		caseID, ok := findCaseID(caseDetails, test.ID)
		if !ok {
			return nil, &MissingCaseMappingError{TestID: test.ID}
		}

		status := StatusPassed
		if !test.Passed() {
			status = StatusFailed
		}

		comment, err := b.resultComment(test, status)
		if err != nil {
			return nil, err
		}

		value, err := b.client.Post(fmt.Sprintf("add_result_for_case/%d/%d", runID, caseID), addResultRequest{
			StatusID: status,
			Comment:  comment,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to add result for test (%s): %w", test.ID, err)
		}

		var result Result
		if err := decode(value, &result); err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (b builder) AddAttachmentToRun(runID int, pth string) (Attachment, error) {
	return b.addAttachment(fmt.Sprintf("add_attachment_to_run/%d", runID), pth)
}

func (b builder) AddAttachmentToResult(resultID int, pth string) (Attachment, error) {
	return b.addAttachment(fmt.Sprintf("add_attachment_to_result/%d", resultID), pth)
}

// GetAttachment returns the saved path, or apiclient.AttachmentSaveFailed.
func (b builder) GetAttachment(attachmentID int, destinationPath string) (string, error) {
	value, err := b.client.Get(fmt.Sprintf("get_attachment/%d", attachmentID), destinationPath)
	if err != nil {
		return "", fmt.Errorf("failed to download attachment (%d): %w", attachmentID, err)
	}
	return value.StringValue(), nil
}

func (b builder) addAttachment(route, pth string) (Attachment, error) {
	value, err := b.client.Post(route, pth)
	if err != nil {
		return Attachment{}, fmt.Errorf("failed to upload attachment (%s): %w", pth, err)
	}

	var attachment Attachment
	err = decode(value, &attachment)
	return attachment, err
}

type resultComment struct {
	Results summary.Object  `json:"results"`
	Errors  *summary.Object `json:"errors,omitempty"`
}

func (b builder) resultComment(test summary.Test, status int) (string, error) {
	comment := resultComment{Results: test.Fields}
	if status == StatusFailed {
		merged, found, err := b.document.ErrorsForTest(test.ID)
		if err != nil {
			return "", fmt.Errorf("failed to collect errors of test (%s): %w", test.ID, err)
		}
		if found {
			comment.Errors = &merged
		}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(comment); err != nil {
		return "", fmt.Errorf("failed to encode result comment for test (%s): %w", test.ID, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func findCaseID(caseDetails []CaseDetail, testID string) (int, bool) {
	caseID, found := 0, false
	for _, detail := range caseDetails {
		if detail.TestID == testID {
			caseID, found = detail.CaseID, true
		}
	}
	return caseID, found
}

// listItems accepts both a bare list and the paginated {"<key>": [...]} form.
func listItems(value ldvalue.Value, key string) ldvalue.Value {
	if value.Type() == ldvalue.ObjectType {
		return value.GetByKey(key)
	}
	return value
}

func decode(value ldvalue.Value, out interface{}) error {
	if err := json.Unmarshal([]byte(value.JSONString()), out); err != nil {
		return fmt.Errorf("unexpected TestRail response (%s): %w", value.JSONString(), err)
	}
	return nil
}
