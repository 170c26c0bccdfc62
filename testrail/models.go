package testrail

// Result statuses ...
const (
	StatusPassed = 1
	StatusFailed = 5
)

// SuiteMode ...
type SuiteMode int

// Suite modes ...
const (
	SuiteModeSingle         SuiteMode = 1
	SuiteModeSingleBaseline SuiteMode = 2
	SuiteModeMultiple       SuiteMode = 3
)

// Project ...
type Project struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Announcement     string    `json:"announcement"`
	ShowAnnouncement bool      `json:"show_announcement"`
	SuiteMode        SuiteMode `json:"suite_mode"`
	IsCompleted      bool      `json:"is_completed"`
	URL              string    `json:"url"`
}

// Suite ...
type Suite struct {
	ID          int    `json:"id"`
	ProjectID   int    `json:"project_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Milestone ...
type Milestone struct {
	ID          int    `json:"id"`
	ProjectID   int    `json:"project_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DueOn       int64  `json:"due_on"`
	URL         string `json:"url"`
}

// Section ...
type Section struct {
	ID          int    `json:"id"`
	SuiteID     int    `json:"suite_id"`
	ParentID    *int   `json:"parent_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Depth       int    `json:"depth"`
}

// Case ...
type Case struct {
	ID          int    `json:"id"`
	SectionID   int    `json:"section_id"`
	Title       string `json:"title"`
	Refs        string `json:"refs"`
	TemplateID  int    `json:"template_id"`
	TypeID      int    `json:"type_id"`
	MilestoneID int    `json:"milestone_id"`
}

// CaseType ...
type CaseType struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
}

// Run ...
type Run struct {
	ID           int    `json:"id"`
	ProjectID    int    `json:"project_id"`
	SuiteID      int    `json:"suite_id"`
	MilestoneID  int    `json:"milestone_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	IncludeAll   bool   `json:"include_all"`
	PassedCount  int    `json:"passed_count"`
	FailedCount  int    `json:"failed_count"`
	URL          string `json:"url"`
	IsCompleted  bool   `json:"is_completed"`
	AssignedToID *int   `json:"assignedto_id"`
}

// Result ...
type Result struct {
	ID       int    `json:"id"`
	TestID   int    `json:"test_id"`
	StatusID int    `json:"status_id"`
	Comment  string `json:"comment"`
}

// Attachment ...
type Attachment struct {
	AttachmentID int `json:"attachment_id"`
}

// CaseDetail pairs a test of the summary with the case created for it.
type CaseDetail struct {
	CaseID int    `json:"case_id"`
	Name   string `json:"name"`
	TestID string `json:"test_id"`
}

// AddMilestoneRequest ...
type AddMilestoneRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	DueOn       int64  `json:"due_on"`
	ParentID    *int   `json:"parent_id,omitempty"`
	Refs        string `json:"refs,omitempty"`
	StartOn     *int64 `json:"start_on,omitempty"`
}

// AddRunRequest ...
type AddRunRequest struct {
	SuiteID      int    `json:"suite_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	MilestoneID  int    `json:"milestone_id"`
	AssignedToID *int   `json:"assignedto_id,omitempty"`
	// IncludeAll defaults to true when nil.
	IncludeAll *bool  `json:"include_all"`
	CaseIDs    []int  `json:"case_ids,omitempty"`
	Refs       string `json:"refs,omitempty"`
}

type addProjectRequest struct {
	Name             string    `json:"name"`
	Announcement     string    `json:"announcement"`
	ShowAnnouncement bool      `json:"show_announcement"`
	SuiteMode        SuiteMode `json:"suite_mode"`
}

type addSuiteRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type addSectionRequest struct {
	SuiteID     int    `json:"suite_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    *int   `json:"parent_id,omitempty"`
}

type addCaseRequest struct {
	Title       string `json:"title"`
	TemplateID  *int   `json:"template_id,omitempty"`
	Refs        string `json:"refs"`
	MilestoneID int    `json:"milestone_id"`
	TypeID      *int   `json:"type_id,omitempty"`
}

type addResultRequest struct {
	StatusID int    `json:"status_id"`
	Comment  string `json:"comment"`
}
