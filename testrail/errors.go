package testrail

import "fmt"

// MissingCaseMappingError is returned when a test of the summary has no
// created case among the given case details.
type MissingCaseMappingError struct {
	TestID string
}

func (e *MissingCaseMappingError) Error() string {
	return fmt.Sprintf("no TestRail case found for test (%s)", e.TestID)
}
