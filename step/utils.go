package step

import (
	"github.com/bitrise-io/go-utils/colorstring"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-testrail-sync/summary"
	"github.com/bitrise-steplib/steps-testrail-sync/testrail"
)

func printTestResults(logger log.Logger, tests []summary.Test, details []testrail.CaseDetail) (passed, failed int) {
	caseIDs := map[string]int{}
	for _, detail := range details {
		caseIDs[detail.TestID] = detail.CaseID
	}

	for _, test := range tests {
		status := colorstring.Green("PASS")
		if test.Passed() {
			passed++
		} else {
			result := test.Result
			if result == "" {
				result = "FAIL"
			}
			status = colorstring.Red(result)
			failed++
		}
		logger.Printf("%s %s (C%d)", status, test.Name, caseIDs[test.ID])
	}
	return passed, failed
}
