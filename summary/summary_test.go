package summary

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSummary = `{
	"tests": {
		"t1": {"name": "CaseA", "result": "PASS", "duration": 1.5},
		"t2": {"name": "CaseB", "result": "FAIL"},
		"t0": {"name": "CaseC", "result": "SKIP"}
	},
	"errors": {
		"e1": {"test-ids": ["t2"], "message": "boom", "kind": "assert"},
		"e2": {"test-ids": ["t0", "t2"], "message": "bang", "trace": "main.go:1"}
	}
}`

func Test_GivenSummary_WhenParsed_ThenKeepsDocumentOrder(t *testing.T) {
	// When
	document, err := Parse([]byte(sampleSummary))

	// Then
	require.NoError(t, err)
	require.True(t, document.HasTests)
	require.Len(t, document.Tests, 3)

	var ids []string
	for _, test := range document.Tests {
		ids = append(ids, test.ID)
	}
	assert.Equal(t, []string{"t1", "t2", "t0"}, ids)

	first := document.Tests[0]
	assert.Equal(t, "CaseA", first.Name)
	assert.True(t, first.Passed())
	assert.Equal(t, []string{"name", "result", "duration"}, first.Fields.Keys())
	assert.False(t, document.Tests[1].Passed())

	require.Len(t, document.Errors, 2)
	assert.Equal(t, "e1", document.Errors[0].ID)
	testIDs, err := document.Errors[1].TestIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"t0", "t2"}, testIDs)
}

func Test_GivenMultipleMatchingErrors_WhenMerged_ThenLaterFieldsWin(t *testing.T) {
	// Given
	document, err := Parse([]byte(sampleSummary))
	require.NoError(t, err)

	// When
	merged, found, err := document.ErrorsForTest("t2")

	// Then
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"test-ids", "message", "kind", "trace"}, merged.Keys())

	content, err := json.Marshal(merged)
	require.NoError(t, err)
	assert.JSONEq(t, `{"test-ids": ["t0", "t2"], "message": "bang", "kind": "assert", "trace": "main.go:1"}`, string(content))
}

func Test_GivenPassingTest_WhenLookingUpErrors_ThenNothingMatches(t *testing.T) {
	// Given
	document, err := Parse([]byte(sampleSummary))
	require.NoError(t, err)

	// When
	merged, found, err := document.ErrorsForTest("t1")

	// Then
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 0, merged.Len())
}

func Test_GivenObject_WhenMarshalled_ThenFieldOrderIsPreserved(t *testing.T) {
	// Given
	var object Object
	require.NoError(t, json.Unmarshal([]byte(`{"z": 1, "a": {"nested": [1, 2]}, "m": "x"}`), &object))

	// When
	content, err := json.Marshal(object)

	// Then
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":{"nested":[1,2]},"m":"x"}`, string(content))
}

func Test_GivenEmptyObject_WhenMarshalled_ThenWritesEmptyObject(t *testing.T) {
	content, err := json.Marshal(Object{})

	require.NoError(t, err)
	assert.Equal(t, `{}`, string(content))
}

func Test_GivenMissingOrEmptyTests_WhenParsed_ThenHasTestsReflectsPresence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		hasTests bool
	}{
		{name: "missing tests key", input: `{"errors": {}}`, hasTests: false},
		{name: "null tests", input: `{"tests": null}`, hasTests: false},
		{name: "empty tests", input: `{"tests": {}}`, hasTests: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			document, err := Parse([]byte(tt.input))

			require.NoError(t, err)
			assert.Equal(t, tt.hasTests, document.HasTests)
			assert.Empty(t, document.Tests)
		})
	}
}

func Test_GivenMalformedSummary_WhenParsed_ThenFails(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not json", input: `not json`},
		{name: "top level array", input: `[]`},
		{name: "tests is a list", input: `{"tests": []}`},
		{name: "test record is a string", input: `{"tests": {"t1": "PASS"}}`},
		{name: "test without name", input: `{"tests": {"t1": {"result": "PASS"}}}`},
		{name: "numeric name", input: `{"tests": {"t1": {"name": 1, "result": "PASS"}}}`},
		{name: "errors is a list", input: `{"tests": {}, "errors": []}`},
		{name: "error record is a string", input: `{"errors": {"e1": "boom"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedSummary)
		})
	}
}

func Test_GivenPassingTestsAndErrorWithoutTestIDs_WhenParsed_ThenSucceeds(t *testing.T) {
	// Given
	input := `{"tests": {"t1": {"name": "CaseA", "result": "PASS"}}, "errors": {"e1": {"message": "boom"}}}`

	// When
	document, err := Parse([]byte(input))

	// Then
	require.NoError(t, err)
	require.Len(t, document.Tests, 1)
	assert.True(t, document.Tests[0].Passed())
	require.Len(t, document.Errors, 1)
}

func Test_GivenMalformedErrorRecord_WhenLookingUpErrors_ThenFails(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "error without test ids", input: `{"tests": {"t1": {"name": "CaseA", "result": "FAIL"}}, "errors": {"e1": {"message": "boom"}}}`},
		{name: "numeric test ids", input: `{"tests": {"t1": {"name": "CaseA", "result": "FAIL"}}, "errors": {"e1": {"test-ids": [1]}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			document, err := Parse([]byte(tt.input))
			require.NoError(t, err)

			_, _, err = document.ErrorsForTest("t1")

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedSummary)
		})
	}
}

func Test_GivenNonStringOrMissingResult_WhenParsed_ThenTestFailed(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		result string
	}{
		{name: "boolean result", input: `{"tests": {"t1": {"name": "CaseA", "result": false}}}`, result: "false"},
		{name: "numeric result", input: `{"tests": {"t1": {"name": "CaseA", "result": 0}}}`, result: "0"},
		{name: "missing result", input: `{"tests": {"t1": {"name": "CaseA"}}}`, result: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			document, err := Parse([]byte(tt.input))

			require.NoError(t, err)
			require.Len(t, document.Tests, 1)
			assert.Equal(t, tt.result, document.Tests[0].Result)
			assert.False(t, document.Tests[0].Passed())
		})
	}
}

func Test_GivenObject_WhenMergingAndSetting_ThenExistingKeysKeepTheirPosition(t *testing.T) {
	// Given
	var object Object
	object.Set("a", json.RawMessage(`1`))
	object.Set("b", json.RawMessage(`2`))

	var other Object
	other.Set("c", json.RawMessage(`3`))
	other.Set("a", json.RawMessage(`4`))

	// When
	object.Merge(other)

	// Then
	assert.Equal(t, []string{"a", "b", "c"}, object.Keys())
	value, ok := object.Get("a")
	require.True(t, ok)
	assert.Equal(t, `4`, string(value))
}

func Test_GivenSummaryFile_WhenLoaded_ThenParsesIt(t *testing.T) {
	// Given
	pth := filepath.Join(t.TempDir(), "summary.json")
	require.NoError(t, os.WriteFile(pth, []byte(sampleSummary), 0600))

	// When
	document, err := Load(pth)

	// Then
	require.NoError(t, err)
	assert.Len(t, document.Tests, 3)
}

func Test_GivenMissingFile_WhenLoaded_ThenFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
}
