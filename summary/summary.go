// Package summary reads the JSON test summary produced by the test run.
//
// The document has two top level objects: "tests" maps a test id to its record
// ({"name": ..., "result": ..., ...}), "errors" maps an error id to failure
// details ({"test-ids": [...], ...}).
package summary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bitrise-io/go-utils/fileutil"
)

// PassResult is the result value of a passed test.
const PassResult = "PASS"

const (
	testsKey   = "tests"
	errorsKey  = "errors"
	nameKey    = "name"
	resultKey  = "result"
	testIDsKey = "test-ids"
)

// ErrMalformedSummary is wrapped by every error about a summary field that
// can not be used: reported by Parse for the document structure and test
// names, and by ErrorsForTest for error records.
var ErrMalformedSummary = errors.New("malformed summary document")

// Test ...
type Test struct {
	ID   string
	Name string
	// Result is the raw JSON text of a non-string result, empty when missing.
	Result string
	// Fields holds the whole test record, including name and result.
	Fields Object
}

// Passed ...
func (t Test) Passed() bool {
	return t.Result == PassResult
}

// Error ...
type Error struct {
	ID     string
	Fields Object
}

// TestIDs returns the ids of the tests the error record belongs to.
func (e Error) TestIDs() ([]string, error) {
	raw, ok := e.Fields.Get(testIDsKey)
	if !ok || isNull(raw) {
		return nil, malformed("%s.%s: missing %q", errorsKey, e.ID, testIDsKey)
	}
	var testIDs []string
	if err := json.Unmarshal(raw, &testIDs); err != nil {
		return nil, malformed("%s.%s: %q should be a list of test ids", errorsKey, e.ID, testIDsKey)
	}
	return testIDs, nil
}

// Document ...
type Document struct {
	// HasTests is false when the tests key is missing or null.
	HasTests bool
	Tests    []Test
	Errors   []Error
}

// Load reads and parses the summary document at pth.
func Load(pth string) (Document, error) {
	content, err := fileutil.ReadBytesFromFile(pth)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read summary (%s): %w", pth, err)
	}

	document, err := Parse(content)
	if err != nil {
		return Document{}, fmt.Errorf("failed to parse summary (%s): %w", pth, err)
	}
	return document, nil
}

// Parse ...
func Parse(data []byte) (Document, error) {
	root, err := parseObject(data)
	if err != nil {
		return Document{}, malformed("top level: %s", err)
	}

	var document Document

	if raw, ok := root.Get(testsKey); ok && !isNull(raw) {
		document.HasTests = true
		document.Tests, err = parseTests(raw)
		if err != nil {
			return Document{}, err
		}
	}

	if raw, ok := root.Get(errorsKey); ok && !isNull(raw) {
		document.Errors, err = parseErrors(raw)
		if err != nil {
			return Document{}, err
		}
	}

	return document, nil
}

// ErrorsForTest merges every error record listing testID, in document order.
// Later records overwrite same-named fields of earlier ones.
func (d Document) ErrorsForTest(testID string) (Object, bool, error) {
	var merged Object
	found := false
	for _, record := range d.Errors {
		testIDs, err := record.TestIDs()
		if err != nil {
			return Object{}, false, err
		}
		if !contains(testIDs, testID) {
			continue
		}
		merged.Merge(record.Fields)
		found = true
	}
	return merged, found, nil
}

func parseTests(raw json.RawMessage) ([]Test, error) {
	entries, err := parseObject(raw)
	if err != nil {
		return nil, malformed("%s: %s", testsKey, err)
	}

	tests := make([]Test, 0, entries.Len())
	for _, id := range entries.Keys() {
		value, _ := entries.Get(id)

		fields, err := parseObject(value)
		if err != nil {
			return nil, malformed("%s.%s: %s", testsKey, id, err)
		}

		name, err := stringField(fields, nameKey)
		if err != nil {
			return nil, malformed("%s.%s: %s", testsKey, id, err)
		}

		tests = append(tests, Test{
			ID:     id,
			Name:   name,
			Result: resultField(fields),
			Fields: fields,
		})
	}
	return tests, nil
}

func parseErrors(raw json.RawMessage) ([]Error, error) {
	entries, err := parseObject(raw)
	if err != nil {
		return nil, malformed("%s: %s", errorsKey, err)
	}

	records := make([]Error, 0, entries.Len())
	for _, id := range entries.Keys() {
		value, _ := entries.Get(id)

		fields, err := parseObject(value)
		if err != nil {
			return nil, malformed("%s.%s: %s", errorsKey, id, err)
		}

		records = append(records, Error{
			ID:     id,
			Fields: fields,
		})
	}
	return records, nil
}

func stringField(fields Object, key string) (string, error) {
	raw, ok := fields.Get(key)
	if !ok || isNull(raw) {
		return "", fmt.Errorf("missing %q", key)
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", fmt.Errorf("%q should be a string", key)
	}
	return value, nil
}

// resultField never fails: anything but the "PASS" string is a failed test.
func resultField(fields Object) string {
	raw, ok := fields.Get(resultKey)
	if !ok {
		return ""
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return string(bytes.TrimSpace(raw))
	}
	return value
}

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedSummary, fmt.Sprintf(format, args...))
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
