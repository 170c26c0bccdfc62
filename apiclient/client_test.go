package apiclient

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	testUser     = "user@example.com"
	testPassword = "p4ss:w0rd"
)

func Test_GivenCredentials_WhenBuildingAuthHeader_ThenDecodesToUserAndPassword(t *testing.T) {
	credentials := []Credentials{
		{User: testUser, Password: testPassword},
		{User: "", Password: ""},
		{User: "ünïcode", Password: "пароль"},
	}

	for _, c := range credentials {
		// When
		header := BasicAuth(c.User, c.Password)

		// Then
		require.True(t, strings.HasPrefix(header, "Basic "))
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, "Basic "))
		require.NoError(t, err)
		assert.Equal(t, c.User+":"+c.Password, string(decoded))
	}
}

func Test_GivenBaseURL_WhenBuildingEndpoint_ThenTrailingSlashDoesNotMatter(t *testing.T) {
	withSlash := EndpointURL("https://example.testrail.io/")
	withoutSlash := EndpointURL("https://example.testrail.io")

	assert.Equal(t, withSlash, withoutSlash)
	assert.Equal(t, "https://example.testrail.io/index.php?/api/v2/", withSlash)
}

func Test_GivenRoute_WhenGet_ThenSendsAuthenticatedJSONRequest(t *testing.T) {
	// Given
	handler, requests := httphelpers.RecordingHandler(httphelpers.HandlerWithJSONResponse([]interface{}{
		map[string]interface{}{"id": 1, "name": "First"},
	}, nil))

	httphelpers.WithServer(handler, func(server *httptest.Server) {
		client := createClient(server)

		// When
		value, err := client.Get("get_projects", "")

		// Then
		require.NoError(t, err)
		assert.Equal(t, ldvalue.ArrayType, value.Type())
		assert.Equal(t, "First", value.GetByIndex(0).GetByKey("name").StringValue())

		request := <-requests
		assert.Equal(t, http.MethodGet, request.Request.Method)
		assert.Equal(t, "/index.php", request.Request.URL.Path)
		assert.Equal(t, "/api/v2/get_projects", request.Request.URL.RawQuery)
		assert.Equal(t, "application/json", request.Request.Header.Get("Content-Type"))
		assert.Equal(t, BasicAuth(testUser, testPassword), request.Request.Header.Get("Authorization"))
	})
}

func Test_GivenSuccessStatus_WhenCalled_ThenReturnsDecodedBody(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusCreated} {
		body := []byte(`{"id": 7, "name": "Suite"}`)
		handler := httphelpers.HandlerWithResponse(status, nil, body)

		httphelpers.WithServer(handler, func(server *httptest.Server) {
			client := createClient(server)

			getValue, err := client.Get("get_suite/7", "")
			require.NoError(t, err)
			postValue, err := client.Post("add_suite/1", map[string]string{"name": "Suite"})
			require.NoError(t, err)

			expected := ldvalue.Parse(body)
			assert.True(t, expected.Equal(getValue))
			assert.True(t, expected.Equal(postValue))
		})
	}
}

func Test_GivenErrorStatus_WhenCalled_ThenReturnsAPIError(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		body            string
		expectedMessage string
	}{
		{
			name:            "structured error",
			status:          http.StatusBadRequest,
			body:            `{"error": "Field :name is a required field."}`,
			expectedMessage: "Field :name is a required field.",
		},
		{
			name:            "json without error field",
			status:          http.StatusForbidden,
			body:            `{"reason": "denied"}`,
			expectedMessage: `{"reason":"denied"}`,
		},
		{
			name:            "plain text",
			status:          http.StatusInternalServerError,
			body:            "Internal Server Error",
			expectedMessage: "Internal Server Error",
		},
		{
			name:            "first non-success status",
			status:          http.StatusAccepted,
			body:            "",
			expectedMessage: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := httphelpers.HandlerWithResponse(tt.status, nil, []byte(tt.body))

			httphelpers.WithServer(handler, func(server *httptest.Server) {
				client := createClient(server)

				// When
				_, getErr := client.Get("get_projects", "")
				_, postErr := client.Post("add_project", map[string]string{})

				// Then
				for _, err := range []error{getErr, postErr} {
					var apiErr *APIError
					require.True(t, errors.As(err, &apiErr))
					assert.Equal(t, tt.status, apiErr.StatusCode)
					assert.Equal(t, tt.expectedMessage, apiErr.Message)
				}
			})
		})
	}
}

func Test_GivenEmptyOrInvalidBody_WhenCalled_ThenReturnsEmptyObject(t *testing.T) {
	for _, body := range []string{"", "   ", "not json", "{broken"} {
		handler := httphelpers.HandlerWithResponse(http.StatusOK, nil, []byte(body))

		httphelpers.WithServer(handler, func(server *httptest.Server) {
			client := createClient(server)

			value, err := client.Post("delete_project/1", map[string]string{})

			require.NoError(t, err)
			assert.Equal(t, ldvalue.ObjectType, value.Type())
			assert.Equal(t, 0, value.Count())
		})
	}
}

func Test_GivenEchoServer_WhenPosting_ThenRoundTripsThePayload(t *testing.T) {
	// Given
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", r.Header.Get("Content-Type"))
		_, _ = w.Write(body)
	})
	payload := ldvalue.ObjectBuild().
		Set("title", ldvalue.String("CaseA")).
		Set("milestone_id", ldvalue.Int(3)).
		Set("refs", ldvalue.Null()).
		Set("tags", ldvalue.ArrayOf(ldvalue.String("smoke"), ldvalue.Bool(true), ldvalue.Float64(1.5))).
		Build()

	httphelpers.WithServer(echo, func(server *httptest.Server) {
		client := createClient(server)

		// When
		value, err := client.Post("add_case/1", payload)

		// Then
		require.NoError(t, err)
		assert.True(t, payload.Equal(value), "expected %s, got %s", payload.JSONString(), value.JSONString())
	})
}

func Test_GivenAttachmentRoute_WhenPosting_ThenUploadsMultipartFile(t *testing.T) {
	// Given
	pth := filepath.Join(t.TempDir(), "summary.json")
	require.NoError(t, os.WriteFile(pth, []byte(`{"tests": {}}`), 0600))

	var uploadedName, uploadedContent, contentType string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		file, header, err := r.FormFile("attachment")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		content, _ := io.ReadAll(file)
		uploadedName = header.Filename
		uploadedContent = string(content)
		_, _ = w.Write([]byte(`{"attachment_id": 443}`))
	})

	httphelpers.WithServer(handler, func(server *httptest.Server) {
		client := createClient(server)

		// When
		value, err := client.Post("add_attachment_to_run/5", pth)

		// Then
		require.NoError(t, err)
		assert.Equal(t, 443, value.GetByKey("attachment_id").IntValue())
		assert.True(t, strings.HasPrefix(contentType, "multipart/form-data"))
		assert.Equal(t, "summary.json", uploadedName)
		assert.Equal(t, `{"tests": {}}`, uploadedContent)
	})
}

func Test_GivenAttachmentRoute_WhenPayloadIsNotAPath_ThenFails(t *testing.T) {
	client := NewClient("http://localhost", Credentials{}, http.DefaultClient, fileutil.NewFileManager(), log.NewLogger())

	_, err := client.Post("add_attachment_to_result/1", map[string]string{})

	require.Error(t, err)
}

func Test_GivenMissingAttachmentFile_WhenPosting_ThenFailsWithoutRequest(t *testing.T) {
	// Given
	handler, requests := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(http.StatusOK))

	httphelpers.WithServer(handler, func(server *httptest.Server) {
		client := createClient(server)

		// When
		_, err := client.Post("add_attachment_to_run/5", filepath.Join(t.TempDir(), "missing.txt"))

		// Then
		require.Error(t, err)
		assert.Len(t, requests, 0)
	})
}

func Test_GivenAttachmentDownload_WhenWritable_ThenSavesBodyAndReturnsPath(t *testing.T) {
	// Given
	content := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff}
	destination := filepath.Join(t.TempDir(), "screenshot.png")
	handler := httphelpers.HandlerWithResponse(http.StatusOK, nil, content)

	httphelpers.WithServer(handler, func(server *httptest.Server) {
		client := createClient(server)

		// When
		value, err := client.Get("get_attachment/12", destination)

		// Then
		require.NoError(t, err)
		assert.Equal(t, destination, value.StringValue())

		saved, err := os.ReadFile(destination)
		require.NoError(t, err)
		assert.Equal(t, content, saved)
	})
}

func Test_GivenAttachmentDownload_WhenPathIsUnwritable_ThenReturnsFailureMarker(t *testing.T) {
	// Given
	destination := t.TempDir()
	handler := httphelpers.HandlerWithResponse(http.StatusOK, nil, []byte("binary"))

	httphelpers.WithServer(handler, func(server *httptest.Server) {
		client := createClient(server)

		// When
		value, err := client.Get("get_attachment/12", destination)

		// Then
		require.NoError(t, err)
		assert.Equal(t, AttachmentSaveFailed, value.StringValue())
	})
}

// Helpers

func createClient(server *httptest.Server) Client {
	return NewClient(server.URL, Credentials{User: testUser, Password: testPassword}, server.Client(), fileutil.NewFileManager(), log.NewLogger())
}
