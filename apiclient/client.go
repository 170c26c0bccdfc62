package apiclient

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitrise-io/go-utils/v2/log"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// AttachmentSaveFailed is returned by Get instead of the destination path
// when a downloaded attachment could not be written.
const AttachmentSaveFailed = "Error saving attachment."

const (
	apiPath = "index.php?/api/v2/"

	getAttachmentRoutePrefix = "get_attachment/"
	addAttachmentRoutePrefix = "add_attachment"
	attachmentFormField      = "attachment"

	contentTypeJSON = "application/json"
)

// Credentials ...
type Credentials struct {
	User     string
	Password string
}

// FileWriter ...
type FileWriter interface {
	WriteBytes(path string, value []byte) error
}

// Client performs authenticated calls against the TestRail API.
type Client interface {
	// Get issues a GET request. For get_attachment/ routes the response body
	// is saved to destinationPath and the path is returned as a string value.
	Get(route, destinationPath string) (ldvalue.Value, error)
	// Post issues a POST request. For add_attachment routes data must be the
	// path of the file to upload, otherwise it is sent as JSON.
	Post(route string, data interface{}) (ldvalue.Value, error)
}

type client struct {
	endpoint    string
	credentials Credentials
	httpClient  *http.Client
	fileWriter  FileWriter
	logger      log.Logger
}

// NewClient ...
func NewClient(baseURL string, credentials Credentials, httpClient *http.Client, fileWriter FileWriter, logger log.Logger) Client {
	return &client{
		endpoint:    EndpointURL(baseURL),
		credentials: credentials,
		httpClient:  httpClient,
		fileWriter:  fileWriter,
		logger:      logger,
	}
}

// EndpointURL returns the API v2 endpoint of a TestRail instance.
func EndpointURL(baseURL string) string {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL + apiPath
}

// BasicAuth returns the Authorization header value for the given credentials.
func BasicAuth(user, password string) string {
	token := base64.StdEncoding.EncodeToString([]byte(user + ":" + password))
	return "Basic " + strings.TrimSpace(token)
}

func (c *client) Get(route, destinationPath string) (ldvalue.Value, error) {
	req, err := http.NewRequest(http.MethodGet, c.endpoint+route, nil)
	if err != nil {
		return ldvalue.Null(), fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeJSON)

	body, err := c.send(req)
	if err != nil {
		return ldvalue.Null(), err
	}

	if strings.HasPrefix(route, getAttachmentRoutePrefix) {
		if err := c.fileWriter.WriteBytes(destinationPath, body); err != nil {
			c.logger.Warnf("Failed to save attachment to %s: %s", destinationPath, err)
			return ldvalue.String(AttachmentSaveFailed), nil
		}
		return ldvalue.String(destinationPath), nil
	}

	return decodeBody(body), nil
}

func (c *client) Post(route string, data interface{}) (ldvalue.Value, error) {
	if strings.HasPrefix(route, addAttachmentRoutePrefix) {
		pth, ok := data.(string)
		if !ok {
			return ldvalue.Null(), fmt.Errorf("attachment upload expects a file path, got %T", data)
		}
		return c.postAttachment(route, pth)
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return ldvalue.Null(), fmt.Errorf("failed to encode request payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint+route, bytes.NewReader(payload))
	if err != nil {
		return ldvalue.Null(), fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeJSON)

	body, err := c.send(req)
	if err != nil {
		return ldvalue.Null(), err
	}
	return decodeBody(body), nil
}

func (c *client) postAttachment(route, pth string) (ldvalue.Value, error) {
	file, err := os.Open(pth)
	if err != nil {
		return ldvalue.Null(), fmt.Errorf("failed to open attachment (%s): %w", pth, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			c.logger.Warnf("Failed to close attachment (%s): %s", pth, err)
		}
	}()

	pipeReader, pipeWriter := io.Pipe()
	formWriter := multipart.NewWriter(pipeWriter)

	req, err := http.NewRequest(http.MethodPost, c.endpoint+route, pipeReader)
	if err != nil {
		return ldvalue.Null(), fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", formWriter.FormDataContentType())

	done := make(chan struct{})
	go func() {
		defer close(done)

		part, err := formWriter.CreateFormFile(attachmentFormField, filepath.Base(pth))
		if err == nil {
			_, err = io.Copy(part, file)
		}
		if err == nil {
			err = formWriter.Close()
		}
		pipeWriter.CloseWithError(err)
	}()

	body, err := c.send(req)
	// Unblocks the writer when the request ended before the body was consumed.
	_ = pipeReader.Close()
	<-done

	if err != nil {
		return ldvalue.Null(), err
	}
	return decodeBody(body), nil
}

func (c *client) send(req *http.Request) ([]byte, error) {
	req.Header.Set("Authorization", BasicAuth(c.credentials.User, c.credentials.Password))

	c.logger.Debugf("%s %s", req.Method, req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", req.Method, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Failed to close response body: %s", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode > http.StatusCreated {
		return nil, newAPIError(resp.StatusCode, body)
	}
	return body, nil
}

// decodeBody falls back to an empty object for empty or invalid JSON.
func decodeBody(body []byte) ldvalue.Value {
	if len(bytes.TrimSpace(body)) == 0 {
		return emptyObject()
	}

	var value ldvalue.Value
	if err := json.Unmarshal(body, &value); err != nil {
		return emptyObject()
	}
	return value
}

func emptyObject() ldvalue.Value {
	return ldvalue.ObjectBuild().Build()
}
