package step

import (
	"time"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-testrail-sync/apiclient"
	"github.com/bitrise-steplib/steps-testrail-sync/summary"
	"github.com/bitrise-steplib/steps-testrail-sync/testrail"
	"github.com/hashicorp/go-cleanhttp"
)

// BuilderFactory ...
type BuilderFactory interface {
	NewBuilder(summaryPath, baseURL string, credentials apiclient.Credentials, timeout time.Duration) (testrail.Builder, error)
}

type builderFactory struct {
	fileManager fileutil.FileManager
	logger      log.Logger
}

// NewBuilderFactory ...
func NewBuilderFactory(fileManager fileutil.FileManager, logger log.Logger) BuilderFactory {
	return &builderFactory{
		fileManager: fileManager,
		logger:      logger,
	}
}

// NewBuilder loads the summary and connects a builder to the TestRail instance at baseURL.
// A zero timeout means no timeout.
func (f builderFactory) NewBuilder(summaryPath, baseURL string, credentials apiclient.Credentials, timeout time.Duration) (testrail.Builder, error) {
	document, err := summary.Load(summaryPath)
	if err != nil {
		return nil, err
	}
	f.logger.Debugf("Summary loaded: %d test(s), %d error record(s)", len(document.Tests), len(document.Errors))

	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = timeout

	client := apiclient.NewClient(baseURL, credentials, httpClient, f.fileManager, f.logger)
	return testrail.NewBuilder(client, document, f.logger), nil
}
