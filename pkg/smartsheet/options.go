package smartsheet

import (
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultEndpoint is the base URL of the Smartsheet API v2.
	DefaultEndpoint = "https://api.smartsheet.com/2.0"
	// EnvAccessToken is the environment variable read by NewClientFromEnv.
	EnvAccessToken = "SMARTSHEET_ACCESS_TOKEN"
	// DefaultTimeout bounds each request when Options.Timeout is zero.
	DefaultTimeout = 30 * time.Second
)

// Options configures a Client.
type Options struct {
	// Endpoint is the API base URL. Empty means DefaultEndpoint.
	Endpoint string
	// Timeout applies to each request. Ignored when HTTPClient is set.
	Timeout time.Duration
	// HTTPClient overrides the transport.
	HTTPClient *http.Client
	// Logger receives request logs. If nil, logs are discarded.
	Logger *slog.Logger
	// UserAgent is sent with every request when set.
	UserAgent string
}

// DefaultOptions returns the options used by NewClient callers that do not
// need anything special.
func DefaultOptions() Options {
	return Options{
		Endpoint: DefaultEndpoint,
		Timeout:  DefaultTimeout,
	}
}

func (o Options) endpoint() string {
	if o.Endpoint == "" {
		return DefaultEndpoint
	}
	return o.Endpoint
}

func (o Options) httpClient() *http.Client {
	if o.HTTPClient != nil {
		return o.HTTPClient
	}
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
