package common

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	OK                     int = 200
	BAD_REQUEST            int = 400
	UNAUTHORIZED           int = 401
	FORBIDDEN              int = 403
	DATA_NOT_FOUND         int = 404
	METHOD_NOT_ALLOWED     int = 405
	UNSUPPORTED_MEDIA_TYPE int = 415
	RATE_LIMIT_EXCEEDED    int = 429
	INTERNAL_SERVER_ERROR  int = 500
	BAD_GATEWAY            int = 502
	SERVICE_UNAVAILABLE    int = 503
	GATEWAY_TIMEOUT        int = 504
)

var messages = map[int]string{
	OK:                     "OK",
	BAD_REQUEST:            "Bad request",
	UNAUTHORIZED:           "Unauthorized",
	FORBIDDEN:              "Forbidden",
	DATA_NOT_FOUND:         "Data not found",
	METHOD_NOT_ALLOWED:     "Method not allowed",
	UNSUPPORTED_MEDIA_TYPE: "Unsupported media type",
	RATE_LIMIT_EXCEEDED:    "Rate limit exceeded",
	INTERNAL_SERVER_ERROR:  "Internal server error",
	BAD_GATEWAY:            "Bad gateway",
	SERVICE_UNAVAILABLE:    "Service unavailable",
	GATEWAY_TIMEOUT:        "Gateway timeout",
}

// StatusMessage returns a readable description of an HTTP status code
func StatusMessage(code int) string {
	if message, ok := messages[code]; ok {
		return message
	}
	return fmt.Sprintf("Unknown status %d", code)
}

// Returned when the remote end answers with anything other than 200
type StatusError struct {
	Url        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request to %s failed: %d %s", e.Url, e.StatusCode, StatusMessage(e.StatusCode))
}

type Proxy struct {
	header  map[string]string
	client  *http.Client
	timeout time.Duration
}

func NewProxy(header map[string]string, timeout time.Duration) *Proxy {
	return &Proxy{header: header, client: &http.Client{Timeout: timeout}, timeout: timeout}
}

// Make a GET request to the provided url and return the body.
// The request is bounded by the proxy timeout even if ctx has no deadline
func (proxy *Proxy) Request(ctx context.Context, url string) ([]byte, error) {

	logger := zerolog.Ctx(ctx)

	if proxy.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, proxy.timeout)
		defer cancel()
	}

	// Create the request and add the header
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request for url %s: %w", url, err)
	}
	for key, value := range proxy.header {
		request.Header.Set(key, value)
	}

	// Perform the request
	logger.Debug().Str("url", url).Msg("Requesting")
	start := time.Now()
	res, err := proxy.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("could not perform request to %s: %w", url, err)
	}
	defer res.Body.Close()
	logger.Debug().
		Int("status", res.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg(StatusMessage(res.StatusCode))

	if res.StatusCode != OK {
		return nil, &StatusError{Url: url, StatusCode: res.StatusCode}
	}

	// Read the response
	stream, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read the response for url %s: %w", url, err)
	}
	return stream, nil
}
