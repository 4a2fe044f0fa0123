package http

import (
	"time"
)

// BackoffConfig represents the retry policy for a request. A request is
// retried on transport errors and on the listed HTTP status codes.
type BackoffConfig struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int
	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration
	// Multiplier scales the delay after every retry. Values below 1 are
	// treated as 1 (constant delay).
	Multiplier float64
	// RetryableStatusCodes lists the HTTP statuses worth retrying.
	// Empty means retry every non-2xx status.
	RetryableStatusCodes []int
}

// NewBackoffConfig creates a backoff configuration with default values.
func NewBackoffConfig() *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:           3,
		InitialDelay:         100 * time.Millisecond,
		Multiplier:           2.0,
		RetryableStatusCodes: []int{429, 500, 502, 503, 504},
	}
}

// WithMaxRetries sets the number of retries after the initial attempt.
func (bc *BackoffConfig) WithMaxRetries(maxRetries int) *BackoffConfig {
	bc.MaxRetries = maxRetries
	return bc
}

// WithInitialDelay sets the delay before the first retry.
func (bc *BackoffConfig) WithInitialDelay(delay time.Duration) *BackoffConfig {
	bc.InitialDelay = delay
	return bc
}

// WithMultiplier sets the delay multiplier applied after every retry.
func (bc *BackoffConfig) WithMultiplier(multiplier float64) *BackoffConfig {
	bc.Multiplier = multiplier
	return bc
}

// WithRetryableStatusCodes sets the HTTP statuses worth retrying.
func (bc *BackoffConfig) WithRetryableStatusCodes(codes ...int) *BackoffConfig {
	bc.RetryableStatusCodes = codes
	return bc
}

// shouldRetry reports whether the given outcome is retryable under this policy.
func (bc *BackoffConfig) shouldRetry(status int, err error) bool {
	if err != nil && status == 0 {
		// Transport error, never reached the server.
		return true
	}
	if status >= 200 && status < 300 {
		return false
	}
	if len(bc.RetryableStatusCodes) == 0 {
		return err != nil
	}
	for _, code := range bc.RetryableStatusCodes {
		if status == code {
			return true
		}
	}
	return false
}

// doRequestWithBackoff runs doRequest under the given backoff policy. A nil
// policy falls back to the client default; no policy at all means a single
// attempt.
func (hc *Client) doRequestWithBackoff(method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any, backoff *BackoffConfig) (any, any, int, error) {
	if backoff == nil {
		backoff = hc.defaultBackoff
	}
	if backoff == nil || backoff.MaxRetries <= 0 {
		return hc.doRequest(method, path, queryParams, headers, body, successResp, errorResp)
	}

	delay := backoff.InitialDelay
	multiplier := backoff.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}

	var (
		success any
		failure any
		status  int
		err     error
	)

	for attempt := 0; ; attempt++ {
		success, failure, status, err = hc.doRequest(method, path, queryParams, headers, body, successResp, errorResp)
		if err == nil {
			return success, failure, status, nil
		}

		if attempt == backoff.MaxRetries || !backoff.shouldRetry(status, err) {
			return success, failure, status, err
		}

		if hc.logger != nil {
			hc.logger.LogRequestRetry(method, hc.buildURL(path), headers, "", status, "", 0, err, attempt+1, backoff.MaxRetries)
		}

		time.Sleep(delay)
		delay = time.Duration(float64(delay) * multiplier)
	}
}
