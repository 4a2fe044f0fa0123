package log

import "go.uber.org/zap"

// OutboundHTTPLogger implements the pkg/http logging callbacks on top of the
// shared zap logger. Request and response bodies are logged truncated.
type OutboundHTTPLogger struct {
	// MaxBodyLength caps logged bodies; zero means 512.
	MaxBodyLength int
}

func (l *OutboundHTTPLogger) truncate(body string) string {
	limit := l.MaxBodyLength
	if limit <= 0 {
		limit = 512
	}
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}

// LogRequest logs an outbound request before it is sent.
func (l *OutboundHTTPLogger) LogRequest(method, url string, headers map[string]string, body string) {
	Debug("outbound request",
		zap.String("method", method),
		zap.String("url", url),
		zap.String("body", l.truncate(body)),
	)
}

// LogResponseSuccess logs a successful outbound response.
func (l *OutboundHTTPLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	Debug("outbound response",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
	)
}

// LogResponseError logs a failed outbound response.
func (l *OutboundHTTPLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	Error("outbound request failed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", l.truncate(responseBody)),
		zap.Error(err),
	)
}

// LogRequestRetry logs a retry attempt made under a backoff policy.
func (l *OutboundHTTPLogger) LogRequestRetry(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int) {
	Warn("outbound request retry",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int("retry", retryCount),
		zap.Int("max_retries", maxRetries),
		zap.Error(err),
	)
}
