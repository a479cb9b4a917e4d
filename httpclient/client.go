package httpclient

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// New returns a resty client carrying the outbound-fetch policy shared
// by every external price API: fixed timeout, at most 3 total attempts
// per request (the initial try plus 2 retries) with exponential
// backoff, and retries only on network errors, 5xx and 429. Other 4xx
// responses are terminal.
func New(timeout time.Duration) *resty.Client {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetRetryCount(2)
	client.SetRetryWaitTime(500 * time.Millisecond)
	client.SetRetryMaxWaitTime(5 * time.Second)
	client.AddRetryCondition(func(r *resty.Response, err error) bool {
		if err != nil {
			return true
		}
		if r.StatusCode() >= http.StatusInternalServerError {
			return true
		}
		return r.StatusCode() == http.StatusTooManyRequests
	})
	return client
}
