package github

import "fmt"

// NotFoundError means the GitHub user does not exist (HTTP 404).
type NotFoundError struct {
	Username string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("GitHub user %q not found, check the spelling", e.Username)
}

// RateLimitedError means GitHub throttled the unauthenticated request
// (HTTP 403). The raw status text is deliberately not included.
type RateLimitedError struct{}

func (e *RateLimitedError) Error() string {
	return "GitHub API rate limit exceeded, try again later"
}

// HTTPError covers any other non-2xx response.
type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected response from GitHub API: %s", e.Status)
}

// NetworkError covers transport-level failures: DNS, connection
// refused, TLS, timeouts.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("cannot reach GitHub API: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError means the response body was not the expected JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse GitHub API response as JSON: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
