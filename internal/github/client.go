// Package github fetches a user's recent public events from the GitHub
// REST API and classifies the ways that single call can fail.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	gogithub "github.com/google/go-github/v69/github"
	log "github.com/sirupsen/logrus"

	"github-activity/internal/config"
)

// eventsPerPage is the page size requested from the events endpoint.
// Only this single page is ever fetched.
const eventsPerPage = 100

type Client struct {
	gh *gogithub.Client
}

// NewClient builds an unauthenticated API client. The base URL and the
// identifying User-Agent come from cfg; every request carries the
// User-Agent because GitHub rejects anonymous-looking clients.
func NewClient(cfg *config.Config) (*Client, error) {
	gh := gogithub.NewClient(nil)
	gh.UserAgent = cfg.UserAgent

	if cfg.APIBaseURL != "" {
		raw := cfg.APIBaseURL
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		base, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid API base URL %q: %w", cfg.APIBaseURL, err)
		}
		gh.BaseURL = base
	}

	return &Client{gh: gh}, nil
}

// FetchUserEvents performs one request against the user-events endpoint
// and returns the decoded records unmodified. No retry, no pagination
// beyond the default page, no caching.
func (c *Client) FetchUserEvents(ctx context.Context, username string) ([]*gogithub.Event, error) {
	log.WithField("user", username).Info("looking up recent public activity")

	events, _, err := c.gh.Activity.ListEventsPerformedByUser(ctx, username, false, &gogithub.ListOptions{
		PerPage: eventsPerPage,
	})
	if err != nil {
		return nil, classify(username, err)
	}
	return events, nil
}

// classify maps the client library's errors onto the taxonomy callers
// report to the user. Remote statuses are checked before transport
// failures, transport failures before undecodable bodies.
func classify(username string, err error) error {
	var rateErr *gogithub.RateLimitError
	if errors.As(err, &rateErr) {
		return &RateLimitedError{}
	}
	var abuseErr *gogithub.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &RateLimitedError{}
	}

	var respErr *gogithub.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		switch respErr.Response.StatusCode {
		case http.StatusNotFound:
			return &NotFoundError{Username: username}
		case http.StatusForbidden:
			return &RateLimitedError{}
		default:
			return &HTTPError{
				StatusCode: respErr.Response.StatusCode,
				Status:     respErr.Response.Status,
			}
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &NetworkError{Err: urlErr}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &DecodeError{Err: err}
	}

	return &NetworkError{Err: err}
}
