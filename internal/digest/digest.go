// Package digest turns raw GitHub event records into the short display
// lines shown to the user. It is a pure transformation: records it
// cannot describe are skipped rather than failing the run.
package digest

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"

	gogithub "github.com/google/go-github/v69/github"
)

// Format renders at most limit display lines from events, in input
// order. Records of unrecognized type or with malformed payloads are
// skipped and do not count toward the limit. The input is never
// mutated and formatting the same input twice yields the same output.
func Format(events []*gogithub.Event, limit int) []string {
	var lines []string
	for _, e := range events {
		if len(lines) >= limit {
			break
		}
		line, ok := renderLine(e)
		if !ok {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Since returns the events created at or after cutoff, preserving
// order. The result is a fresh slice.
func Since(events []*gogithub.Event, cutoff time.Time) []*gogithub.Event {
	var kept []*gogithub.Event
	for _, e := range events {
		if e.GetCreatedAt().Before(cutoff) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

// renderLine formats a single event record. ok is false when the
// record should be skipped.
func renderLine(e *gogithub.Event) (string, bool) {
	if e == nil {
		return "", false
	}

	// The payload shape depends on the event type; a missing payload is
	// treated as an empty one so field defaults still apply.
	raw := json.RawMessage(`{}`)
	if e.RawPayload != nil {
		raw = *e.RawPayload
	}

	switch e.GetType() {
	case "PushEvent":
		var p gogithub.PushEvent
		if err := json.Unmarshal(raw, &p); err != nil {
			return "", false
		}
		return formatPush(e, &p), true

	case "WatchEvent":
		return fmt.Sprintf("Starred %s.", subject(e)), true

	case "IssuesEvent":
		var p gogithub.IssuesEvent
		if err := json.Unmarshal(raw, &p); err != nil {
			return "", false
		}
		return formatIssue(e, &p)

	case "PullRequestEvent":
		var p gogithub.PullRequestEvent
		if err := json.Unmarshal(raw, &p); err != nil {
			return "", false
		}
		return formatPullRequest(e, &p)

	case "CreateEvent":
		var p gogithub.CreateEvent
		if err := json.Unmarshal(raw, &p); err != nil {
			return "", false
		}
		return formatCreate(e, &p)

	case "ForkEvent":
		var p gogithub.ForkEvent
		if err := json.Unmarshal(raw, &p); err != nil {
			return "", false
		}
		return formatFork(e, &p), true
	}

	return "", false
}

func formatPush(e *gogithub.Event, p *gogithub.PushEvent) string {
	return fmt.Sprintf("Pushed %s to branch '%s' in %s on %s.",
		commitPhrase(p.Size), branchName(e, p), subject(e), eventDate(e))
}

// formatIssue skips records without an action: a verb-less sentence
// reads worse than showing one fewer event.
func formatIssue(e *gogithub.Event, p *gogithub.IssuesEvent) (string, bool) {
	if p.GetAction() == "" {
		return "", false
	}
	title := p.GetIssue().GetTitle()
	if title == "" {
		title = "an issue"
	}
	return fmt.Sprintf("%s issue #%s: %q in %s on %s.",
		capitalize(p.GetAction()), issueNumber(p.GetIssue()), title, subject(e), eventDate(e)), true
}

func formatPullRequest(e *gogithub.Event, p *gogithub.PullRequestEvent) (string, bool) {
	if p.GetAction() == "" {
		return "", false
	}
	title := p.GetPullRequest().GetTitle()
	if title == "" {
		title = "a pull request"
	}
	number := "N/A"
	if p.GetPullRequest() != nil && p.GetPullRequest().Number != nil {
		number = fmt.Sprintf("%d", p.GetPullRequest().GetNumber())
	}
	return fmt.Sprintf("%s pull request #%s: %q in %s on %s.",
		capitalize(p.GetAction()), number, title, subject(e), eventDate(e)), true
}

func formatCreate(e *gogithub.Event, p *gogithub.CreateEvent) (string, bool) {
	switch p.GetRefType() {
	case "repository":
		return fmt.Sprintf("Created a new repository %s.", subject(e)), true
	case "branch":
		return fmt.Sprintf("Created branch '%s' in %s.", p.GetRef(), subject(e)), true
	case "tag":
		return fmt.Sprintf("Created tag '%s' in %s.", p.GetRef(), subject(e)), true
	}
	return "", false
}

func formatFork(e *gogithub.Event, p *gogithub.ForkEvent) string {
	forkee := p.GetForkee().GetFullName()
	if forkee == "" {
		forkee = "a new repository"
	}
	return fmt.Sprintf("Forked %s to %s.", subject(e), forkee)
}

// subject names what the event acted on. The events API is
// inconsistent about whether lines read better with the repository or
// the actor; the repository is used whenever present, with the actor
// login as fallback.
func subject(e *gogithub.Event) string {
	if name := e.GetRepo().GetName(); name != "" {
		return name
	}
	if login := e.GetActor().GetLogin(); login != "" {
		return login
	}
	return "an unknown repository"
}

// branchName prefers the pushed ref, stripped of its refs/heads/
// prefix, and falls back to the repository name.
func branchName(e *gogithub.Event, p *gogithub.PushEvent) string {
	if ref := p.GetRef(); ref != "" {
		return strings.TrimPrefix(ref, "refs/heads/")
	}
	return subject(e)
}

func commitPhrase(size *int) string {
	if size == nil {
		return "an unknown number of commits"
	}
	if *size > 1 {
		return fmt.Sprintf("%d commits", *size)
	}
	return fmt.Sprintf("%d commit", *size)
}

func issueNumber(issue *gogithub.Issue) string {
	if issue == nil || issue.Number == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", issue.GetNumber())
}

func eventDate(e *gogithub.Event) string {
	ts := e.GetCreatedAt()
	if ts.IsZero() {
		return "an unknown date"
	}
	return ts.Format("2006-01-02")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
