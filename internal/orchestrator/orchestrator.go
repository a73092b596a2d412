// Package orchestrator holds the per-page request state machine. State is
// an explicit value mutated only through Submit and Resolve, so the whole
// lifecycle is testable without a rendering surface or a live backend.
//
// Each accepted submit bumps a monotonic token. A response is applied only
// if it carries the latest token; anything older lost the race and is
// discarded silently, so the most recently submitted request always wins.
package orchestrator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spacesedan/sentimentscope/internal/clients"
	"github.com/spacesedan/sentimentscope/internal/models"
	"github.com/spacesedan/sentimentscope/internal/normalize"
)

const (
	MaxBulkLines = 100

	// GenericFailureMessage is shown for transport failures and non-2xx
	// responses that carried no usable detail.
	GenericFailureMessage = "Analysis failed. Please check your connection and try again."
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// ValidationError rejects bad input locally, before any network call.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

type State struct {
	ActiveKind models.RequestKind
	Phase      Phase
	Token      uint64
	Result     *models.AnalysisResult
	ErrMessage string
}

// Request describes the one network call an accepted submit must issue.
// Exactly one of Text, Texts, or URL is populated, matching Kind.
type Request struct {
	Token uint64
	Kind  models.RequestKind
	Text  string
	Texts []string
	URL   string
}

// Submit validates input for the given kind and, on acceptance, moves the
// state to Loading under a fresh token. The previous result is cleared
// immediately so a failed re-submit shows "no result" instead of stale
// data. Submitting while already Loading is legal and supersedes the
// in-flight request. On a ValidationError the state is returned unchanged
// and no request is issued.
func (s State) Submit(kind models.RequestKind, input string) (State, Request, error) {
	req := Request{Kind: kind}

	switch kind {
	case models.KindSingle:
		text := strings.TrimSpace(input)
		if text == "" {
			return s, Request{}, &ValidationError{Reason: "Enter some text to analyze."}
		}
		req.Text = text
	case models.KindBulk:
		lines := SplitBulkLines(input)
		if len(lines) == 0 {
			return s, Request{}, &ValidationError{Reason: "Enter at least one non-blank line."}
		}
		if len(lines) > MaxBulkLines {
			return s, Request{}, &ValidationError{
				Reason: fmt.Sprintf("Bulk analysis is limited to %d non-blank lines (got %d).", MaxBulkLines, len(lines)),
			}
		}
		req.Texts = lines
	case models.KindURL:
		target := strings.TrimSpace(input)
		if target == "" {
			return s, Request{}, &ValidationError{Reason: "Enter a URL to analyze."}
		}
		req.URL = target
	default:
		return s, Request{}, &ValidationError{Reason: "Unknown analysis kind."}
	}

	next := State{
		ActiveKind: kind,
		Phase:      PhaseLoading,
		Token:      s.Token + 1,
	}
	req.Token = next.Token
	return next, req, nil
}

// Resolve applies a response for the request identified by token. The
// returned bool reports whether the response was applied; a stale token
// (or a duplicate delivery for an already-settled token) leaves the state
// untouched.
func (s State) Resolve(token uint64, body []byte, err error) (State, bool) {
	if token != s.Token || s.Phase != PhaseLoading {
		return s, false
	}

	if err != nil {
		s.Phase = PhaseError
		s.ErrMessage = failureMessage(err)
		return s, true
	}

	result := normalize.Result(s.ActiveKind, body)
	s.Phase = PhaseSuccess
	s.Result = &result
	s.ErrMessage = ""
	return s, true
}

// SplitBulkLines splits raw textarea input into trimmed, non-blank lines.
func SplitBulkLines(input string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func failureMessage(err error) string {
	var apiErr *clients.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return GenericFailureMessage
}
