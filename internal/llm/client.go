package llm

import (
	"context"
	"errors"
)

// ErrUpstreamUnavailable marks transport, auth, or quota failures at the
// completion collaborator. Callers must treat it as retryable and distinct
// from an unusable reply (which never surfaces as an error at all).
var ErrUpstreamUnavailable = errors.New("completion service unavailable")

type Request struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Client is the completion collaborator. Service depends ONLY on this
// interface.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}
