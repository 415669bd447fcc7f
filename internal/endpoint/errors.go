package endpoint

import "errors"

// Terminal error classes surfaced to the orchestrator. Transient transport
// failures are absorbed by the retry policy and only escape as
// ErrEndpointUnreachable once attempts are exhausted.
var (
	ErrEndpointUnreachable = errors.New("endpoint unreachable")
	ErrAuthRejected        = errors.New("authentication rejected by endpoint")
	ErrMalformedResponse   = errors.New("malformed endpoint response")
	ErrUnknownIdentity     = errors.New("no endpoint configured for identity")
	ErrEmptyMessage        = errors.New("message is empty")
)
