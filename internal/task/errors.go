package task

import "errors"

var (
	// ErrUnknownAgent is returned when the target is not pm, A, B or C.
	ErrUnknownAgent = errors.New("unknown agent identity")

	// ErrEmptyMessage is returned when the submitted message is blank.
	ErrEmptyMessage = errors.New("message must not be empty")

	// ErrEmptySessionID is returned when no session identifier was given.
	ErrEmptySessionID = errors.New("session_id must not be empty")
)
