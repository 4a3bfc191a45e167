package content

import "errors"

var (
	ErrNotFound             = errors.New("content: record not found")
	ErrConflict             = errors.New("content: record conflicts with an existing one")
	ErrUnknownCategory      = errors.New("content: unknown repertoire category")
	ErrMisconfiguredContent = errors.New("content: default biography (id=1) is missing")
)
