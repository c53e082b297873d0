package plumbing

import "errors"

// Error kinds from the engine's error taxonomy. Callers match against
// these with errors.Is; call sites wrap them with github.com/pkg/errors
// for context rather than constructing new error values.
var (
	ErrReferenceNotFound        = errors.New("reference not found")
	ErrCommitNotFound           = errors.New("commit not found")
	ErrCommitsNotFound          = errors.New("commits not found")
	ErrInvalidTree              = errors.New("invalid tree")
	ErrInvalidCommit            = errors.New("invalid commit")
	ErrUnexpectedTreeEntry      = errors.New("unexpected tree entry")
	ErrImmutableContentModified = errors.New("immutable content modified")
	ErrEncodingFailure          = errors.New("encoding failure")
)
