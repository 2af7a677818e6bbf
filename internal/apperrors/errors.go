package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the simulated role is not permitted to perform the action.
var ErrForbidden = errors.New("action not permitted for role")

// ErrInvalidTransition indicates that the requested status is not reachable
// from the record's current status for the given role. The wrapped message
// distinguishes the wrong-state and wrong-role causes for diagnostics; the
// workflow engine treats both as the same failure.
var ErrInvalidTransition = errors.New("invalid workflow transition")

// ErrMissingComment indicates that a comment-requiring transition was invoked
// without a comment.
var ErrMissingComment = errors.New("transition requires a comment")

// ErrLinkCycle indicates that adding a record link would close a cycle in the
// link graph.
var ErrLinkCycle = errors.New("link would create a cycle")
