package domain

import "errors"

// Sentinel errors for the change-control workflow. Handlers map these to
// HTTP status codes with errors.Is.
var (
	ErrArticleNotFound        = errors.New("article not found")
	ErrRevisionNotFound       = errors.New("revision not found")
	ErrUserNotFound           = errors.New("user not found")
	ErrPermissionDenied       = errors.New("permission denied")
	ErrSelfApproval           = errors.New("approvers cannot decide their own revision")
	ErrInvalidStateTransition = errors.New("action not allowed in current revision status")
	ErrValidation             = errors.New("validation failed")
	ErrTargetMismatch         = errors.New("revisions target different articles")
)
