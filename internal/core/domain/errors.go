package domain

import "errors"

// Error categories. Every domain error unwraps to exactly one of them so the
// transport layer can map it without knowing the specific cause.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrInternal   = errors.New("internal server error")
)

var (
	ErrPollNotFound       = newError(ErrNotFound, "poll not found")
	ErrNominationNotFound = newError(ErrNotFound, "nomination not found")
	ErrVoteNotFound       = newError(ErrNotFound, "no vote from this voter on this nomination")

	ErrInvalidPollID       = newError(ErrValidation, "invalid poll id")
	ErrInvalidNominationID = newError(ErrValidation, "invalid nomination id")
	ErrTitleRequired       = newError(ErrValidation, "title is required")
	ErrNominationsRequired = newError(ErrValidation, "at least one nomination with a name and a manager is required")
	ErrInvalidScore        = newError(ErrValidation, "score must be between 1 and 10")
	ErrInvalidExpiry       = newError(ErrValidation, "expires_at must be RFC 3339 (2006-01-02T15:04:05Z07:00) or a local time as 2006-01-02T15:04:05 or 2006-01-02T15:04")
	ErrVoterRequired       = newError(ErrValidation, "voter id is required")

	ErrPollClosed    = newError(ErrConflict, "poll is closed")
	ErrResultsSealed = newError(ErrConflict, "results are available once the poll is closed")
)

type domainError struct {
	category error
	msg      string
}

func newError(category error, msg string) error {
	return &domainError{category: category, msg: msg}
}

func (e *domainError) Error() string { return e.msg }

func (e *domainError) Unwrap() error { return e.category }
