package errors

import "errors"

// Precondition reports that a sample cannot run against the configured
// account, for example an MCA-only sample on a standalone account. The
// message is meant to be shown to the user as is.
type Precondition struct {
	message string
}

func NewPrecondition(message string) Precondition {
	return Precondition{
		message: message,
	}
}

func (e Precondition) Error() string {
	return e.message
}

// IsPrecondition reports whether err or anything it wraps is a Precondition.
func IsPrecondition(err error) bool {
	var p Precondition
	return errors.As(err, &p)
}
