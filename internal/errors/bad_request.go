package errors

import (
	"errors"
	"fmt"
)

// BadRequest reports malformed input: an OAuth2 redirect without the
// parameters the flow needs, or a sample invoked without its arguments.
type BadRequest struct {
	message string
}

func NewBadRequest(format string, args ...interface{}) BadRequest {
	return BadRequest{
		message: fmt.Sprintf(format, args...),
	}
}

func (e BadRequest) Error() string {
	return e.message
}

func IsBadRequest(err error) bool {
	var b BadRequest
	return errors.As(err, &b)
}
