package api

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure from the iHealth API access layer.
type ErrorKind string

const (
	// KindAuthentication covers failed credential exchanges and auth
	// rejections that survived the pipeline's single retry.
	KindAuthentication ErrorKind = "authentication"
	// KindNotFound means the QKView or sub-resource does not exist or is
	// not visible to this account.
	KindNotFound ErrorKind = "not_found"
	// KindClient covers the remaining 4xx responses (bad request shape,
	// invalid ID format, upstream validation failures).
	KindClient ErrorKind = "client"
	// KindUpstream covers 5xx responses and transport failures.
	KindUpstream ErrorKind = "upstream"
	// KindConfiguration means credentials are missing or unusable at
	// startup. The only kind allowed to be fatal to the process.
	KindConfiguration ErrorKind = "configuration"
)

// Error is a classified API failure. The upstream status and message are
// preserved so nothing useful for diagnosis is lost on the way up.
type Error struct {
	Kind    ErrorKind
	Status  int // HTTP status from upstream, 0 when the call never completed
	Message string
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// NewError creates a classified Error with a formatted message.
func NewError(kind ErrorKind, status int, format string, args ...any) *Error {
	return &Error{Kind: kind, Status: status, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err (or anything it wraps) is an *Error of the
// given kind.
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}
