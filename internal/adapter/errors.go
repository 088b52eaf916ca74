package adapter

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the remote server rejects the account's
// credentials or the cached access token has expired.
var ErrUnauthorized = errors.New("unauthorized by remote server")

// StatusError reports a non-success transport status from the remote
// server. The upstream status code is preserved so callers can surface it;
// no retry is attempted at this layer.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("remote server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote server returned status %d: %s", e.StatusCode, e.Body)
}
