package service

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors forming the error taxonomy of the serve layer. Handlers
// match them with [errors.Is] and turn every one of them into a failure
// envelope; none of them is allowed to crash the process.
var (
	// ErrValidation marks bad or missing caller input (blank password,
	// unknown object kind, missing parameter). Never retried.
	ErrValidation = errors.New("invalid request")

	// ErrNotFound marks a resolution that matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials marks a failed master-password verification.
	ErrInvalidCredentials = errors.New("invalid master password")

	// ErrEntitlementRequired marks an attachment download on a personal
	// item without a premium entitlement.
	ErrEntitlementRequired = errors.New("premium membership is required to use attachments")

	// ErrCrypto marks a decrypt or derive failure. Deliberately opaque:
	// no underlying detail is attached to it.
	ErrCrypto = errors.New("decryption failed")

	// ErrPersistence marks a disk-write failure.
	ErrPersistence = errors.New("could not write file")

	// ErrNoAttachments is returned when the resolved item carries no
	// attachments at all.
	ErrNoAttachments = errors.New("no attachments available for this item")
)

// AmbiguousError reports that an identifier matched more than one object.
// It carries every matching id, in source-collection order, so the caller
// can present a disambiguation prompt.
type AmbiguousError struct {
	CandidateIDs []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf(
		"more than one result was found; try getting a specific object by id instead: %s",
		strings.Join(e.CandidateIDs, ", "),
	)
}
