package http

import (
	"errors"

	"github.com/ashmarin/vault-serve/internal/adapter"
	"github.com/ashmarin/vault-serve/internal/service"
	"github.com/ashmarin/vault-serve/internal/session"
)

// reportableErrors are the taxonomy errors whose text is safe to surface
// to the caller verbatim. Anything outside the list is an unexpected fault
// and is replaced by a fixed message so internal detail never leaks.
var reportableErrors = []error{
	service.ErrValidation,
	service.ErrNotFound,
	service.ErrInvalidCredentials,
	service.ErrEntitlementRequired,
	service.ErrCrypto,
	service.ErrPersistence,
	service.ErrNoAttachments,
	service.ErrNoOrgKey,
	session.ErrNotUnlocked,
	adapter.ErrUnauthorized,
}

func failureMessage(err error) string {
	var ambiguous *service.AmbiguousError
	if errors.As(err, &ambiguous) {
		return ambiguous.Error()
	}

	var status *adapter.StatusError
	if errors.As(err, &status) {
		return status.Error()
	}

	for _, target := range reportableErrors {
		if errors.Is(err, target) {
			return err.Error()
		}
	}

	return "an unexpected error occurred"
}
