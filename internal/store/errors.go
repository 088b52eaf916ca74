package store

import "errors"

// Sentinel errors of the persistence layer. Callers match them with
// [errors.Is]; repository methods wrap the underlying driver error so the
// original cause stays inspectable.
var (
	ErrObjectNotFound = errors.New("vault object not found")
	ErrObjectNotSaved = errors.New("vault object not saved")

	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing query")
	ErrScanningRow      = errors.New("error scanning row")
	ErrScanningRows     = errors.New("error scanning rows")

	ErrNoKeyHash       = errors.New("no local key hash stored")
	ErrAccountNotFound = errors.New("no account profile found")
)
