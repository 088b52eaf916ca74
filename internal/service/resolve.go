package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Named is the capability every resolvable vault object exposes: a stable
// identifier and a display name. VaultItem, FolderRef, CollectionRef,
// OrganizationRef and SendRef all satisfy it, so one resolver serves every
// kind.
type Named interface {
	GetID() string
	GetName() string
}

// ResolutionState tags the outcome of a resolve-by-identifier operation.
type ResolutionState int

const (
	// Found means exactly one object matched.
	Found ResolutionState = iota
	// NotFound means nothing matched.
	NotFound
	// Ambiguous means two or more objects matched a name search.
	Ambiguous
)

// Resolution is the uniform outcome of resolving a user-supplied
// identifier. Object is meaningful only in the Found state; CandidateIDs
// only in the Ambiguous state, where it lists every matching id in
// source-collection order.
type Resolution[T Named] struct {
	State        ResolutionState
	Object       T
	CandidateIDs []string
}

// Resolve turns a user-supplied, possibly ambiguous identifier into exactly
// one object, a not-found, or an ambiguous outcome.
//
// Policy, identical across every resolvable kind:
//  1. The identifier is lower-cased and trimmed.
//  2. If it has the canonical id shape, an exact lookup runs via lookupByID
//     and the name search is never consulted.
//  3. Otherwise, if non-blank, listAll is fetched and filtered to objects
//     whose name contains the identifier as a case-insensitive substring.
//     Zero matches is NotFound, one is Found, two or more is Ambiguous
//     with all matching ids.
//  4. A blank identifier is NotFound.
//
// The substring policy is deliberately permissive and unranked: matches
// keep the order of the source collection.
func Resolve[T Named](
	ctx context.Context,
	identifier string,
	lookupByID func(ctx context.Context, id string) (T, bool, error),
	listAll func(ctx context.Context) ([]T, error),
) (Resolution[T], error) {
	needle := strings.ToLower(strings.TrimSpace(identifier))

	if isCanonicalID(needle) {
		obj, ok, err := lookupByID(ctx, needle)
		if err != nil {
			return Resolution[T]{}, err
		}
		if !ok {
			return Resolution[T]{State: NotFound}, nil
		}
		return Resolution[T]{State: Found, Object: obj}, nil
	}

	if needle == "" {
		return Resolution[T]{State: NotFound}, nil
	}

	all, err := listAll(ctx)
	if err != nil {
		return Resolution[T]{}, err
	}

	var matches []T
	for _, candidate := range all {
		if strings.Contains(strings.ToLower(candidate.GetName()), needle) {
			matches = append(matches, candidate)
		}
	}

	switch len(matches) {
	case 0:
		return Resolution[T]{State: NotFound}, nil
	case 1:
		return Resolution[T]{State: Found, Object: matches[0]}, nil
	default:
		ids := make([]string, 0, len(matches))
		for _, m := range matches {
			ids = append(ids, m.GetID())
		}
		return Resolution[T]{State: Ambiguous, CandidateIDs: ids}, nil
	}
}

// isCanonicalID reports whether s is a textbook random unique identifier:
// 32 hex digits in 8-4-4-4-12 groups, version nibble 1–5, RFC 4122 variant.
// The length and hyphen checks reject the alternative encodings
// (urn-prefixed, braced, unhyphenated) that uuid.Parse would accept.
func isCanonicalID(s string) bool {
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}

	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}

	version := u.Version()
	return version >= 1 && version <= 5 && u.Variant() == uuid.RFC4122
}
