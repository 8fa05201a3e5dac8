// Package community implements the community feed and relevance engine: selecting
// related articles, assembling a community feed, gating cross-posts by category
// overlap, and listing the content a user may still propose to a community.
package community

import (
	"errors"
	"fmt"

	"community-feed/internal/domain/entity"
)

// Sentinel errors for community use case operations.
var (
	// ErrStoreFailure indicates that the underlying store was unreachable or
	// returned an error. Empty results and policy outcomes never produce it.
	ErrStoreFailure = errors.New("store failure")

	// ErrInvalidID indicates that a community, article or user ID is not positive.
	ErrInvalidID = fmt.Errorf("invalid id: %w", entity.ErrInvalidInput)
)

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreFailure, err)
}

func invalidIDErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrInvalidID, err)
}
