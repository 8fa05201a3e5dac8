package repository

import (
	"context"

	"community-feed/internal/domain/entity"
)

type CommunityRepository interface {
	// Get returns the community or nil when it does not exist.
	Get(ctx context.Context, id int64) (*entity.Community, error)
	// CategoryIDs returns the ids of the categories the community curates.
	CategoryIDs(ctx context.Context, communityID int64) ([]int64, error)
}

type CategoryRepository interface {
	// Names returns the whole category table as an id -> name lookup.
	Names(ctx context.Context) (map[int64]string, error)
}

// WriterRepository resolves user ids to their display projection.
type WriterRepository interface {
	// Profiles returns the profiles of the given users keyed by user id.
	// Unknown ids are absent from the map.
	Profiles(ctx context.Context, userIDs []int64) (map[int64]entity.WriterProfile, error)
}
