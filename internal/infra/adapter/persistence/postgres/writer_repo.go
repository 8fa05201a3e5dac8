package postgres

import (
	"context"
	"fmt"

	"community-feed/internal/domain/entity"
	"community-feed/internal/repository"

	"github.com/lib/pq"
)

type WriterRepo struct {
	db DBTX
}

func NewWriterRepo(db DBTX) repository.WriterRepository {
	return &WriterRepo{db: db}
}

func (repo *WriterRepo) Profiles(ctx context.Context, userIDs []int64) (map[int64]entity.WriterProfile, error) {
	profiles := make(map[int64]entity.WriterProfile, len(userIDs))
	if len(userIDs) == 0 {
		return profiles, nil
	}

	const query = `
SELECT id, username, name, lastname, COALESCE(profile_image, '')
FROM users
WHERE id = ANY($1)`
	rows, err := repo.db.QueryContext(ctx, query, pq.Array(userIDs))
	if err != nil {
		return nil, fmt.Errorf("Profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var p entity.WriterProfile
		if err := rows.Scan(&p.UserID, &p.Username, &p.Name, &p.Lastname, &p.ProfileImage); err != nil {
			return nil, fmt.Errorf("Profiles: Scan: %w", err)
		}
		profiles[p.UserID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Profiles: %w", err)
	}
	return profiles, nil
}
