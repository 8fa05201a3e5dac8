package postgres

import (
	"context"
	"fmt"

	"community-feed/internal/repository"
)

type CategoryRepo struct {
	db DBTX
}

func NewCategoryRepo(db DBTX) repository.CategoryRepository {
	return &CategoryRepo{db: db}
}

func (repo *CategoryRepo) Names(ctx context.Context) (map[int64]string, error) {
	const query = `SELECT id, name FROM categories`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("Names: %w", err)
	}
	defer func() { _ = rows.Close() }()

	names := make(map[int64]string, 64)
	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("Names: Scan: %w", err)
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Names: %w", err)
	}
	return names, nil
}
