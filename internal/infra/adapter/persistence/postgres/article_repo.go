package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"community-feed/internal/domain/entity"
	"community-feed/internal/repository"

	"github.com/lib/pq"
)

const articleColumns = `a.id, a.writer_id, a.title, a.text, a.views, COALESCE(a.image_url, ''), a.created_at`

type ArticleRepo struct {
	db DBTX
}

func NewArticleRepo(db DBTX) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func scanArticle(row rowScanner) (*entity.Article, error) {
	var a entity.Article
	if err := row.Scan(&a.ID, &a.WriterID, &a.Title, &a.Text, &a.Views, &a.ImageURL, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (repo *ArticleRepo) listArticles(ctx context.Context, op, query string, args ...interface{}) ([]*entity.Article, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 32)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return articles, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles a
WHERE a.id = $1
LIMIT 1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

// ListByIDs loads the articles in one round trip. A zero since skips the time filter.
func (repo *ArticleRepo) ListByIDs(ctx context.Context, ids []int64, since time.Time) ([]*entity.Article, error) {
	if len(ids) == 0 {
		return []*entity.Article{}, nil
	}
	if since.IsZero() {
		const query = `
SELECT ` + articleColumns + `
FROM articles a
WHERE a.id = ANY($1)`
		return repo.listArticles(ctx, "ListByIDs", query, pq.Array(ids))
	}
	const query = `
SELECT ` + articleColumns + `
FROM articles a
WHERE a.id = ANY($1)
  AND a.created_at >= $2`
	return repo.listArticles(ctx, "ListByIDs", query, pq.Array(ids), since)
}

func (repo *ArticleRepo) ListByWriter(ctx context.Context, userID int64) ([]*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles a
WHERE a.writer_id = $1
ORDER BY a.created_at DESC, a.id DESC`
	return repo.listArticles(ctx, "ListByWriter", query, userID)
}

func (repo *ArticleRepo) ListSavedBy(ctx context.Context, userID int64) ([]*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM saved_articles s
INNER JOIN articles a ON a.id = s.article_id
WHERE s.user_id = $1
ORDER BY s.saved_at DESC, s.id DESC`
	return repo.listArticles(ctx, "ListSavedBy", query, userID)
}

func (repo *ArticleRepo) CategoryIDs(ctx context.Context, articleID int64) ([]int64, error) {
	const query = `
SELECT category_id
FROM article_categories
WHERE article_id = $1
ORDER BY category_id`
	return queryIDs(ctx, repo.db, "CategoryIDs", query, articleID)
}

// CategoryIDsByArticles resolves the category ids of many articles with a single query.
// Articles without categories are absent from the map.
func (repo *ArticleRepo) CategoryIDsByArticles(ctx context.Context, articleIDs []int64) (map[int64][]int64, error) {
	result := make(map[int64][]int64, len(articleIDs))
	if len(articleIDs) == 0 {
		return result, nil
	}

	const query = `
SELECT article_id, category_id
FROM article_categories
WHERE article_id = ANY($1)
ORDER BY article_id, category_id`
	rows, err := repo.db.QueryContext(ctx, query, pq.Array(articleIDs))
	if err != nil {
		return nil, fmt.Errorf("CategoryIDsByArticles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var articleID, categoryID int64
		if err := rows.Scan(&articleID, &categoryID); err != nil {
			return nil, fmt.Errorf("CategoryIDsByArticles: Scan: %w", err)
		}
		result[articleID] = append(result[articleID], categoryID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("CategoryIDsByArticles: %w", err)
	}
	return result, nil
}

// queryIDs runs a single-column id query.
func queryIDs(ctx context.Context, db DBTX, op, query string, args ...interface{}) ([]int64, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	ids := make([]int64, 0, 8)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ids, nil
}
