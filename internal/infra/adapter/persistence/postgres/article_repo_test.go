package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"community-feed/internal/domain/entity"
	pg "community-feed/internal/infra/adapter/persistence/postgres"
)

/* ─────────────────────────── helpers ─────────────────────────── */

var articleCols = []string{"id", "writer_id", "title", "text", "views", "image_url", "created_at"}

func artRows(as ...*entity.Article) *sqlmock.Rows {
	rows := sqlmock.NewRows(articleCols)
	for _, a := range as {
		rows.AddRow(a.ID, a.WriterID, a.Title, a.Text, a.Views, a.ImageURL, a.CreatedAt)
	}
	return rows
}

/* ─────────────────────────── 1. Get ─────────────────────────── */

func TestArticleRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)
	want := &entity.Article{
		ID: 1, WriterID: 2, Title: "Go 1.24 released", Text: "body",
		Views: 10, ImageURL: "https://img.example.com/1.png", CreatedAt: now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT a.id")).
		WithArgs(int64(1)).
		WillReturnRows(artRows(want))

	repo := pg.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Get_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("FROM articles a")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(articleCols))

	got, err := pg.NewArticleRepo(db).Get(context.Background(), 99)
	if err != nil || got != nil {
		t.Fatalf("Get want (nil,nil) got (%v,%v)", got, err)
	}
}

func TestArticleRepo_Get_Error(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	boom := errors.New("connection reset")
	mock.ExpectQuery(regexp.QuoteMeta("FROM articles a")).
		WithArgs(int64(1)).
		WillReturnError(boom)

	_, err := pg.NewArticleRepo(db).Get(context.Background(), 1)
	if !errors.Is(err, boom) {
		t.Fatalf("Get want wrapped %v got %v", boom, err)
	}
}

/* ─────────────────────────── 2. ListByIDs ─────────────────────────── */

func TestArticleRepo_ListByIDs(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	since := time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC)
	a1 := &entity.Article{ID: 1, WriterID: 5, Title: "a", CreatedAt: since.Add(time.Hour)}
	a2 := &entity.Article{ID: 2, WriterID: 6, Title: "b", CreatedAt: since}

	mock.ExpectQuery(regexp.QuoteMeta("a.created_at >= $2")).
		WithArgs(sqlmock.AnyArg(), since).
		WillReturnRows(artRows(a1, a2))

	got, err := pg.NewArticleRepo(db).ListByIDs(context.Background(), []int64{1, 2, 3}, since)
	if err != nil {
		t.Fatalf("ListByIDs err=%v", err)
	}
	if diff := cmp.Diff([]*entity.Article{a1, a2}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_ListByIDs_NoWindow(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.id = ANY($1)")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(artRows(&entity.Article{ID: 4}))

	got, err := pg.NewArticleRepo(db).ListByIDs(context.Background(), []int64{4}, time.Time{})
	if err != nil || len(got) != 1 {
		t.Fatalf("ListByIDs err=%v len=%d", err, len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_ListByIDs_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	got, err := pg.NewArticleRepo(db).ListByIDs(context.Background(), nil, time.Now())
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("ListByIDs want empty slice got %v err=%v", got, err)
	}
	// no query may be issued for an empty id set
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ─────────────────────────── 3. ListByWriter / ListSavedBy ─────────────────────────── */

func TestArticleRepo_ListByWriter(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.writer_id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(artRows(&entity.Article{ID: 3, WriterID: 7}, &entity.Article{ID: 1, WriterID: 7}))

	got, err := pg.NewArticleRepo(db).ListByWriter(context.Background(), 7)
	if err != nil || len(got) != 2 {
		t.Fatalf("ListByWriter err=%v len=%d", err, len(got))
	}
	if got[0].ID != 3 || got[1].ID != 1 {
		t.Fatalf("ListByWriter order changed: %d,%d", got[0].ID, got[1].ID)
	}
}

func TestArticleRepo_ListSavedBy(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("FROM saved_articles s")).
		WithArgs(int64(7)).
		WillReturnRows(artRows(&entity.Article{ID: 9, WriterID: 8}))

	got, err := pg.NewArticleRepo(db).ListSavedBy(context.Background(), 7)
	if err != nil || len(got) != 1 || got[0].ID != 9 {
		t.Fatalf("ListSavedBy err=%v got=%v", err, got)
	}
}

func TestArticleRepo_ListByWriter_ScanError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.writer_id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	if _, err := pg.NewArticleRepo(db).ListByWriter(context.Background(), 7); err == nil {
		t.Fatal("ListByWriter want scan error")
	}
}

/* ─────────────────────────── 4. Categories ─────────────────────────── */

func TestArticleRepo_CategoryIDs(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("FROM article_categories")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"category_id"}).AddRow(2).AddRow(5))

	got, err := pg.NewArticleRepo(db).CategoryIDs(context.Background(), 1)
	if err != nil {
		t.Fatalf("CategoryIDs err=%v", err)
	}
	if diff := cmp.Diff([]int64{2, 5}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestArticleRepo_CategoryIDsByArticles(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE article_id = ANY($1)")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"article_id", "category_id"}).
			AddRow(1, 2).AddRow(1, 3).AddRow(4, 2))

	got, err := pg.NewArticleRepo(db).CategoryIDsByArticles(context.Background(), []int64{1, 4, 6})
	if err != nil {
		t.Fatalf("CategoryIDsByArticles err=%v", err)
	}
	want := map[int64][]int64{1: {2, 3}, 4: {2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
