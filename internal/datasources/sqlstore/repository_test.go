package sqlstore

import (
	"context"
	"testing"
	"time"

	"github.com/jbeshir/reading-queue/internal/datasources"
	"github.com/jbeshir/reading-queue/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	ctx := context.Background()

	db, err := Connect(ctx, DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(ctx, db, DriverSQLite.Flavor()))
	// Migrating twice must be harmless.
	require.NoError(t, Migrate(ctx, db, DriverSQLite.Flavor()))

	return New(db, DriverSQLite.Flavor())
}

func testArticle(id, userID string, savedAt time.Time) domain.Article {
	return domain.Article{
		ID:     id,
		UserID: userID,
		URL:    "https://note.com/alice/n/" + id,
		NoteID: id,
		Title:  "Title " + id,
		Creator: domain.Creator{
			URLName:  "alice",
			Nickname: "Alice",
		},
		Hashtags:           []string{"go", "reading"},
		IsPaid:             true,
		WordCount:          2500,
		ReadingTimeMinutes: 5,
		LikeCount:          120,
		Status:             domain.ArticleStatusUnread,
		SavedAt:            savedAt,
		UpdatedAt:          savedAt,
		FreshnessScore:     1,
		Priority:           0.9,
		ExpiryScore:        1,
	}
}

func TestRepository_CreateAndList(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	older := testArticle("older", "user-1", testNow.AddDate(0, 0, -2))
	newer := testArticle("newer", "user-1", testNow)
	newer.Hashtags = nil
	other := testArticle("other", "user-2", testNow)

	for _, a := range []domain.Article{older, newer, other} {
		require.NoError(t, repo.CreateArticle(ctx, a))
	}

	articles, err := repo.ListArticlesByOwner(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, "newer", articles[0].ID, "newest first")
	assert.Equal(t, []string{}, articles[0].Hashtags)
	assert.Equal(t, older, articles[1])
}

func TestRepository_ListEmpty(t *testing.T) {
	repo := setupTestDB(t)

	articles, err := repo.ListArticlesByOwner(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, articles)
	assert.Empty(t, articles)
}

func TestRepository_UpdateArticle(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	article := testArticle("a", "user-1", testNow.AddDate(0, 0, -1))
	require.NoError(t, repo.CreateArticle(ctx, article))

	readAt := testNow
	article.Status = domain.ArticleStatusRead
	article.Progress = 1
	article.Memo = "worth it"
	article.ReadAt = &readAt
	article.UpdatedAt = testNow
	article.Priority = 0.25
	require.NoError(t, repo.UpdateArticle(ctx, article))

	articles, err := repo.ListArticlesByOwner(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, article, articles[0])

	// Unchanged values still count as a match.
	require.NoError(t, repo.UpdateArticle(ctx, article))

	article.Status = domain.ArticleStatusUnread
	article.ReadAt = nil
	require.NoError(t, repo.UpdateArticle(ctx, article))

	articles, err = repo.ListArticlesByOwner(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, articles[0].ReadAt)
}

func TestRepository_UpdateArticle_NotFound(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateArticle(ctx, testArticle("a", "user-1", testNow)))

	cases := []struct {
		name    string
		article domain.Article
	}{
		{name: "unknown_id", article: testArticle("missing", "user-1", testNow)},
		{name: "other_owner", article: testArticle("a", "user-2", testNow)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := repo.UpdateArticle(ctx, tc.article)
			assert.ErrorIs(t, err, datasources.ErrArticleNotFound)
		})
	}
}

func TestRepository_ArchiveArticles(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.CreateArticle(ctx, testArticle(id, "user-1", testNow)))
	}
	require.NoError(t, repo.CreateArticle(ctx, testArticle("d", "user-2", testNow)))

	archivedAt := testNow.Add(time.Hour)
	require.NoError(t, repo.ArchiveArticles(ctx, "user-1", []string{"a", "c", "d", "missing"}, archivedAt))
	require.NoError(t, repo.ArchiveArticles(ctx, "user-1", nil, archivedAt))

	articles, err := repo.ListArticlesByOwner(ctx, "user-1")
	require.NoError(t, err)

	statuses := map[string]domain.ArticleStatus{}
	for _, a := range articles {
		statuses[a.ID] = a.Status
		if a.Status == domain.ArticleStatusArchived {
			assert.Equal(t, archivedAt, a.UpdatedAt)
		}
	}
	assert.Equal(t, map[string]domain.ArticleStatus{
		"a": domain.ArticleStatusArchived,
		"b": domain.ArticleStatusUnread,
		"c": domain.ArticleStatusArchived,
	}, statuses)

	others, err := repo.ListArticlesByOwner(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, domain.ArticleStatusUnread, others[0].Status, "other owners are untouched")
}

func TestRepository_Delete(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b"} {
		require.NoError(t, repo.CreateArticle(ctx, testArticle(id, "user-1", testNow)))
	}
	require.NoError(t, repo.CreateArticle(ctx, testArticle("c", "user-2", testNow)))

	require.NoError(t, repo.DeleteArticle(ctx, "user-1", "a"))
	assert.ErrorIs(t, repo.DeleteArticle(ctx, "user-1", "a"), datasources.ErrArticleNotFound)
	assert.ErrorIs(t, repo.DeleteArticle(ctx, "user-1", "c"), datasources.ErrArticleNotFound)

	articles, err := repo.ListArticlesByOwner(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "b", articles[0].ID)

	require.NoError(t, repo.DeleteOwnerArticles(ctx, "user-1"))

	articles, err = repo.ListArticlesByOwner(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, articles)

	others, err := repo.ListArticlesByOwner(ctx, "user-2")
	require.NoError(t, err)
	assert.Len(t, others, 1)
}

func TestParseDriver(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    Driver
		wantErr bool
	}{
		{name: "mysql", input: "mysql", want: DriverMySQL},
		{name: "postgres_upper", input: "POSTGRES", want: DriverPostgres},
		{name: "sqlite", input: "sqlite", want: DriverSQLite},
		{name: "unknown", input: "oracle", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDriver(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDriver_DataSourceName(t *testing.T) {
	assert.Equal(t, "user:pw@tcp(db)/rq?parseTime=true&clientFoundRows=true",
		DriverMySQL.dataSourceName("user:pw@tcp(db)/rq"))
	assert.Equal(t, "user:pw@tcp(db)/rq?tls=true&parseTime=true&clientFoundRows=true",
		DriverMySQL.dataSourceName("user:pw@tcp(db)/rq?tls=true"))
	assert.Equal(t, "postgres://db/rq", DriverPostgres.dataSourceName("postgres://db/rq"))
	assert.Equal(t, ":memory:?_time_format=sqlite", DriverSQLite.dataSourceName(":memory:"))
}
