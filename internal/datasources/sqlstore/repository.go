package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/reading-queue/internal/datasources"
	"github.com/jbeshir/reading-queue/internal/domain"
)

var _ datasources.ArticleRepository = (*Repository)(nil)

var articleColumns = []string{
	"id",
	"user_id",
	"url",
	"note_id",
	"title",
	"excerpt",
	"cover_image_url",
	"creator_urlname",
	"creator_nickname",
	"creator_profile_image_url",
	"hashtags",
	"is_paid",
	"word_count",
	"reading_time_minutes",
	"like_count",
	"status",
	"progress",
	"memo",
	"saved_at",
	"read_at",
	"updated_at",
	"freshness_score",
	"priority",
	"expiry_score",
}

type Repository struct {
	db     *sql.DB
	flavor sqlbuilder.Flavor
}

func New(db *sql.DB, flavor sqlbuilder.Flavor) *Repository {
	return &Repository{db: db, flavor: flavor}
}

func (r *Repository) CreateArticle(ctx context.Context, article domain.Article) error {
	hashtags, err := encodeHashtags(article.Hashtags)
	if err != nil {
		return err
	}

	ib := r.flavor.NewInsertBuilder()
	ib.InsertInto(articlesTable)
	ib.Cols(articleColumns...)
	ib.Values(
		article.ID,
		article.UserID,
		article.URL,
		article.NoteID,
		article.Title,
		article.Excerpt,
		article.CoverImageURL,
		article.Creator.URLName,
		article.Creator.Nickname,
		article.Creator.ProfileImageURL,
		hashtags,
		article.IsPaid,
		article.WordCount,
		article.ReadingTimeMinutes,
		article.LikeCount,
		string(article.Status),
		article.Progress,
		article.Memo,
		article.SavedAt.UTC(),
		nullTime(article.ReadAt),
		article.UpdatedAt.UTC(),
		article.FreshnessScore,
		article.Priority,
		article.ExpiryScore,
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting article: %w", err)
	}
	return nil
}

func (r *Repository) ListArticlesByOwner(ctx context.Context, userID string) ([]domain.Article, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select(articleColumns...)
	sb.From(articlesTable)
	sb.Where(sb.Equal("user_id", userID))
	sb.OrderBy("saved_at DESC", "id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running articles query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := []domain.Article{}
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("closing rows iterator: %w", err)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return articles, nil
}

func (r *Repository) UpdateArticle(ctx context.Context, article domain.Article) error {
	ub := r.flavor.NewUpdateBuilder()
	ub.Update(articlesTable)
	ub.Set(
		ub.Assign("status", string(article.Status)),
		ub.Assign("progress", article.Progress),
		ub.Assign("memo", article.Memo),
		ub.Assign("read_at", nullTime(article.ReadAt)),
		ub.Assign("updated_at", article.UpdatedAt.UTC()),
		ub.Assign("freshness_score", article.FreshnessScore),
		ub.Assign("priority", article.Priority),
		ub.Assign("expiry_score", article.ExpiryScore),
	)
	ub.Where(ub.Equal("user_id", article.UserID), ub.Equal("id", article.ID))

	query, args := ub.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating article: %w", err)
	}
	return requireAffected(res, article.ID)
}

func (r *Repository) ArchiveArticles(ctx context.Context, userID string, ids []string, updatedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	archived := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		archived = append(archived, id)
	}

	ub := r.flavor.NewUpdateBuilder()
	ub.Update(articlesTable)
	ub.Set(
		ub.Assign("status", string(domain.ArticleStatusArchived)),
		ub.Assign("updated_at", updatedAt.UTC()),
	)
	ub.Where(
		ub.Equal("user_id", userID),
		ub.In("id", archived...),
		ub.NotEqual("status", string(domain.ArticleStatusArchived)),
	)

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("archiving articles: %w", err)
	}
	return nil
}

func (r *Repository) DeleteArticle(ctx context.Context, userID, id string) error {
	dlb := r.flavor.NewDeleteBuilder()
	dlb.DeleteFrom(articlesTable)
	dlb.Where(dlb.Equal("user_id", userID), dlb.Equal("id", id))

	query, args := dlb.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting article: %w", err)
	}
	return requireAffected(res, id)
}

func (r *Repository) DeleteOwnerArticles(ctx context.Context, userID string) error {
	dlb := r.flavor.NewDeleteBuilder()
	dlb.DeleteFrom(articlesTable)
	dlb.Where(dlb.Equal("user_id", userID))

	query, args := dlb.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting owner articles: %w", err)
	}
	return nil
}

func scanArticle(rows *sql.Rows) (domain.Article, error) {
	var (
		article  domain.Article
		status   string
		hashtags string
		readAt   sql.NullTime
	)
	if err := rows.Scan(
		&article.ID,
		&article.UserID,
		&article.URL,
		&article.NoteID,
		&article.Title,
		&article.Excerpt,
		&article.CoverImageURL,
		&article.Creator.URLName,
		&article.Creator.Nickname,
		&article.Creator.ProfileImageURL,
		&hashtags,
		&article.IsPaid,
		&article.WordCount,
		&article.ReadingTimeMinutes,
		&article.LikeCount,
		&status,
		&article.Progress,
		&article.Memo,
		&article.SavedAt,
		&readAt,
		&article.UpdatedAt,
		&article.FreshnessScore,
		&article.Priority,
		&article.ExpiryScore,
	); err != nil {
		return domain.Article{}, fmt.Errorf("scanning articles: %w", err)
	}

	article.Status = domain.ArticleStatus(status)
	article.SavedAt = article.SavedAt.UTC()
	article.UpdatedAt = article.UpdatedAt.UTC()
	if readAt.Valid {
		t := readAt.Time.UTC()
		article.ReadAt = &t
	}

	if err := json.Unmarshal([]byte(hashtags), &article.Hashtags); err != nil {
		return domain.Article{}, fmt.Errorf("decoding hashtags for article %s: %w", article.ID, err)
	}
	if article.Hashtags == nil {
		article.Hashtags = []string{}
	}

	return article, nil
}

func encodeHashtags(hashtags []string) (string, error) {
	if hashtags == nil {
		hashtags = []string{}
	}
	encoded, err := json.Marshal(hashtags)
	if err != nil {
		return "", fmt.Errorf("encoding hashtags: %w", err)
	}
	return string(encoded), nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func requireAffected(res sql.Result, id string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", datasources.ErrArticleNotFound, id)
	}
	return nil
}
