// Package library holds each reader's saved articles together with the views
// derived from them, and keeps both in step with the article store.
package library

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jbeshir/reading-queue/internal/datasources"
	"github.com/jbeshir/reading-queue/internal/domain"
)

// snapshot is one reader's collection and the views derived from it. A
// snapshot is replaced as a whole and never edited in place.
type snapshot struct {
	articles []domain.Article
	views    domain.ReadingViews
}

// persistFunc writes a mutation to the store once the new views are derived,
// so cached scores are stored alongside the change.
type persistFunc func(ctx context.Context, views domain.ReadingViews) error

// change computes the next collection from the current one.
type change func(articles []domain.Article, now time.Time) ([]domain.Article, persistFunc, error)

// Library serialises every mutation of every reader's collection. After each
// mutation all views are derived again from scratch and published.
type Library struct {
	Store     datasources.ArticleRepository
	Publisher datasources.ViewsPublisher
	Clock     func() time.Time
	Location  *time.Location

	mu        sync.Mutex
	snapshots map[string]snapshot
}

// New creates a Library. Times are taken from clock and converted into
// location, the reader's timezone, before deriving views.
func New(
	store datasources.ArticleRepository,
	publisher datasources.ViewsPublisher,
	clock func() time.Time,
	location *time.Location,
) *Library {
	if location == nil {
		location = time.UTC
	}
	return &Library{
		Store:     store,
		Publisher: publisher,
		Clock:     clock,
		Location:  location,
		snapshots: make(map[string]snapshot),
	}
}

func (l *Library) now() time.Time {
	return l.Clock().In(l.Location)
}

// Views returns the views for userID as of now, loading the collection from
// the store on first use. Priority and time slot depend on the hour, so the
// views are derived again whenever the clock has moved since the last pass.
func (l *Library) Views(ctx context.Context, userID string) (domain.ReadingViews, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	snap, err := l.load(ctx, userID)
	if err != nil {
		return domain.ReadingViews{}, err
	}

	now := l.now()
	if snap.views.GeneratedAt.Equal(now) {
		return snap.views, nil
	}

	views := domain.DeriveViews(snap.articles, now)
	if _, cached := l.snapshots[userID]; cached {
		l.snapshots[userID] = snapshot{articles: views.Articles, views: views}
	}
	return views, nil
}

// Article returns one scored article of userID.
func (l *Library) Article(ctx context.Context, userID, id string) (domain.Article, error) {
	views, err := l.Views(ctx, userID)
	if err != nil {
		return domain.Article{}, err
	}

	i := indexOf(views.Articles, id)
	if i < 0 {
		return domain.Article{}, fmt.Errorf("%w: %s", datasources.ErrArticleNotFound, id)
	}
	return views.Articles[i], nil
}

// Save adds a new unread article for rawURL, built from meta, at the front of
// the collection.
func (l *Library) Save(
	ctx context.Context,
	userID, id, rawURL string,
	meta domain.ArticleMetadata,
) (domain.ReadingViews, error) {
	return l.apply(ctx, userID, func(articles []domain.Article, now time.Time) ([]domain.Article, persistFunc, error) {
		article := domain.NewArticle(id, userID, rawURL, meta, now)
		next := append([]domain.Article{article}, articles...)

		return next, func(ctx context.Context, views domain.ReadingViews) error {
			return l.Store.CreateArticle(ctx, views.Articles[0])
		}, nil
	})
}

// SetStatus moves an article along the reading lifecycle.
func (l *Library) SetStatus(
	ctx context.Context,
	userID, id string,
	status domain.ArticleStatus,
) (domain.ReadingViews, error) {
	return l.updateOne(ctx, userID, id, func(a domain.Article, now time.Time) (domain.Article, error) {
		return domain.ApplyStatus(a, status, now)
	})
}

// SetProgress records reading progress, which also decides the status.
func (l *Library) SetProgress(
	ctx context.Context,
	userID, id string,
	progress float64,
) (domain.ReadingViews, error) {
	return l.updateOne(ctx, userID, id, func(a domain.Article, now time.Time) (domain.Article, error) {
		return domain.ApplyProgress(a, progress, now)
	})
}

func (l *Library) SetMemo(ctx context.Context, userID, id, memo string) (domain.ReadingViews, error) {
	return l.updateOne(ctx, userID, id, func(a domain.Article, now time.Time) (domain.Article, error) {
		next := a.Clone()
		next.Memo = memo
		next.UpdatedAt = now
		return next, nil
	})
}

// Archive archives the given articles. Unknown ids and articles that are
// already archived are skipped.
func (l *Library) Archive(ctx context.Context, userID string, ids []string) (domain.ReadingViews, error) {
	return l.apply(ctx, userID, func(articles []domain.Article, now time.Time) ([]domain.Article, persistFunc, error) {
		next := slices.Clone(articles)
		var archived []string

		for i, a := range next {
			if !slices.Contains(ids, a.ID) || a.Status == domain.ArticleStatusArchived {
				continue
			}
			updated, err := domain.ApplyStatus(a, domain.ArticleStatusArchived, now)
			if err != nil {
				return nil, nil, fmt.Errorf("archiving %s: %w", a.ID, err)
			}
			next[i] = updated
			archived = append(archived, a.ID)
		}

		if len(archived) == 0 {
			return next, nil, nil
		}
		return next, func(ctx context.Context, _ domain.ReadingViews) error {
			return l.Store.ArchiveArticles(ctx, userID, archived, now)
		}, nil
	})
}

func (l *Library) Delete(ctx context.Context, userID, id string) (domain.ReadingViews, error) {
	return l.apply(ctx, userID, func(articles []domain.Article, _ time.Time) ([]domain.Article, persistFunc, error) {
		i := indexOf(articles, id)
		if i < 0 {
			return nil, nil, fmt.Errorf("%w: %s", datasources.ErrArticleNotFound, id)
		}

		next := slices.Delete(slices.Clone(articles), i, i+1)
		return next, func(ctx context.Context, _ domain.ReadingViews) error {
			return l.Store.DeleteArticle(ctx, userID, id)
		}, nil
	})
}

// DeleteAll removes every article of userID.
func (l *Library) DeleteAll(ctx context.Context, userID string) (domain.ReadingViews, error) {
	return l.apply(ctx, userID, func(_ []domain.Article, _ time.Time) ([]domain.Article, persistFunc, error) {
		return []domain.Article{}, func(ctx context.Context, _ domain.ReadingViews) error {
			return l.Store.DeleteOwnerArticles(ctx, userID)
		}, nil
	})
}

// Refresh derives the views of every loaded reader again at the current time.
// Freshness and streaks depend on the date, so this runs after day rollover.
// It returns the number of readers refreshed.
func (l *Library) Refresh(ctx context.Context) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for userID, snap := range l.snapshots {
		views := domain.DeriveViews(snap.articles, now)
		l.snapshots[userID] = snapshot{articles: views.Articles, views: views}
		l.publish(ctx, userID, views)
	}
	return len(l.snapshots)
}

func (l *Library) updateOne(
	ctx context.Context,
	userID, id string,
	update func(a domain.Article, now time.Time) (domain.Article, error),
) (domain.ReadingViews, error) {
	return l.apply(ctx, userID, func(articles []domain.Article, now time.Time) ([]domain.Article, persistFunc, error) {
		i := indexOf(articles, id)
		if i < 0 {
			return nil, nil, fmt.Errorf("%w: %s", datasources.ErrArticleNotFound, id)
		}

		updated, err := update(articles[i], now)
		if err != nil {
			return nil, nil, err
		}

		next := slices.Clone(articles)
		next[i] = updated
		return next, func(ctx context.Context, views domain.ReadingViews) error {
			return l.Store.UpdateArticle(ctx, views.Articles[i])
		}, nil
	})
}

// apply runs one mutation: it computes the next collection, derives its views
// at a single instant, persists, and only then replaces the snapshot.
func (l *Library) apply(ctx context.Context, userID string, c change) (domain.ReadingViews, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	current, err := l.load(ctx, userID)
	if err != nil {
		return domain.ReadingViews{}, err
	}

	now := l.now()
	next, persist, err := c(current.articles, now)
	if err != nil {
		return domain.ReadingViews{}, err
	}

	views := domain.DeriveViews(next, now)
	if persist != nil {
		if err := persist(ctx, views); err != nil {
			return domain.ReadingViews{}, fmt.Errorf("storing articles: %w", err)
		}
	}

	l.snapshots[userID] = snapshot{articles: views.Articles, views: views}
	l.publish(ctx, userID, views)

	return views, nil
}

// load returns the cached snapshot for userID, reading it from the store if
// needed. Readers with no articles are not cached, so lookups of unknown
// owners leave no trace. Callers must hold mu.
func (l *Library) load(ctx context.Context, userID string) (snapshot, error) {
	if snap, ok := l.snapshots[userID]; ok {
		return snap, nil
	}

	articles, err := l.Store.ListArticlesByOwner(ctx, userID)
	if err != nil {
		return snapshot{}, fmt.Errorf("listing articles: %w", err)
	}
	if articles == nil {
		articles = []domain.Article{}
	}

	views := domain.DeriveViews(articles, l.now())
	snap := snapshot{articles: views.Articles, views: views}
	if len(articles) > 0 {
		l.snapshots[userID] = snap
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "loaded reader articles",
		"userID", userID, "count", len(articles))

	return snap, nil
}

func (l *Library) publish(ctx context.Context, userID string, views domain.ReadingViews) {
	if err := l.Publisher.PublishViews(ctx, userID, views); err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "failed to publish views",
			"error", err, "userID", userID)
	}
}

func indexOf(articles []domain.Article, id string) int {
	return slices.IndexFunc(articles, func(a domain.Article) bool {
		return a.ID == id
	})
}
