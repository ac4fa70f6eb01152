package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jbeshir/reading-queue/internal/command"
	"github.com/jbeshir/reading-queue/internal/datasources"
	"github.com/jbeshir/reading-queue/internal/datasources/notemeta"
	"github.com/jbeshir/reading-queue/internal/datasources/redisviews"
	"github.com/jbeshir/reading-queue/internal/datasources/sqlstore"
	"github.com/jbeshir/reading-queue/internal/library"
	"github.com/jbeshir/reading-queue/internal/scheduler"
	"github.com/jbeshir/reading-queue/internal/transport/telegram"
	"github.com/jbeshir/reading-queue/internal/transport/web/controller"
	"github.com/jbeshir/reading-queue/internal/transport/web/router"
	"github.com/jbeshir/reading-queue/internal/transport/web/server"
)

const (
	defaultMetadataFetchTimeout = 15 * time.Second
	defaultViewsTTL             = 48 * time.Hour
	// Shortly after midnight, so day-based views roll over with the calendar.
	refreshViewsAt = "00:05"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	store, err := setupArticleRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up article repository: %w", err)
	}

	publisher, err := setupViewsPublisher(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up views publisher: %w", err)
	}

	location := MustGetEnvAsLocation(ctx, "READER_TIMEZONE")
	lib := library.New(store, publisher, time.Now, location)

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	httpRouter := router.MakeRouter(
		router.Commands{
			ListArticles:       &command.ListArticles{Library: lib},
			GetArticle:         &command.GetArticle{Library: lib},
			SaveArticle:        command.NewSaveArticle(setupMetadataFetcher(ctx), lib),
			SetArticleStatus:   &command.SetArticleStatus{Library: lib},
			SetArticleProgress: &command.SetArticleProgress{Library: lib},
			SetArticleMemo:     &command.SetArticleMemo{Library: lib},
			ArchiveArticles:    &command.ArchiveArticles{Library: lib},
			DeleteArticle:      &command.DeleteArticle{Library: lib},
			DeleteAllArticles:  &command.DeleteAllArticles{Library: lib},
			GetViews:           &command.GetViews{Library: lib},
		},
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDuration(ctx, "RSS_FEED_QUEUE_CACHE_MAX_AGE"),
		controller.FeedTokens{Secret: []byte(GetEnvAsStringOr("RSS_FEED_SECRET", ""))},
		authMiddleware,
	)

	jobs, err := setupJobs(ctx, lib)
	if err != nil {
		return nil, fmt.Errorf("setting up scheduled jobs: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
		&scheduler.Scheduler{
			Location: location,
			Jobs:     jobs,
		},
	}, nil
}

func setupArticleRepository(ctx context.Context) (datasources.ArticleRepository, error) {
	driver, err := sqlstore.ParseDriver(MustGetEnvAsString(ctx, "STORE_DRIVER"))
	if err != nil {
		return nil, err
	}

	db, err := sqlstore.Connect(ctx, driver, MustGetEnvAsString(ctx, "STORE_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", driver, err)
	}

	if err := sqlstore.Migrate(ctx, db, driver.Flavor()); err != nil {
		return nil, fmt.Errorf("migrating %s: %w", driver, err)
	}

	return sqlstore.New(db, driver.Flavor()), nil
}

func setupMetadataFetcher(ctx context.Context) datasources.MetadataFetcher {
	switch driver := GetEnvAsStringOr("METADATA_DRIVER", "http"); driver {
	case "null":
		return datasources.NullMetadataFetcher{}
	default:
		timeout := defaultMetadataFetchTimeout
		if GetEnvAsStringOr("METADATA_FETCH_TIMEOUT", "") != "" {
			timeout = MustGetEnvAsDuration(ctx, "METADATA_FETCH_TIMEOUT")
		}
		return notemeta.NewClient(timeout)
	}
}

func setupViewsPublisher(ctx context.Context) (datasources.ViewsPublisher, error) {
	switch driver := GetEnvAsStringOr("VIEWS_PUBLISHER", "null"); driver {
	case "null":
		return datasources.NullViewsPublisher{}, nil
	case "redis":
		client, err := redisviews.Connect(
			ctx,
			MustGetEnvAsString(ctx, "REDIS_ADDR"),
			GetEnvAsStringOr("REDIS_PASSWORD", ""),
			MustGetEnvAsInt(ctx, "REDIS_DB"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}

		ttl := defaultViewsTTL
		if GetEnvAsStringOr("REDIS_VIEWS_TTL", "") != "" {
			ttl = MustGetEnvAsDuration(ctx, "REDIS_VIEWS_TTL")
		}
		return redisviews.NewPublisher(client, ttl), nil
	default:
		return nil, fmt.Errorf("unknown views publisher [%s]", driver)
	}
}

func setupDigestSender(ctx context.Context) (datasources.DigestSender, error) {
	token := GetEnvAsStringOr("TELEGRAM_BOT_TOKEN", "")
	if token == "" {
		return datasources.NullDigestSender{}, nil
	}

	bot, err := telegram.NewBot(token)
	if err != nil {
		return nil, err
	}
	return &telegram.DigestNotifier{
		Bot:    bot,
		ChatID: MustGetEnvAsInt64(ctx, "TELEGRAM_CHAT_ID"),
	}, nil
}

func setupJobs(ctx context.Context, lib *library.Library) ([]scheduler.Job, error) {
	jobs := []scheduler.Job{
		{
			Name: "refresh_views",
			At:   refreshViewsAt,
			Run:  command.AsJob[command.Empty, command.Empty](&command.RefreshViews{Library: lib}, command.Empty{}),
		},
	}

	userID := GetEnvAsStringOr("DIGEST_USER_ID", "")
	if userID == "" {
		return jobs, nil
	}

	sender, err := setupDigestSender(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up digest sender: %w", err)
	}

	jobs = append(jobs, scheduler.Job{
		Name: "send_digest",
		At:   GetEnvAsStringOr("DIGEST_TIME", "08:00"),
		Run: command.AsJob[command.SendDigestRequest, command.Empty](
			&command.SendDigest{Library: lib, Sender: sender},
			command.SendDigestRequest{UserID: userID},
		),
	})
	return jobs, nil
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "single_user":
			validators = append(validators, router.NewSingleUserValidator(
				MustGetEnvAsString(ctx, "SINGLE_USER_ID"),
				MustGetEnvAsString(ctx, "SINGLE_USER_TOKEN"),
			))
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
