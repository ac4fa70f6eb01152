package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/reading-queue/internal/command"
	"github.com/jbeshir/reading-queue/internal/domain"
	"github.com/jbeshir/reading-queue/internal/transport/web/controller"
)

// Commands are the operations the HTTP API exposes.
type Commands struct {
	ListArticles       command.Command[command.ListArticlesRequest, []domain.Article]
	GetArticle         command.Command[command.GetArticleRequest, domain.Article]
	SaveArticle        command.Command[command.SaveArticleRequest, command.SaveArticleResult]
	SetArticleStatus   command.Command[command.SetArticleStatusRequest, domain.ReadingViews]
	SetArticleProgress command.Command[command.SetArticleProgressRequest, domain.ReadingViews]
	SetArticleMemo     command.Command[command.SetArticleMemoRequest, domain.ReadingViews]
	ArchiveArticles    command.Command[command.ArchiveArticlesRequest, domain.ReadingViews]
	DeleteArticle      command.Command[command.DeleteArticleRequest, domain.ReadingViews]
	DeleteAllArticles  command.Command[command.DeleteAllArticlesRequest, domain.ReadingViews]
	GetViews           command.Command[command.GetViewsRequest, domain.ReadingViews]
}

func MakeRouter(
	cmds Commands,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	rssCacheMaxAge time.Duration,
	feedTokens controller.FeedTokens,
	authMiddleware func(http.Handler) http.Handler,
) http.Handler {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	authed := func(path string, h http.Handler, method string) {
		r.Handle(path, requireAuthMiddleware(h)).Methods(method, http.MethodOptions)
	}

	authed("/v1/articles", controller.ArticlesList{ListCmd: cmds.ListArticles}, http.MethodGet)
	authed("/v1/articles", controller.ArticleSave{SaveCmd: cmds.SaveArticle}, http.MethodPost)
	authed("/v1/articles", controller.ArticlesDeleteAll{DeleteAllCmd: cmds.DeleteAllArticles}, http.MethodDelete)

	// Registered before the {article_id} routes so "archive" is not taken as an id.
	authed("/v1/articles/archive", controller.ArticlesArchive{ArchiveCmd: cmds.ArchiveArticles}, http.MethodPost)

	authed("/v1/articles/{article_id}", controller.ArticleGet{GetCmd: cmds.GetArticle}, http.MethodGet)
	authed("/v1/articles/{article_id}", controller.ArticleDelete{DeleteCmd: cmds.DeleteArticle}, http.MethodDelete)
	authed("/v1/articles/{article_id}/status/{status}",
		controller.ArticleStatusSet{SetStatusCmd: cmds.SetArticleStatus}, http.MethodPost)
	authed("/v1/articles/{article_id}/progress/{progress}",
		controller.ArticleProgressSet{SetProgressCmd: cmds.SetArticleProgress}, http.MethodPost)
	authed("/v1/articles/{article_id}/memo",
		controller.ArticleMemoSet{SetMemoCmd: cmds.SetArticleMemo}, http.MethodPut)

	authed("/v1/queue", controller.ViewsGet{ViewsCmd: cmds.GetViews, Kind: controller.ViewKindQueue}, http.MethodGet)
	authed("/v1/archive-suggestions",
		controller.ViewsGet{ViewsCmd: cmds.GetViews, Kind: controller.ViewKindArchiveSuggestions}, http.MethodGet)
	authed("/v1/stats", controller.ViewsGet{ViewsCmd: cmds.GetViews, Kind: controller.ViewKindStats}, http.MethodGet)

	authed("/v1/feed-url", controller.FeedURLGet{FeedHostname: rssFeedBaseURL, Tokens: feedTokens}, http.MethodGet)

	// Feed readers cannot send bearer tokens; the feed token in the path
	// authorises the request instead.
	r.Handle("/rss/queue/{user_id}/{feed_token}", controller.RSS{
		FeedHostname:    rssFeedBaseURL,
		FeedAuthorName:  rssFeedAuthorName,
		FeedAuthorEmail: rssFeedAuthorEmail,
		ViewsCmd:        cmds.GetViews,
		CacheMaxAge:     rssCacheMaxAge,
		Tokens:          feedTokens,
	}).Methods(http.MethodGet, http.MethodOptions)

	return r
}
