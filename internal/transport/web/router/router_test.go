package router

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jbeshir/reading-queue/internal/command"
	cmdmocks "github.com/jbeshir/reading-queue/internal/command/mocks"
	"github.com/jbeshir/reading-queue/internal/domain"
	"github.com/jbeshir/reading-queue/internal/transport/web/controller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testToken = "s3cret-token"

var testFeedTokens = controller.FeedTokens{Secret: []byte("feed-secret")}

func testRequest(method, path, authHeader string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	req = req.WithContext(domain.ContextWithLogger(req.Context(), slog.New(slog.DiscardHandler)))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	return req
}

func TestMakeRouter_Auth(t *testing.T) {
	cases := []struct {
		name       string
		method     string
		path       string
		authHeader string
		wantCall   bool
		wantStatus int
	}{
		{
			name:       "single_user_token",
			method:     http.MethodGet,
			path:       "/v1/queue",
			authHeader: "Bearer " + testToken,
			wantCall:   true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "no_auth",
			method:     http.MethodGet,
			path:       "/v1/queue",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong_token",
			method:     http.MethodGet,
			path:       "/v1/stats",
			authHeader: "Bearer nope",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "auth0_token_without_auth0_driver",
			method:     http.MethodGet,
			path:       "/v1/stats",
			authHeader: "Bearer auth0|abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "rss_with_feed_token",
			method:     http.MethodGet,
			path:       "/rss/queue/reader/" + testFeedTokens.Token("reader"),
			wantCall:   true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "rss_with_other_readers_token",
			method:     http.MethodGet,
			path:       "/rss/queue/reader/" + testFeedTokens.Token("someone-else"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "rss_without_feed_token",
			method:     http.MethodGet,
			path:       "/rss/queue/reader",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "feed_url_requires_auth",
			method:     http.MethodGet,
			path:       "/v1/feed-url",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "preflight",
			method:     http.MethodOptions,
			path:       "/v1/queue",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown_route",
			method:     http.MethodGet,
			path:       "/v1/nothing",
			authHeader: "Bearer " + testToken,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			viewsCmd := cmdmocks.NewMockCommand[command.GetViewsRequest, domain.ReadingViews](t)
			if tc.wantCall {
				viewsCmd.EXPECT().
					Execute(mock.Anything, command.GetViewsRequest{UserID: "reader"}).
					Return(domain.ReadingViews{GeneratedAt: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)}, nil)
			}

			handler := MakeRouter(
				Commands{GetViews: viewsCmd},
				"https://example.com", "Reader", "reader@example.com", time.Minute,
				testFeedTokens,
				NewAuthMiddleware([]AuthValidator{NewSingleUserValidator("reader", testToken)}),
			)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, testRequest(tc.method, tc.path, tc.authHeader))

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusNotFound {
				assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestNewAuthMiddleware_SetsIdentity(t *testing.T) {
	var gotUserID string
	var gotMethod domain.AuthMethod

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = domain.UserIDFromContext(r.Context())
		gotMethod = domain.AuthMethodFromContext(r.Context())
	})

	skip := func(*http.Request) (*AuthResult, error) { return nil, nil }
	mw := NewAuthMiddleware([]AuthValidator{skip, NewSingleUserValidator("reader", testToken)})

	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, testRequest(http.MethodGet, "/", "Bearer "+testToken))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "reader", gotUserID)
	assert.Equal(t, domain.AuthMethodSingleUser, gotMethod)
}

func TestNewAuthMiddleware_RejectsWithMessage(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	mw := NewAuthMiddleware([]AuthValidator{NewSingleUserValidator("reader", testToken)})

	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, testRequest(http.MethodGet, "/", "Bearer wrong"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"invalid token"}`, rec.Body.String())
}
