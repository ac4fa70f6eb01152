package controller

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/url"

	"github.com/jbeshir/reading-queue/internal/domain"
)

// FeedTokens signs per-reader feed URLs. Feed readers cannot send bearer
// tokens, so the queue feed is authorised by a token in its path instead.
type FeedTokens struct {
	Secret []byte
}

// Token returns the feed token for userID.
func (t FeedTokens) Token(userID string) string {
	mac := hmac.New(sha256.New, t.Secret)
	mac.Write([]byte(userID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Valid reports whether token was issued for userID. Nothing is valid without
// a secret.
func (t FeedTokens) Valid(userID, token string) bool {
	if len(t.Secret) == 0 || userID == "" {
		return false
	}

	got, err := hex.DecodeString(token)
	if err != nil {
		return false
	}
	want, _ := hex.DecodeString(t.Token(userID))
	return hmac.Equal(got, want)
}

// FeedPath is the path of userID's queue feed.
func (t FeedTokens) FeedPath(userID string) string {
	return "/rss/queue/" + url.PathEscape(userID) + "/" + t.Token(userID)
}

// FeedURLGet tells an authenticated reader where their private queue feed is.
type FeedURLGet struct {
	FeedHostname string
	Tokens       FeedTokens
}

type FeedURLResponse struct {
	URL string `json:"url"`
}

func (c FeedURLGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := domain.UserIDFromContext(ctx)

	if len(c.Tokens.Secret) == 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	writeJSON(ctx, w, http.StatusOK, FeedURLResponse{URL: c.FeedHostname + c.Tokens.FeedPath(userID)})
}
