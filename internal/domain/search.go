package domain

import (
	"strings"
)

// MatchesQuery reports whether query appears, case-insensitively, in the
// article's title, excerpt, creator name or any of its hashtags. An empty
// query matches every article.
func MatchesQuery(a Article, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	if strings.Contains(strings.ToLower(a.Title), q) ||
		strings.Contains(strings.ToLower(a.Excerpt), q) ||
		strings.Contains(strings.ToLower(a.Creator.Nickname), q) {
		return true
	}

	for _, tag := range a.Hashtags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// FilterArticles returns the articles matching status (if set) and query.
func FilterArticles(articles []Article, status ArticleStatus, query string) []Article {
	filtered := []Article{}
	for _, a := range articles {
		if status != "" && a.Status != status {
			continue
		}
		if !MatchesQuery(a, query) {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}
