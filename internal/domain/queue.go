package domain

import (
	"cmp"
	"slices"
)

const (
	// QueueSize is the number of articles offered as "read next".
	QueueSize = 3

	// Articles below archiveFreshnessThreshold are proposed for archiving, and
	// below lowFreshnessThreshold the proposal is tagged low_freshness.
	archiveFreshnessThreshold = 0.3
	lowFreshnessThreshold     = 0.15
)

// DeriveQueue picks the read-next queue from scored articles: unread only,
// highest priority first, at most QueueSize. Ties keep their input order.
func DeriveQueue(scored []Article) []Article {
	queue := make([]Article, 0, QueueSize)
	for _, a := range scored {
		if a.IsActive() && a.Status == ArticleStatusUnread {
			queue = append(queue, a)
		}
	}

	slices.SortStableFunc(queue, func(a, b Article) int {
		return cmp.Compare(b.Priority, a.Priority)
	})

	if len(queue) > QueueSize {
		queue = queue[:QueueSize]
	}
	return queue
}

// DeriveArchiveSuggestions proposes unread articles whose freshness has
// dropped below the archive threshold, in input order.
func DeriveArchiveSuggestions(scored []Article) []ArchiveSuggestion {
	suggestions := []ArchiveSuggestion{}
	for _, a := range scored {
		if !a.IsActive() || a.Status != ArticleStatusUnread {
			continue
		}
		if a.FreshnessScore >= archiveFreshnessThreshold {
			continue
		}

		reason := ArchiveReasonUnread30Days
		if a.FreshnessScore < lowFreshnessThreshold {
			reason = ArchiveReasonLowFreshness
		}
		suggestions = append(suggestions, ArchiveSuggestion{
			Article:       a,
			ArchiveReason: reason,
		})
	}
	return suggestions
}
