package domain

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

var ErrUnknownStatus = errors.New("unknown article status")

// ErrInvalidTransition is returned when a status change is not allowed by the
// reading lifecycle. Archived articles cannot be moved back into the active set.
var ErrInvalidTransition = errors.New("invalid article status transition")

// ParseArticleStatus converts s into an ArticleStatus.
func ParseArticleStatus(s string) (ArticleStatus, error) {
	status := ArticleStatus(s)
	if !slices.Contains(ValidArticleStatuses, status) {
		return "", fmt.Errorf("%w: %s", ErrUnknownStatus, s)
	}
	return status, nil
}

// allowedTransitions is the reading lifecycle: unread -> reading -> read by
// progress, unread -> read directly, read -> unread to undo, and any active
// status -> archived. Setting the status an article already has is allowed
// while it is active.
var allowedTransitions = map[ArticleStatus][]ArticleStatus{
	ArticleStatusUnread:  {ArticleStatusUnread, ArticleStatusReading, ArticleStatusRead, ArticleStatusArchived},
	ArticleStatusReading: {ArticleStatusReading, ArticleStatusRead, ArticleStatusArchived},
	ArticleStatusRead:    {ArticleStatusRead, ArticleStatusUnread, ArticleStatusArchived},
}

// CanTransition reports whether an article may move from one status to another.
func CanTransition(from, to ArticleStatus) bool {
	return slices.Contains(allowedTransitions[from], to)
}

// ApplyStatus returns a copy of a moved to the given status at time now.
// ReadAt is stamped when the article becomes read and cleared when it leaves
// read for unread. Moving to archived keeps ReadAt so history is preserved.
func ApplyStatus(a Article, to ArticleStatus, now time.Time) (Article, error) {
	if !CanTransition(a.Status, to) {
		return Article{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, to)
	}

	next := a.Clone()
	switch to {
	case ArticleStatusRead:
		if a.Status != ArticleStatusRead || a.ReadAt == nil {
			readAt := now
			next.ReadAt = &readAt
		}
		next.Progress = 1
	case ArticleStatusUnread:
		next.ReadAt = nil
		next.Progress = 0
	}
	next.Status = to
	next.UpdatedAt = now

	return next, nil
}

// StatusForProgress maps reading progress onto a status: complete progress is
// read, partial progress is reading and no progress is unread.
func StatusForProgress(progress float64) ArticleStatus {
	switch {
	case progress >= 1:
		return ArticleStatusRead
	case progress > 0:
		return ArticleStatusReading
	default:
		return ArticleStatusUnread
	}
}

// ApplyProgress returns a copy of a with progress recorded and its status
// updated to match. Progress is clamped to [0,1].
func ApplyProgress(a Article, progress float64, now time.Time) (Article, error) {
	progress = clamp(progress, 0, 1)

	next, err := ApplyStatus(a, StatusForProgress(progress), now)
	if err != nil {
		return Article{}, err
	}
	next.Progress = progress

	return next, nil
}
