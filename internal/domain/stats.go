package domain

import (
	"cmp"
	"math"
	"slices"
	"time"
)

const (
	topListSize = 5
	daysPerWeek = 7

	// NoDataLabel names the placeholder entry of an empty top list.
	NoDataLabel = "no data"
)

// HashtagCount is one entry of the top hashtags list.
type HashtagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CreatorCount is one entry of the top creators list.
type CreatorCount struct {
	Name    string `json:"name"`
	URLName string `json:"urlname"`
	Count   int    `json:"count"`
}

// ReadingStats is an aggregate snapshot of one reader's collection.
type ReadingStats struct {
	TotalRead           int            `json:"total_read"`
	TotalSaved          int            `json:"total_saved"`
	UnreadCount         int            `json:"unread_count"`
	ReadRatePercent     int            `json:"read_rate_percent"`
	TopHashtags         []HashtagCount `json:"top_hashtags"`
	TopCreators         []CreatorCount `json:"top_creators"`
	WeeklyRead          [7]int         `json:"weekly_read"`
	WeeklyGrowthPercent int            `json:"weekly_growth_percent"`
	Streak              int            `json:"streak"`
	BestStreak          int            `json:"best_streak"`
	AverageReadingTime  int            `json:"average_reading_time"`
}

// ComputeStats aggregates articles into reading statistics as of now.
// Calendar days are taken in now's location.
func ComputeStats(articles []Article, now time.Time) ReadingStats {
	var stats ReadingStats

	var active []Article
	var readingTimeSum int
	var readDays []int
	for _, a := range articles {
		if a.IsActive() {
			active = append(active, a)
		}
		switch a.Status {
		case ArticleStatusUnread:
			stats.UnreadCount++
		case ArticleStatusRead:
			stats.TotalRead++
			readingTimeSum += a.ReadingTimeMinutes
			if a.ReadAt != nil {
				readDays = append(readDays, calendarDaysBetween(*a.ReadAt, now, now.Location()))
			}
		}
	}

	// Floored at 1 so it is always safe to divide by.
	stats.TotalSaved = max(len(active), 1)
	stats.ReadRatePercent = int(math.Round(float64(stats.TotalRead) / float64(stats.TotalSaved) * 100))

	stats.TopHashtags = topHashtags(active)
	stats.TopCreators = topCreators(active)

	var lastWeek int
	for _, a := range articles {
		if a.Status != ArticleStatusRead || a.ReadAt == nil {
			continue
		}
		switch day := calendarDaysBetween(*a.ReadAt, now, now.Location()); {
		case day >= 0 && day < daysPerWeek:
			stats.WeeklyRead[weekdayIndex(a.ReadAt.In(now.Location()))]++
		case day >= daysPerWeek && day < 2*daysPerWeek:
			lastWeek++
		}
	}

	var thisWeek int
	for _, n := range stats.WeeklyRead {
		thisWeek += n
	}
	stats.WeeklyGrowthPercent = weeklyGrowthPercent(thisWeek, lastWeek)

	stats.Streak = currentStreak(readDays)
	stats.BestStreak = bestStreak(readDays, stats.Streak)

	if stats.TotalRead > 0 {
		stats.AverageReadingTime = int(math.Round(float64(readingTimeSum) / float64(stats.TotalRead)))
	}

	return stats
}

func topHashtags(active []Article) []HashtagCount {
	var counts []HashtagCount
	index := map[string]int{}
	for _, a := range active {
		for _, tag := range a.Hashtags {
			i, ok := index[tag]
			if !ok {
				i = len(counts)
				index[tag] = i
				counts = append(counts, HashtagCount{Name: tag})
			}
			counts[i].Count++
		}
	}

	// Stable, so equal counts keep first-seen order.
	slices.SortStableFunc(counts, func(a, b HashtagCount) int {
		return cmp.Compare(b.Count, a.Count)
	})

	if len(counts) == 0 {
		return []HashtagCount{{Name: NoDataLabel, Count: 0}}
	}
	return counts[:min(len(counts), topListSize)]
}

func topCreators(active []Article) []CreatorCount {
	var counts []CreatorCount
	index := map[string]int{}
	for _, a := range active {
		key := a.Creator.URLName
		i, ok := index[key]
		if !ok {
			i = len(counts)
			index[key] = i
			counts = append(counts, CreatorCount{Name: a.Creator.Nickname, URLName: key})
		}
		counts[i].Count++
	}

	slices.SortStableFunc(counts, func(a, b CreatorCount) int {
		return cmp.Compare(b.Count, a.Count)
	})

	if len(counts) == 0 {
		return []CreatorCount{{Name: NoDataLabel, URLName: "-", Count: 0}}
	}
	return counts[:min(len(counts), topListSize)]
}

// weeklyGrowthPercent is the percentage change from last week to this week.
// With nothing read last week any reading this week counts as 100%.
func weeklyGrowthPercent(thisWeek, lastWeek int) int {
	if lastWeek == 0 {
		if thisWeek > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round(float64(thisWeek-lastWeek) / float64(lastWeek) * 100))
}

// currentStreak walks backwards from today (day 0) counting days with a read.
// A miss today does not break the streak since the day is not over yet, a
// miss on any earlier day does.
func currentStreak(readDays []int) int {
	days := make(map[int]bool, len(readDays))
	for _, d := range readDays {
		days[d] = true
	}

	streak := 0
	for day := 0; ; day++ {
		if days[day] {
			streak++
			continue
		}
		if day > 0 {
			break
		}
	}
	return streak
}

// bestStreak is the longest run of consecutive calendar days among readDays.
// readDays are day offsets counted backwards from today, so consecutive days
// differ by exactly one. Returns fallback when there are no read days.
func bestStreak(readDays []int, fallback int) int {
	if len(readDays) == 0 {
		return fallback
	}

	days := slices.Clone(readDays)
	slices.Sort(days)
	days = slices.Compact(days)

	best, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i]-days[i-1] == 1 {
			run++
		} else {
			run = 1
		}
		best = max(best, run)
	}
	return best
}
