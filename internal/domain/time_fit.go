package domain

// Reading slot limits in minutes. Commute and lunch windows favour short reads,
// the evening is treated as open-ended leisure time.
const (
	morningSlotMaxMinutes = 10
	lunchSlotMaxMinutes   = 15
	defaultSlotMaxMinutes = 10
	eveningSlotStartHour  = 20
)

// FitsReadingSlot reports whether an article of readingTimeMinutes fits the
// reading slot for the given hour of day (0-23). The first matching rule wins.
func FitsReadingSlot(hour, readingTimeMinutes int) bool {
	switch {
	case hour >= 6 && hour < 9:
		return readingTimeMinutes <= morningSlotMaxMinutes
	case hour >= 12 && hour < 14:
		return readingTimeMinutes <= lunchSlotMaxMinutes
	case hour >= eveningSlotStartHour:
		return true
	default:
		return readingTimeMinutes <= defaultSlotMaxMinutes
	}
}

// TimeSlot is a coarse label for the time of day, shown alongside the queue.
type TimeSlot string

const (
	TimeSlotMorning   TimeSlot = "morning"
	TimeSlotAfternoon TimeSlot = "afternoon"
	TimeSlotEvening   TimeSlot = "evening"
	TimeSlotNight     TimeSlot = "night"
)

// TimeSlotForHour buckets an hour of day into a TimeSlot.
func TimeSlotForHour(hour int) TimeSlot {
	switch {
	case hour >= 5 && hour < 12:
		return TimeSlotMorning
	case hour >= 12 && hour < 17:
		return TimeSlotAfternoon
	case hour >= 17 && hour < 21:
		return TimeSlotEvening
	default:
		return TimeSlotNight
	}
}
