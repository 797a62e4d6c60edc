package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// BusinessHours is the schedule of one weekday
type BusinessHours struct {
	ID              uuid.UUID
	DayOfWeek       int // 0=Monday ... 6=Sunday
	OpenTime        types.TimeString
	CloseTime       types.TimeString
	IsOpen          bool
	IntervalMinutes int
}

// BusinessHoursUpdate carries the fields of a partial update; nil means untouched
type BusinessHoursUpdate struct {
	OpenTime        *types.TimeString
	CloseTime       *types.TimeString
	IsOpen          *bool
	IntervalMinutes *int
}

// IsEmpty returns true when no field is set
func (u BusinessHoursUpdate) IsEmpty() bool {
	return u.OpenTime == nil && u.CloseTime == nil && u.IsOpen == nil && u.IntervalMinutes == nil
}

// WeekdayIndex converts a date to the Monday-based weekday index
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// IsValidWeekday reports whether day is in 0..6
func IsValidWeekday(day int) bool {
	return day >= MinWeekday && day <= MaxWeekday
}
