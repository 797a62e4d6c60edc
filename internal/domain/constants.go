package domain

import "time"

// Default values
const (
	DefaultIntervalMinutes = 90
	DefaultWhatsAppNumber  = "+5588998376642"
	DefaultTokenTTL        = 24 * time.Hour
)

// ListLimit caps unpaginated listings
const ListLimit = 1000

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Weekday bounds, Monday=0 ... Sunday=6
const (
	MinWeekday = 0
	MaxWeekday = 6
)
