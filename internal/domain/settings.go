package domain

import (
	"time"

	"github.com/google/uuid"
)

// Settings is the singleton contact configuration
type Settings struct {
	ID             uuid.UUID
	WhatsAppNumber string
	UpdatedAt      time.Time
}

// DefaultSettings is returned when no settings row exists yet
func DefaultSettings() *Settings {
	return &Settings{WhatsAppNumber: DefaultWhatsAppNumber}
}
