package domain

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a back-office account
type Admin struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
