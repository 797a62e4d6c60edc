package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service is an offering in the catalog
type Service struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	// ImageURL is either a data URL or an external link
	ImageURL  *string
	Active    bool
	CreatedAt time.Time
}

// ServiceUpdate carries the fields of a partial update; nil means untouched
type ServiceUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
	Active      *bool
}

// IsEmpty returns true when no field is set
func (u ServiceUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil && u.ImageURL == nil && u.Active == nil
}
