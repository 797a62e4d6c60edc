package pgerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pq.Error{Code: "23505", Constraint: "bookings_active_slot_uidx"})

	assert.True(t, IsUniqueViolation(err, ""))
	assert.True(t, IsUniqueViolation(err, "bookings_active_slot_uidx"))
	assert.False(t, IsUniqueViolation(err, "admins_username_key"))
	assert.False(t, IsUniqueViolation(errors.New("plain"), ""))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}, ""))
}

