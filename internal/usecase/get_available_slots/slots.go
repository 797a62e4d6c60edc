package get_available_slots

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// generateTimeSlots генерирует времена начала слотов от открытия до закрытия.
// Последний слот может заканчиваться после закрытия.
func generateTimeSlots(hours *domain.BusinessHours) ([]types.TimeString, error) {
	if hours == nil || !hours.IsOpen {
		return []types.TimeString{}, nil
	}

	if hours.IntervalMinutes <= 0 {
		return nil, fmt.Errorf("non-positive interval %d for day %d", hours.IntervalMinutes, hours.DayOfWeek)
	}

	open, err := types.NewTimeStringFromString(hours.OpenTime.String())
	if err != nil {
		return nil, fmt.Errorf("invalid open time: %w", err)
	}
	if err := hours.CloseTime.Validate(); err != nil {
		return nil, fmt.Errorf("invalid close time: %w", err)
	}

	slots := make([]types.TimeString, 0)
	for slot := open; slot.IsBefore(hours.CloseTime); {
		slots = append(slots, slot)

		next, err := slot.AddMinutes(hours.IntervalMinutes)
		if errors.Is(err, types.ErrTimeOverflow) {
			break
		}
		if err != nil {
			return nil, err
		}
		slot = next
	}

	return slots, nil
}

// excludeBooked убирает слоты, время которых уже занято
func excludeBooked(slots []types.TimeString, booked []types.TimeString) []types.TimeString {
	if len(booked) == 0 {
		return slots
	}

	taken := make(map[types.TimeString]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	available := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if _, ok := taken[slot]; ok {
			continue
		}
		available = append(available, slot)
	}

	return available
}
