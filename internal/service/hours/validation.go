package hours

import (
	"fmt"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/hours/models"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// toDomainUpdate валидирует запрос и нормализует время к HH:MM
func toDomainUpdate(req *models.UpdateHoursRequest) (domain.BusinessHoursUpdate, error) {
	upd := domain.BusinessHoursUpdate{
		IsOpen: req.IsOpen,
	}

	if req.OpenTime != nil {
		t, err := types.NewTimeStringFromString(*req.OpenTime)
		if err != nil {
			return upd, fmt.Errorf("%w: open_time must be HH:MM", ErrInvalidInput)
		}
		upd.OpenTime = &t
	}

	if req.CloseTime != nil {
		t, err := types.NewTimeStringFromString(*req.CloseTime)
		if err != nil {
			return upd, fmt.Errorf("%w: close_time must be HH:MM", ErrInvalidInput)
		}
		upd.CloseTime = &t
	}

	if req.IntervalMinutes != nil && *req.IntervalMinutes <= 0 {
		return upd, fmt.Errorf("%w: interval_minutes must be positive", ErrInvalidInput)
	}
	upd.IntervalMinutes = req.IntervalMinutes

	return upd, nil
}
