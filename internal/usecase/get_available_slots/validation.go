package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// parseDate разбирает дату запроса
func parseDate(raw string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return date, nil
}
