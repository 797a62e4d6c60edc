package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// Request входные данные для получения доступных слотов
type Request struct {
	Date string // YYYY-MM-DD
}

// Response результат получения доступных слотов
type Response struct {
	Date  time.Time
	Slots []types.TimeString
}
