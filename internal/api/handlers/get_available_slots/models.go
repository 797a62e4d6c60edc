package get_available_slots

import (
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-BeautyBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"available_slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}

	return &AvailableSlotsResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		AvailableSlots: slots,
	}
}
