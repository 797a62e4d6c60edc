package seed

import (
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// DefaultBusinessHours расписание по умолчанию: будни 08-18, суббота 08-12, воскресенье закрыто
func DefaultBusinessHours() []*domain.BusinessHours {
	hours := make([]*domain.BusinessHours, 0, domain.MaxWeekday+1)
	for day := domain.MinWeekday; day <= domain.MaxWeekday; day++ {
		h := &domain.BusinessHours{
			DayOfWeek:       day,
			OpenTime:        types.TimeString("08:00"),
			CloseTime:       types.TimeString("18:00"),
			IsOpen:          true,
			IntervalMinutes: domain.DefaultIntervalMinutes,
		}
		switch day {
		case 5:
			h.CloseTime = types.TimeString("12:00")
		case 6:
			h.IsOpen = false
		}
		hours = append(hours, h)
	}
	return hours
}

// DefaultServices стартовый каталог
func DefaultServices() []*domain.Service {
	return []*domain.Service{
		{Name: "Volume Brasileiro", Description: "Técnica brasileira de alongamento de cílios", Price: 150, Active: true},
		{Name: "Volume 5D", Description: "Alongamento 5D para volume intenso", Price: 180, Active: true},
		{Name: "Cat Eye", Description: "Efeito olho de gato elegante", Price: 160, Active: true},
		{Name: "Fox Eye", Description: "Efeito olho de raposa moderno", Price: 170, Active: true},
		{Name: "Capping", Description: "Técnica de finalização perfeita", Price: 140, Active: true},
	}
}
