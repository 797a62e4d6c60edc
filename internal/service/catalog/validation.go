package catalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/m04kA/SMC-BeautyBooking/internal/service/catalog/models"
)

func validateCreate(req *models.CreateServiceRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return validatePrice(req.Price)
}

func validateUpdate(req *models.UpdateServiceRequest) error {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if req.Price != nil {
		return validatePrice(*req.Price)
	}
	return nil
}

func validatePrice(price float64) error {
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return fmt.Errorf("%w: price must be a non-negative number", ErrInvalidInput)
	}
	return nil
}
