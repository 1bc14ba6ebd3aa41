package billing

import (
	"fmt"

	"hotelify/models"
)

// maxChargeDescriptionLen caps charge descriptions, matching the invoice schema.
const maxChargeDescriptionLen = 200

// ResolveCharges prices the requested additional services against the hotel's
// service catalog. Each request resolves to one charge with
// amount = unit price * quantity; quantity defaults to 1 when zero. The
// function is pure: any unknown service type or invalid request aborts the
// whole resolution and nothing is returned.
func ResolveCharges(catalog []models.HotelService, requested []models.ChargeRequest) ([]models.AdditionalCharge, float64, error) {
	charges := make([]models.AdditionalCharge, 0, len(requested))
	var total float64

	for _, req := range requested {
		svc, ok := findService(catalog, req.ServiceType)
		if !ok {
			return nil, 0, &UnknownServiceTypeError{ServiceType: req.ServiceType}
		}

		quantity := req.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if quantity < 0 {
			return nil, 0, &ValidationError{Message: fmt.Sprintf("quantity for service '%s' must be positive", req.ServiceType)}
		}
		if len(req.Description) > maxChargeDescriptionLen {
			return nil, 0, &ValidationError{Message: fmt.Sprintf("description for service '%s' exceeds %d characters", req.ServiceType, maxChargeDescriptionLen)}
		}

		amount := svc.Price * float64(quantity)
		total += amount
		charges = append(charges, models.AdditionalCharge{
			ServiceType: req.ServiceType,
			Description: req.Description,
			Amount:      amount,
		})
	}
	return charges, total, nil
}

func findService(catalog []models.HotelService, serviceType string) (models.HotelService, bool) {
	for _, s := range catalog {
		if s.Type == serviceType {
			return s, true
		}
	}
	return models.HotelService{}, false
}
