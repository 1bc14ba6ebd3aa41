package billing

import "fmt"

// NotFoundError signals that an external lookup (reservation, hotel, invoice)
// found nothing. Handlers map it to 404.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Resource, e.ID)
}

// ValidationError signals malformed billing input. Handlers map it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UnknownServiceTypeError signals that a requested additional service does not
// exist in the hotel's catalog. The whole charge resolution aborts.
type UnknownServiceTypeError struct {
	ServiceType string
}

func (e *UnknownServiceTypeError) Error() string {
	return fmt.Sprintf("additional service '%s' does not exist in the hotel", e.ServiceType)
}
