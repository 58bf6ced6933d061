package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrUnknownOption      = errors.New("not one of the supported options")
	ErrGenerationInFlight = errors.New("a generation request is already in flight")
	ErrEmptyBasket        = errors.New("no ingredients added")
)

// ServiceError is a failure reported by the generation service itself
// (the call succeeded at the transport level but success=false came
// back). Message is safe to show to the user.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return "service: " + e.Message
}
