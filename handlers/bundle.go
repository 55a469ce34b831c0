// File: markhamtaxi/handlers/bundle.go
package handlers

// HandlerBundle groups the handlers passed to route registration.
type HandlerBundle struct {
	Booking *BookingHandler
	Status  *StatusHandler
}
