package eventer

import "errors"

// Sentinel errors for the interception registry.
var (
	// ErrUnregisteredEvent is returned when a hook or condition is attached
	// to, or a lookup is attempted on, a callable with no interception record.
	ErrUnregisteredEvent = errors.New("callable is not registered as an event")

	// ErrDuplicateEvent is returned when Register is called twice for the
	// same callable identity.
	ErrDuplicateEvent = errors.New("callable is already registered as an event")

	// ErrNilFunc is returned when a nil callable is registered.
	ErrNilFunc = errors.New("event callable cannot be nil")

	// ErrNilHook is returned when a nil before- or after-hook is attached.
	ErrNilHook = errors.New("hook cannot be nil")

	// ErrNilCondition is returned when a nil condition is attached.
	ErrNilCondition = errors.New("condition cannot be nil")
)

// UnregisteredEventError carries the operation that failed to resolve an
// event reference. It matches ErrUnregisteredEvent under errors.Is.
type UnregisteredEventError struct {
	// Op is the operation that failed ("RunBefore", "RunAfter",
	// "ConditionFor", "Lookup").
	Op string
}

// Error implements the error interface.
func (e *UnregisteredEventError) Error() string {
	return e.Op + ": callable is not registered as an event; register it first"
}

// Is allows errors.Is to match UnregisteredEventError with ErrUnregisteredEvent.
func (e *UnregisteredEventError) Is(target error) bool {
	return target == ErrUnregisteredEvent
}
