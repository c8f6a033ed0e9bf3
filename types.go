package eventer

import "context"

// Args is the call context of one proxy invocation: the positional arguments
// as received, with the resolved receiver first for method calls. The same
// Args value is handed to every condition, every hook, and the original.
type Args []any

// Func is an interceptable callable. Register turns one into an event.
type Func func(ctx context.Context, args Args) (any, error)

// Hook is a before- or after-callable attached to an event. Its return
// value gates nothing on success; a non-nil error aborts the pipeline and
// propagates to the caller unwrapped.
type Hook func(ctx context.Context, args Args) error

// Condition is a predicate gating whether an event's pipeline proceeds.
// Returning false short-circuits the call; it is not an error.
type Condition func(ctx context.Context, args Args) bool

// Result is what calling a proxy yields.
type Result struct {
	// Value is the original callable's return value. Zero when the call
	// was blocked by a condition.
	Value any

	// Fired reports whether the pipeline ran. False means a condition
	// returned false and nothing - hooks or original - executed.
	Fired bool
}

// Stats contains registry counters.
type Stats struct {
	// Events is the number of registered events.
	Events int

	// Calls is the total number of proxy invocations.
	Calls uint64

	// Blocked is the number of invocations short-circuited by a condition.
	Blocked uint64

	// Completed is the number of invocations where the original returned
	// successfully.
	Completed uint64

	// HookErrors is the number of invocations aborted by a failing hook
	// or original.
	HookErrors uint64
}
