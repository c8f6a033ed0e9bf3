package eventer

import "context"

// AsHook converts a typed single-argument function to a Hook. The hook
// type-asserts the leading argument; on a mismatch it is skipped silently.
func AsHook[A any](fn func(ctx context.Context, arg A) error) Hook {
	return func(ctx context.Context, args Args) error {
		if len(args) == 0 {
			return nil
		}
		if arg, ok := args[0].(A); ok {
			return fn(ctx, arg)
		}
		// Type mismatch - skip silently
		return nil
	}
}

// AsCondition converts a typed single-argument predicate to a Condition.
// On a type mismatch the condition passes, mirroring AsHook's silent skip.
func AsCondition[A any](fn func(ctx context.Context, arg A) bool) Condition {
	return func(ctx context.Context, args Args) bool {
		if len(args) == 0 {
			return true
		}
		if arg, ok := args[0].(A); ok {
			return fn(ctx, arg)
		}
		return true
	}
}

// Voided adapts a zero-argument function into a Hook that discards the
// event's arguments. Useful when subscribing a function that takes nothing.
func Voided(fn func()) Hook {
	return func(context.Context, Args) error {
		fn()
		return nil
	}
}

// VoidedErr is Voided for functions that can fail.
func VoidedErr(fn func() error) Hook {
	return func(context.Context, Args) error {
		return fn()
	}
}
