package eventer

import "context"

// TypedFunc is a strongly-typed interceptable callable.
type TypedFunc[A, R any] func(ctx context.Context, arg A) (R, error)

// Typed wraps an event's proxy with compile-time argument and return types.
// It is a thin façade: the record, hooks, and pipeline are the erased
// core's, so typed and untyped subscribers of one event interleave in
// registration order.
type Typed[A, R any] struct {
	proxy *Proxy
}

// RegisterTyped registers a strongly-typed callable as an event in r.
// Hooks attached through the erased API see Args{arg}. The event is
// identified by the returned handle; use Typed.Proxy with the Run*
// operations.
func RegisterTyped[A, R any](r *Registry, fn TypedFunc[A, R], opts ...Option) (*Typed[A, R], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}

	proxy, err := r.register(func(ctx context.Context, args Args) (any, error) {
		var arg A
		if len(args) > 0 {
			arg, _ = args[0].(A)
		}
		return fn(ctx, arg)
	}, 0, opts)
	if err != nil {
		return nil, err
	}
	return &Typed[A, R]{proxy: proxy}, nil
}

// Proxy returns the erased handle, usable with RunBefore, RunAfter,
// ConditionFor, and Lookup.
func (t *Typed[A, R]) Proxy() *Proxy {
	return t.proxy
}

// Call runs the interception pipeline with a typed argument. fired reports
// whether the pipeline ran; false means a condition blocked the call and
// the returned value is R's zero value.
func (t *Typed[A, R]) Call(ctx context.Context, arg A) (value R, fired bool, err error) {
	res, err := t.proxy.Call(ctx, arg)
	if err != nil || !res.Fired {
		return value, res.Fired, err
	}

	value, _ = res.Value.(R)
	return value, true, nil
}

// Before attaches a typed before-hook. Sugar for RunBefore + AsHook.
func (t *Typed[A, R]) Before(fn func(ctx context.Context, arg A) error) error {
	return t.proxy.registry.RunBefore(t.proxy, AsHook(fn))
}

// After attaches a typed after-hook. Sugar for RunAfter + AsHook.
func (t *Typed[A, R]) After(fn func(ctx context.Context, arg A) error) error {
	return t.proxy.registry.RunAfter(t.proxy, AsHook(fn))
}

// When attaches a typed condition. Sugar for ConditionFor + AsCondition.
func (t *Typed[A, R]) When(fn func(ctx context.Context, arg A) bool) error {
	return t.proxy.registry.ConditionFor(t.proxy, AsCondition(fn))
}
