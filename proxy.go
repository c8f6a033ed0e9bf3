package eventer

import "context"

// Proxy is the replacement callable installed in place of a registered
// function. Calling it runs the interception pipeline; it is also the
// handle hook-registration calls use to locate the event's record.
type Proxy struct {
	id       string
	registry *Registry
	rec      *record
}

// ID returns the proxy's unique identifier.
func (p *Proxy) ID() string {
	return p.id
}

// Registry returns the registry that owns this event.
func (p *Proxy) Registry() *Registry {
	return p.registry
}

// Call runs the interception pipeline synchronously on the caller's
// goroutine:
//
//  1. Conditions are evaluated in registration order. The first false one
//     blocks the call: nothing else runs and Call returns Result{Fired:
//     false} with a nil error. An empty condition list passes vacuously.
//  2. Before-hooks run in registration order with the same arguments the
//     original will see. A hook error aborts the call; the original and
//     all subsequent hooks never run.
//  3. The original runs; its error propagates and skips the after-hooks.
//  4. After-hooks run in registration order with the call's inputs, not
//     the original's return value. An after-hook error propagates, but the
//     Result still carries the value the original already produced.
//
// Errors surface unwrapped, exactly as if the failing code had been inlined
// at the call site. Panics are not recovered.
func (p *Proxy) Call(ctx context.Context, args ...any) (Result, error) {
	before, after, conditions := p.registry.snapshot(p.rec)
	p.registry.calls.Add(1)

	a := Args(args)

	for _, cond := range conditions {
		if !cond(ctx, a) {
			p.registry.blocked.Add(1)
			return Result{}, nil
		}
	}

	for _, hook := range before {
		if err := hook(ctx, a); err != nil {
			p.registry.hookErrors.Add(1)
			return Result{}, err
		}
	}

	value, err := p.rec.original(ctx, a)
	if err != nil {
		p.registry.hookErrors.Add(1)
		return Result{}, err
	}

	for _, hook := range after {
		if err := hook(ctx, a); err != nil {
			p.registry.hookErrors.Add(1)
			return Result{Value: value, Fired: true}, err
		}
	}

	p.registry.completed.Add(1)
	return Result{Value: value, Fired: true}, nil
}

// Func returns the proxy as a Func so host code can install it at the
// original binding site. Calls through the returned Func are interception
// calls; the blocked case surfaces as a nil value.
func (p *Proxy) Func() Func {
	return func(ctx context.Context, args Args) (any, error) {
		res, err := p.Call(ctx, args...)
		return res.Value, err
	}
}
