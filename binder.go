package eventer

import "context"

// BoundProxy is a method event bound to one receiver for the duration of a
// call site. It is an ephemeral value: Bind resolves the receiver fresh on
// every use and nothing is cached per instance, so a single method record
// serves every instance of the type.
type BoundProxy struct {
	proxy *Proxy
	recv  any
}

// Bind resolves the receiver for a method event. The returned value calls
// the same record as p, with recv threaded as the leading argument that
// every condition, before-hook, after-hook, and the original sees - exactly
// what the unbound method would have received.
//
// Free-function events have no receiver and are called on the Proxy
// directly; Bind exists only for method events.
func (p *Proxy) Bind(recv any) BoundProxy {
	return BoundProxy{proxy: p, recv: recv}
}

// Proxy returns the unbound proxy this binding resolves to.
func (b BoundProxy) Proxy() *Proxy {
	return b.proxy
}

// Receiver returns the receiver this binding threads into calls.
func (b BoundProxy) Receiver() any {
	return b.recv
}

// Call runs the interception pipeline with the receiver prepended to args.
func (b BoundProxy) Call(ctx context.Context, args ...any) (Result, error) {
	bound := make([]any, 0, len(args)+1)
	bound = append(bound, b.recv)
	bound = append(bound, args...)
	return b.proxy.Call(ctx, bound...)
}

// Func returns the bound call as a Func, mirroring Proxy.Func.
func (b BoundProxy) Func() Func {
	return func(ctx context.Context, args Args) (any, error) {
		res, err := b.Call(ctx, args...)
		return res.Value, err
	}
}
