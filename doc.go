// Package eventer provides an in-process call-interception registry.
//
// A function registered as an "event" is replaced by a proxy. Other code can
// then attach behavior to the event without owning or modifying the original
// function: before-hooks run ahead of it, after-hooks run behind it, and
// conditions gate whether it runs at all. The whole pipeline executes
// synchronously on the caller's goroutine as part of a single logical call.
//
// # Architecture
//
// The package is built from a few small pieces:
//
//   - Registry: process-wide mapping from callable identity to its
//     interception record. All mutation goes through it.
//   - Record: per-event state - ordered before-hooks, after-hooks, and
//     conditions, plus the original callable. Append-only.
//   - Proxy: the replacement callable. Calling it evaluates conditions,
//     runs before-hooks, invokes the original, runs after-hooks, and
//     returns the original's result.
//   - Binder: resolves the receiver for method events at call time, so a
//     hook attached once to a method definition sees the right instance on
//     every call.
//
// # Basic Usage
//
//	add, err := eventer.Register(func(ctx context.Context, args eventer.Args) (any, error) {
//	    return args[0].(int) + args[1].(int), nil
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Attach a hook without owning add.
//	eventer.RunBefore(add, func(ctx context.Context, args eventer.Args) error {
//	    fmt.Println("args:", args)
//	    return nil
//	})
//
//	res, err := add.Call(context.Background(), 2, 3)
//	// prints "args: [2 3]", res.Value == 5
//
// # Conditions
//
// A condition returning false short-circuits the call: no hooks run, the
// original never runs, and Call reports Fired == false. A false condition is
// a deliberate gate, not an error.
//
//	eventer.ConditionFor(greet, func(ctx context.Context, args eventer.Args) bool {
//	    return args[0] != "josh"
//	})
//
// # Method Events
//
// For instance methods, register the method body once and resolve the
// receiver per call with Bind. The same record serves every instance; the
// receiver becomes the leading argument every condition and hook sees.
//
//	roll, _ := eventer.Register(func(ctx context.Context, args eventer.Args) (any, error) {
//	    b := args[0].(*Ball)
//	    b.rolling = true
//	    return nil, nil
//	})
//
//	b := &Ball{}
//	roll.Bind(b).Call(ctx)
//
// # Type-Safe Events
//
// Use generics for compile-time type safety over the erased core:
//
//	square, _ := eventer.RegisterTyped(eventer.Default(), func(ctx context.Context, n int) (int, error) {
//	    return n * n, nil
//	})
//	v, fired, err := square.Call(ctx, 7)
//
// # Error Semantics
//
// Hook and original failures propagate unwrapped to the caller of the proxy;
// the pipeline never swallows, wraps, or recovers. A failing before-hook
// prevents the original and everything after it from running. After-hooks
// run only when the original returns successfully.
//
// # Thread Safety
//
// The Registry serializes mutation and dispatch snapshots a record's hook
// lists before running them, so attaching a hook while a call is in flight
// never corrupts or skips hooks that were present when the call began.
// Registration is expected during program setup; dispatch is then
// read-mostly.
package eventer
