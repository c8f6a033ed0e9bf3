package eventer

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Registry maps callable identity to interception records. It owns every
// record for its lifetime: entries are created exactly once, at Register,
// and are never removed or replaced.
//
// A Registry is safe for concurrent use. Mutation (Register, RunBefore,
// RunAfter, ConditionFor) is serialized; dispatch reads a snapshot of a
// record's lists, so attaching hooks while events fire is well-defined.
type Registry struct {
	mu      sync.RWMutex
	records map[uintptr]*record
	byProxy map[*Proxy]*record

	// Stats
	calls      atomic.Uint64
	blocked    atomic.Uint64
	completed  atomic.Uint64
	hookErrors atomic.Uint64
}

// NewRegistry creates a new, empty registry.
func NewRegistry() *Registry {
	return &Registry{
		records: make(map[uintptr]*record),
		byProxy: make(map[*Proxy]*record),
	}
}

// Register turns fn into an event: it creates an empty interception record
// and returns the proxy that must be installed, or called, wherever fn was
// referenced. Interception only takes effect for calls made through the
// proxy.
//
// Identity is the callable itself, so a second Register of the same
// function fails with ErrDuplicateEvent. Distinct named functions and
// method expressions always have distinct identities. Closures built from
// the same function literal share one identity, so only the first such
// closure can be registered.
//
// Hooks and conditions may be attached at registration time via WithBefore,
// WithAfter, and WithCondition, or afterwards through RunBefore, RunAfter,
// and ConditionFor.
func (r *Registry) Register(fn Func, opts ...Option) (*Proxy, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}

	return r.register(fn, funcKey(fn), opts)
}

// register creates a record and proxy for fn. A zero key skips the
// identity map: the event is then reachable only through its proxy handle,
// which wrapper closures (whose code pointers are not unique) rely on.
func (r *Registry) register(fn Func, key uintptr, opts []Option) (*Proxy, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if key != 0 {
		if _, exists := r.records[key]; exists {
			return nil, ErrDuplicateEvent
		}
	}

	rec := newRecord(fn)
	rec.before = append(rec.before, cfg.before...)
	rec.after = append(rec.after, cfg.after...)
	rec.conditions = append(rec.conditions, cfg.conditions...)

	proxy := &Proxy{
		id:       uuid.NewString(),
		registry: r,
		rec:      rec,
	}
	rec.proxy = proxy

	if key != 0 {
		r.records[key] = rec
	}
	r.byProxy[proxy] = rec

	return proxy, nil
}

// RunBefore appends hooks to the event's before list. Each hook runs ahead
// of the original, in registration order, receiving the same arguments the
// original will receive. The hooks need no ownership of the event: any
// function can subscribe to any registered callable.
//
// ev is either the *Proxy returned by Register or the original callable.
// Attaching to a callable that was never registered fails with
// ErrUnregisteredEvent.
func (r *Registry) RunBefore(ev any, hooks ...Hook) error {
	if err := validHooks(hooks); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.resolveLocked(ev)
	if rec == nil {
		return &UnregisteredEventError{Op: "RunBefore"}
	}
	rec.before = append(rec.before, hooks...)
	return nil
}

// RunAfter appends hooks to the event's after list, symmetric to RunBefore.
// After-hooks observe the call's inputs, not the original's return value,
// and run only when the original returns successfully.
func (r *Registry) RunAfter(ev any, hooks ...Hook) error {
	if err := validHooks(hooks); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.resolveLocked(ev)
	if rec == nil {
		return &UnregisteredEventError{Op: "RunAfter"}
	}
	rec.after = append(rec.after, hooks...)
	return nil
}

// ConditionFor appends predicates to the event's condition list. Conditions
// are evaluated in registration order before anything else runs; the first
// false one blocks the whole call. A blocked call yields no value, so
// conditions suit events whose return value is not relied upon.
func (r *Registry) ConditionFor(ev any, conditions ...Condition) error {
	for _, c := range conditions {
		if c == nil {
			return ErrNilCondition
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.resolveLocked(ev)
	if rec == nil {
		return &UnregisteredEventError{Op: "ConditionFor"}
	}
	rec.conditions = append(rec.conditions, conditions...)
	return nil
}

// Lookup resolves an event reference to its proxy handle. It accepts the
// same references as RunBefore: the proxy itself or the original callable.
func (r *Registry) Lookup(ev any) (*Proxy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec := r.resolveLocked(ev)
	if rec == nil {
		return nil, &UnregisteredEventError{Op: "Lookup"}
	}
	return rec.proxy, nil
}

// Len returns the number of registered events.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byProxy)
}

// Stats returns a point-in-time copy of the registry counters.
func (r *Registry) Stats() Stats {
	return Stats{
		Events:     r.Len(),
		Calls:      r.calls.Load(),
		Blocked:    r.blocked.Load(),
		Completed:  r.completed.Load(),
		HookErrors: r.hookErrors.Load(),
	}
}

// resolveLocked maps an event reference to its record. Caller must hold the
// registry lock (read or write).
func (r *Registry) resolveLocked(ev any) *record {
	switch v := ev.(type) {
	case *Proxy:
		if v == nil {
			return nil
		}
		return r.byProxy[v]
	case nil:
		return nil
	default:
		rv := reflect.ValueOf(ev)
		if rv.Kind() != reflect.Func {
			return nil
		}
		return r.records[rv.Pointer()]
	}
}

// snapshot copies a record's lists for lock-free dispatch.
func (r *Registry) snapshot(rec *record) (before, after []Hook, conditions []Condition) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return rec.snapshot()
}

// funcKey derives a stable identity for a callable from its code pointer.
func funcKey(fn Func) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

func validHooks(hooks []Hook) error {
	for _, h := range hooks {
		if h == nil {
			return ErrNilHook
		}
	}
	return nil
}
