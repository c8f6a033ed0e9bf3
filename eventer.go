package eventer

// defaultRegistry is the process-wide registry backing the package-level
// API. It is created at program start and lives for the process lifetime.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register registers fn as an event in the default registry.
func Register(fn Func, opts ...Option) (*Proxy, error) {
	return defaultRegistry.Register(fn, opts...)
}

// RunBefore appends hooks to an event in the default registry.
func RunBefore(ev any, hooks ...Hook) error {
	return defaultRegistry.RunBefore(ev, hooks...)
}

// RunAfter appends after-hooks to an event in the default registry.
func RunAfter(ev any, hooks ...Hook) error {
	return defaultRegistry.RunAfter(ev, hooks...)
}

// ConditionFor appends conditions to an event in the default registry.
func ConditionFor(ev any, conditions ...Condition) error {
	return defaultRegistry.ConditionFor(ev, conditions...)
}

// Lookup resolves an event reference in the default registry.
func Lookup(ev any) (*Proxy, error) {
	return defaultRegistry.Lookup(ev)
}
