package eventer

// Option configures an event at registration time. Options cover the case
// where the registering code owns the event and wants its hooks wired in
// the same call; external subscribers use RunBefore, RunAfter, and
// ConditionFor instead.
type Option func(*registerConfig)

// registerConfig accumulates hooks attached at registration time.
type registerConfig struct {
	before     []Hook
	after      []Hook
	conditions []Condition
}

// WithBefore attaches before-hooks at registration time, in argument order.
func WithBefore(hooks ...Hook) Option {
	return func(c *registerConfig) {
		c.before = append(c.before, hooks...)
	}
}

// WithAfter attaches after-hooks at registration time, in argument order.
func WithAfter(hooks ...Hook) Option {
	return func(c *registerConfig) {
		c.after = append(c.after, hooks...)
	}
}

// WithCondition attaches conditions at registration time, in argument order.
func WithCondition(conditions ...Condition) Option {
	return func(c *registerConfig) {
		c.conditions = append(c.conditions, conditions...)
	}
}

func applyOptions(opts []Option) (registerConfig, error) {
	var cfg registerConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validHooks(cfg.before); err != nil {
		return cfg, err
	}
	if err := validHooks(cfg.after); err != nil {
		return cfg, err
	}
	for _, c := range cfg.conditions {
		if c == nil {
			return cfg, ErrNilCondition
		}
	}
	return cfg, nil
}
