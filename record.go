package eventer

// record is the interception record for one event: the original callable and
// its append-only hook and condition lists, in registration order.
//
// Records are owned by a Registry; all access is guarded by the registry
// mutex. Nothing is ever removed from the lists.
type record struct {
	original   Func
	proxy      *Proxy
	before     []Hook
	after      []Hook
	conditions []Condition
}

func newRecord(original Func) *record {
	return &record{original: original}
}

// snapshot copies the hook and condition lists so dispatch can iterate them
// without holding the registry lock. An append racing a call never corrupts
// or skips hooks that were present when the call began.
// Caller must hold the registry read lock.
func (rec *record) snapshot() (before, after []Hook, conditions []Condition) {
	if len(rec.before) > 0 {
		before = make([]Hook, len(rec.before))
		copy(before, rec.before)
	}
	if len(rec.after) > 0 {
		after = make([]Hook, len(rec.after))
		copy(after, rec.after)
	}
	if len(rec.conditions) > 0 {
		conditions = make([]Condition, len(rec.conditions))
		copy(conditions, rec.conditions)
	}
	return before, after, conditions
}
