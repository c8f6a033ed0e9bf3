package eventer

import (
	"context"
	"testing"
)

type ball struct {
	name  string
	rolls int
}

func TestBind_ReceiverReachesPipeline(t *testing.T) {
	r := NewRegistry()

	roll, err := r.Register(func(ctx context.Context, args Args) (any, error) {
		b := args[0].(*ball)
		b.rolls++
		return b.name, nil
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	var seen []*ball
	r.RunAfter(roll, func(ctx context.Context, args Args) error {
		seen = append(seen, args[0].(*ball))
		return nil
	})

	b := &ball{name: "red"}
	res, err := roll.Bind(b).Call(context.Background())
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if res.Value != "red" {
		t.Errorf("expected red, got %v", res.Value)
	}
	if b.rolls != 1 {
		t.Errorf("expected 1 roll, got %d", b.rolls)
	}
	if len(seen) != 1 || seen[0] != b {
		t.Errorf("expected after-hook to see the receiver, got %v", seen)
	}
}

func TestBind_OneRecordManyInstances(t *testing.T) {
	r := NewRegistry()

	roll, err := r.Register(func(ctx context.Context, args Args) (any, error) {
		args[0].(*ball).rolls++
		return nil, nil
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// One hook, attached once to the method definition.
	var seen []*ball
	r.RunBefore(roll, func(ctx context.Context, args Args) error {
		seen = append(seen, args[0].(*ball))
		return nil
	})

	a := &ball{name: "a"}
	b := &ball{name: "b"}
	ctx := context.Background()

	roll.Bind(a).Call(ctx)
	roll.Bind(b).Call(ctx)
	roll.Bind(a).Call(ctx)

	expected := []*ball{a, b, a}
	if len(seen) != len(expected) {
		t.Fatalf("expected %d calls, got %d", len(expected), len(seen))
	}
	for i, want := range expected {
		if seen[i] != want {
			t.Errorf("call %d: expected receiver %s, got %s", i, want.name, seen[i].name)
		}
	}
	if a.rolls != 2 || b.rolls != 1 {
		t.Errorf("expected rolls a=2 b=1, got a=%d b=%d", a.rolls, b.rolls)
	}
	if r.Len() != 1 {
		t.Errorf("expected a single record for the method, got %d", r.Len())
	}
}

func TestBind_ResolvedFreshPerCall(t *testing.T) {
	r := NewRegistry()

	roll, err := r.Register(func(ctx context.Context, args Args) (any, error) {
		return args[0], nil
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// The same binding value reused still threads its receiver each time;
	// a new binding for another instance is independent.
	a := &ball{name: "a"}
	b := &ball{name: "b"}
	boundA := roll.Bind(a)

	ctx := context.Background()
	res, _ := boundA.Call(ctx)
	if res.Value != a {
		t.Errorf("expected receiver a, got %v", res.Value)
	}
	res, _ = roll.Bind(b).Call(ctx)
	if res.Value != b {
		t.Errorf("expected receiver b, got %v", res.Value)
	}
	res, _ = boundA.Call(ctx)
	if res.Value != a {
		t.Errorf("expected receiver a again, got %v", res.Value)
	}

	if boundA.Proxy() != roll {
		t.Error("expected binding to resolve to the method proxy")
	}
	if boundA.Receiver() != a {
		t.Error("expected binding to hold its receiver")
	}
}

func TestBind_ArgsAfterReceiver(t *testing.T) {
	r := NewRegistry()

	move, err := r.Register(func(ctx context.Context, args Args) (any, error) {
		return []any{args[0], args[1], args[2]}, nil
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	b := &ball{name: "b"}
	res, err := move.Bind(b).Call(context.Background(), 3, 4)
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}

	got := res.Value.([]any)
	if got[0] != b || got[1] != 3 || got[2] != 4 {
		t.Errorf("expected [receiver 3 4], got %v", got)
	}
}

func TestBind_Func(t *testing.T) {
	r := NewRegistry()

	roll, err := r.Register(func(ctx context.Context, args Args) (any, error) {
		return args[0].(*ball).name, nil
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	b := &ball{name: "bound"}
	installed := roll.Bind(b).Func()

	v, err := installed(context.Background(), nil)
	if err != nil {
		t.Fatalf("installed call failed: %v", err)
	}
	if v != "bound" {
		t.Errorf("expected bound, got %v", v)
	}
}
