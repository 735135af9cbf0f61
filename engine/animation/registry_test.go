package animation

import (
	"errors"
	"testing"
)

func TestRegistryLookups(t *testing.T) {
	r := NewRegistry()
	walk := NewAction(&Clip{Name: "Walk"})
	idle := NewAction(&Clip{Name: "Idle"})

	if err := r.Add("Walk", walk); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := r.Add("Walk", idle); !errors.Is(err, ErrDuplicateAnimation) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if err := r.Add("Idle", nil); err == nil {
		t.Fatalf("expected error for nil action")
	}

	if !r.Has("Walk") || r.Has("Idle") {
		t.Fatalf("unexpected presence")
	}
	if got, ok := r.Get("Walk"); !ok || got != walk {
		t.Fatalf("Get returned wrong action")
	}
	if got := r.GetOrDefault("Idle", idle); got != idle {
		t.Fatalf("GetOrDefault should fall back")
	}
	if got := r.GetOrDefault("Walk", idle); got != walk {
		t.Fatalf("GetOrDefault should prefer the stored action")
	}

	names := r.Names()
	names[0] = "mutated"
	if r.Names()[0] != "Walk" || r.Len() != 1 {
		t.Fatalf("Names should return a copy")
	}
}
