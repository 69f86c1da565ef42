package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/dshills/herald/internal/message"
	"github.com/dshills/herald/internal/trigger"
)

func TestNamed_Get_MaterializesPlaceholder(t *testing.T) {
	n := newNamed("test")

	obs, err := n.Get("child")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if obs == nil {
		t.Fatal("expected non-nil occupant")
	}
	if _, ok := obs.(*trigger.Placeholder); !ok {
		t.Fatalf("expected placeholder for unclaimed name, got %T", obs)
	}

	again, err := n.Get("child")
	if err != nil {
		t.Fatalf("second Get failed: %v", err)
	}
	if again != obs {
		t.Error("expected repeated reads to return the same placeholder")
	}
	if n.Len() != 1 {
		t.Errorf("expected 1 slot, got %d", n.Len())
	}
}

func TestNamed_Get_InvalidName(t *testing.T) {
	n := newNamed("test")
	if _, err := n.Get(""); !errors.Is(err, ErrInvalidName) {
		t.Errorf("expected ErrInvalidName, got %v", err)
	}
}

func TestNamed_Set_EmptySlot(t *testing.T) {
	n := newNamed("test")
	h := trigger.NewHandle()

	if err := n.Set("child", h); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if !n.Claimed("child") {
		t.Error("expected slot to be claimed by a real handle")
	}

	obs, err := n.Get("child")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if obs != trigger.Observable(h) {
		t.Error("expected Get to return the stored handle")
	}
}

func TestNamed_Set_Validation(t *testing.T) {
	n := newNamed("test")

	if err := n.Set("", trigger.NewHandle()); !errors.Is(err, ErrInvalidName) {
		t.Errorf("expected ErrInvalidName, got %v", err)
	}
	if err := n.Set("child", nil); !errors.Is(err, ErrNilHandle) {
		t.Errorf("expected ErrNilHandle, got %v", err)
	}
}

func TestNamed_Set_ForwardsPlaceholder(t *testing.T) {
	n := newNamed("test")

	obs, err := n.Get("child")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	calls := 0
	if err := obs.Subscribe("ping", func(args message.Args) { calls++ }); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	fut, err := obs.Wait("ping")
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}

	h := trigger.NewHandle()
	if err := n.Set("child", h); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := h.Fire("ping", "hello"); err != nil {
		t.Fatalf("Fire failed: %v", err)
	}

	if calls != 1 {
		t.Errorf("expected buffered subscription to forward, got %d calls", calls)
	}
	args, err := fut.Await(context.Background())
	if err != nil {
		t.Fatalf("Await failed: %v", err)
	}
	if len(args) != 1 || args[0] != "hello" {
		t.Errorf("expected args [hello], got %v", args)
	}

	// The placeholder is discarded; the slot now reads as the handle.
	cur, err := n.Get("child")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if cur != trigger.Observable(h) {
		t.Error("expected slot to hold the real handle after Set")
	}
}

func TestNamed_Set_NameReuse(t *testing.T) {
	n := newNamed("test")

	first := trigger.NewHandle()
	if err := n.Set("child", first); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// Observers of the first handle survive the replacement.
	calls := 0
	if err := first.Subscribe("ping", func(args message.Args) { calls++ }); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	second := trigger.NewHandle()
	if err := n.Set("child", second); err != nil {
		t.Fatalf("replacement Set failed: %v", err)
	}

	cur, err := n.Get("child")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if cur != trigger.Observable(second) {
		t.Error("expected reads to return the latest handle")
	}

	if err := second.Fire("ping"); err != nil {
		t.Fatalf("Fire failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected previous occupant's subscriber to be serviced, got %d calls", calls)
	}

	// The displaced handle is sealed; stale references fail loudly.
	if err := first.Fire("ping"); !errors.Is(err, trigger.ErrFinalized) {
		t.Errorf("expected ErrFinalized from displaced handle, got %v", err)
	}
}

func TestNamed_Set_SameHandleNoop(t *testing.T) {
	n := newNamed("test")
	h := trigger.NewHandle()

	if err := n.Set("child", h); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := n.Set("child", h); err != nil {
		t.Fatalf("re-Set of same handle failed: %v", err)
	}

	// The handle did not finalize into itself.
	if err := h.Fire("ping"); err != nil {
		t.Errorf("expected handle to stay usable, got %v", err)
	}
}

func TestScoped_ConstructorBinding(t *testing.T) {
	h := trigger.NewHandle()
	s, err := NewScopedWith("child", h)
	if err != nil {
		t.Fatalf("NewScopedWith failed: %v", err)
	}

	if !s.Claimed("child") {
		t.Error("expected constructor-time binding to claim the slot")
	}
}

func TestScoped_ConstructorBinding_Invalid(t *testing.T) {
	if _, err := NewScopedWith("", trigger.NewHandle()); !errors.Is(err, ErrInvalidName) {
		t.Errorf("expected ErrInvalidName, got %v", err)
	}
}

func TestGlobal_Name(t *testing.T) {
	g := NewGlobal("app")
	if g.Name() != "app" {
		t.Errorf("expected name app, got %s", g.Name())
	}

	unnamed := NewGlobal("")
	if unnamed.Name() != "global" {
		t.Errorf("expected fallback name global, got %s", unnamed.Name())
	}
}
