package scenario

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestRunner_DeferredBinding(t *testing.T) {
	sc := Scenario{
		Name: "deferred",
		Steps: []Step{
			{Action: ActionSubscribe, Slot: "child", Message: "ping"},
			{Action: ActionWait, Slot: "child", Message: "ping"},
			{Action: ActionLink, Slot: "child"},
			{Action: ActionFire, Slot: "child", Message: "ping", Args: []any{"hello"}},
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	deliveries, err := NewRunner(nil).Run(ctx, sc)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(deliveries) != 2 {
		t.Fatalf("expected 2 deliveries (subscription + wait), got %d", len(deliveries))
	}
	var kinds []string
	for _, d := range deliveries {
		kinds = append(kinds, d.Kind)
		if d.Slot != "child" || d.Message != "ping" {
			t.Errorf("unexpected delivery target %s/%s", d.Slot, d.Message)
		}
		if len(d.Args) != 1 || d.Args[0] != "hello" {
			t.Errorf("expected args [hello], got %v", d.Args)
		}
	}
	joined := strings.Join(kinds, ",")
	if !strings.Contains(joined, "subscription") || !strings.Contains(joined, "wait") {
		t.Errorf("expected both delivery kinds, got %s", joined)
	}
}

func TestRunner_FireBeforeLink(t *testing.T) {
	sc := Scenario{Steps: []Step{
		{Action: ActionFire, Slot: "child", Message: "ping"},
	}}

	if _, err := NewRunner(nil).Run(context.Background(), sc); err == nil {
		t.Error("expected error firing an unlinked slot")
	}
}

func TestRunner_DoubleLink(t *testing.T) {
	sc := Scenario{Steps: []Step{
		{Action: ActionLink, Slot: "child"},
		{Action: ActionLink, Slot: "child"},
	}}

	if _, err := NewRunner(nil).Run(context.Background(), sc); err == nil {
		t.Error("expected error linking a slot twice")
	}
}

func TestRunner_UnresolvedWaitTimesOut(t *testing.T) {
	sc := Scenario{Steps: []Step{
		{Action: ActionWait, Slot: "child", Message: "never"},
	}}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := NewRunner(nil).Run(ctx, sc); err == nil {
		t.Error("expected context error for a wait that never resolves")
	}
}
