package caster

import (
	"context"
	"testing"
)

func TestNewAssignsUniqueIDs(t *testing.T) {
	t.Parallel()

	first := New(nil)
	second := New(nil)
	if first.ID() == "" {
		t.Fatalf("host id must not be empty")
	}
	if first.ID() == second.ID() {
		t.Fatalf("hosts must not share ids")
	}
}

func TestDispatchIncomingRunsHandlersInOrder(t *testing.T) {
	t.Parallel()

	host := New(nil)
	var order []int
	host.OnIncoming(func(ctx context.Context, msg Context) {
		order = append(order, 1)
	})
	host.OnIncoming(func(ctx context.Context, msg Context) {
		order = append(order, 2)
	})

	host.DispatchIncoming(context.Background(), &fakeContext{platformName: "discord"})
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("unexpected handler order: %v", order)
	}
}

func TestDispatchOutcomingUsesChain(t *testing.T) {
	t.Parallel()

	host := New(nil)
	seen := 0
	host.Outcoming().AddPlatform(&fakePlatform{name: "discord"}, func(ctx context.Context, msg Context, next func() error) error {
		seen++
		return nil
	})

	if err := host.DispatchOutcoming(context.Background(), &fakeContext{}); err != nil {
		t.Fatalf("dispatch outcoming: %v", err)
	}
	if seen != 1 {
		t.Fatalf("middleware not invoked")
	}
}
