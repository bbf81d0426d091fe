package reconciler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshd/internal/api"
)

func TestBroadcaster_SubscribeAndPublish(t *testing.T) {
	b := NewBroadcaster()
	ch, unsub := b.Subscribe()
	defer unsub()

	b.Publish(api.PhaseEvent{Phase: api.PhaseChecking, CycleID: "c1"})

	event := <-ch
	assert.Equal(t, api.PhaseChecking, event.Phase)
	assert.Equal(t, "c1", event.CycleID)
	assert.False(t, event.Timestamp.IsZero(), "publish should stamp the event")
}

func TestBroadcaster_UnsubscribeClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	ch, unsub := b.Subscribe()

	unsub()
	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, b.SubscriberCount())

	// Idempotent: a second call must not panic.
	unsub()
}

func TestBroadcaster_FanOut(t *testing.T) {
	b := NewBroadcaster()
	ch1, unsub1 := b.Subscribe()
	ch2, unsub2 := b.Subscribe()
	defer unsub1()
	defer unsub2()

	b.Publish(api.PhaseEvent{Phase: api.PhaseReady, CycleID: "c2"})

	assert.Equal(t, "c2", (<-ch1).CycleID)
	assert.Equal(t, "c2", (<-ch2).CycleID)
}

func TestBroadcaster_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	b := NewBroadcaster()
	_, unsub := b.Subscribe()
	defer unsub()

	// Overfill the buffer; Publish must return without blocking.
	for i := 0; i < subscriberBuffer*2; i++ {
		b.Publish(api.PhaseEvent{Phase: api.PhaseChecking})
	}
}

func TestBroadcaster_CyclePublishesPhaseSequence(t *testing.T) {
	client := &fakeClient{
		installedVersions: []string{"1.0.0", "2.0.0"},
		latestVersion:     "2.0.0",
	}
	r := New(client, nil)
	ch, unsub := r.SubscribePhases()
	defer unsub()

	r.CheckForUpdate(context.Background())

	var phases []api.Phase
	for i := 0; i < 4; i++ {
		select {
		case e := <-ch:
			phases = append(phases, e.Phase)
		default:
			t.Fatalf("expected 4 phase events, got %d", len(phases))
		}
	}
	require.Equal(t, []api.Phase{api.PhaseChecking, api.PhaseUpdating, api.PhaseLearning, api.PhaseReady}, phases)
}
