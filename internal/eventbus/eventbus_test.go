package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	require.Eventually(t, cond, time.Second, 5*time.Millisecond)
}

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New()
	defer b.Close()

	var mu sync.Mutex
	var got []DomainEvent
	b.Subscribe(EventPageRequested, func(e DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e)
	})

	b.Publish(PageRequestedEvent{Signature: "q1", Manual: true})
	b.Publish(ConfigReloadedEvent{Path: "ignored"})

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	})
	mu.Lock()
	defer mu.Unlock()
	ev, ok := got[0].(PageRequestedEvent)
	require.True(t, ok)
	assert.True(t, ev.Manual)
}

func TestUnsubscribeRemovesOnlyThatHandler(t *testing.T) {
	b := New()
	defer b.Close()

	var mu sync.Mutex
	first, second := 0, 0
	unsub := b.Subscribe(EventError, func(DomainEvent) {
		mu.Lock()
		first++
		mu.Unlock()
	})
	b.Subscribe(EventError, func(DomainEvent) {
		mu.Lock()
		second++
		mu.Unlock()
	})

	unsub()
	b.Publish(ErrorEvent{Message: "boom"})

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return second == 1
	})
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 0, first)
}

func TestHandlerPanicDoesNotStopDispatch(t *testing.T) {
	b := New()
	defer b.Close()

	done := make(chan struct{})
	b.Subscribe(EventError, func(DomainEvent) { panic("bad handler") })
	b.Subscribe(EventConfigReloaded, func(DomainEvent) { close(done) })

	b.Publish(ErrorEvent{Message: "first"})
	b.Publish(ConfigReloadedEvent{Path: "facetgrip.toml"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatcher stopped after handler panic")
	}
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New()
	b.Close()
	assert.NotPanics(t, func() {
		b.Publish(ErrorEvent{Message: "late"})
	})
}
