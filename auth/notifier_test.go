package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestSubscribeBeforeAnyEventDeliversNothingInitially(t *testing.T) {
	n := NewNotifier()

	ch, unsubscribe := n.Subscribe()
	defer unsubscribe()

	select {
	case e := <-ch:
		t.Fatalf("unexpected initial event: %+v", e)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestSubscribeReceivesCurrentStateThenChanges(t *testing.T) {
	n := NewNotifier()
	n.Publish(Event{Kind: EventLogin, UserID: "u1"})

	ch, unsubscribe := n.Subscribe()
	defer unsubscribe()

	first := receive(t, ch)
	require.Equal(t, EventLogin, first.Kind)
	require.Equal(t, "u1", first.UserID)

	n.Publish(Event{Kind: EventLogout, UserID: "u1"})
	second := receive(t, ch)
	require.Equal(t, EventLogout, second.Kind)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	n := NewNotifier()
	ch, unsubscribe := n.Subscribe()

	unsubscribe()

	_, open := <-ch
	require.False(t, open)

	// Publishing after unsubscribe must not panic.
	n.Publish(Event{Kind: EventLogin, UserID: "u2"})
}

func TestMultipleSubscribersAllNotified(t *testing.T) {
	n := NewNotifier()
	ch1, unsub1 := n.Subscribe()
	ch2, unsub2 := n.Subscribe()
	defer unsub1()
	defer unsub2()

	n.Publish(Event{Kind: EventLogin, UserID: "u3"})

	require.Equal(t, "u3", receive(t, ch1).UserID)
	require.Equal(t, "u3", receive(t, ch2).UserID)
}
