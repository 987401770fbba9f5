package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPublishReachesSubscribers(t *testing.T) {
	p := NewPublisher()
	defer p.Close()

	ch := p.Subscribe()
	defer p.Unsubscribe(ch)

	p.Publish(Event{Type: EventKycApproved, RecipientID: 7})

	select {
	case ev := <-ch:
		assert.Equal(t, EventKycApproved, ev.Type)
		assert.Equal(t, uint(7), ev.RecipientID)
		assert.False(t, ev.EmittedAt.IsZero())
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	p := NewPublisher()
	defer p.Close()

	ch := p.Subscribe()
	p.Unsubscribe(ch)

	_, open := <-ch
	assert.False(t, open)

	// publishing after unsubscribe must not panic on the closed channel
	p.Publish(Event{Type: EventCardIssued})
}

func TestPublishDropsWhenSubscriberFull(t *testing.T) {
	p := NewPublisher()
	defer p.Close()

	ch := p.Subscribe()
	defer p.Unsubscribe(ch)

	for i := 0; i < cap(ch)+10; i++ {
		p.Publish(Event{Type: EventFarmerAssigned, RecipientID: uint(i)})
	}

	// the slow subscriber lost events but the publisher never blocked
	assert.Len(t, ch, cap(ch))
}
