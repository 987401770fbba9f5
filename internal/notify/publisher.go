package notify

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/agrisetu/registry-go/internal/config"
	"github.com/nats-io/nats.go"
)

// Event is the notification envelope workflow operations emit.
// Delivery (mail, SMS, push) is owned by downstream consumers.
type Event struct {
	Type        string      `json:"type"`
	RecipientID uint        `json:"recipient_id"`
	Payload     interface{} `json:"payload"`
	EmittedAt   time.Time   `json:"emitted_at"`
}

const (
	EventKycApproved          = "kyc.approved"
	EventKycRejected          = "kyc.rejected"
	EventKycReferredBack      = "kyc.referred_back"
	EventRegistrationApproved = "registration.approved"
	EventRegistrationRejected = "registration.rejected"
	EventFarmerAssigned       = "farmer.assigned"
	EventCardIssued           = "card.issued"
)

// Publisher fans events out to NATS and to in-process websocket
// subscribers. A nil NATS connection (no NATS_URL configured) degrades
// to local subscribers only.
type Publisher struct {
	nc      *nats.Conn
	subject string

	mu   sync.Mutex
	subs map[chan Event]struct{}
}

func NewPublisher() *Publisher {
	p := &Publisher{
		subject: config.NotifySubject,
		subs:    make(map[chan Event]struct{}),
	}

	if config.NatsURL == "" {
		log.Println("NATS_URL not set, notification events stay in-process")
		return p
	}

	nc, err := nats.Connect(config.NatsURL,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		log.Printf("Failed to connect to NATS at %s: %v", config.NatsURL, err)
		return p
	}
	p.nc = nc
	log.Printf("Connected to NATS at %s", config.NatsURL)
	return p
}

func (p *Publisher) Publish(ev Event) {
	if ev.EmittedAt.IsZero() {
		ev.EmittedAt = time.Now()
	}

	if p.nc != nil {
		data, err := json.Marshal(ev)
		if err != nil {
			log.Printf("Failed to marshal notification event: %v", err)
		} else if err := p.nc.Publish(p.subject, data); err != nil {
			log.Printf("Failed to publish notification event: %v", err)
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for ch := range p.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribe returns a buffered channel receiving every published event.
// Callers must Unsubscribe when done.
func (p *Publisher) Subscribe() chan Event {
	ch := make(chan Event, 16)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subs[ch] = struct{}{}
	return ch
}

func (p *Publisher) Unsubscribe(ch chan Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.subs[ch]; ok {
		delete(p.subs, ch)
		close(ch)
	}
}

func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Drain()
	}
}
