// Package messaging publishes domain events over NATS for downstream
// notification consumers (parent apps, mailers). The producer is optional:
// when NATS is unreachable at startup the service runs without it.
package messaging

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// Event is the payload published for every resource change worth
// broadcasting (circulars, events).
type Event struct {
	Type       string    `json:"type"`
	SchoolID   string    `json:"schoolId"`
	ResourceID string    `json:"resourceId"`
	Title      string    `json:"title,omitempty"`
	At         time.Time `json:"at"`
}

type Producer struct {
	conn    *nats.Conn
	subject string
	logger  *slog.Logger
}

func NewProducer(url, subject string, logger *slog.Logger) (*Producer, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}

	logger.Info("NATS producer initialized", "url", url, "subject", subject)

	return &Producer{
		conn:    nc,
		subject: subject,
		logger:  logger,
	}, nil
}

// Publish sends an event. A nil producer is a no-op so callers do not have
// to guard every publish site.
func (p *Producer) Publish(event Event) error {
	if p == nil {
		return nil
	}

	event.At = time.Now().UTC()
	data, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to marshal event", "error", err)
		return err
	}

	if err := p.conn.Publish(p.subject+"."+event.Type, data); err != nil {
		p.logger.Error("failed to publish event", "type", event.Type, "error", err)
		return err
	}

	p.logger.Info("event published", "subject", p.subject+"."+event.Type)
	return nil
}

func (p *Producer) Close() {
	if p != nil {
		p.conn.Close()
	}
}
