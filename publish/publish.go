// Package publish pushes mapped catalog graphs onto a NATS subject for
// downstream graph ingestion. The message shape mirrors the platform's
// entity-ingest convention: an entity id, its triples, and an update
// timestamp.
package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/katalogdata/servicetordf/rdf"
)

// IngestSubject is the subject graph-ingest consumers subscribe on.
const IngestSubject = "catalog.ingest.entity"

// Triple is the wire form of one statement. Object is the N-Triples term
// rendering, so IRI references and literals stay distinguishable.
type Triple struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
}

// EntityMessage is the graph-ingest payload.
type EntityMessage struct {
	ID        string    `json:"id"`
	Triples   []Triple  `json:"triples"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Conn is the slice of the NATS connection the publisher needs.
// *nats.Conn satisfies it.
type Conn interface {
	Publish(subject string, data []byte) error
}

var _ Conn = (*nats.Conn)(nil)

// Publisher publishes mapped graphs as entity-ingest messages.
type Publisher struct {
	conn    Conn
	subject string
}

// New creates a Publisher on the default ingest subject.
func New(conn Conn) *Publisher {
	return &Publisher{conn: conn, subject: IngestSubject}
}

// NewWithSubject creates a Publisher on a custom subject.
func NewWithSubject(conn Conn, subject string) *Publisher {
	return &Publisher{conn: conn, subject: subject}
}

// PublishGraph sends every triple in g under the given entity id.
// A nil connection is a no-op so publishing stays optional.
func (p *Publisher) PublishGraph(ctx context.Context, entityID string, g *rdf.Graph) error {
	if p.conn == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := EntityMessage{
		ID:        entityID,
		Triples:   wireTriples(g),
		UpdatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal entity message: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publish entity message: %w", err)
	}
	return nil
}

// wireTriples flattens a graph into the wire triple form.
func wireTriples(g *rdf.Graph) []Triple {
	triples := g.Triples()
	out := make([]Triple, 0, len(triples))
	for _, t := range triples {
		out = append(out, Triple{
			Subject:   string(t.Subject),
			Predicate: string(t.Predicate),
			Object:    t.Object.Term(),
		})
	}
	return out
}
