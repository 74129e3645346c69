// Package store is the tenant-scoped document store the scheduling facade
// persists through. Every write to a collection causes subscribers of that
// (collection, tenant) pair to receive a fresh full snapshot.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

//go:generate mockgen -source=store.go -destination=../mocks/store_mocks.go -package=mocks

// Document is a flat tenant-scoped record. Body always carries "id" and
// "tenant_id" keys once stored.
type Document struct {
	ID        string
	TenantID  string
	Body      json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot is the full matching set of a collection for one tenant
type Snapshot struct {
	Collection string
	TenantID   string
	Documents  []Document
	TakenAt    time.Time
}

// Writer is the mutation half of the store contract
type Writer interface {
	// Create stores doc and returns its id. A preset doc.ID is kept;
	// creating an id that already exists fails with ErrDocumentExists.
	Create(ctx context.Context, collection string, doc Document) (string, error)
	Update(ctx context.Context, collection, id string, patch map[string]interface{}) error
	Delete(ctx context.Context, collection, id string) error
}

// Store is the document-store contract consumed by the scheduling facade
type Store interface {
	Writer
	Subscribe(ctx context.Context, collection, tenantID string) (*Subscription, error)
	Snapshot(ctx context.Context, collection, tenantID string) (Snapshot, error)
}

// Transactor is implemented by stores that can apply several writes atomically
type Transactor interface {
	Atomic(ctx context.Context, fn func(w Writer) error) error
}

// Subscription delivers snapshots until Close is called or its context ends.
// Only the latest undelivered snapshot is kept; a slow reader skips
// intermediate states, never the final one.
type Subscription struct {
	ch      chan Snapshot
	mu      sync.Mutex
	closed  bool
	stop    func() bool
	onClose func()
}

func newSubscription(onClose func()) *Subscription {
	return &Subscription{
		ch:      make(chan Snapshot, 1),
		onClose: onClose,
	}
}

// Snapshots returns the delivery channel. It is closed when the subscription ends.
func (s *Subscription) Snapshots() <-chan Snapshot {
	return s.ch
}

// Close stops delivery and releases the subscription's resources. It is idempotent.
func (s *Subscription) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.ch)
	stop := s.stop
	s.mu.Unlock()

	if stop != nil {
		stop()
	}
	if s.onClose != nil {
		s.onClose()
	}
}

// bind closes the subscription when ctx ends
func (s *Subscription) bind(ctx context.Context) {
	stop := context.AfterFunc(ctx, s.Close)
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		stop()
		return
	}
	s.stop = stop
	s.mu.Unlock()
}

// publish replaces any pending snapshot with snap
func (s *Subscription) publish(snap Snapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case <-s.ch:
	default:
	}
	s.ch <- snap
	return true
}

// Decode unmarshals every document body of a snapshot into T
func Decode[T any](snap Snapshot) ([]T, error) {
	out := make([]T, 0, len(snap.Documents))
	for _, doc := range snap.Documents {
		var v T
		if err := json.Unmarshal(doc.Body, &v); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", snap.Collection, doc.ID, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Encode converts a typed entity into a document body
func Encode(tenantID string, v interface{}) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return Document{}, fmt.Errorf("encode document: %w", err)
	}
	return Document{TenantID: tenantID, Body: raw}, nil
}

// stampBody sets the id and tenant_id keys of a JSON object body
func stampBody(body json.RawMessage, id, tenantID string) (json.RawMessage, error) {
	fields := map[string]interface{}{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &fields); err != nil {
			return nil, fmt.Errorf("document body must be a JSON object: %w", err)
		}
	}
	fields["id"] = id
	fields["tenant_id"] = tenantID
	return json.Marshal(fields)
}
