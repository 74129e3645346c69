package store

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	apperrors "condo-ops-backend/internal/errors"

	"github.com/google/uuid"
)

type subKey struct {
	collection string
	tenantID   string
}

type memDoc struct {
	doc Document
	seq int64
}

type memState struct {
	collections map[string]map[string]*memDoc
	seq         int64
}

func (s *memState) clone() *memState {
	out := &memState{collections: make(map[string]map[string]*memDoc, len(s.collections)), seq: s.seq}
	for name, docs := range s.collections {
		copied := make(map[string]*memDoc, len(docs))
		for id, d := range docs {
			dup := *d
			copied[id] = &dup
		}
		out.collections[name] = copied
	}
	return out
}

// MemoryStore is a process-local Store used by tests and STORE_DRIVER=memory runs
type MemoryStore struct {
	mu    sync.Mutex
	state *memState
	subs  map[subKey]map[*Subscription]struct{}
	now   func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		state: &memState{collections: map[string]map[string]*memDoc{}},
		subs:  map[subKey]map[*Subscription]struct{}{},
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Create implements Writer
func (m *MemoryStore) Create(ctx context.Context, collection string, doc Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", apperrors.NewPersistenceError("create", collection, doc.ID, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	w := &memWriter{state: m.state, now: m.now, touched: map[subKey]struct{}{}}
	id, err := w.create(collection, doc)
	if err != nil {
		return "", err
	}
	m.publishLocked(w.touched)
	return id, nil
}

// Update implements Writer
func (m *MemoryStore) Update(ctx context.Context, collection, id string, patch map[string]interface{}) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewPersistenceError("update", collection, id, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	w := &memWriter{state: m.state, now: m.now, touched: map[subKey]struct{}{}}
	if err := w.update(collection, id, patch); err != nil {
		return err
	}
	m.publishLocked(w.touched)
	return nil
}

// Delete implements Writer
func (m *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewPersistenceError("delete", collection, id, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	w := &memWriter{state: m.state, now: m.now, touched: map[subKey]struct{}{}}
	if err := w.delete(collection, id); err != nil {
		return err
	}
	m.publishLocked(w.touched)
	return nil
}

// Atomic applies every write made through w or none of them
func (m *MemoryStore) Atomic(ctx context.Context, fn func(w Writer) error) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewPersistenceError("atomic", "", "", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	staged := &memWriter{state: m.state.clone(), now: m.now, touched: map[subKey]struct{}{}}
	if err := fn(staged); err != nil {
		return err
	}
	m.state = staged.state
	m.publishLocked(staged.touched)
	return nil
}

// Snapshot returns the current documents of a collection for a tenant
func (m *MemoryStore) Snapshot(ctx context.Context, collection, tenantID string) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, apperrors.NewPersistenceError("snapshot", collection, "", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked(collection, tenantID), nil
}

// Subscribe registers for snapshots of a collection. The current snapshot is delivered immediately.
func (m *MemoryStore) Subscribe(ctx context.Context, collection, tenantID string) (*Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("subscribe", collection, "", err)
	}
	key := subKey{collection: collection, tenantID: tenantID}

	var sub *Subscription
	sub = newSubscription(func() {
		m.mu.Lock()
		delete(m.subs[key], sub)
		if len(m.subs[key]) == 0 {
			delete(m.subs, key)
		}
		m.mu.Unlock()
	})

	m.mu.Lock()
	if m.subs[key] == nil {
		m.subs[key] = map[*Subscription]struct{}{}
	}
	m.subs[key][sub] = struct{}{}
	sub.publish(m.snapshotLocked(collection, tenantID))
	m.mu.Unlock()

	sub.bind(ctx)
	return sub, nil
}

func (m *MemoryStore) snapshotLocked(collection, tenantID string) Snapshot {
	docs := make([]*memDoc, 0)
	for _, d := range m.state.collections[collection] {
		if d.doc.TenantID == tenantID {
			docs = append(docs, d)
		}
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].seq < docs[j].seq })

	out := Snapshot{Collection: collection, TenantID: tenantID, TakenAt: m.now(), Documents: make([]Document, 0, len(docs))}
	for _, d := range docs {
		doc := d.doc
		doc.Body = append(json.RawMessage(nil), d.doc.Body...)
		out.Documents = append(out.Documents, doc)
	}
	return out
}

func (m *MemoryStore) publishLocked(touched map[subKey]struct{}) {
	for key := range touched {
		subs := m.subs[key]
		if len(subs) == 0 {
			continue
		}
		snap := m.snapshotLocked(key.collection, key.tenantID)
		for sub := range subs {
			sub.publish(snap)
		}
	}
}

// memWriter applies writes to a state without locking
type memWriter struct {
	state   *memState
	now     func() time.Time
	touched map[subKey]struct{}
}

func (w *memWriter) Create(_ context.Context, collection string, doc Document) (string, error) {
	return w.create(collection, doc)
}

func (w *memWriter) Update(_ context.Context, collection, id string, patch map[string]interface{}) error {
	return w.update(collection, id, patch)
}

func (w *memWriter) Delete(_ context.Context, collection, id string) error {
	return w.delete(collection, id)
}

func (w *memWriter) create(collection string, doc Document) (string, error) {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	docs := w.state.collections[collection]
	if docs == nil {
		docs = map[string]*memDoc{}
		w.state.collections[collection] = docs
	}
	if _, exists := docs[doc.ID]; exists {
		return "", apperrors.ErrDocumentExists
	}

	body, err := stampBody(doc.Body, doc.ID, doc.TenantID)
	if err != nil {
		return "", apperrors.NewPersistenceError("create", collection, doc.ID, err)
	}
	now := w.now()
	doc.Body = body
	doc.CreatedAt = now
	doc.UpdatedAt = now

	w.state.seq++
	docs[doc.ID] = &memDoc{doc: doc, seq: w.state.seq}
	w.touched[subKey{collection: collection, tenantID: doc.TenantID}] = struct{}{}
	return doc.ID, nil
}

func (w *memWriter) update(collection, id string, patch map[string]interface{}) error {
	d, ok := w.state.collections[collection][id]
	if !ok {
		return apperrors.ErrDocumentNotFound
	}

	fields := map[string]interface{}{}
	if err := json.Unmarshal(d.doc.Body, &fields); err != nil {
		return apperrors.NewPersistenceError("update", collection, id, err)
	}
	for k, v := range sanitizePatch(patch) {
		fields[k] = v
	}
	body, err := json.Marshal(fields)
	if err != nil {
		return apperrors.NewPersistenceError("update", collection, id, err)
	}

	updated := *d
	updated.doc.Body = body
	updated.doc.UpdatedAt = w.now()
	w.state.collections[collection][id] = &updated
	w.touched[subKey{collection: collection, tenantID: d.doc.TenantID}] = struct{}{}
	return nil
}

func (w *memWriter) delete(collection, id string) error {
	d, ok := w.state.collections[collection][id]
	if !ok {
		return apperrors.ErrDocumentNotFound
	}
	delete(w.state.collections[collection], id)
	w.touched[subKey{collection: collection, tenantID: d.doc.TenantID}] = struct{}{}
	return nil
}

// sanitizePatch drops keys that identify the document
func sanitizePatch(patch map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(patch))
	for k, v := range patch {
		if k == "id" || k == "tenant_id" {
			continue
		}
		out[k] = v
	}
	return out
}
