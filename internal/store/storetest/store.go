// Package storetest provides an in-memory store.Store and store.Watcher for
// use-case and handler tests.
package storetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prateek9389/prateekportfolio/internal/store"
	"github.com/prateek9389/prateekportfolio/pkg/apperror"
)

type MemoryStore struct {
	mu          sync.Mutex
	collections map[string]map[string]*store.Document
	clock       time.Time

	// FailNext, when set, makes the next store call return the error and
	// clears itself. Used to exercise load/write failure paths.
	FailNext error

	// FailNextUpdate does the same but only trips on UpdateDocument, so a
	// test can let a preceding read succeed.
	FailNextUpdate error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]map[string]*store.Document),
		clock:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// tick plays the role of the server clock: every write gets a fresh stamp.
func (m *MemoryStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *MemoryStore) takeFailure() error {
	err := m.FailNext
	m.FailNext = nil
	return err
}

func (m *MemoryStore) coll(name string) map[string]*store.Document {
	c, ok := m.collections[name]
	if !ok {
		c = make(map[string]*store.Document)
		m.collections[name] = c
	}
	return c
}

func copyFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}

func copyDoc(d *store.Document) store.Document {
	return store.Document{
		ID:        d.ID,
		Fields:    copyFields(d.Fields),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (m *MemoryStore) ListCollection(ctx context.Context, collection string, q store.Query) ([]store.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return nil, err
	}

	docs := make([]store.Document, 0)
	for _, d := range m.coll(collection) {
		match := true
		for k, v := range q.Filter {
			if d.Fields[k] != v {
				match = false
				break
			}
		}
		if match {
			docs = append(docs, copyDoc(d))
		}
	}

	sort.Slice(docs, func(i, j int) bool {
		var less bool
		switch q.OrderBy {
		case "createdAt", "":
			less = docs[i].CreatedAt.Before(docs[j].CreatedAt)
		case "updatedAt":
			less = docs[i].UpdatedAt.Before(docs[j].UpdatedAt)
		default:
			a, _ := docs[i].Fields[q.OrderBy].(string)
			b, _ := docs[j].Fields[q.OrderBy].(string)
			less = a < b
		}
		if q.Descending {
			return !less
		}
		return less
	})

	if q.Limit > 0 && len(docs) > q.Limit {
		docs = docs[:q.Limit]
	}
	return docs, nil
}

func (m *MemoryStore) GetDocument(ctx context.Context, collection, id string) (*store.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return nil, err
	}

	d, ok := m.coll(collection)[id]
	if !ok {
		return nil, apperror.NewNotFound(collection, id)
	}
	doc := copyDoc(d)
	return &doc, nil
}

func (m *MemoryStore) CreateDocument(ctx context.Context, collection string, fields map[string]any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return "", err
	}

	now := m.tick()
	id := uuid.NewString()
	m.coll(collection)[id] = &store.Document{
		ID:        id,
		Fields:    copyFields(fields),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id, nil
}

func (m *MemoryStore) UpdateDocument(ctx context.Context, collection, id string, partial map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return err
	}
	if err := m.FailNextUpdate; err != nil {
		m.FailNextUpdate = nil
		return err
	}

	d, ok := m.coll(collection)[id]
	if !ok {
		return apperror.NewNotFound(collection, id)
	}
	for k, v := range partial {
		d.Fields[k] = v
	}
	d.UpdatedAt = m.tick()
	return nil
}

func (m *MemoryStore) SetDocument(ctx context.Context, collection, id string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return err
	}

	now := m.tick()
	c := m.coll(collection)
	if existing, ok := c[id]; ok {
		existing.Fields = copyFields(fields)
		existing.UpdatedAt = now
		return nil
	}
	c[id] = &store.Document{ID: id, Fields: copyFields(fields), CreatedAt: now, UpdatedAt: now}
	return nil
}

func (m *MemoryStore) DeleteDocument(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return err
	}

	c := m.coll(collection)
	if _, ok := c[id]; !ok {
		return apperror.NewNotFound(collection, id)
	}
	delete(c, id)
	return nil
}

// MemoryWatcher implements store.Watcher and store.Notifier over channels.
type MemoryWatcher struct {
	mu   sync.Mutex
	subs map[string][]chan store.Document
}

func NewMemoryWatcher() *MemoryWatcher {
	return &MemoryWatcher{subs: make(map[string][]chan store.Document)}
}

func watchKey(collection, id string) string { return collection + ":" + id }

func (w *MemoryWatcher) Watch(ctx context.Context, collection, id string) (<-chan store.Document, func(), error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	key := watchKey(collection, id)
	ch := make(chan store.Document, 8)
	w.subs[key] = append(w.subs[key], ch)

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			w.mu.Lock()
			defer w.mu.Unlock()
			chans := w.subs[key]
			for i, c := range chans {
				if c == ch {
					w.subs[key] = append(chans[:i], chans[i+1:]...)
					break
				}
			}
			close(ch)
		})
	}
	return ch, cancel, nil
}

func (w *MemoryWatcher) Notify(ctx context.Context, collection, id string, doc store.Document) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, ch := range w.subs[watchKey(collection, id)] {
		select {
		case ch <- doc:
		default:
		}
	}
	return nil
}
