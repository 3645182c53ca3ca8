package store

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-process Store. Records are round-tripped through BSON on
// the way in so reads see the same value types the Mongo driver returns
// (int64, primitive.DateTime, primitive.A, ...).
type Memory struct {
	mu   sync.RWMutex
	docs map[Collection][]bson.M
}

func NewMemory() *Memory {
	return &Memory{docs: make(map[Collection][]bson.M)}
}

func (m *Memory) Insert(_ context.Context, coll Collection, record any) (string, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return "", &Error{Op: "insert", Collection: coll, Err: err}
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return "", &Error{Op: "insert", Collection: coll, Err: err}
	}

	oid, ok := doc["_id"].(primitive.ObjectID)
	if !ok {
		oid = primitive.NewObjectID()
		doc["_id"] = oid
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[coll] = append(m.docs[coll], doc)
	return oid.Hex(), nil
}

func (m *Memory) Find(_ context.Context, coll Collection, filter bson.M, limit int64) ([]bson.M, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []bson.M{}
	for _, doc := range m.docs[coll] {
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		if matches(doc, filter) {
			out = append(out, copyDoc(doc))
		}
	}
	return out, nil
}

func (m *Memory) FindOne(_ context.Context, coll Collection, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &Error{Op: "find one", Collection: coll, Err: err}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, doc := range m.docs[coll] {
		if doc["_id"] == oid {
			return copyDoc(doc), nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) Diagnose(_ context.Context) Diagnostics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.docs))
	for coll := range m.docs {
		names = append(names, string(coll))
	}
	sort.Strings(names)
	return Diagnostics{Configured: true, DatabaseName: "memory", Collections: names}
}

func (m *Memory) Close(context.Context) error {
	return nil
}

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// copyDoc is shallow; callers only replace top-level keys.
func copyDoc(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
