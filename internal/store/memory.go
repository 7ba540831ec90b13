package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-memory Client for tests. It applies the same filter and sort
// semantics as the production store.
type Memory struct {
	mu   sync.Mutex
	docs map[string]map[string]*Document
}

var _ Client = (*Memory)(nil)

// NewMemory creates an empty in-memory document store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string]map[string]*Document)}
}

// Count returns the number of documents in a collection.
func (m *Memory) Count(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs[collection])
}

func (m *Memory) CreateDocument(ctx context.Context, collection, id string, data map[string]any) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	}
	coll := m.docs[collection]
	if coll == nil {
		coll = make(map[string]*Document)
		m.docs[collection] = coll
	}
	if _, ok := coll[id]; ok {
		return nil, &Error{Code: 409, Type: "document_already_exists", Message: fmt.Sprintf("document %s already exists in %s", id, collection)}
	}
	now := time.Now()
	doc := &Document{
		ID:         id,
		Collection: collection,
		CreatedAt:  now,
		UpdatedAt:  now,
		Data:       cloneData(data),
	}
	coll[id] = doc
	return copyDocument(doc), nil
}

func (m *Memory) GetDocument(ctx context.Context, collection, id string) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[collection][id]
	if !ok {
		return nil, NotFound(fmt.Sprintf("document %s not found in %s", id, collection))
	}
	return copyDocument(doc), nil
}

func (m *Memory) UpdateDocument(ctx context.Context, collection, id string, data map[string]any) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[collection][id]
	if !ok {
		return nil, NotFound(fmt.Sprintf("document %s not found in %s", id, collection))
	}
	for k, v := range data {
		doc.Data[k] = v
	}
	doc.UpdatedAt = time.Now()
	return copyDocument(doc), nil
}

func (m *Memory) DeleteDocument(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.docs[collection][id]; !ok {
		return NotFound(fmt.Sprintf("document %s not found in %s", id, collection))
	}
	delete(m.docs[collection], id)
	return nil
}

func (m *Memory) ListDocuments(ctx context.Context, collection string, opts ListOptions) ([]*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var docs []*Document
	for _, doc := range m.docs[collection] {
		if matchesFilters(doc, opts.Filters) {
			docs = append(docs, copyDocument(doc))
		}
	}

	sortDocuments(docs, opts.Sort)

	if opts.Offset > 0 {
		if opts.Offset >= len(docs) {
			return nil, nil
		}
		docs = docs[opts.Offset:]
	}
	if opts.Limit > 0 && len(docs) > opts.Limit {
		docs = docs[:opts.Limit]
	}
	return docs, nil
}

func matchesFilters(doc *Document, filters []Filter) bool {
	for _, f := range filters {
		val, _ := doc.Data[f.Attribute].(string)
		want := f.Value
		if f.FoldCase {
			val = strings.ToLower(val)
			want = strings.ToLower(want)
		}
		switch f.Op {
		case OpContains:
			if !strings.Contains(val, want) {
				return false
			}
		default:
			if val != want {
				return false
			}
		}
	}
	return true
}

func sortDocuments(docs []*Document, sorts []Sort) {
	if len(sorts) == 0 {
		return
	}
	sort.SliceStable(docs, func(i, j int) bool {
		for _, s := range sorts {
			var less, equal bool
			if s.Attribute == CreatedAtField {
				less = docs[i].CreatedAt.Before(docs[j].CreatedAt)
				equal = docs[i].CreatedAt.Equal(docs[j].CreatedAt)
			} else {
				a, _ := docs[i].Data[s.Attribute].(string)
				b, _ := docs[j].Data[s.Attribute].(string)
				a, b = strings.ToLower(a), strings.ToLower(b)
				less = a < b
				equal = a == b
			}
			if equal {
				continue
			}
			if s.Descending {
				return !less
			}
			return less
		}
		return false
	})
}

func copyDocument(doc *Document) *Document {
	out := *doc
	out.Data = cloneData(doc.Data)
	return &out
}
