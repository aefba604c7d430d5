package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jaev1996/atria-fitness/internal/model"
)

// MemoryStore keeps the document in process memory.  It backs the engine
// tests and gives deep-copy semantics matching the MySQL store: callers
// never share memory with the stored state.
type MemoryStore struct {
	mu   sync.Mutex
	body []byte
}

// NewMemoryStore starts from the given document, or from the seed dataset
// when doc is nil.
func NewMemoryStore(doc *model.Document) *MemoryStore {
	s := &MemoryStore{}
	if doc == nil {
		doc = Seed()
	}
	if err := s.Save(context.Background(), doc); err != nil {
		panic(err) // marshalling a Document cannot fail
	}
	return s
}

func (s *MemoryStore) Load(ctx context.Context) (*model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var doc model.Document
	if err := json.Unmarshal(s.body, &doc); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	if doc.Settings.RoomRates == nil {
		doc.Settings.RoomRates = map[string]model.RoomRate{}
	}
	return &doc, nil
}

func (s *MemoryStore) Save(ctx context.Context, doc *model.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	s.mu.Lock()
	s.body = body
	s.mu.Unlock()
	return nil
}
