package store

import (
	"context"
	"sort"
	"sync"

	"github.com/relovemarket/catalog-display/internal/readmodel"
)

// MemoryCardStore keeps product cards in memory. Used for local development
// and as the baseline CardStore in tests.
type MemoryCardStore struct {
	mu    sync.RWMutex
	cards map[string]*readmodel.ProductCard
}

func NewMemoryCardStore() *MemoryCardStore {
	return &MemoryCardStore{cards: make(map[string]*readmodel.ProductCard)}
}

func (s *MemoryCardStore) Put(ctx context.Context, card *readmodel.ProductCard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *card
	s.cards[card.ProductID] = &copied
	return nil
}

func (s *MemoryCardStore) Get(ctx context.Context, productID string) (*readmodel.ProductCard, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	card, ok := s.cards[productID]
	if !ok {
		return nil, false, nil
	}
	copied := *card
	return &copied, true, nil
}

func (s *MemoryCardStore) List(ctx context.Context) ([]*readmodel.ProductCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cards := make([]*readmodel.ProductCard, 0, len(s.cards))
	for _, card := range s.cards {
		copied := *card
		cards = append(cards, &copied)
	}
	// Newest first, matching the storefront grid
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].UpdatedAt.After(cards[j].UpdatedAt)
	})
	return cards, nil
}

func (s *MemoryCardStore) Delete(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cards, productID)
	return nil
}
