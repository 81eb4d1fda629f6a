package mocks

import (
	"context"
	"sync"

	"github.com/relovemarket/catalog-display/internal/readmodel"
)

// MockCardStore is a mock implementation of CardStore for testing
type MockCardStore struct {
	mu    sync.RWMutex
	cards map[string]*readmodel.ProductCard

	// For tracking calls in tests
	PutCalls    []string
	DeleteCalls []string
	PutErr      error
}

// NewMockCardStore creates a new MockCardStore
func NewMockCardStore() *MockCardStore {
	return &MockCardStore{
		cards:       make(map[string]*readmodel.ProductCard),
		PutCalls:    make([]string, 0),
		DeleteCalls: make([]string, 0),
	}
}

func (m *MockCardStore) Put(ctx context.Context, card *readmodel.ProductCard) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PutCalls = append(m.PutCalls, card.ProductID)
	if m.PutErr != nil {
		return m.PutErr
	}
	copied := *card
	m.cards[card.ProductID] = &copied
	return nil
}

func (m *MockCardStore) Get(ctx context.Context, productID string) (*readmodel.ProductCard, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	card, ok := m.cards[productID]
	if !ok {
		return nil, false, nil
	}
	copied := *card
	return &copied, true, nil
}

func (m *MockCardStore) List(ctx context.Context) ([]*readmodel.ProductCard, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cards := make([]*readmodel.ProductCard, 0, len(m.cards))
	for _, card := range m.cards {
		copied := *card
		cards = append(cards, &copied)
	}
	return cards, nil
}

func (m *MockCardStore) Delete(ctx context.Context, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.DeleteCalls = append(m.DeleteCalls, productID)
	delete(m.cards, productID)
	return nil
}

// SetCard seeds a card directly for testing
func (m *MockCardStore) SetCard(card *readmodel.ProductCard) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *card
	m.cards[card.ProductID] = &copied
}
