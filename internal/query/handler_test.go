package query

import (
	"context"
	"testing"

	"github.com/relovemarket/catalog-display/internal/infrastructure/store/mocks"
	"github.com/relovemarket/catalog-display/internal/readmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueryHandler() (*Handler, *mocks.MockCardStore) {
	cards := mocks.NewMockCardStore()
	return NewHandler(cards), cards
}

func TestHandler_GetCard_Found(t *testing.T) {
	handler, cards := newTestQueryHandler()
	cards.SetCard(&readmodel.ProductCard{
		ProductID:    "lst-1",
		SellerID:     "seller-9",
		Title:        "Linen shirt",
		ColorHex:     "#3B82F6",
		PriceDisplay: "RM 60.00",
	})

	card, found := handler.GetCard(context.Background(), "lst-1")

	require.True(t, found)
	assert.Equal(t, "Linen shirt", card.Title)
	assert.Equal(t, "#3B82F6", card.ColorHex)
}

func TestHandler_GetCard_NotFound(t *testing.T) {
	handler, _ := newTestQueryHandler()

	card, found := handler.GetCard(context.Background(), "missing")

	assert.False(t, found)
	assert.Nil(t, card)
}

func TestHandler_ListCards(t *testing.T) {
	handler, cards := newTestQueryHandler()
	cards.SetCard(&readmodel.ProductCard{ProductID: "lst-1"})
	cards.SetCard(&readmodel.ProductCard{ProductID: "lst-2"})

	assert.Len(t, handler.ListCards(context.Background()), 2)
}

func TestHandler_ListCards_Empty(t *testing.T) {
	handler, _ := newTestQueryHandler()

	cards := handler.ListCards(context.Background())

	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}

func TestHandler_ListCardsBySeller(t *testing.T) {
	handler, cards := newTestQueryHandler()
	cards.SetCard(&readmodel.ProductCard{ProductID: "lst-1", SellerID: "seller-1"})
	cards.SetCard(&readmodel.ProductCard{ProductID: "lst-2", SellerID: "seller-2"})
	cards.SetCard(&readmodel.ProductCard{ProductID: "lst-3", SellerID: "seller-1"})

	mine := handler.ListCardsBySeller(context.Background(), "seller-1")

	assert.Len(t, mine, 2)
}
