package query

import (
	"context"
	"log"

	"github.com/relovemarket/catalog-display/internal/infrastructure/store"
	"github.com/relovemarket/catalog-display/internal/readmodel"
)

// Handler serves precomputed product cards from the card store.
type Handler struct {
	cards store.CardStore
}

func NewHandler(cards store.CardStore) *Handler {
	return &Handler{cards: cards}
}

// GetCard returns the card for one listing.
func (h *Handler) GetCard(ctx context.Context, productID string) (*readmodel.ProductCard, bool) {
	card, ok, err := h.cards.Get(ctx, productID)
	if err != nil {
		log.Printf("[Query] Error getting card %s: %v", productID, err)
		return nil, false
	}
	return card, ok
}

// ListCards returns all cards, newest first.
func (h *Handler) ListCards(ctx context.Context) []*readmodel.ProductCard {
	cards, err := h.cards.List(ctx)
	if err != nil {
		log.Printf("[Query] Error listing cards: %v", err)
		return nil
	}
	if cards == nil {
		cards = make([]*readmodel.ProductCard, 0)
	}
	return cards
}

// ListCardsBySeller returns all of one seller's cards.
func (h *Handler) ListCardsBySeller(ctx context.Context, sellerID string) []*readmodel.ProductCard {
	all, err := h.cards.List(ctx)
	if err != nil {
		log.Printf("[Query] Error listing cards for seller %s: %v", sellerID, err)
		return nil
	}
	cards := make([]*readmodel.ProductCard, 0)
	for _, card := range all {
		if card.SellerID == sellerID {
			cards = append(cards, card)
		}
	}
	return cards
}
