package store

import (
	"context"

	"github.com/relovemarket/catalog-display/internal/readmodel"
)

// CardStore persists precomputed product cards. Implementations must make
// Put an upsert keyed by product id: the projector recomputes cards in full
// and overwrites blindly.
type CardStore interface {
	Put(ctx context.Context, card *readmodel.ProductCard) error
	Get(ctx context.Context, productID string) (*readmodel.ProductCard, bool, error)
	List(ctx context.Context) ([]*readmodel.ProductCard, error)
	Delete(ctx context.Context, productID string) error
}
