package listing

import (
	"time"

	"github.com/relovemarket/catalog-display/internal/display"
)

const (
	EventListingCreated  = "ListingCreated"
	EventListingUpdated  = "ListingUpdated"
	EventListingDelisted = "ListingDelisted"
)

type ListingCreated struct {
	ListingID string                  `json:"listing_id"`
	SellerID  string                  `json:"seller_id"`
	Title     string                  `json:"title"`
	BasePrice float64                 `json:"product_price"`
	Variants  []display.VariantRecord `json:"product_variant,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
}

type ListingUpdated struct {
	ListingID string                  `json:"listing_id"`
	Title     string                  `json:"title"`
	BasePrice float64                 `json:"product_price"`
	Variants  []display.VariantRecord `json:"product_variant,omitempty"`
	UpdatedAt time.Time               `json:"updated_at"`
}

type ListingDelisted struct {
	ListingID  string    `json:"listing_id"`
	DelistedAt time.Time `json:"delisted_at"`
}
