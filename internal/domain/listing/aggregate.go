package listing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/relovemarket/catalog-display/internal/display"
	"github.com/relovemarket/catalog-display/internal/infrastructure/store"
)

const AggregateType = "Listing"

var (
	ErrListingNotFound  = errors.New("listing not found")
	ErrInvalidTitle     = errors.New("title is required")
	ErrInvalidSeller    = errors.New("seller id is required")
	ErrInvalidBasePrice = errors.New("base price must be positive")
)

// Listing is a seller's product listing: the base price plus the raw variant
// records the display engine summarizes.
type Listing struct {
	ID        string                  `json:"id"`
	SellerID  string                  `json:"seller_id"`
	Title     string                  `json:"title"`
	BasePrice float64                 `json:"product_price"`
	Variants  []display.VariantRecord `json:"product_variant,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// Product converts the listing to the display engine's input shape.
func (l *Listing) Product() display.Product {
	return display.Product{
		ID:        l.ID,
		Title:     l.Title,
		BasePrice: l.BasePrice,
		Variants:  l.Variants,
	}
}

type Service struct {
	eventStore store.EventStoreInterface
}

func NewService(es store.EventStoreInterface) *Service {
	return &Service{eventStore: es}
}

// Create validates and records a new listing. Variant records are accepted
// as-is, malformed combinations included; normalization happens downstream in
// the display projection.
func (s *Service) Create(ctx context.Context, sellerID, title string, basePrice float64, variants []display.VariantRecord) (*Listing, error) {
	if sellerID == "" {
		return nil, ErrInvalidSeller
	}
	if title == "" {
		return nil, ErrInvalidTitle
	}
	if basePrice <= 0 {
		return nil, ErrInvalidBasePrice
	}

	listingID := uuid.New().String()
	now := time.Now()

	event := ListingCreated{
		ListingID: listingID,
		SellerID:  sellerID,
		Title:     title,
		BasePrice: basePrice,
		Variants:  variants,
		CreatedAt: now,
	}

	_, err := s.eventStore.Append(ctx, listingID, AggregateType, EventListingCreated, event)
	if err != nil {
		return nil, err
	}

	return &Listing{
		ID:        listingID,
		SellerID:  sellerID,
		Title:     title,
		BasePrice: basePrice,
		Variants:  variants,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update replaces a listing's title, base price, and variant set.
func (s *Service) Update(ctx context.Context, listingID, title string, basePrice float64, variants []display.VariantRecord) error {
	if title == "" {
		return ErrInvalidTitle
	}
	if basePrice <= 0 {
		return ErrInvalidBasePrice
	}

	events := s.eventStore.GetEvents(listingID)
	if len(events) == 0 {
		return ErrListingNotFound
	}

	event := ListingUpdated{
		ListingID: listingID,
		Title:     title,
		BasePrice: basePrice,
		Variants:  variants,
		UpdatedAt: time.Now(),
	}

	_, err := s.eventStore.Append(ctx, listingID, AggregateType, EventListingUpdated, event)
	return err
}

// Delist takes a listing off the marketplace.
func (s *Service) Delist(ctx context.Context, listingID string) error {
	events := s.eventStore.GetEvents(listingID)
	if len(events) == 0 {
		return ErrListingNotFound
	}

	event := ListingDelisted{
		ListingID:  listingID,
		DelistedAt: time.Now(),
	}

	_, err := s.eventStore.Append(ctx, listingID, AggregateType, EventListingDelisted, event)
	return err
}
