package projection

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/relovemarket/catalog-display/internal/display"
	"github.com/relovemarket/catalog-display/internal/domain/listing"
	"github.com/relovemarket/catalog-display/internal/infrastructure/store"
	"github.com/relovemarket/catalog-display/internal/readmodel"
)

// Projector turns listing events into product cards: each event carries the
// full listing state, so projection is a stateless recompute through the
// display engine followed by an upsert. Items are independent; the projector
// is safe to run in parallel across listings.
type Projector struct {
	cards  store.CardStore
	engine *display.Engine
}

func NewProjector(cards store.CardStore, engine *display.Engine) *Projector {
	if engine == nil {
		engine = display.NewDefaultEngine(nil)
	}
	return &Projector{cards: cards, engine: engine}
}

// HandleEvent is the kafka.MessageHandler for listing events. Events of
// other aggregate types are ignored.
func (p *Projector) HandleEvent(ctx context.Context, key, value []byte) error {
	var event store.Event
	if err := json.Unmarshal(value, &event); err != nil {
		return err
	}

	if event.AggregateType != listing.AggregateType {
		return nil
	}

	log.Printf("[Projector] Received event: %s (listing: %s)", event.EventType, event.AggregateID)

	switch event.EventType {
	case listing.EventListingCreated:
		var e listing.ListingCreated
		if err := json.Unmarshal(event.Data, &e); err != nil {
			return err
		}
		return p.project(ctx, e.ListingID, e.SellerID, e.Title, e.BasePrice, e.Variants, e.CreatedAt)

	case listing.EventListingUpdated:
		var e listing.ListingUpdated
		if err := json.Unmarshal(event.Data, &e); err != nil {
			return err
		}
		// Seller id is carried on the existing card; updates never move a
		// listing between sellers.
		sellerID := ""
		if current, ok, err := p.cards.Get(ctx, e.ListingID); err == nil && ok {
			sellerID = current.SellerID
		}
		return p.project(ctx, e.ListingID, sellerID, e.Title, e.BasePrice, e.Variants, e.UpdatedAt)

	case listing.EventListingDelisted:
		var e listing.ListingDelisted
		if err := json.Unmarshal(event.Data, &e); err != nil {
			return err
		}
		return p.cards.Delete(ctx, e.ListingID)
	}

	return nil
}

// project recomputes and stores the card for one listing.
func (p *Projector) project(ctx context.Context, listingID, sellerID, title string, basePrice float64, variants []display.VariantRecord, at time.Time) error {
	summary := p.engine.Summarize(display.Product{
		ID:        listingID,
		Title:     title,
		BasePrice: basePrice,
		Variants:  variants,
	})

	card := &readmodel.ProductCard{
		ProductID:     listingID,
		SellerID:      sellerID,
		Title:         title,
		ColorHex:      summary.ColorHex,
		ColorLabel:    summary.ColorLabel,
		Size:          summary.Size,
		PriceDisplay:  summary.Price.Main,
		OriginalPrice: summary.Price.Original,
		IsRange:       summary.Price.IsRange,
		VariantCount:  summary.VariantCount,
		OptionCount:   summary.OptionCount,
		UpdatedAt:     at,
	}

	return p.cards.Put(ctx, card)
}
