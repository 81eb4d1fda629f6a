// Backfill is a one-shot batch job: it replays every stored listing event
// through the projector to rebuild all product cards. Run it after palette
// or formatting changes so existing cards pick up the new display rules.
package main

import (
	"context"
	"log"

	"github.com/relovemarket/catalog-display/internal/config"
	"github.com/relovemarket/catalog-display/internal/display"
	"github.com/relovemarket/catalog-display/internal/infrastructure/store"
	"github.com/relovemarket/catalog-display/internal/projection"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()

	log.Println("[Backfill] ========================================")
	log.Println("[Backfill] Relove Market - Card Backfill")
	log.Println("[Backfill] ========================================")
	log.Printf("[Backfill] Card store: %s", cfg.CardStoreBackend)

	db, err := store.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[Backfill] Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()
	log.Println("[Backfill] Connected to PostgreSQL")

	// No producer: backfill reads events, it never publishes new ones.
	eventStore := store.NewPostgresEventStore(db, nil)
	cards, err := store.OpenCardStore(ctx, cfg.CardStoreBackend, db, cfg.DynamoTable)
	if err != nil {
		log.Fatalf("[Backfill] Failed to open card store: %v", err)
	}

	engine := display.NewEngine(
		display.NewResolver(nil),
		display.NewExtractor(nil),
		display.NewFormatter(cfg.CurrencySymbol),
	)
	projector := projection.NewProjector(cards, engine)

	events := eventStore.GetAllEvents()
	log.Printf("[Backfill] Replaying %d events...", len(events))

	failed := 0
	for _, event := range events {
		data, _ := event.MarshalJSON()
		if err := projector.HandleEvent(ctx, []byte(event.AggregateID), data); err != nil {
			failed++
			log.Printf("[Backfill] Error replaying event %s: %v", event.ID, err)
		}
	}

	log.Printf("[Backfill] Done: %d events replayed, %d failed", len(events)-failed, failed)
}
