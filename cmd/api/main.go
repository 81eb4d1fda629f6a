package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/relovemarket/catalog-display/internal/api"
	"github.com/relovemarket/catalog-display/internal/config"
	"github.com/relovemarket/catalog-display/internal/display"
	"github.com/relovemarket/catalog-display/internal/domain/listing"
	"github.com/relovemarket/catalog-display/internal/infrastructure/kafka"
	"github.com/relovemarket/catalog-display/internal/infrastructure/store"
	"github.com/relovemarket/catalog-display/internal/projection"
	"github.com/relovemarket/catalog-display/internal/query"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	log.Println("[API] ========================================")
	log.Println("[API] Relove Market - Catalog Display")
	log.Println("[API] ========================================")
	log.Printf("[API] Kafka: %v", cfg.KafkaBrokers)
	log.Printf("[API] Topic: %s", cfg.KafkaTopic)
	log.Printf("[API] Card store: %s", cfg.CardStoreBackend)

	// Initialize Kafka producer
	producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer producer.Close()

	// Initialize PostgreSQL connection
	db, err := store.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[API] Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()
	log.Println("[API] Connected to PostgreSQL")

	// Initialize stores
	eventStore := store.NewPostgresEventStore(db, producer)
	cards, err := store.OpenCardStore(ctx, cfg.CardStoreBackend, db, cfg.DynamoTable)
	if err != nil {
		log.Fatalf("[API] Failed to open card store: %v", err)
	}

	// Display engine shared by the projector and the preview endpoint
	engine := display.NewEngine(
		display.NewResolver(nil),
		display.NewExtractor(nil),
		display.NewFormatter(cfg.CurrencySymbol),
	)

	// Initialize domain service and handlers
	listingSvc := listing.NewService(eventStore)
	queryHandler := query.NewHandler(cards)

	// Initialize projector
	projector := projection.NewProjector(cards, engine)

	// Replay existing events to rebuild product cards
	log.Println("[API] Replaying events from PostgreSQL...")
	replayEvents(eventStore, projector)

	// Start Kafka consumer for new events (async projection)
	consumer := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroup)
	defer consumer.Close()

	var wg sync.WaitGroup
	consumerReady := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Println("[API] Starting Kafka consumer (async projection)...")
		close(consumerReady)
		if err := consumer.Consume(ctx, projector.HandleEvent); err != nil {
			if ctx.Err() == nil {
				log.Printf("[API] Projector error: %v", err)
			}
		}
	}()

	<-consumerReady
	// Give Kafka consumer a moment to establish connection
	time.Sleep(500 * time.Millisecond)
	log.Println("[API] Kafka consumer ready")

	// Initialize API
	handlers := api.NewHandlers(listingSvc, queryHandler, engine, display.NewResolver(nil))
	router := api.NewRouter(handlers)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		log.Println("[API] ========================================")
		log.Printf("[API] Server started on %s", cfg.Addr)
		log.Println("[API] ========================================")
		log.Println("[API] Note: Using ASYNC projection")
		log.Println("[API] Card updates may have slight delay")
		log.Println("[API] ========================================")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("[API] Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[API] Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	server.Shutdown(shutdownCtx)

	wg.Wait()
}

// replayEvents replays all stored events to rebuild product cards
func replayEvents(eventStore *store.PostgresEventStore, projector *projection.Projector) {
	events := eventStore.GetAllEvents()
	log.Printf("[API] Replaying %d events from event store...", len(events))

	ctx := context.Background()
	for _, event := range events {
		data, _ := event.MarshalJSON()
		if err := projector.HandleEvent(ctx, []byte(event.AggregateID), data); err != nil {
			log.Printf("[API] Error replaying event %s: %v", event.ID, err)
		}
	}
	log.Println("[API] Event replay completed - product cards rebuilt")
}
