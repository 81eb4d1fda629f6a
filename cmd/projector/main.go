package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/relovemarket/catalog-display/internal/config"
	"github.com/relovemarket/catalog-display/internal/display"
	"github.com/relovemarket/catalog-display/internal/infrastructure/kafka"
	"github.com/relovemarket/catalog-display/internal/infrastructure/store"
	"github.com/relovemarket/catalog-display/internal/projection"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	log.Println("[Projector] ========================================")
	log.Println("[Projector] Relove Market - Card Projector")
	log.Println("[Projector] ========================================")
	log.Printf("[Projector] Kafka: %v", cfg.KafkaBrokers)
	log.Printf("[Projector] Topic: %s", cfg.KafkaTopic)
	log.Printf("[Projector] Group: %s", cfg.KafkaGroup)
	log.Printf("[Projector] Card store: %s", cfg.CardStoreBackend)

	// The projector only needs PostgreSQL when cards live there
	var cards store.CardStore
	if cfg.CardStoreBackend == config.BackendPostgres {
		db, err := store.ConnectPostgres(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("[Projector] Failed to connect to PostgreSQL: %v", err)
		}
		defer db.Close()
		log.Println("[Projector] Connected to PostgreSQL")

		cards, err = store.OpenCardStore(ctx, cfg.CardStoreBackend, db, cfg.DynamoTable)
		if err != nil {
			log.Fatalf("[Projector] Failed to open card store: %v", err)
		}
	} else {
		var err error
		cards, err = store.OpenCardStore(ctx, cfg.CardStoreBackend, nil, cfg.DynamoTable)
		if err != nil {
			log.Fatalf("[Projector] Failed to open card store: %v", err)
		}
	}

	engine := display.NewEngine(
		display.NewResolver(nil),
		display.NewExtractor(nil),
		display.NewFormatter(cfg.CurrencySymbol),
	)
	projector := projection.NewProjector(cards, engine)

	// Initialize Kafka consumer
	consumer := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroup)
	defer consumer.Close()

	go func() {
		log.Println("[Projector] Starting event consumer...")
		log.Printf("[Projector] Listening to topic: %s", cfg.KafkaTopic)
		if err := consumer.Consume(ctx, projector.HandleEvent); err != nil {
			log.Printf("[Projector] Consumer error: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[Projector] Shutting down...")
	cancel()
}
