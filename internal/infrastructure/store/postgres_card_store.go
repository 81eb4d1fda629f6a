package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/relovemarket/catalog-display/internal/readmodel"
)

// PostgresCardStore persists product cards in the read_product_cards table.
type PostgresCardStore struct {
	db *sql.DB
}

func NewPostgresCardStore(db *sql.DB) *PostgresCardStore {
	return &PostgresCardStore{db: db}
}

func (s *PostgresCardStore) Put(ctx context.Context, card *readmodel.ProductCard) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO read_product_cards
			(product_id, seller_id, title, color_hex, color_label, size,
			 price_display, original_price, is_range, variant_count, option_count, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (product_id) DO UPDATE SET
			seller_id = EXCLUDED.seller_id,
			title = EXCLUDED.title,
			color_hex = EXCLUDED.color_hex,
			color_label = EXCLUDED.color_label,
			size = EXCLUDED.size,
			price_display = EXCLUDED.price_display,
			original_price = EXCLUDED.original_price,
			is_range = EXCLUDED.is_range,
			variant_count = EXCLUDED.variant_count,
			option_count = EXCLUDED.option_count,
			updated_at = EXCLUDED.updated_at
	`, card.ProductID, card.SellerID, card.Title, card.ColorHex, card.ColorLabel, card.Size,
		card.PriceDisplay, card.OriginalPrice, card.IsRange, card.VariantCount, card.OptionCount, card.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting product card %s: %w", card.ProductID, err)
	}
	return nil
}

func (s *PostgresCardStore) Get(ctx context.Context, productID string) (*readmodel.ProductCard, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT product_id, seller_id, title, color_hex, color_label, size,
		       price_display, original_price, is_range, variant_count, option_count, updated_at
		FROM read_product_cards WHERE product_id = $1
	`, productID)

	card, err := scanCard(row)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("getting product card %s: %w", productID, err)
	}
	return card, true, nil
}

func (s *PostgresCardStore) List(ctx context.Context) ([]*readmodel.ProductCard, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT product_id, seller_id, title, color_hex, color_label, size,
		       price_display, original_price, is_range, variant_count, option_count, updated_at
		FROM read_product_cards ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing product cards: %w", err)
	}
	defer rows.Close()

	var cards []*readmodel.ProductCard
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product card: %w", err)
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

func (s *PostgresCardStore) Delete(ctx context.Context, productID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM read_product_cards WHERE product_id = $1", productID)
	if err != nil {
		return fmt.Errorf("deleting product card %s: %w", productID, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (*readmodel.ProductCard, error) {
	var card readmodel.ProductCard
	err := row.Scan(
		&card.ProductID, &card.SellerID, &card.Title, &card.ColorHex, &card.ColorLabel, &card.Size,
		&card.PriceDisplay, &card.OriginalPrice, &card.IsRange, &card.VariantCount, &card.OptionCount, &card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &card, nil
}
