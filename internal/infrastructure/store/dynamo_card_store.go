package store

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/relovemarket/catalog-display/internal/readmodel"
)

// DynamoCardStore persists product cards in a DynamoDB table keyed by
// product_id. Used for deployments where the read side runs without
// PostgreSQL.
type DynamoCardStore struct {
	client    *dynamodb.Client
	tableName string
}

// dynamoCard is the DynamoDB item shape. Optional card fields are flattened
// to plain attributes; absent values are stored as empty and restored to nil
// on read.
type dynamoCard struct {
	ProductID     string  `dynamodbav:"product_id"`
	SellerID      string  `dynamodbav:"seller_id"`
	Title         string  `dynamodbav:"title"`
	ColorHex      string  `dynamodbav:"color_hex"`
	ColorLabel    string  `dynamodbav:"color_label,omitempty"`
	Size          string  `dynamodbav:"size,omitempty"`
	PriceDisplay  string  `dynamodbav:"price_display"`
	OriginalPrice float64 `dynamodbav:"original_price,omitempty"`
	HasOriginal   bool    `dynamodbav:"has_original"`
	IsRange       bool    `dynamodbav:"is_range"`
	VariantCount  int     `dynamodbav:"variant_count"`
	OptionCount   int     `dynamodbav:"option_count"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
}

func NewDynamoCardStore(client *dynamodb.Client, tableName string) *DynamoCardStore {
	return &DynamoCardStore{client: client, tableName: tableName}
}

func (s *DynamoCardStore) Put(ctx context.Context, card *readmodel.ProductCard) error {
	item := dynamoCard{
		ProductID:    card.ProductID,
		SellerID:     card.SellerID,
		Title:        card.Title,
		ColorHex:     card.ColorHex,
		PriceDisplay: card.PriceDisplay,
		IsRange:      card.IsRange,
		VariantCount: card.VariantCount,
		OptionCount:  card.OptionCount,
		UpdatedAt:    card.UpdatedAt.Format(time.RFC3339Nano),
	}
	if card.ColorLabel != nil {
		item.ColorLabel = *card.ColorLabel
	}
	if card.Size != nil {
		item.Size = *card.Size
	}
	if card.OriginalPrice != nil {
		item.OriginalPrice = *card.OriginalPrice
		item.HasOriginal = true
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal product card: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put product card: %w", err)
	}
	return nil
}

func (s *DynamoCardStore) Get(ctx context.Context, productID string) (*readmodel.ProductCard, bool, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"product_id": productID})
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal key: %w", err)
	}

	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       key,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to get product card: %w", err)
	}
	if result.Item == nil {
		return nil, false, nil
	}

	card, err := unmarshalCard(result.Item)
	if err != nil {
		return nil, false, err
	}
	return card, true, nil
}

func (s *DynamoCardStore) List(ctx context.Context) ([]*readmodel.ProductCard, error) {
	var cards []*readmodel.ProductCard

	paginator := dynamodb.NewScanPaginator(s.client, &dynamodb.ScanInput{
		TableName: aws.String(s.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product cards: %w", err)
		}
		for _, item := range page.Items {
			card, err := unmarshalCard(item)
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
		}
	}
	return cards, nil
}

func (s *DynamoCardStore) Delete(ctx context.Context, productID string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"product_id": productID})
	if err != nil {
		return fmt.Errorf("failed to marshal key: %w", err)
	}

	_, err = s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key:       key,
	})
	if err != nil {
		return fmt.Errorf("failed to delete product card: %w", err)
	}
	return nil
}

func unmarshalCard(item map[string]types.AttributeValue) (*readmodel.ProductCard, error) {
	var raw dynamoCard
	if err := attributevalue.UnmarshalMap(item, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product card: %w", err)
	}

	card := &readmodel.ProductCard{
		ProductID:    raw.ProductID,
		SellerID:     raw.SellerID,
		Title:        raw.Title,
		ColorHex:     raw.ColorHex,
		PriceDisplay: raw.PriceDisplay,
		IsRange:      raw.IsRange,
		VariantCount: raw.VariantCount,
		OptionCount:  raw.OptionCount,
	}
	if raw.ColorLabel != "" {
		card.ColorLabel = &raw.ColorLabel
	}
	if raw.Size != "" {
		card.Size = &raw.Size
	}
	if raw.HasOriginal {
		card.OriginalPrice = &raw.OriginalPrice
	}
	if raw.UpdatedAt != "" {
		ts, err := time.Parse(time.RFC3339Nano, raw.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse updated_at: %w", err)
		}
		card.UpdatedAt = ts
	}
	return card, nil
}
