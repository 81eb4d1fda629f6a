package store

import (
	"context"
	"database/sql"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// OpenCardStore builds the card store for the configured backend. The
// "postgres" backend reuses the caller's connection; "dynamo" builds a
// DynamoDB client from the ambient AWS configuration.
func OpenCardStore(ctx context.Context, backend string, db *sql.DB, dynamoTable string) (CardStore, error) {
	switch backend {
	case "postgres":
		if db == nil {
			return nil, fmt.Errorf("postgres card store requires a database connection")
		}
		return NewPostgresCardStore(db), nil
	case "dynamo":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		return NewDynamoCardStore(dynamodb.NewFromConfig(awsCfg), dynamoTable), nil
	case "memory":
		return NewMemoryCardStore(), nil
	default:
		return nil, fmt.Errorf("unknown card store backend: %s", backend)
	}
}
