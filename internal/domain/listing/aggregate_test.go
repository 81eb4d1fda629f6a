package listing

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/relovemarket/catalog-display/internal/display"
	"github.com/relovemarket/catalog-display/internal/infrastructure/store/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestListingService() (*Service, *mocks.MockEventStore) {
	eventStore := mocks.NewMockEventStore()
	service := NewService(eventStore)
	return service, eventStore
}

// ============================================
// Create Listing Tests
// ============================================

func TestService_Create_ValidListing(t *testing.T) {
	service, eventStore := newTestListingService()
	ctx := context.Background()

	variants := []display.VariantRecord{
		{Price: display.Decimal{Value: 45, Valid: true}, Combination: json.RawMessage(`{"Colors":"Red"}`)},
	}
	created, err := service.Create(ctx, "seller-9", "Linen shirt", 50, variants)

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "seller-9", created.SellerID)
	assert.Equal(t, "Linen shirt", created.Title)
	assert.Equal(t, 50.0, created.BasePrice)
	assert.Len(t, created.Variants, 1)

	require.Len(t, eventStore.AppendCalls, 1)
	assert.Equal(t, EventListingCreated, eventStore.AppendCalls[0].EventType)
	assert.Equal(t, AggregateType, eventStore.AppendCalls[0].AggregateType)
}

func TestService_Create_NoVariants(t *testing.T) {
	service, _ := newTestListingService()
	ctx := context.Background()

	created, err := service.Create(ctx, "seller-9", "Tote bag", 25.5, nil)

	require.NoError(t, err)
	assert.Empty(t, created.Variants)
}

func TestService_Create_MissingSeller(t *testing.T) {
	service, eventStore := newTestListingService()
	ctx := context.Background()

	created, err := service.Create(ctx, "", "Linen shirt", 50, nil)

	assert.ErrorIs(t, err, ErrInvalidSeller)
	assert.Nil(t, created)
	assert.Empty(t, eventStore.AppendCalls)
}

func TestService_Create_EmptyTitle(t *testing.T) {
	service, eventStore := newTestListingService()
	ctx := context.Background()

	created, err := service.Create(ctx, "seller-9", "", 50, nil)

	assert.ErrorIs(t, err, ErrInvalidTitle)
	assert.Nil(t, created)
	assert.Empty(t, eventStore.AppendCalls)
}

func TestService_Create_NonPositivePrice(t *testing.T) {
	service, _ := newTestListingService()
	ctx := context.Background()

	for _, price := range []float64{0, -10} {
		created, err := service.Create(ctx, "seller-9", "Linen shirt", price, nil)
		assert.ErrorIs(t, err, ErrInvalidBasePrice)
		assert.Nil(t, created)
	}
}

// ============================================
// Update / Delist Tests
// ============================================

func TestService_Update_Success(t *testing.T) {
	service, eventStore := newTestListingService()
	ctx := context.Background()

	listingID := "lst-123"
	require.NoError(t, eventStore.AddEvent(listingID, AggregateType, EventListingCreated, ListingCreated{ListingID: listingID}))

	err := service.Update(ctx, listingID, "Updated title", 60, nil)

	require.NoError(t, err)
	require.Len(t, eventStore.AppendCalls, 1)
	assert.Equal(t, EventListingUpdated, eventStore.AppendCalls[0].EventType)

	data := eventStore.AppendCalls[0].Data.(ListingUpdated)
	assert.Equal(t, "Updated title", data.Title)
	assert.Equal(t, 60.0, data.BasePrice)
}

func TestService_Update_NotFound(t *testing.T) {
	service, _ := newTestListingService()
	ctx := context.Background()

	err := service.Update(ctx, "missing", "Title", 60, nil)

	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestService_Delist_Success(t *testing.T) {
	service, eventStore := newTestListingService()
	ctx := context.Background()

	listingID := "lst-123"
	require.NoError(t, eventStore.AddEvent(listingID, AggregateType, EventListingCreated, ListingCreated{ListingID: listingID}))

	err := service.Delist(ctx, listingID)

	require.NoError(t, err)
	require.Len(t, eventStore.AppendCalls, 1)
	assert.Equal(t, EventListingDelisted, eventStore.AppendCalls[0].EventType)
}

func TestService_Delist_NotFound(t *testing.T) {
	service, _ := newTestListingService()
	ctx := context.Background()

	assert.ErrorIs(t, service.Delist(ctx, "missing"), ErrListingNotFound)
}

// ============================================
// Conversion Tests
// ============================================

func TestListing_Product(t *testing.T) {
	l := &Listing{
		ID:        "lst-1",
		Title:     "Linen shirt",
		BasePrice: 50,
		Variants:  []display.VariantRecord{{Price: display.Decimal{Value: 45, Valid: true}}},
	}

	p := l.Product()

	assert.Equal(t, "lst-1", p.ID)
	assert.Equal(t, "Linen shirt", p.Title)
	assert.Equal(t, 50.0, p.BasePrice)
	assert.Len(t, p.Variants, 1)
}
