package display

import (
	"encoding/json"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor() *Extractor {
	return NewExtractor(log.New(io.Discard, "", 0))
}

func floatPtr(v float64) *float64 { return &v }

func priced(v float64) Decimal { return Decimal{Value: v, Valid: true} }

// ============================================
// Empty Input Tests
// ============================================

func TestExtractor_NoVariants(t *testing.T) {
	e := newTestExtractor()

	summary := e.ExtractSummary(Product{ID: "p-1", BasePrice: 50})

	assert.False(t, summary.HasVariants)
	assert.Nil(t, summary.Color)
	assert.Nil(t, summary.Size)
	assert.Nil(t, summary.MinPrice)
	assert.Nil(t, summary.MaxPrice)
	assert.Equal(t, 0, summary.VariantCount)
	assert.Empty(t, summary.UniqueOptions)
}

func TestExtractor_EmptyVariantSlice(t *testing.T) {
	e := newTestExtractor()

	summary := e.ExtractSummary(Product{ID: "p-1", Variants: []VariantRecord{}})

	assert.False(t, summary.HasVariants)
	assert.Equal(t, 0, summary.VariantCount)
}

// ============================================
// Color / Size Detection Tests
// ============================================

func TestExtractor_ColorFirstFoundWins(t *testing.T) {
	e := newTestExtractor()

	summary := e.ExtractSummary(Product{
		ID: "p-1",
		Variants: []VariantRecord{
			{Price: priced(10), Combination: json.RawMessage(`{"Colors":"Red","Size":"M"}`)},
			{Price: priced(12), Combination: json.RawMessage(`{"Colors":"Blue","Size":"L"}`)},
		},
	})

	require.NotNil(t, summary.Color)
	assert.Equal(t, "Red", *summary.Color)
	require.NotNil(t, summary.Size)
	assert.Equal(t, "M", *summary.Size)
}

func TestExtractor_LowercaseCombinationKeys(t *testing.T) {
	e := newTestExtractor()

	summary := e.ExtractSummary(Product{
		ID: "p-1",
		Variants: []VariantRecord{
			{Price: priced(10), Combination: json.RawMessage(`{"color":"green","size":"40"}`)},
		},
	})

	require.NotNil(t, summary.Color)
	assert.Equal(t, "green", *summary.Color)
	require.NotNil(t, summary.Size)
	assert.Equal(t, "40", *summary.Size)
}

func TestExtractor_SizeFoundWithoutColor(t *testing.T) {
	e := newTestExtractor()

	summary := e.ExtractSummary(Product{
		ID: "p-1",
		Variants: []VariantRecord{
			{Price: priced(10), Combination: json.RawMessage(`{"Size":"XL"}`)},
		},
	})

	assert.Nil(t, summary.Color)
	require.NotNil(t, summary.Size)
	assert.Equal(t, "XL", *summary.Size)
}

func TestExtractor_UniqueOptionsDeduplicated(t *testing.T) {
	e := newTestExtractor()

	summary := e.ExtractSummary(Product{
		ID: "p-1",
		Variants: []VariantRecord{
			{Price: priced(10), Combination: json.RawMessage(`{"Colors":"Red"}`)},
			{Price: priced(11), Combination: json.RawMessage(`{"Colors":"Blue"}`)},
			{Price: priced(12), Combination: json.RawMessage(`{"Colors":"Red"}`)},
		},
	})

	assert.Len(t, summary.UniqueOptions, 2)
	assert.Contains(t, summary.UniqueOptions, "Red")
	assert.Contains(t, summary.UniqueOptions, "Blue")
}

// ============================================
// Legacy variant_key Fallback Tests
// ============================================

func TestExtractor_VariantKeyUsedAsColor(t *testing.T) {
	e := newTestExtractor()

	summary := e.ExtractSummary(Product{
		ID: "p-1",
		Variants: []VariantRecord{
			{Price: priced(10), VariantKey: "forest green"},
		},
	})

	require.NotNil(t, summary.Color)
	assert.Equal(t, "forest green", *summary.Color)
}

func TestExtractor_SizeShapedVariantKeyNotMisreadAsColor(t *testing.T) {
	e := newTestExtractor()

	for _, key := range []string{"XL", "xs", "SML", "42", "100 cm", "12.5in", "30 in"} {
		summary := e.ExtractSummary(Product{
			ID: "p-1",
			Variants: []VariantRecord{
				{Price: priced(10), VariantKey: key},
			},
		})
		assert.Nil(t, summary.Color, "key %q should be treated as a size", key)
	}
}

func TestExtractor_CombinationColorWinsOverVariantKey(t *testing.T) {
	e := newTestExtractor()

	summary := e.ExtractSummary(Product{
		ID: "p-1",
		Variants: []VariantRecord{
			{Price: priced(10), Combination: json.RawMessage(`{"Colors":"Red"}`), VariantKey: "blue"},
		},
	})

	require.NotNil(t, summary.Color)
	assert.Equal(t, "Red", *summary.Color)
}

// ============================================
// Price Aggregation Tests
// ============================================

func TestExtractor_MinMaxOverPrices(t *testing.T) {
	e := newTestExtractor()

	summary := e.ExtractSummary(Product{
		ID: "p-1",
		Variants: []VariantRecord{
			{Price: priced(60)},
			{Price: priced(40)},
			{Price: priced(50)},
		},
	})

	assert.True(t, summary.HasVariants)
	require.NotNil(t, summary.MinPrice)
	require.NotNil(t, summary.MaxPrice)
	assert.Equal(t, 40.0, *summary.MinPrice)
	assert.Equal(t, 60.0, *summary.MaxPrice)
	assert.Equal(t, 3, summary.VariantCount)
}

func TestExtractor_HasVariantsIsPriceDriven(t *testing.T) {
	e := newTestExtractor()

	// A combination without a parseable price contributes options but does
	// not flip HasVariants.
	summary := e.ExtractSummary(Product{
		ID: "p-1",
		Variants: []VariantRecord{
			{Combination: json.RawMessage(`{"Colors":"Red"}`)},
		},
	})

	assert.False(t, summary.HasVariants)
	assert.Nil(t, summary.MinPrice)
	require.NotNil(t, summary.Color)
	assert.Equal(t, 1, summary.VariantCount)
}

func TestExtractor_StringEncodedPriceParsed(t *testing.T) {
	var v VariantRecord
	require.NoError(t, json.Unmarshal([]byte(`{"price":"12.50"}`), &v))

	assert.True(t, v.Price.Valid)
	assert.Equal(t, 12.5, v.Price.Value)
}

func TestExtractor_GarbagePriceIgnored(t *testing.T) {
	var v VariantRecord
	require.NoError(t, json.Unmarshal([]byte(`{"price":"free!"}`), &v))

	assert.False(t, v.Price.Valid)
}

// ============================================
// Malformed Combination Tests
// ============================================

func TestExtractor_MalformedCombinationSkippedNotFatal(t *testing.T) {
	e := newTestExtractor()

	summary := e.ExtractSummary(Product{
		ID: "p-1",
		Variants: []VariantRecord{
			{Price: priced(10), Combination: json.RawMessage(`{not json`)},
			{Price: priced(20), Combination: json.RawMessage(`{"Colors":"Blue"}`)},
		},
	})

	// The broken variant still contributes its price.
	assert.True(t, summary.HasVariants)
	assert.Equal(t, 10.0, *summary.MinPrice)
	assert.Equal(t, 20.0, *summary.MaxPrice)
	require.NotNil(t, summary.Color)
	assert.Equal(t, "Blue", *summary.Color)
}

func TestExtractor_DoubleEncodedCombination(t *testing.T) {
	e := newTestExtractor()

	summary := e.ExtractSummary(Product{
		ID: "p-1",
		Variants: []VariantRecord{
			{Price: priced(10), Combination: json.RawMessage(`"{\"Colors\":\"Pink\",\"Size\":\"S\"}"`)},
		},
	})

	require.NotNil(t, summary.Color)
	assert.Equal(t, "Pink", *summary.Color)
	require.NotNil(t, summary.Size)
	assert.Equal(t, "S", *summary.Size)
}

func TestExtractor_NonStringCombinationValuesStringified(t *testing.T) {
	e := newTestExtractor()

	summary := e.ExtractSummary(Product{
		ID: "p-1",
		Variants: []VariantRecord{
			{Price: priced(10), Combination: json.RawMessage(`{"Size":38}`)},
		},
	})

	require.NotNil(t, summary.Size)
	assert.Equal(t, "38", *summary.Size)
}
