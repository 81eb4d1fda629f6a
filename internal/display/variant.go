package display

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
)

// Decimal is a JSON value that may arrive as a number, a numeric string, or
// garbage. Unmarshalling never fails; non-numeric input just leaves the value
// unset. Legacy listing rows are inconsistent about how they encode prices.
type Decimal struct {
	Value float64
	Valid bool
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	d.Value = v
	d.Valid = true
	return nil
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.Value)
}

// VariantRecord is one purchasable SKU of a product. Combination holds the
// attribute map ({"Colors": "Red", "Size": "M"}) either as a JSON object or,
// in older rows, as a JSON string containing an encoded object. VariantKey is
// the legacy single-attribute field from before combinations existed.
type VariantRecord struct {
	Price       Decimal         `json:"price"`
	Combination json.RawMessage `json:"variant_combination,omitempty"`
	VariantKey  string          `json:"variant_key,omitempty"`
}

// Product is the raw catalog input for display derivation. Only the fields
// the display engine reads are modelled; variants may be absent entirely.
type Product struct {
	ID        string          `json:"id"`
	Title     string          `json:"title,omitempty"`
	BasePrice float64         `json:"product_price"`
	Variants  []VariantRecord `json:"product_variant,omitempty"`
}

// VariantSummary is the normalized view of a product's variant list, computed
// fresh per product and never persisted as-is. Nil pointers mean "not found",
// which is a valid state, not an error.
type VariantSummary struct {
	Color         *string
	Size          *string
	HasVariants   bool
	MinPrice      *float64
	MaxPrice      *float64
	VariantCount  int
	UniqueOptions map[string]struct{}
}

// reSizeShaped guards the legacy variant_key fallback: keys that look like a
// size (all digits, up to four of x/s/m/l, or "<n> cm"/"<n> in") must not be
// reported as colors. Known gap: a color literally named "42" is
// misclassified. Keep the shape as-is; changing it needs product-owner input.
var reSizeShaped = regexp.MustCompile(`(?i)^(?:\d+|[xsml]{1,4}|\d+(?:\.\d+)?\s*(?:cm|in))$`)

// Extractor derives VariantSummary values from raw products. Malformed
// combination payloads are logged through logger and skipped per variant;
// extraction itself never fails.
type Extractor struct {
	logger *log.Logger
}

// NewExtractor returns an Extractor. A nil logger falls back to the standard
// logger.
func NewExtractor(logger *log.Logger) *Extractor {
	if logger == nil {
		logger = log.Default()
	}
	return &Extractor{logger: logger}
}

// ExtractSummary scans a product's variants and returns the normalized
// summary. It is a total function: per-variant decode failures cost that
// variant its combination fields only, never the whole extraction.
//
// Color and size are first-found-wins in list order. HasVariants is
// price-driven: a variant with a combination but no parseable price does not
// count.
func (e *Extractor) ExtractSummary(p Product) VariantSummary {
	summary := VariantSummary{
		VariantCount:  len(p.Variants),
		UniqueOptions: make(map[string]struct{}),
	}
	if len(p.Variants) == 0 {
		return summary
	}

	var prices []float64
	for i, v := range p.Variants {
		if v.Price.Valid {
			prices = append(prices, v.Price.Value)
		}

		combo, err := decodeCombination(v.Combination)
		if err != nil {
			e.logger.Printf("[Display] product %s variant %d: skipping combination: %v", p.ID, i, err)
			continue
		}
		if combo == nil {
			continue
		}

		if color, ok := lookupKey(combo, "Colors", "color"); ok {
			if summary.Color == nil {
				summary.Color = &color
			}
			summary.UniqueOptions[color] = struct{}{}
		}
		if size, ok := lookupKey(combo, "Size", "size"); ok && summary.Size == nil {
			summary.Size = &size
		}
	}

	// Older rows carry a single undifferentiated variant_key instead of a
	// combination. Treat it as a color candidate unless it is size-shaped.
	if summary.Color == nil {
		if key := strings.TrimSpace(p.Variants[0].VariantKey); key != "" && !reSizeShaped.MatchString(key) {
			summary.Color = &key
		}
	}

	if len(prices) > 0 {
		min, max := prices[0], prices[0]
		for _, price := range prices[1:] {
			if price < min {
				min = price
			}
			if price > max {
				max = price
			}
		}
		summary.MinPrice = &min
		summary.MaxPrice = &max
		summary.HasVariants = true
	}

	return summary
}

// decodeCombination parses a variant_combination payload. The payload is
// either a JSON object or a JSON string wrapping an encoded object
// (double-encoded rows predate the structured column). Returns nil for an
// absent payload.
func decodeCombination(raw json.RawMessage) (map[string]string, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}

	payload := []byte(trimmed)
	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(payload, &inner); err != nil {
			return nil, fmt.Errorf("unwrapping encoded combination: %w", err)
		}
		if strings.TrimSpace(inner) == "" {
			return nil, nil
		}
		payload = []byte(inner)
	}

	var fields map[string]any
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, fmt.Errorf("parsing combination: %w", err)
	}

	combo := make(map[string]string, len(fields))
	for k, v := range fields {
		switch value := v.(type) {
		case string:
			combo[k] = value
		case float64:
			combo[k] = strconv.FormatFloat(value, 'f', -1, 64)
		case bool:
			combo[k] = strconv.FormatBool(value)
		}
	}
	return combo, nil
}

// lookupKey returns the first present, non-blank value among the given keys.
func lookupKey(combo map[string]string, keys ...string) (string, bool) {
	for _, key := range keys {
		if value, ok := combo[key]; ok {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				return trimmed, true
			}
		}
	}
	return "", false
}
