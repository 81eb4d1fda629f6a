package display

import (
	"fmt"
	"math"
)

// DefaultCurrencySymbol prefixes formatted prices unless the deployment
// overrides it.
const DefaultCurrencySymbol = "RM"

// DisplayPrice is the human-facing price for a product card. Original is set
// only when a strikethrough "was" price should be shown next to Main.
type DisplayPrice struct {
	Main     string   `json:"main"`
	Original *float64 `json:"original,omitempty"`
	IsRange  bool     `json:"is_range"`
}

// Formatter renders display prices with a configured currency symbol.
type Formatter struct {
	symbol string
}

// NewFormatter returns a Formatter. An empty symbol selects
// DefaultCurrencySymbol.
func NewFormatter(symbol string) Formatter {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	return Formatter{symbol: symbol}
}

// Format derives the display price from a product's base price and its
// variant summary:
//
//   - variants with differing prices -> "RM 40.00 - RM 60.00", IsRange set
//   - variants with one price -> that price, with Original = basePrice when
//     the base differs (strikethrough)
//   - no priced variants -> the base price alone
//
// Amounts are rounded half-up to two decimals. The upstream data never pins
// down behavior at exact half-cent boundaries, so half-up is the documented
// choice here.
func (f Formatter) Format(basePrice float64, summary VariantSummary) DisplayPrice {
	if summary.HasVariants && summary.MinPrice != nil && summary.MaxPrice != nil {
		min, max := *summary.MinPrice, *summary.MaxPrice
		if min != max {
			return DisplayPrice{
				Main:    fmt.Sprintf("%s - %s", f.amount(min), f.amount(max)),
				IsRange: true,
			}
		}

		price := DisplayPrice{Main: f.amount(min)}
		if basePrice != min {
			original := basePrice
			price.Original = &original
		}
		return price
	}

	return DisplayPrice{Main: f.amount(basePrice)}
}

// amount renders "<symbol> <value>" with exactly two decimals, half-up.
func (f Formatter) amount(v float64) string {
	return fmt.Sprintf("%s %.2f", f.symbol, roundHalfUp(v))
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
