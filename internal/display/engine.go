package display

import "log"

// Summary is the complete display projection for one product card: swatch
// color, representative size, formatted price, and badge counts.
type Summary struct {
	ColorHex     string       `json:"color_hex"`
	ColorLabel   *string      `json:"color_label,omitempty"`
	Size         *string      `json:"size,omitempty"`
	Price        DisplayPrice `json:"price_display"`
	VariantCount int          `json:"variant_count"`
	OptionCount  int          `json:"option_count"`
}

// Engine composes the color resolver, variant extractor, and price formatter
// into a single per-product computation. Pure and stateless: safe to call
// concurrently across products.
type Engine struct {
	resolver  *Resolver
	extractor *Extractor
	formatter Formatter
}

// NewEngine wires an Engine from its parts. Pass nil/zero values to get the
// defaults (DefaultPalette, standard logger, "RM").
func NewEngine(resolver *Resolver, extractor *Extractor, formatter Formatter) *Engine {
	if resolver == nil {
		resolver = NewResolver(nil)
	}
	if extractor == nil {
		extractor = NewExtractor(nil)
	}
	if formatter == (Formatter{}) {
		formatter = NewFormatter("")
	}
	return &Engine{resolver: resolver, extractor: extractor, formatter: formatter}
}

// NewDefaultEngine returns an Engine with the default palette and currency,
// logging extraction diagnostics through logger.
func NewDefaultEngine(logger *log.Logger) *Engine {
	return NewEngine(NewResolver(nil), NewExtractor(logger), NewFormatter(""))
}

// Summarize computes the display projection for one product. A product with
// no recognizable color gets the neutral swatch; nothing here can fail.
func (e *Engine) Summarize(p Product) Summary {
	variants := e.extractor.ExtractSummary(p)

	label := ""
	if variants.Color != nil {
		label = *variants.Color
	}

	return Summary{
		ColorHex:     e.resolver.Resolve(label).Hex(),
		ColorLabel:   variants.Color,
		Size:         variants.Size,
		Price:        e.formatter.Format(p.BasePrice, variants),
		VariantCount: variants.VariantCount,
		OptionCount:  len(variants.UniqueOptions),
	}
}
