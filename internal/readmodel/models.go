package readmodel

import "time"

// ProductCard is the precomputed display summary for one listing: everything
// a product card in the storefront grid needs, ready to render. Cards are
// recomputed in full on every listing event; they carry no state of their
// own.
type ProductCard struct {
	ProductID     string    `json:"product_id"`
	SellerID      string    `json:"seller_id"`
	Title         string    `json:"title"`
	ColorHex      string    `json:"color_hex"`
	ColorLabel    *string   `json:"color_label,omitempty"`
	Size          *string   `json:"size,omitempty"`
	PriceDisplay  string    `json:"price_display"`
	OriginalPrice *float64  `json:"original_price,omitempty"`
	IsRange       bool      `json:"is_range"`
	VariantCount  int       `json:"variant_count"`
	OptionCount   int       `json:"option_count"`
	UpdatedAt     time.Time `json:"updated_at"`
}
