package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/relovemarket/catalog-display/internal/display"
	"github.com/relovemarket/catalog-display/internal/domain/listing"
	"github.com/relovemarket/catalog-display/internal/query"
)

type Handlers struct {
	listingSvc   *listing.Service
	queryHandler *query.Handler
	engine       *display.Engine
	resolver     *display.Resolver
}

func NewHandlers(listingSvc *listing.Service, queryHandler *query.Handler, engine *display.Engine, resolver *display.Resolver) *Handlers {
	if resolver == nil {
		resolver = display.NewResolver(nil)
	}
	return &Handlers{
		listingSvc:   listingSvc,
		queryHandler: queryHandler,
		engine:       engine,
		resolver:     resolver,
	}
}

// Listing Handlers

type listingRequest struct {
	SellerID  string                  `json:"seller_id"`
	Title     string                  `json:"title"`
	BasePrice float64                 `json:"product_price"`
	Variants  []display.VariantRecord `json:"product_variant"`
}

func (h *Handlers) CreateListing(w http.ResponseWriter, r *http.Request) {
	var req listingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.listingSvc.Create(r.Context(), req.SellerID, req.Title, req.BasePrice, req.Variants)
	if err != nil {
		http.Error(w, err.Error(), statusForListingError(err))
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpdateListing(w http.ResponseWriter, r *http.Request) {
	id := extractPathParam(r.URL.Path, "/listings/")

	var req listingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.listingSvc.Update(r.Context(), id, req.Title, req.BasePrice, req.Variants); err != nil {
		http.Error(w, err.Error(), statusForListingError(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Listing updated"})
}

func (h *Handlers) DelistListing(w http.ResponseWriter, r *http.Request) {
	id := extractPathParam(r.URL.Path, "/listings/")

	if err := h.listingSvc.Delist(r.Context(), id); err != nil {
		http.Error(w, err.Error(), statusForListingError(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Listing delisted"})
}

// Card Handlers

func (h *Handlers) GetCards(w http.ResponseWriter, r *http.Request) {
	if sellerID := r.URL.Query().Get("seller_id"); sellerID != "" {
		respondJSON(w, http.StatusOK, h.queryHandler.ListCardsBySeller(r.Context(), sellerID))
		return
	}
	respondJSON(w, http.StatusOK, h.queryHandler.ListCards(r.Context()))
}

func (h *Handlers) GetCard(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSuffix(extractPathParam(r.URL.Path, "/products/"), "/card")
	card, ok := h.queryHandler.GetCard(r.Context(), id)
	if !ok {
		http.Error(w, "Card not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, card)
}

// Display Summary Handlers

// ComputeSummary computes a display summary for the posted product without
// touching any store. The storefront uses this for previews while a seller
// is still editing a draft listing.
func (h *Handlers) ComputeSummary(w http.ResponseWriter, r *http.Request) {
	var product display.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusOK, h.engine.Summarize(product))
}

// GetSwatch resolves a free-text color label to a hex swatch color.
func (h *Handlers) GetSwatch(w http.ResponseWriter, r *http.Request) {
	label := r.URL.Query().Get("label")
	respondJSON(w, http.StatusOK, map[string]string{
		"label": label,
		"hex":   h.resolver.ResolveHex(label),
	})
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func extractPathParam(path, prefix string) string {
	return strings.TrimPrefix(path, prefix)
}

func statusForListingError(err error) int {
	switch {
	case errors.Is(err, listing.ErrListingNotFound):
		return http.StatusNotFound
	case errors.Is(err, listing.ErrInvalidTitle),
		errors.Is(err, listing.ErrInvalidSeller),
		errors.Is(err, listing.ErrInvalidBasePrice):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
