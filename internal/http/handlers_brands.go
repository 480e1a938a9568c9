package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/electromove/ev-admin-api/internal/adapters/evapi"
)

// BrandHandlers proxies brand directory operations to the upstream API
// through the gated client.
type BrandHandlers struct {
	Client *evapi.Client
}

// List handles GET /api/brands.
func (h *BrandHandlers) List(w http.ResponseWriter, r *http.Request) {
	pageNumber := queryInt(r, "page")
	pageSize := queryInt(r, "pageSize")

	page, err := h.Client.GetBrands(r.Context(), pageNumber, pageSize)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, page)
}

// Get handles GET /api/brands/{id}.
func (h *BrandHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	brand, err := h.Client.GetBrand(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, brand)
}

// Create handles POST /api/brands.
func (h *BrandHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var payload evapi.BrandRequest
	if !DecodeJSON(w, r, &payload) {
		return
	}

	brand, err := h.Client.AddBrand(r.Context(), payload)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, brand)
}

// Update handles PUT /api/brands/{id}.
func (h *BrandHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var payload evapi.BrandRequest
	if !DecodeJSON(w, r, &payload) {
		return
	}

	brand, err := h.Client.UpdateBrand(r.Context(), id, payload)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, brand)
}

// Delete handles DELETE /api/brands/{id}.
func (h *BrandHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.Client.DeleteBrand(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Addresses handles GET /api/brands/{id}/addresses.
func (h *BrandHandlers) Addresses(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	addrs, err := h.Client.GetBrandAddresses(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, addrs)
}

// AddAddress handles POST /api/brands/{id}/addresses.
func (h *BrandHandlers) AddAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var payload evapi.BrandAddressRequest
	if !DecodeJSON(w, r, &payload) {
		return
	}
	payload.BrandID = id

	addr, err := h.Client.AddBrandAddress(r.Context(), payload)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, addr)
}

// pathInt parses an integer path value, writing a 400 on failure.
func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(r.PathValue(name))
	if err != nil || v <= 0 {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "validation",
			Err:     errors.New("invalid " + name),
		})
		return 0, false
	}
	return v, true
}

// queryInt parses an optional integer query parameter, defaulting to 0.
func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}
