package httpx

import (
	"net/http"

	"github.com/electromove/ev-admin-api/internal/adapters/evapi"
)

// ColorHandlers proxies color chart operations to the upstream API.
type ColorHandlers struct {
	Client *evapi.Client
}

// List handles GET /api/colors with filter query params.
func (h *ColorHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := evapi.ColorFilters{
		BrandID:   queryInt(r, "brandId"),
		ColorCode: q.Get("colorCode"),
		ColorName: q.Get("colorName"),
		MinYear:   queryInt(r, "minYear"),
	}

	colors, err := h.Client.GetColors(r.Context(), filters)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, colors)
}

// Create handles POST /api/colors.
func (h *ColorHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var payload evapi.VehicleColorRequest
	if !DecodeJSON(w, r, &payload) {
		return
	}

	color, err := h.Client.AddColor(r.Context(), payload)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, color)
}

// Update handles PUT /api/colors/{id}.
func (h *ColorHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var payload evapi.VehicleColorRequest
	if !DecodeJSON(w, r, &payload) {
		return
	}

	color, err := h.Client.UpdateColor(r.Context(), id, payload)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, color)
}

// Delete handles DELETE /api/colors/{id}.
func (h *ColorHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.Client.DeleteColor(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type associateColorPayload struct {
	VehicleVersionID int `json:"vehicleVersionId"`
}

// Associate handles POST /api/colors/{id}/associate.
func (h *ColorHandlers) Associate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var payload associateColorPayload
	if !DecodeJSON(w, r, &payload) {
		return
	}

	if err := h.Client.AssociateColorToVehicle(r.Context(), id, payload.VehicleVersionID); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
