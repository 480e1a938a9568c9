package httpx

import (
	"net/http"

	"github.com/electromove/ev-admin-api/internal/adapters/evapi"
)

// EquipmentHandlers proxies additional equipment operations to the
// upstream API.
type EquipmentHandlers struct {
	Client *evapi.Client
}

// List handles GET /api/equipment. A versionId query narrows the listing
// to one vehicle version.
func (h *EquipmentHandlers) List(w http.ResponseWriter, r *http.Request) {
	if versionID := queryInt(r, "versionId"); versionID > 0 {
		equipments, err := h.Client.GetAdditionalEquipmentsByVersion(r.Context(), versionID)
		if err != nil {
			WriteAppError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, equipments)
		return
	}

	equipments, err := h.Client.GetAdditionalEquipments(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, equipments)
}

// Get handles GET /api/equipment/{id}.
func (h *EquipmentHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	equipment, err := h.Client.GetAdditionalEquipment(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, equipment)
}

// Create handles POST /api/equipment.
func (h *EquipmentHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var payload evapi.AdditionalEquipmentRequest
	if !DecodeJSON(w, r, &payload) {
		return
	}

	equipment, err := h.Client.AddAdditionalEquipment(r.Context(), payload)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, equipment)
}

// Update handles PUT /api/equipment/{id}.
func (h *EquipmentHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var payload evapi.AdditionalEquipmentRequest
	if !DecodeJSON(w, r, &payload) {
		return
	}

	equipment, err := h.Client.UpdateAdditionalEquipment(r.Context(), id, payload)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, equipment)
}

// Delete handles DELETE /api/equipment/{id}.
func (h *EquipmentHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.Client.DeleteAdditionalEquipment(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
