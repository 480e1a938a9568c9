package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/electromove/ev-admin-api/internal/adapters/evapi"
)

// InventoryHandlers proxies dealer stock operations to the upstream API.
type InventoryHandlers struct {
	Client *evapi.Client
}

// List handles GET /api/inventory with filter query params.
func (h *InventoryHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := evapi.InventoryFilters{
		VIN:              q.Get("vin"),
		SerialNumber:     q.Get("serialNumber"),
		VehicleVersionID: queryInt(r, "vehicleVersionId"),
		Location:         q.Get("location"),
		Status:           q.Get("status"),
		ModelYear:        queryInt(r, "modelYear"),
		EntryDateFrom:    q.Get("entryDateFrom"),
		EntryDateTo:      q.Get("entryDateTo"),
		SupplierName:     q.Get("supplierName"),
		PageSize:         queryInt(r, "pageSize"),
		PageNumber:       queryInt(r, "page"),
	}
	if v, err := strconv.Atoi(q.Get("minMileage")); err == nil {
		filters.MinMileage = &v
	}
	if v, err := strconv.Atoi(q.Get("maxMileage")); err == nil {
		filters.MaxMileage = &v
	}
	if v, err := strconv.ParseBool(q.Get("hasExited")); err == nil {
		filters.HasExited = &v
	}

	page, err := h.Client.GetInventoryItems(r.Context(), filters)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, page)
}

// Get handles GET /api/inventory/{id}.
func (h *InventoryHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	item, err := h.Client.GetInventoryItem(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

// GetByVIN handles GET /api/inventory/by-vin?vin=...
func (h *InventoryHandlers) GetByVIN(w http.ResponseWriter, r *http.Request) {
	vin := r.URL.Query().Get("vin")
	if vin == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "validation",
			Err:     errors.New("vin is required"),
		})
		return
	}

	item, err := h.Client.GetInventoryItemByVIN(r.Context(), vin)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

// Create handles POST /api/inventory.
func (h *InventoryHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var payload evapi.InventoryItemRequest
	if !DecodeJSON(w, r, &payload) {
		return
	}

	item, err := h.Client.CreateInventoryItem(r.Context(), payload)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, item)
}

// Update handles PUT /api/inventory/{id}.
func (h *InventoryHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var payload evapi.InventoryItemUpdate
	if !DecodeJSON(w, r, &payload) {
		return
	}
	payload.ID = id

	item, err := h.Client.UpdateInventoryItem(r.Context(), payload)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/inventory/{id}.
func (h *InventoryHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.Client.DeleteInventoryItem(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Movements handles GET /api/inventory/{id}/movements.
func (h *InventoryHandlers) Movements(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	movements, err := h.Client.GetInventoryMovements(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, movements)
}

// AddMovement handles POST /api/inventory/{id}/movements.
func (h *InventoryHandlers) AddMovement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var payload evapi.InventoryMovementRequest
	if !DecodeJSON(w, r, &payload) {
		return
	}
	payload.InventoryItemID = id

	movement, err := h.Client.AddInventoryMovement(r.Context(), payload)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, movement)
}

type statusPayload struct {
	Status string `json:"status"`
}

// ChangeStatus handles PUT /api/inventory/{id}/status.
func (h *InventoryHandlers) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var payload statusPayload
	if !DecodeJSON(w, r, &payload) {
		return
	}

	if err := h.Client.ChangeInventoryStatus(r.Context(), id, payload.Status); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type locationPayload struct {
	Location string `json:"location"`
}

// ChangeLocation handles PUT /api/inventory/{id}/location.
func (h *InventoryHandlers) ChangeLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var payload locationPayload
	if !DecodeJSON(w, r, &payload) {
		return
	}

	if err := h.Client.ChangeInventoryLocation(r.Context(), id, payload.Location); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type mileagePayload struct {
	Mileage int `json:"mileage"`
}

// UpdateMileage handles PUT /api/inventory/{id}/mileage.
func (h *InventoryHandlers) UpdateMileage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var payload mileagePayload
	if !DecodeJSON(w, r, &payload) {
		return
	}

	if err := h.Client.UpdateInventoryMileage(r.Context(), id, payload.Mileage); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
