package httpx

import (
	"net/http"
	"strconv"

	"github.com/electromove/ev-admin-api/internal/adapters/evapi"
)

// VehicleHandlers proxies vehicle catalog operations to the upstream API.
type VehicleHandlers struct {
	Client *evapi.Client
}

// List handles GET /api/vehicles. A brandId query narrows the listing to
// one brand.
func (h *VehicleHandlers) List(w http.ResponseWriter, r *http.Request) {
	if brandID := queryInt(r, "brandId"); brandID > 0 {
		vehicles, err := h.Client.GetBaseVehiclesByBrand(r.Context(), brandID)
		if err != nil {
			WriteAppError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, vehicles)
		return
	}

	vehicles, err := h.Client.GetBaseVehicles(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, vehicles)
}

// Get handles GET /api/vehicles/{id}.
func (h *VehicleHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	vehicle, err := h.Client.GetBaseVehicle(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, vehicle)
}

// Favorites handles GET /api/vehicles/favorites.
func (h *VehicleHandlers) Favorites(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Client.GetFavoriteVehicles(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, vehicles)
}

// Create handles POST /api/vehicles.
func (h *VehicleHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var payload evapi.BaseVehicleRequest
	if !DecodeJSON(w, r, &payload) {
		return
	}

	vehicle, err := h.Client.AddBaseVehicle(r.Context(), payload)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, vehicle)
}

// Update handles PUT /api/vehicles/{id}.
func (h *VehicleHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var payload evapi.BaseVehicleRequest
	if !DecodeJSON(w, r, &payload) {
		return
	}

	vehicle, err := h.Client.UpdateBaseVehicle(r.Context(), id, payload)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, vehicle)
}

// Delete handles DELETE /api/vehicles/{id}.
func (h *VehicleHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.Client.DeleteBaseVehicle(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Versions handles GET /api/vehicles/versions with filter query params.
func (h *VehicleHandlers) Versions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := evapi.VehicleFilters{
		VersionName:   q.Get("versionName"),
		BaseVehicleID: queryInt(r, "baseVehicleId"),
		BrandID:       queryInt(r, "brandId"),
		MinRange:      queryInt(r, "minRange"),
		MaxRange:      queryInt(r, "maxRange"),
		MinSpeed:      queryInt(r, "minSpeed"),
		PageSize:      queryInt(r, "pageSize"),
		PageNumber:    queryInt(r, "page"),
	}
	if v, err := strconv.ParseFloat(q.Get("minPrice"), 64); err == nil {
		filters.MinPrice = v
	}
	if v, err := strconv.ParseFloat(q.Get("maxPrice"), 64); err == nil {
		filters.MaxPrice = v
	}

	page, err := h.Client.GetVehicleVersions(r.Context(), filters)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, page)
}

// Version handles GET /api/vehicles/versions/{id}.
func (h *VehicleHandlers) Version(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	version, err := h.Client.GetVehicleVersion(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, version)
}
