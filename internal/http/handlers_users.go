package httpx

import (
	"net/http"
	"strconv"

	"github.com/electromove/ev-admin-api/internal/adapters/evapi"
)

// UserHandlers proxies user administration operations to the upstream API.
type UserHandlers struct {
	Client *evapi.Client
}

// List handles GET /api/users with filter query params.
func (h *UserHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := evapi.UserProfileFilters{
		Name:       q.Get("name"),
		Email:      q.Get("email"),
		Role:       q.Get("role"),
		PageSize:   queryInt(r, "pageSize"),
		PageNumber: queryInt(r, "page"),
	}
	if v, err := strconv.Atoi(q.Get("accountStatus")); err == nil {
		filters.AccountStatus = &v
	}

	page, err := h.Client.GetUserProfiles(r.Context(), filters)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, page)
}

// Get handles GET /api/users/{id}.
func (h *UserHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	profile, err := h.Client.GetUserProfile(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, profile)
}

// Register handles POST /api/users.
func (h *UserHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var payload evapi.UserRegistration
	if !DecodeJSON(w, r, &payload) {
		return
	}

	profile, err := h.Client.RegisterUser(r.Context(), payload)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, profile)
}

// Update handles PUT /api/users/{id}.
func (h *UserHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var payload evapi.UserUpdate
	if !DecodeJSON(w, r, &payload) {
		return
	}

	profile, err := h.Client.UpdateUserAccount(r.Context(), id, payload)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, profile)
}

// Delete handles DELETE /api/users/{id}.
func (h *UserHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.Client.DeleteUserAccount(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
