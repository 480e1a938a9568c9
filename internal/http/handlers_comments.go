package httpx

import (
	"errors"
	"net/http"

	"github.com/electromove/ev-admin-api/internal/adapters/evapi"
)

// CommentHandlers proxies vehicle comment operations to the upstream API.
type CommentHandlers struct {
	Client *evapi.Client
}

// List handles GET /api/comments?vehicleId=...
func (h *CommentHandlers) List(w http.ResponseWriter, r *http.Request) {
	vehicleID := queryInt(r, "vehicleId")
	if vehicleID <= 0 {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "validation",
			Err:     errors.New("vehicleId is required"),
		})
		return
	}

	comments, err := h.Client.GetVehicleComments(r.Context(), vehicleID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, comments)
}

// Create handles POST /api/comments.
func (h *CommentHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var payload evapi.VehicleCommentRequest
	if !DecodeJSON(w, r, &payload) {
		return
	}

	comment, err := h.Client.AddComment(r.Context(), payload)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, comment)
}

type commentUpdatePayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Update handles PUT /api/comments/{id}.
func (h *CommentHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var payload commentUpdatePayload
	if !DecodeJSON(w, r, &payload) {
		return
	}

	comment, err := h.Client.UpdateComment(r.Context(), id, payload.Title, payload.Description)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, comment)
}

// Delete handles DELETE /api/comments/{id}.
func (h *CommentHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.Client.DeleteComment(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
