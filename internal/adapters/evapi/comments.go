package evapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// VehicleComment is a staff note attached to a model family.
type VehicleComment struct {
	ID            int    `json:"id"`
	BaseVehicleID int    `json:"baseVehicleId"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}

// VehicleCommentRequest creates a comment.
type VehicleCommentRequest struct {
	BaseVehicleID int    `json:"baseVehicleId"`
	Title         string `json:"title"`
	Description   string `json:"description"`
}

// GetVehicleComments lists the comments on one model family. A missing
// data field reads as an empty list.
func (c *Client) GetVehicleComments(ctx context.Context, vehicleID int) ([]VehicleComment, error) {
	q := url.Values{}
	q.Set("VehicleId", strconv.Itoa(vehicleID))

	req, err := c.newRequest(ctx, http.MethodGet, "/VehicleComment/GetVehicleComments", q, nil)
	if err != nil {
		return nil, err
	}

	var env envelope[[]VehicleComment]
	if err := c.do(req, &env); err != nil {
		return nil, fmt.Errorf("list comments for vehicle %d: %w", vehicleID, err)
	}
	if env.Data == nil {
		return []VehicleComment{}, nil
	}
	return env.Data, nil
}

// AddComment creates a comment on a model family.
func (c *Client) AddComment(ctx context.Context, comment VehicleCommentRequest) (VehicleComment, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/VehicleComment/AddComment", nil, comment)
	if err != nil {
		return VehicleComment{}, err
	}

	var created VehicleComment
	if err := c.do(req, &created); err != nil {
		return VehicleComment{}, fmt.Errorf("add comment: %w", err)
	}
	return created, nil
}

// UpdateComment edits a comment's title and description.
func (c *Client) UpdateComment(ctx context.Context, id int, title, description string) (VehicleComment, error) {
	body := struct {
		CommentID   int    `json:"commentId"`
		Title       string `json:"title"`
		Description string `json:"description"`
	}{CommentID: id, Title: title, Description: description}

	req, err := c.newRequest(ctx, http.MethodPut, "/VehicleComment/UpdateComment", nil, body)
	if err != nil {
		return VehicleComment{}, err
	}

	var updated VehicleComment
	if err := c.do(req, &updated); err != nil {
		return VehicleComment{}, fmt.Errorf("update comment %d: %w", id, err)
	}
	return updated, nil
}

// DeleteComment removes a comment.
func (c *Client) DeleteComment(ctx context.Context, id int) error {
	q := url.Values{}
	q.Set("id", strconv.Itoa(id))

	req, err := c.newRequest(ctx, http.MethodDelete, "/VehicleComment/DeleteComment", q, nil)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}
	return nil
}
