package evapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// AdditionalEquipment is an optional extra offered on a vehicle version.
type AdditionalEquipment struct {
	ID                     int     `json:"id"`
	EquipmentType          string  `json:"equipmentType"`
	EquipmentDescription   string  `json:"equipmentDescription"`
	EquipmentPrice         float64 `json:"equipmentPrice"`
	EquipmentPriceCurrency string  `json:"equipmentPriceCurrency"`
}

// AdditionalEquipmentRequest creates or updates an equipment entry.
type AdditionalEquipmentRequest struct {
	VehicleVersionID       int     `json:"vehicleVersionId,omitempty"`
	EquipmentType          string  `json:"equipmentType"`
	EquipmentDescription   string  `json:"equipmentDescription"`
	EquipmentPrice         float64 `json:"equipmentPrice"`
	EquipmentPriceCurrency string  `json:"equipmentPriceCurrency"`
}

// GetAdditionalEquipments lists every equipment entry.
func (c *Client) GetAdditionalEquipments(ctx context.Context) ([]AdditionalEquipment, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/AdditionalEquipments", nil, nil)
	if err != nil {
		return nil, err
	}

	var equipments []AdditionalEquipment
	if err := c.do(req, &equipments); err != nil {
		return nil, fmt.Errorf("list additional equipments: %w", err)
	}
	return equipments, nil
}

// GetAdditionalEquipmentsByVersion lists the equipment fitted to one
// vehicle version.
func (c *Client) GetAdditionalEquipmentsByVersion(ctx context.Context, versionID int) ([]AdditionalEquipment, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/AdditionalEquipments/ByVersion/"+strconv.Itoa(versionID), nil, nil)
	if err != nil {
		return nil, err
	}

	var equipments []AdditionalEquipment
	if err := c.do(req, &equipments); err != nil {
		return nil, fmt.Errorf("list additional equipments for version %d: %w", versionID, err)
	}
	return equipments, nil
}

// GetAdditionalEquipment returns a single equipment entry by id.
func (c *Client) GetAdditionalEquipment(ctx context.Context, id int) (AdditionalEquipment, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/AdditionalEquipments/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return AdditionalEquipment{}, err
	}

	var equipment AdditionalEquipment
	if err := c.do(req, &equipment); err != nil {
		return AdditionalEquipment{}, fmt.Errorf("get additional equipment %d: %w", id, err)
	}
	return equipment, nil
}

// AddAdditionalEquipment creates an equipment entry.
func (c *Client) AddAdditionalEquipment(ctx context.Context, equipment AdditionalEquipmentRequest) (AdditionalEquipment, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/AdditionalEquipments", nil, equipment)
	if err != nil {
		return AdditionalEquipment{}, err
	}

	var created AdditionalEquipment
	if err := c.do(req, &created); err != nil {
		return AdditionalEquipment{}, fmt.Errorf("add additional equipment: %w", err)
	}
	return created, nil
}

// UpdateAdditionalEquipment updates an equipment entry in place.
func (c *Client) UpdateAdditionalEquipment(ctx context.Context, id int, equipment AdditionalEquipmentRequest) (AdditionalEquipment, error) {
	q := url.Values{}
	q.Set("id", strconv.Itoa(id))

	req, err := c.newRequest(ctx, http.MethodPut, "/AdditionalEquipments", q, equipment)
	if err != nil {
		return AdditionalEquipment{}, err
	}

	var updated AdditionalEquipment
	if err := c.do(req, &updated); err != nil {
		return AdditionalEquipment{}, fmt.Errorf("update additional equipment %d: %w", id, err)
	}
	return updated, nil
}

// DeleteAdditionalEquipment removes an equipment entry.
func (c *Client) DeleteAdditionalEquipment(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/AdditionalEquipments/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("delete additional equipment %d: %w", id, err)
	}
	return nil
}
