package evapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ColorType is the paint finish of a color chart entry. The upstream
// emits it as either a numeric enum or its name; numeric values keep
// their decimal form.
type ColorType string

func (t *ColorType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = ColorType(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("color type: %w", err)
	}
	*t = ColorType(n.String())
	return nil
}

// VehicleColor is a paint option in a brand's color chart.
type VehicleColor struct {
	ID                    int       `json:"id"`
	ColorCode             string    `json:"colorCode"`
	ColorName             string    `json:"colorName"`
	BrandID               int       `json:"brandId"`
	MinYear               int       `json:"minYear,omitempty"`
	MaxYear               int       `json:"maxYear,omitempty"`
	HexCode               string    `json:"hexCode,omitempty"`
	Manufacturer          string    `json:"manufacturer,omitempty"`
	MainColorGroup        string    `json:"mainColorGroup,omitempty"`
	MainColorGroupHexCode string    `json:"mainColorGroupHexCode,omitempty"`
	ColorType             ColorType `json:"colorType,omitempty"`
}

// VehicleColorRequest creates or updates a color chart entry.
type VehicleColorRequest struct {
	ColorCode             string    `json:"colorCode"`
	ColorName             string    `json:"colorName"`
	BrandID               int       `json:"brandId"`
	MinYear               int       `json:"minYear,omitempty"`
	MaxYear               int       `json:"maxYear,omitempty"`
	HexCode               string    `json:"hexCode,omitempty"`
	Manufacturer          string    `json:"manufacturer,omitempty"`
	MainColorGroup        string    `json:"mainColorGroup,omitempty"`
	MainColorGroupHexCode string    `json:"mainColorGroupHexCode,omitempty"`
	ColorType             ColorType `json:"colorType,omitempty"`
}

// ColorFilters narrows a color chart listing.
type ColorFilters struct {
	BrandID   int
	ColorCode string
	ColorName string
	MinYear   int
}

// GetColors lists color chart entries matching the filters.
func (c *Client) GetColors(ctx context.Context, filters ColorFilters) ([]VehicleColor, error) {
	q := url.Values{}
	if filters.BrandID > 0 {
		q.Set("BrandId", strconv.Itoa(filters.BrandID))
	}
	if filters.ColorCode != "" {
		q.Set("ColorCode", filters.ColorCode)
	}
	if filters.ColorName != "" {
		q.Set("ColorName", filters.ColorName)
	}
	if filters.MinYear > 0 {
		q.Set("MinYear", strconv.Itoa(filters.MinYear))
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/VehicleColor/GetColors", q, nil)
	if err != nil {
		return nil, err
	}

	var colors []VehicleColor
	if err := c.do(req, &colors); err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}
	return colors, nil
}

// AddColor creates a color chart entry.
func (c *Client) AddColor(ctx context.Context, color VehicleColorRequest) (VehicleColor, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/VehicleColor/AddColor", nil, color)
	if err != nil {
		return VehicleColor{}, err
	}

	var created VehicleColor
	if err := c.do(req, &created); err != nil {
		return VehicleColor{}, fmt.Errorf("add color: %w", err)
	}
	return created, nil
}

// UpdateColor updates a color chart entry in place. The upstream takes
// the id inside the body rather than in the path.
func (c *Client) UpdateColor(ctx context.Context, id int, color VehicleColorRequest) (VehicleColor, error) {
	body := struct {
		ID int `json:"id"`
		VehicleColorRequest
	}{ID: id, VehicleColorRequest: color}

	req, err := c.newRequest(ctx, http.MethodPut, "/VehicleColor/UpdateColor", nil, body)
	if err != nil {
		return VehicleColor{}, err
	}

	var updated VehicleColor
	if err := c.do(req, &updated); err != nil {
		return VehicleColor{}, fmt.Errorf("update color %d: %w", id, err)
	}
	return updated, nil
}

// DeleteColor removes a color chart entry.
func (c *Client) DeleteColor(ctx context.Context, id int) error {
	q := url.Values{}
	q.Set("id", strconv.Itoa(id))

	req, err := c.newRequest(ctx, http.MethodDelete, "/VehicleColor/DeleteColor", q, nil)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("delete color %d: %w", id, err)
	}
	return nil
}

// AssociateColorToVehicle makes a color available on a vehicle version.
func (c *Client) AssociateColorToVehicle(ctx context.Context, colorID, vehicleVersionID int) error {
	body := struct {
		ColorID          int `json:"colorId"`
		VehicleVersionID int `json:"vehicleVersionId"`
	}{ColorID: colorID, VehicleVersionID: vehicleVersionID}

	req, err := c.newRequest(ctx, http.MethodPost, "/VehicleColor/AssociateColorToVehicle", nil, body)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("associate color %d to version %d: %w", colorID, vehicleVersionID, err)
	}
	return nil
}
