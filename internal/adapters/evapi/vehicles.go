package evapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// GetBaseVehicles lists every model family in the catalog.
func (c *Client) GetBaseVehicles(ctx context.Context) ([]BaseVehicle, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/BaseVehicle", nil, nil)
	if err != nil {
		return nil, err
	}

	var vehicles []BaseVehicle
	if err := c.do(req, &vehicles); err != nil {
		return nil, fmt.Errorf("list base vehicles: %w", err)
	}
	return vehicles, nil
}

// GetBaseVehicle returns a single model family by id.
func (c *Client) GetBaseVehicle(ctx context.Context, id int) (BaseVehicle, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/BaseVehicle/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return BaseVehicle{}, err
	}

	var env envelope[BaseVehicle]
	if err := c.do(req, &env); err != nil {
		return BaseVehicle{}, fmt.Errorf("get base vehicle %d: %w", id, err)
	}
	return env.Data, nil
}

// GetBaseVehiclesByBrand lists the model families of one brand.
func (c *Client) GetBaseVehiclesByBrand(ctx context.Context, brandID int) ([]BaseVehicle, error) {
	q := url.Values{}
	q.Set("brandId", strconv.Itoa(brandID))

	req, err := c.newRequest(ctx, http.MethodGet, "/BaseVehicle/GetByBrand", q, nil)
	if err != nil {
		return nil, err
	}

	var vehicles []BaseVehicle
	if err := c.do(req, &vehicles); err != nil {
		return nil, fmt.Errorf("list base vehicles for brand %d: %w", brandID, err)
	}
	return vehicles, nil
}

// GetFavoriteVehicles lists the model families flagged as favorites.
func (c *Client) GetFavoriteVehicles(ctx context.Context) ([]BaseVehicle, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/BaseVehicle/GetFavorites", nil, nil)
	if err != nil {
		return nil, err
	}

	var vehicles []BaseVehicle
	if err := c.do(req, &vehicles); err != nil {
		return nil, fmt.Errorf("list favorite vehicles: %w", err)
	}
	return vehicles, nil
}

// AddBaseVehicle creates a model family.
func (c *Client) AddBaseVehicle(ctx context.Context, vehicle BaseVehicleRequest) (BaseVehicle, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/BaseVehicle", nil, vehicle)
	if err != nil {
		return BaseVehicle{}, err
	}

	var created BaseVehicle
	if err := c.do(req, &created); err != nil {
		return BaseVehicle{}, fmt.Errorf("add base vehicle: %w", err)
	}
	return created, nil
}

// UpdateBaseVehicle updates a model family in place.
func (c *Client) UpdateBaseVehicle(ctx context.Context, id int, vehicle BaseVehicleRequest) (BaseVehicle, error) {
	q := url.Values{}
	q.Set("id", strconv.Itoa(id))

	req, err := c.newRequest(ctx, http.MethodPut, "/BaseVehicle", q, vehicle)
	if err != nil {
		return BaseVehicle{}, err
	}

	var updated BaseVehicle
	if err := c.do(req, &updated); err != nil {
		return BaseVehicle{}, fmt.Errorf("update base vehicle %d: %w", id, err)
	}
	return updated, nil
}

// DeleteBaseVehicle removes a model family.
func (c *Client) DeleteBaseVehicle(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/BaseVehicle/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("delete base vehicle %d: %w", id, err)
	}
	return nil
}

// GetVehicleVersions lists trims matching the filters.
func (c *Client) GetVehicleVersions(ctx context.Context, filters VehicleFilters) (Paginated[VehicleVersion], error) {
	q := url.Values{}
	if filters.VersionName != "" {
		q.Set("VersionName", filters.VersionName)
	}
	if filters.BaseVehicleID > 0 {
		q.Set("BaseVehicleId", strconv.Itoa(filters.BaseVehicleID))
	}
	if filters.BrandID > 0 {
		q.Set("BrandId", strconv.Itoa(filters.BrandID))
	}
	if filters.MinPrice > 0 {
		q.Set("MinPrice", strconv.FormatFloat(filters.MinPrice, 'f', -1, 64))
	}
	if filters.MaxPrice > 0 {
		q.Set("MaxPrice", strconv.FormatFloat(filters.MaxPrice, 'f', -1, 64))
	}
	if filters.MinRange > 0 {
		q.Set("MinRange", strconv.Itoa(filters.MinRange))
	}
	if filters.MaxRange > 0 {
		q.Set("MaxRange", strconv.Itoa(filters.MaxRange))
	}
	if filters.MinSpeed > 0 {
		q.Set("MinSpeed", strconv.Itoa(filters.MinSpeed))
	}
	if filters.PageSize > 0 {
		q.Set("PageSize", strconv.Itoa(filters.PageSize))
	}
	if filters.PageNumber > 0 {
		q.Set("PageNumber", strconv.Itoa(filters.PageNumber))
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/VehicleVersion/GetVehicleVersions", q, nil)
	if err != nil {
		return Paginated[VehicleVersion]{}, err
	}

	var page Paginated[VehicleVersion]
	if err := c.do(req, &page); err != nil {
		return Paginated[VehicleVersion]{}, fmt.Errorf("list vehicle versions: %w", err)
	}
	return page, nil
}

// GetVehicleVersion returns a single trim by id.
func (c *Client) GetVehicleVersion(ctx context.Context, id int) (VehicleVersion, error) {
	q := url.Values{}
	q.Set("id", strconv.Itoa(id))

	req, err := c.newRequest(ctx, http.MethodGet, "/VehicleVersion/GetById", q, nil)
	if err != nil {
		return VehicleVersion{}, err
	}

	var env envelope[VehicleVersion]
	if err := c.do(req, &env); err != nil {
		return VehicleVersion{}, fmt.Errorf("get vehicle version %d: %w", id, err)
	}
	return env.Data, nil
}
