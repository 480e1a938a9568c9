package evapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// GetBrands returns a page of the brand directory.
func (c *Client) GetBrands(ctx context.Context, pageNumber, pageSize int) (Paginated[Brand], error) {
	q := url.Values{}
	if pageSize > 0 {
		q.Set("PageSize", strconv.Itoa(pageSize))
	}
	if pageNumber > 0 {
		q.Set("PageNumber", strconv.Itoa(pageNumber))
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/Brands/GetBrands", q, nil)
	if err != nil {
		return Paginated[Brand]{}, err
	}

	var page Paginated[Brand]
	if err := c.do(req, &page); err != nil {
		return Paginated[Brand]{}, fmt.Errorf("list brands: %w", err)
	}
	return page, nil
}

// GetBrand returns a single brand by id.
func (c *Client) GetBrand(ctx context.Context, id int) (Brand, error) {
	q := url.Values{}
	q.Set("id", strconv.Itoa(id))

	req, err := c.newRequest(ctx, http.MethodGet, "/Brands/GetById", q, nil)
	if err != nil {
		return Brand{}, err
	}

	var env envelope[Brand]
	if err := c.do(req, &env); err != nil {
		return Brand{}, fmt.Errorf("get brand %d: %w", id, err)
	}
	return env.Data, nil
}

// AddBrand creates a brand.
func (c *Client) AddBrand(ctx context.Context, brand BrandRequest) (Brand, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/Brands/AddBrand", nil, brand)
	if err != nil {
		return Brand{}, err
	}

	var created Brand
	if err := c.do(req, &created); err != nil {
		return Brand{}, fmt.Errorf("add brand: %w", err)
	}
	return created, nil
}

// UpdateBrand updates a brand in place.
func (c *Client) UpdateBrand(ctx context.Context, id int, brand BrandRequest) (Brand, error) {
	body := struct {
		BrandID int `json:"brandId"`
		BrandRequest
	}{BrandID: id, BrandRequest: brand}

	req, err := c.newRequest(ctx, http.MethodPut, "/Brands/UpdateBrand", nil, body)
	if err != nil {
		return Brand{}, err
	}

	var updated Brand
	if err := c.do(req, &updated); err != nil {
		return Brand{}, fmt.Errorf("update brand %d: %w", id, err)
	}
	return updated, nil
}

// DeleteBrand removes a brand.
func (c *Client) DeleteBrand(ctx context.Context, id int) error {
	q := url.Values{}
	q.Set("id", strconv.Itoa(id))

	req, err := c.newRequest(ctx, http.MethodDelete, "/Brands/DeleteBrand", q, nil)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("delete brand %d: %w", id, err)
	}
	return nil
}

// GetBrandAddresses lists the locations registered for a brand.
func (c *Client) GetBrandAddresses(ctx context.Context, brandID int) ([]BrandAddress, error) {
	q := url.Values{}
	q.Set("brandId", strconv.Itoa(brandID))

	req, err := c.newRequest(ctx, http.MethodGet, "/BrandAddress/GetBrandAddresses", q, nil)
	if err != nil {
		return nil, err
	}

	var addrs []BrandAddress
	if err := c.do(req, &addrs); err != nil {
		return nil, fmt.Errorf("list brand %d addresses: %w", brandID, err)
	}
	return addrs, nil
}

// AddBrandAddress registers a new location for a brand.
func (c *Client) AddBrandAddress(ctx context.Context, addr BrandAddressRequest) (BrandAddress, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/BrandAddress/AddBrandAddress", nil, addr)
	if err != nil {
		return BrandAddress{}, err
	}

	var created BrandAddress
	if err := c.do(req, &created); err != nil {
		return BrandAddress{}, fmt.Errorf("add brand address: %w", err)
	}
	return created, nil
}
