package evapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// GetInventoryItems lists stock matching the filters.
func (c *Client) GetInventoryItems(ctx context.Context, filters InventoryFilters) (Paginated[InventoryItem], error) {
	q := url.Values{}
	if filters.VIN != "" {
		q.Set("VIN", filters.VIN)
	}
	if filters.SerialNumber != "" {
		q.Set("SerialNumber", filters.SerialNumber)
	}
	if filters.VehicleVersionID > 0 {
		q.Set("VehicleVersionId", strconv.Itoa(filters.VehicleVersionID))
	}
	if filters.Location != "" {
		q.Set("Location", filters.Location)
	}
	if filters.Status != "" {
		q.Set("Status", filters.Status)
	}
	if filters.MinMileage != nil {
		q.Set("MinMileage", strconv.Itoa(*filters.MinMileage))
	}
	if filters.MaxMileage != nil {
		q.Set("MaxMileage", strconv.Itoa(*filters.MaxMileage))
	}
	if filters.ModelYear > 0 {
		q.Set("ModelYear", strconv.Itoa(filters.ModelYear))
	}
	if filters.EntryDateFrom != "" {
		q.Set("EntryDateFrom", filters.EntryDateFrom)
	}
	if filters.EntryDateTo != "" {
		q.Set("EntryDateTo", filters.EntryDateTo)
	}
	if filters.SupplierName != "" {
		q.Set("SupplierName", filters.SupplierName)
	}
	if filters.HasExited != nil {
		q.Set("HasExited", strconv.FormatBool(*filters.HasExited))
	}
	if filters.PageSize > 0 {
		q.Set("PageSize", strconv.Itoa(filters.PageSize))
	}
	if filters.PageNumber > 0 {
		q.Set("PageNumber", strconv.Itoa(filters.PageNumber))
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/Inventory/GetInventoryItems", q, nil)
	if err != nil {
		return Paginated[InventoryItem]{}, err
	}

	var page Paginated[InventoryItem]
	if err := c.do(req, &page); err != nil {
		return Paginated[InventoryItem]{}, fmt.Errorf("list inventory items: %w", err)
	}
	return page, nil
}

// GetInventoryItem returns a single stock item by id.
func (c *Client) GetInventoryItem(ctx context.Context, id int) (InventoryItem, error) {
	q := url.Values{}
	q.Set("id", strconv.Itoa(id))

	req, err := c.newRequest(ctx, http.MethodGet, "/Inventory/GetById", q, nil)
	if err != nil {
		return InventoryItem{}, err
	}

	var env envelope[InventoryItem]
	if err := c.do(req, &env); err != nil {
		return InventoryItem{}, fmt.Errorf("get inventory item %d: %w", id, err)
	}
	return env.Data, nil
}

// GetInventoryItemByVIN looks a stock item up by its VIN.
func (c *Client) GetInventoryItemByVIN(ctx context.Context, vin string) (InventoryItem, error) {
	q := url.Values{}
	q.Set("vin", vin)

	req, err := c.newRequest(ctx, http.MethodGet, "/Inventory/GetByVIN", q, nil)
	if err != nil {
		return InventoryItem{}, err
	}

	var env envelope[InventoryItem]
	if err := c.do(req, &env); err != nil {
		return InventoryItem{}, fmt.Errorf("get inventory item by vin: %w", err)
	}
	return env.Data, nil
}

// CreateInventoryItem registers a physical vehicle in stock.
func (c *Client) CreateInventoryItem(ctx context.Context, item InventoryItemRequest) (InventoryItem, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/Inventory/CreateInventoryItem", nil, item)
	if err != nil {
		return InventoryItem{}, err
	}

	var created InventoryItem
	if err := c.do(req, &created); err != nil {
		return InventoryItem{}, fmt.Errorf("create inventory item: %w", err)
	}
	return created, nil
}

// UpdateInventoryItem edits a stock item in place.
func (c *Client) UpdateInventoryItem(ctx context.Context, item InventoryItemUpdate) (InventoryItem, error) {
	req, err := c.newRequest(ctx, http.MethodPut, "/Inventory/UpdateInventoryItem", nil, item)
	if err != nil {
		return InventoryItem{}, err
	}

	var updated InventoryItem
	if err := c.do(req, &updated); err != nil {
		return InventoryItem{}, fmt.Errorf("update inventory item %d: %w", item.ID, err)
	}
	return updated, nil
}

// DeleteInventoryItem removes a stock item.
func (c *Client) DeleteInventoryItem(ctx context.Context, id int) error {
	q := url.Values{}
	q.Set("id", strconv.Itoa(id))

	req, err := c.newRequest(ctx, http.MethodDelete, "/Inventory/DeleteInventoryItem", q, nil)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("delete inventory item %d: %w", id, err)
	}
	return nil
}

// GetInventoryMovements lists the movement history of a stock item.
func (c *Client) GetInventoryMovements(ctx context.Context, inventoryItemID int) ([]InventoryMovement, error) {
	q := url.Values{}
	q.Set("inventoryItemId", strconv.Itoa(inventoryItemID))

	req, err := c.newRequest(ctx, http.MethodGet, "/Inventory/GetMovements", q, nil)
	if err != nil {
		return nil, err
	}

	var movements []InventoryMovement
	if err := c.do(req, &movements); err != nil {
		return nil, fmt.Errorf("list movements for item %d: %w", inventoryItemID, err)
	}
	return movements, nil
}

// AddInventoryMovement records an item entering, moving, or leaving stock.
func (c *Client) AddInventoryMovement(ctx context.Context, movement InventoryMovementRequest) (InventoryMovement, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/Inventory/AddMovement", nil, movement)
	if err != nil {
		return InventoryMovement{}, err
	}

	var created InventoryMovement
	if err := c.do(req, &created); err != nil {
		return InventoryMovement{}, fmt.Errorf("add inventory movement: %w", err)
	}
	return created, nil
}

// ChangeInventoryStatus moves an item to a new lifecycle status.
func (c *Client) ChangeInventoryStatus(ctx context.Context, id int, status string) error {
	body := struct {
		ID     int    `json:"id"`
		Status string `json:"status"`
	}{ID: id, Status: status}

	req, err := c.newRequest(ctx, http.MethodPut, "/Inventory/ChangeStatus", nil, body)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("change status of item %d: %w", id, err)
	}
	return nil
}

// ChangeInventoryLocation relocates an item.
func (c *Client) ChangeInventoryLocation(ctx context.Context, id int, location string) error {
	body := struct {
		ID       int    `json:"id"`
		Location string `json:"location"`
	}{ID: id, Location: location}

	req, err := c.newRequest(ctx, http.MethodPut, "/Inventory/ChangeLocation", nil, body)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("change location of item %d: %w", id, err)
	}
	return nil
}

// UpdateInventoryMileage records the current odometer reading of an item.
func (c *Client) UpdateInventoryMileage(ctx context.Context, id, mileage int) error {
	body := struct {
		ID      int `json:"id"`
		Mileage int `json:"mileage"`
	}{ID: id, Mileage: mileage}

	req, err := c.newRequest(ctx, http.MethodPut, "/Inventory/UpdateMileage", nil, body)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("update mileage of item %d: %w", id, err)
	}
	return nil
}
