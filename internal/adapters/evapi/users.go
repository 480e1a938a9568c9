package evapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// UserProfileFilters narrows the user directory listing.
type UserProfileFilters struct {
	Name          string
	Email         string
	Role          string
	AccountStatus *int
	PageSize      int
	PageNumber    int
}

// GetUserProfiles lists directory entries matching the filters.
func (c *Client) GetUserProfiles(ctx context.Context, filters UserProfileFilters) (Paginated[UserProfile], error) {
	q := url.Values{}
	if filters.Name != "" {
		q.Set("Name", filters.Name)
	}
	if filters.Email != "" {
		q.Set("Email", filters.Email)
	}
	if filters.Role != "" {
		q.Set("Role", filters.Role)
	}
	if filters.AccountStatus != nil {
		q.Set("AccountStatus", strconv.Itoa(*filters.AccountStatus))
	}
	if filters.PageSize > 0 {
		q.Set("PageSize", strconv.Itoa(filters.PageSize))
	}
	if filters.PageNumber > 0 {
		q.Set("PageNumber", strconv.Itoa(filters.PageNumber))
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/UserProfiles/GetAllUserProfileFilter", q, nil)
	if err != nil {
		return Paginated[UserProfile]{}, err
	}

	var page Paginated[UserProfile]
	if err := c.do(req, &page); err != nil {
		return Paginated[UserProfile]{}, fmt.Errorf("list user profiles: %w", err)
	}
	return page, nil
}

// GetUserProfile returns a single directory entry by user id.
func (c *Client) GetUserProfile(ctx context.Context, userID int) (UserProfile, error) {
	q := url.Values{}
	q.Set("userId", strconv.Itoa(userID))

	req, err := c.newRequest(ctx, http.MethodGet, "/UserProfiles/GetByUserId", q, nil)
	if err != nil {
		return UserProfile{}, err
	}

	var env envelope[UserProfile]
	if err := c.do(req, &env); err != nil {
		return UserProfile{}, fmt.Errorf("get user profile %d: %w", userID, err)
	}
	return env.Data, nil
}

// RegisterUser creates a new user with a full profile.
func (c *Client) RegisterUser(ctx context.Context, reg UserRegistration) (UserProfile, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/UserProfiles/Register", nil, reg)
	if err != nil {
		return UserProfile{}, err
	}

	var created UserProfile
	if err := c.do(req, &created); err != nil {
		return UserProfile{}, fmt.Errorf("register user: %w", err)
	}
	return created, nil
}

// UpdateUserAccount edits the mutable fields of a user account.
func (c *Client) UpdateUserAccount(ctx context.Context, userID int, update UserUpdate) (UserProfile, error) {
	req, err := c.newRequest(ctx, http.MethodPut, "/UserAccounts/Update/"+strconv.Itoa(userID), nil, update)
	if err != nil {
		return UserProfile{}, err
	}

	var updated UserProfile
	if err := c.do(req, &updated); err != nil {
		return UserProfile{}, fmt.Errorf("update user account %d: %w", userID, err)
	}
	return updated, nil
}

// DeleteUserAccount removes a user account.
func (c *Client) DeleteUserAccount(ctx context.Context, userID int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/UserAccounts/Delete/"+strconv.Itoa(userID), nil, nil)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("delete user account %d: %w", userID, err)
	}
	return nil
}
