package platform

import (
	"context"
	"fmt"
)

// Store is one commercial store inside a plaza.
type Store struct {
	ID          int64  `json:"id"`
	ExternalID  string `json:"externalId,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	OwnerName   string `json:"ownerName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Email       string `json:"email,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
	PlazaID     int64  `json:"plazaId,omitempty"`
	PlazaName   string `json:"plazaName,omitempty"`
}

// StoreRequest is the create/update payload.
type StoreRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	OwnerName   string `json:"ownerName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Email       string `json:"email,omitempty"`
	PlazaID     int64  `json:"plazaId,omitempty"`
}

// StoreOwnerRequest creates the user account owning a store.
type StoreOwnerRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// ListStores returns the plaza's stores.
func (c *Client) ListStores(ctx context.Context) ([]Store, error) {
	var stores []Store
	if err := c.doRequest(ctx, "GET", "/api/stores", nil, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

// GetStore returns one store by ID.
func (c *Client) GetStore(ctx context.Context, id int64) (*Store, error) {
	var store Store
	if err := c.doRequest(ctx, "GET", fmt.Sprintf("/api/stores/%d", id), nil, &store); err != nil {
		return nil, err
	}
	return &store, nil
}

// CreateStore creates a store.
func (c *Client) CreateStore(ctx context.Context, req *StoreRequest) (*Store, error) {
	var store Store
	if err := c.doRequest(ctx, "POST", "/api/stores", req, &store); err != nil {
		return nil, err
	}
	return &store, nil
}

// UpdateStore updates a store.
func (c *Client) UpdateStore(ctx context.Context, id int64, req *StoreRequest) (*Store, error) {
	var store Store
	if err := c.doRequest(ctx, "PUT", fmt.Sprintf("/api/stores/%d", id), req, &store); err != nil {
		return nil, err
	}
	return &store, nil
}

// DeleteStore deletes a store.
func (c *Client) DeleteStore(ctx context.Context, id int64) error {
	return c.doRequest(ctx, "DELETE", fmt.Sprintf("/api/stores/%d", id), nil, nil)
}

// CreateStoreOwner creates the owner account for a store.
func (c *Client) CreateStoreOwner(ctx context.Context, storeID int64, req *StoreOwnerRequest) (*User, error) {
	var user User
	if err := c.doRequest(ctx, "POST", fmt.Sprintf("/api/stores/%d/owner", storeID), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
