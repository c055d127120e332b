package platform

import (
	"context"
	"fmt"
)

// Plaza is one shopping plaza (the tenant unit).
type Plaza struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Address      string `json:"address,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	Email        string `json:"email,omitempty"`
	OpeningHours string `json:"openingHours,omitempty"`
	ClosingHours string `json:"closingHours,omitempty"`
	IsActive     *bool  `json:"isActive,omitempty"`
}

// PlazaRequest is the create/update payload.
type PlazaRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Address      string `json:"address,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	Email        string `json:"email,omitempty"`
	OpeningHours string `json:"openingHours,omitempty"`
	ClosingHours string `json:"closingHours,omitempty"`
}

// ListPlazas returns all plazas visible to the current user.
func (c *Client) ListPlazas(ctx context.Context) ([]Plaza, error) {
	var plazas []Plaza
	if err := c.doRequest(ctx, "GET", "/api/plazas", nil, &plazas); err != nil {
		return nil, err
	}
	return plazas, nil
}

// GetPlaza returns one plaza by ID.
func (c *Client) GetPlaza(ctx context.Context, id int64) (*Plaza, error) {
	var plaza Plaza
	if err := c.doRequest(ctx, "GET", fmt.Sprintf("/api/plazas/%d", id), nil, &plaza); err != nil {
		return nil, err
	}
	return &plaza, nil
}

// CreatePlaza creates a plaza.
func (c *Client) CreatePlaza(ctx context.Context, req *PlazaRequest) (*Plaza, error) {
	var plaza Plaza
	if err := c.doRequest(ctx, "POST", "/api/plazas", req, &plaza); err != nil {
		return nil, err
	}
	return &plaza, nil
}

// UpdatePlaza updates a plaza.
func (c *Client) UpdatePlaza(ctx context.Context, id int64, req *PlazaRequest) (*Plaza, error) {
	var plaza Plaza
	if err := c.doRequest(ctx, "PUT", fmt.Sprintf("/api/plazas/%d", id), req, &plaza); err != nil {
		return nil, err
	}
	return &plaza, nil
}
