package platform

import (
	"context"
	"fmt"
)

// Product is one product offered inside the plaza.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	Price       float64 `json:"price"`
	IsActive    *bool   `json:"isActive,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
	PlazaID     int64   `json:"plazaId,omitempty"`
	PlazaName   string  `json:"plazaName,omitempty"`
}

// ProductRequest is the create/update payload.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	Price       float64 `json:"price"`
	PlazaID     int64   `json:"plazaId,omitempty"`
}

// ListProducts returns all products.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.doRequest(ctx, "GET", "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListAvailableProducts returns products currently marked available.
func (c *Client) ListAvailableProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.doRequest(ctx, "GET", "/api/products/available", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListProductCategories returns the known product categories.
func (c *Client) ListProductCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.doRequest(ctx, "GET", "/api/products/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetProduct returns one product by ID.
func (c *Client) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var product Product
	if err := c.doRequest(ctx, "GET", fmt.Sprintf("/api/products/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct creates a product.
func (c *Client) CreateProduct(ctx context.Context, req *ProductRequest) (*Product, error) {
	var product Product
	if err := c.doRequest(ctx, "POST", "/api/products", req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct updates a product.
func (c *Client) UpdateProduct(ctx context.Context, id int64, req *ProductRequest) (*Product, error) {
	var product Product
	if err := c.doRequest(ctx, "PUT", fmt.Sprintf("/api/products/%d", id), req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProductPrice updates only a product's price.
func (c *Client) UpdateProductPrice(ctx context.Context, id int64, price float64) (*Product, error) {
	var product Product
	body := map[string]float64{"price": price}
	if err := c.doRequest(ctx, "PUT", fmt.Sprintf("/api/products/%d/price", id), body, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct deletes a product.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.doRequest(ctx, "DELETE", fmt.Sprintf("/api/products/%d", id), nil, nil)
}
