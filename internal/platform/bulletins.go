package platform

import (
	"context"
	"fmt"
)

// Bulletin is one plaza bulletin-board entry.
type Bulletin struct {
	ID                int64  `json:"id"`
	Title             string `json:"title"`
	Content           string `json:"content"`
	PublicationDate   string `json:"publicationDate,omitempty"`
	IsActive          *bool  `json:"isActive,omitempty"`
	PlazaID           int64  `json:"plazaId,omitempty"`
	PlazaName         string `json:"plazaName,omitempty"`
	CreatedByID       int64  `json:"createdById,omitempty"`
	CreatedByUsername string `json:"createdByUsername,omitempty"`
	CreatedByFullName string `json:"createdByFullName,omitempty"`
}

// BulletinRequest is the create/update payload. PublicationDate uses
// the backend's YYYY-MM-DD format.
type BulletinRequest struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	PublicationDate string `json:"publicationDate,omitempty"`
}

// ListBulletins returns all bulletins.
func (c *Client) ListBulletins(ctx context.Context) ([]Bulletin, error) {
	var bulletins []Bulletin
	if err := c.doRequest(ctx, "GET", "/api/bulletins", nil, &bulletins); err != nil {
		return nil, err
	}
	return bulletins, nil
}

// ListTodayBulletins returns bulletins published today.
func (c *Client) ListTodayBulletins(ctx context.Context) ([]Bulletin, error) {
	var bulletins []Bulletin
	if err := c.doRequest(ctx, "GET", "/api/bulletins/today", nil, &bulletins); err != nil {
		return nil, err
	}
	return bulletins, nil
}

// ListBulletinsByDate returns bulletins for a YYYY-MM-DD date.
func (c *Client) ListBulletinsByDate(ctx context.Context, date string) ([]Bulletin, error) {
	var bulletins []Bulletin
	if err := c.doRequest(ctx, "GET", "/api/bulletins/date/"+date, nil, &bulletins); err != nil {
		return nil, err
	}
	return bulletins, nil
}

// GetBulletin returns one bulletin by ID.
func (c *Client) GetBulletin(ctx context.Context, id int64) (*Bulletin, error) {
	var bulletin Bulletin
	if err := c.doRequest(ctx, "GET", fmt.Sprintf("/api/bulletins/%d", id), nil, &bulletin); err != nil {
		return nil, err
	}
	return &bulletin, nil
}

// CreateBulletin creates a bulletin.
func (c *Client) CreateBulletin(ctx context.Context, req *BulletinRequest) (*Bulletin, error) {
	var bulletin Bulletin
	if err := c.doRequest(ctx, "POST", "/api/bulletins", req, &bulletin); err != nil {
		return nil, err
	}
	return &bulletin, nil
}

// UpdateBulletin updates a bulletin.
func (c *Client) UpdateBulletin(ctx context.Context, id int64, req *BulletinRequest) (*Bulletin, error) {
	var bulletin Bulletin
	if err := c.doRequest(ctx, "PUT", fmt.Sprintf("/api/bulletins/%d", id), req, &bulletin); err != nil {
		return nil, err
	}
	return &bulletin, nil
}

// DeleteBulletin deletes a bulletin.
func (c *Client) DeleteBulletin(ctx context.Context, id int64) error {
	return c.doRequest(ctx, "DELETE", fmt.Sprintf("/api/bulletins/%d", id), nil, nil)
}
