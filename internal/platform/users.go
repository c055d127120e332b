package platform

import (
	"context"
	"fmt"
)

// User is one backend user account.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	FullName    string `json:"fullName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
	PlazaID     int64  `json:"plazaId,omitempty"`
	PlazaName   string `json:"plazaName,omitempty"`
	Roles       []Role `json:"roles,omitempty"`
}

// Role is one backend role.
type Role struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UserRequest is the create/update payload.
type UserRequest struct {
	Username    string   `json:"username"`
	Password    string   `json:"password,omitempty"`
	Email       string   `json:"email"`
	FirstName   string   `json:"firstName,omitempty"`
	LastName    string   `json:"lastName,omitempty"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	PlazaID     int64    `json:"plazaId,omitempty"`
	Roles       []string `json:"roles,omitempty"`
}

// ListUsers returns the plaza's user accounts.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.doRequest(ctx, "GET", "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser returns one user by ID.
func (c *Client) GetUser(ctx context.Context, id int64) (*User, error) {
	var user User
	if err := c.doRequest(ctx, "GET", fmt.Sprintf("/api/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a user.
func (c *Client) CreateUser(ctx context.Context, req *UserRequest) (*User, error) {
	var user User
	if err := c.doRequest(ctx, "POST", "/api/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates a user.
func (c *Client) UpdateUser(ctx context.Context, id int64, req *UserRequest) (*User, error) {
	var user User
	if err := c.doRequest(ctx, "PUT", fmt.Sprintf("/api/users/%d", id), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser deletes a user.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.doRequest(ctx, "DELETE", fmt.Sprintf("/api/users/%d", id), nil, nil)
}

// ListRoles returns the assignable roles.
func (c *Client) ListRoles(ctx context.Context) ([]Role, error) {
	var roles []Role
	if err := c.doRequest(ctx, "GET", "/api/roles", nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}
