package platform

import "context"

// LoginRequest is the credentials payload. Credentials are transient,
// they are never persisted beyond this call.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse mirrors the backend's login body. Every field besides
// the token may be absent; decoded token claims take precedence where
// both exist.
type LoginResponse struct {
	AccessToken string   `json:"accessToken"`
	TokenType   string   `json:"tokenType"`
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	FullName    string   `json:"fullName"`
	PlazaID     int64    `json:"plazaId"`
	PlazaName   string   `json:"plazaName"`
	Roles       []string `json:"roles"`
}

// Login authenticates with the backend. The backend's error message is
// returned unchanged so callers can surface it to the user.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.doRequest(ctx, "POST", "/api/auth/login", LoginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the backend's view of the current user.
func (c *Client) Me(ctx context.Context) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.doRequest(ctx, "GET", "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
