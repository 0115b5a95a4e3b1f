package apiclient

import (
	"context"
	"net/http"
)

// Register creates an account. Role defaults to RoleUser and Email to
// "<username>@example.com" when left empty.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	if req.Role == "" {
		req.Role = RoleUser
	}
	if req.Email == "" {
		req.Email = req.Username + "@example.com"
	}
	return call[*RegisterResponse](ctx, c, operation{
		name:    "register",
		method:  http.MethodPost,
		path:    "/api/auth/register",
		body:    req,
		failure: "Registration failed",
	})
}

// Login exchanges credentials for a bearer token and the account role.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	return call[*LoginResponse](ctx, c, operation{
		name:    "login",
		method:  http.MethodPost,
		path:    "/api/auth/login",
		body:    LoginRequest{Username: username, Password: password},
		failure: "Login failed",
	})
}
