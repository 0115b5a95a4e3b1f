package apiclient

import (
	"context"
	"net/http"
)

func (c *Client) GetProfile(ctx context.Context, token string) (*UserProfile, error) {
	return call[*UserProfile](ctx, c, operation{
		name:    "getProfile",
		method:  http.MethodGet,
		path:    "/api/profile",
		auth:    authRequired,
		token:   token,
		failure: "Failed to fetch profile",
	})
}

// UpdateProfile sends only the fields set on update. The backend answers with
// the account fields (id, username, email, role); call GetProfile for the rest.
func (c *Client) UpdateProfile(ctx context.Context, token string, update ProfileUpdate) (*UserProfile, error) {
	return call[*UserProfile](ctx, c, operation{
		name:    "updateProfile",
		method:  http.MethodPut,
		path:    "/api/profile",
		auth:    authRequired,
		token:   token,
		body:    update,
		failure: "Failed to update profile",
	})
}
