package apiclient

import (
	"context"
	"net/http"
)

// ToggleFavorite flips the favorite flag for a job and reports the new state.
func (c *Client) ToggleFavorite(ctx context.Context, token string, jobID int64) (*FavoriteToggle, error) {
	return call[*FavoriteToggle](ctx, c, operation{
		name:    "toggleFavorite",
		method:  http.MethodPost,
		path:    idPath("/api/favorites/toggle", jobID),
		auth:    authRequired,
		token:   token,
		failure: "Failed to toggle favorite",
	})
}

func (c *Client) GetFavorites(ctx context.Context, token string) ([]JobPosting, error) {
	return call[[]JobPosting](ctx, c, operation{
		name:    "getFavorites",
		method:  http.MethodGet,
		path:    "/api/favorites",
		auth:    authRequired,
		token:   token,
		failure: "Failed to fetch favorites",
	})
}
