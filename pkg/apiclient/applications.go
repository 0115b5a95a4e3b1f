package apiclient

import (
	"context"
	"net/http"
)

func (c *Client) ApplyToJob(ctx context.Context, token string, jobID int64) (*Message, error) {
	return call[*Message](ctx, c, operation{
		name:    "applyToJob",
		method:  http.MethodPost,
		path:    idPath("/api/applications/apply", jobID),
		auth:    authRequired,
		token:   token,
		failure: "Failed to apply to job",
	})
}

// GetApplicationsForJob lists applicants for a job owned by the caller.
func (c *Client) GetApplicationsForJob(ctx context.Context, token string, jobID int64) ([]Application, error) {
	return call[[]Application](ctx, c, operation{
		name:    "getApplicationsForJob",
		method:  http.MethodGet,
		path:    idPath("/api/applications/job", jobID),
		auth:    authRequired,
		token:   token,
		failure: "Failed to fetch job applications",
	})
}

func (c *Client) GetMyApplications(ctx context.Context, token string) ([]Application, error) {
	return call[[]Application](ctx, c, operation{
		name:    "getMyApplications",
		method:  http.MethodGet,
		path:    "/api/applications",
		auth:    authRequired,
		token:   token,
		failure: "Failed to fetch applications",
	})
}

func (c *Client) DeleteApplication(ctx context.Context, token string, applicationID int64) (*Message, error) {
	return call[*Message](ctx, c, operation{
		name:    "deleteApplication",
		method:  http.MethodDelete,
		path:    idPath("/api/applications", applicationID),
		auth:    authRequired,
		token:   token,
		failure: "Failed to delete application",
	})
}
