package apiclient

import (
	"context"
	"net/http"
)

// AdminListUsers lists users with the backend's own paging defaults.
func (c *Client) AdminListUsers(ctx context.Context, token string) (*Page[UserProfile], error) {
	return c.adminListUsers(ctx, token, nil)
}

// AdminListUsersPaged always sends page and size; see PageRequest for defaults.
func (c *Client) AdminListUsersPaged(ctx context.Context, token string, req PageRequest) (*Page[UserProfile], error) {
	return c.adminListUsers(ctx, token, &req)
}

func (c *Client) adminListUsers(ctx context.Context, token string, req *PageRequest) (*Page[UserProfile], error) {
	op := operation{
		name:    "adminListUsers",
		method:  http.MethodGet,
		path:    "/api/admin/users",
		auth:    authRequired,
		token:   token,
		failure: "Failed to list users",
	}
	if req != nil {
		op.query = req.values()
	}
	return call[*Page[UserProfile]](ctx, c, op)
}

type roleRequest struct {
	Role string `json:"role"`
}

func (c *Client) AdminUpdateUserRole(ctx context.Context, token string, userID int64, role string) (*UserProfile, error) {
	return call[*UserProfile](ctx, c, operation{
		name:    "adminUpdateUserRole",
		method:  http.MethodPut,
		path:    idPath("/api/admin/users", userID) + "/role",
		auth:    authRequired,
		token:   token,
		body:    roleRequest{Role: role},
		failure: "Failed to update user role",
	})
}

func (c *Client) AdminDeleteUser(ctx context.Context, token string, userID int64) (*Deleted, error) {
	return call[*Deleted](ctx, c, operation{
		name:    "adminDeleteUser",
		method:  http.MethodDelete,
		path:    idPath("/api/admin/users", userID),
		auth:    authRequired,
		token:   token,
		failure: "Failed to delete user",
	})
}

func (c *Client) AdminListJobs(ctx context.Context, token string) (*Page[JobPosting], error) {
	return c.adminListJobs(ctx, token, nil)
}

func (c *Client) AdminListJobsPaged(ctx context.Context, token string, req PageRequest) (*Page[JobPosting], error) {
	return c.adminListJobs(ctx, token, &req)
}

func (c *Client) adminListJobs(ctx context.Context, token string, req *PageRequest) (*Page[JobPosting], error) {
	op := operation{
		name:    "adminListJobs",
		method:  http.MethodGet,
		path:    "/api/admin/jobs",
		auth:    authRequired,
		token:   token,
		failure: "Failed to list jobs",
	}
	if req != nil {
		op.query = req.values()
	}
	return call[*Page[JobPosting]](ctx, c, op)
}

func (c *Client) AdminDeleteJob(ctx context.Context, token string, jobID int64) (*Deleted, error) {
	return call[*Deleted](ctx, c, operation{
		name:    "adminDeleteJob",
		method:  http.MethodDelete,
		path:    idPath("/api/admin/jobs", jobID),
		auth:    authRequired,
		token:   token,
		failure: "Failed to delete job",
	})
}
