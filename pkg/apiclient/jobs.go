package apiclient

import (
	"context"
	"net/http"
	"strconv"
)

// FetchJobPostings searches jobs. filters may be nil. The token is optional;
// an empty token sends no Authorization header.
func (c *Client) FetchJobPostings(ctx context.Context, token string, filters *JobFilters) ([]JobPosting, error) {
	return call[[]JobPosting](ctx, c, operation{
		name:    "fetchJobPostings",
		method:  http.MethodGet,
		path:    "/api/jobs",
		query:   filters.values(),
		auth:    authOptional,
		token:   token,
		failure: "Failed to fetch job postings",
	})
}

// FetchMockJobPostings returns the backend's sample postings.
func (c *Client) FetchMockJobPostings(ctx context.Context) ([]JobPosting, error) {
	return call[[]JobPosting](ctx, c, operation{
		name:    "fetchMockJobPostings",
		method:  http.MethodGet,
		path:    "/api/jobs/fetch",
		failure: "Failed to fetch mock job postings",
	})
}

// MatchSkills compares a resume's skills against a job posting.
func (c *Client) MatchSkills(ctx context.Context, jobID, resumeID int64) (*MatchResult, error) {
	return call[*MatchResult](ctx, c, operation{
		name:    "matchSkills",
		method:  http.MethodGet,
		path:    idPath("/api/jobs", jobID) + "/match/" + strconv.FormatInt(resumeID, 10),
		failure: "Failed to match skills",
	})
}

func (c *Client) CreateJob(ctx context.Context, token string, job JobPosting) (*JobPosting, error) {
	return call[*JobPosting](ctx, c, operation{
		name:    "createJob",
		method:  http.MethodPost,
		path:    "/api/jobs",
		auth:    authRequired,
		token:   token,
		body:    job,
		failure: "Failed to create job",
	})
}

func (c *Client) UpdateJob(ctx context.Context, token string, jobID int64, job JobPosting) (*JobPosting, error) {
	return call[*JobPosting](ctx, c, operation{
		name:    "updateJob",
		method:  http.MethodPut,
		path:    idPath("/api/jobs", jobID),
		auth:    authRequired,
		token:   token,
		body:    job,
		failure: "Failed to update job",
	})
}

func (c *Client) DeleteJob(ctx context.Context, token string, jobID int64) (*Deleted, error) {
	return call[*Deleted](ctx, c, operation{
		name:    "deleteJob",
		method:  http.MethodDelete,
		path:    idPath("/api/jobs", jobID),
		auth:    authRequired,
		token:   token,
		failure: "Failed to delete job",
	})
}
