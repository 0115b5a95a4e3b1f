package apiclient

import (
	"context"
	"io"
	"net/http"
)

// UploadResume posts content as the multipart field "file". The token is
// optional; an empty token sends no Authorization header.
func (c *Client) UploadResume(ctx context.Context, token, filename string, content io.Reader) (*UploadResumeResponse, error) {
	return call[*UploadResumeResponse](ctx, c, operation{
		name:    "uploadResume",
		method:  http.MethodPost,
		path:    "/api/resumes/upload",
		auth:    authOptional,
		token:   token,
		file:    &filePart{field: "file", filename: filename, content: content},
		failure: "Failed to upload resume",
	})
}

func (c *Client) GetMyResume(ctx context.Context, token string) (*Resume, error) {
	return call[*Resume](ctx, c, operation{
		name:    "getMyResume",
		method:  http.MethodGet,
		path:    "/api/resumes/my",
		auth:    authRequired,
		token:   token,
		failure: "Failed to fetch resume",
	})
}

func (c *Client) GetResumeByID(ctx context.Context, token string, resumeID int64) (*Resume, error) {
	return call[*Resume](ctx, c, operation{
		name:    "getResumeById",
		method:  http.MethodGet,
		path:    idPath("/api/resumes", resumeID),
		auth:    authRequired,
		token:   token,
		failure: "Failed to fetch resume by ID",
	})
}

func (c *Client) PerformATSCheck(ctx context.Context, token string, resumeID int64) (*ATSReport, error) {
	return call[*ATSReport](ctx, c, operation{
		name:    "performAtsCheck",
		method:  http.MethodPost,
		path:    idPath("/api/resumes", resumeID) + "/ats-check",
		auth:    authRequired,
		token:   token,
		failure: "Failed to perform ATS check",
	})
}

type rateRequest struct {
	Rating int `json:"rating"`
}

func (c *Client) RateResume(ctx context.Context, token string, resumeID int64, rating int) (*Resume, error) {
	return call[*Resume](ctx, c, operation{
		name:    "rateResume",
		method:  http.MethodPut,
		path:    idPath("/api/resumes", resumeID) + "/rate",
		auth:    authRequired,
		token:   token,
		body:    rateRequest{Rating: rating},
		failure: "Failed to rate resume",
	})
}
