package apiclient

import (
	"net/url"
	"strconv"
)

// DefaultPageSize is used when a PageRequest leaves Size unset.
const DefaultPageSize = 10

// JobFilters narrows a job search. Empty strings and a nil MinSalary are
// left out of the query; a MinSalary of 0 is sent.
type JobFilters struct {
	Keyword   string
	Location  string
	JobType   string
	MinSalary *float64
}

func (f *JobFilters) values() url.Values {
	if f == nil {
		return nil
	}
	q := url.Values{}
	if f.Keyword != "" {
		q.Set("keyword", f.Keyword)
	}
	if f.Location != "" {
		q.Set("location", f.Location)
	}
	if f.JobType != "" {
		q.Set("jobType", f.JobType)
	}
	if f.MinSalary != nil {
		q.Set("minSalary", strconv.FormatFloat(*f.MinSalary, 'f', -1, 64))
	}
	return q
}

// PageRequest selects a page of an admin listing. The zero value asks for
// the first page of DefaultPageSize entries.
type PageRequest struct {
	Page int
	Size int
}

func (p PageRequest) values() url.Values {
	page := p.Page
	if page < 0 {
		page = 0
	}
	size := p.Size
	if size <= 0 {
		size = DefaultPageSize
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	return q
}

func idPath(prefix string, id int64) string {
	return prefix + "/" + strconv.FormatInt(id, 10)
}
