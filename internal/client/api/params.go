package api

import (
	"net/url"
	"strconv"
)

// ListParams are the query parameters shared by every list/search endpoint.
// Filters are passed through to the backend untouched.
type ListParams struct {
	Page    int
	Limit   int
	Query   string
	Sort    string
	Filters map[string]string
}

// Values encodes the parameters as URL query values. Zero values are
// omitted so the backend's own defaults apply.
func (p ListParams) Values() url.Values {
	v := url.Values{}
	for key, value := range p.Filters {
		if value != "" {
			v.Set(key, value)
		}
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Query != "" {
		v.Set("q", p.Query)
	}
	if p.Sort != "" {
		v.Set("sort", p.Sort)
	}
	return v
}
