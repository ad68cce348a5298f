// Package pagination parses limit/offset query parameters and carries the
// pagination block every list endpoint returns.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit applies when the limit parameter is absent or invalid.
	DefaultLimit = 20
	// MaxLimit caps client-supplied limits.
	MaxLimit = 100
)

// Params are the sanitized limit/offset of a list request.
type Params struct {
	Limit  int
	Offset int
}

// Page describes the result window of a list response.
type Page struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

// FromRequest reads limit/offset from the query string, applying defaults
// and clamping out-of-range values.
func FromRequest(r *http.Request) Params {
	p := Params{Limit: DefaultLimit, Offset: 0}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			p.Limit = n
		}
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			p.Offset = n
		}
	}

	return p
}

// PageFor builds the pagination block for a result window. hasMore is true
// exactly when rows beyond this window match the same predicates.
func PageFor(p Params, returned int, total int64) Page {
	return Page{
		Total:   total,
		Limit:   p.Limit,
		Offset:  p.Offset,
		HasMore: int64(p.Offset+returned) < total,
	}
}
