package pagination

import (
	"net/http/httptest"
	"testing"
)

func TestFromRequestDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/services", nil)
	p := FromRequest(r)

	if p.Limit != DefaultLimit {
		t.Errorf("limit = %d, want %d", p.Limit, DefaultLimit)
	}
	if p.Offset != 0 {
		t.Errorf("offset = %d, want 0", p.Offset)
	}
}

func TestFromRequestParsesValues(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/services?limit=5&offset=40", nil)
	p := FromRequest(r)

	if p.Limit != 5 || p.Offset != 40 {
		t.Errorf("got %+v, want limit=5 offset=40", p)
	}
}

func TestFromRequestClampsLimit(t *testing.T) {
	r := httptest.NewRequest("GET", "/?limit=5000", nil)
	if p := FromRequest(r); p.Limit != MaxLimit {
		t.Errorf("limit = %d, want cap %d", p.Limit, MaxLimit)
	}
}

func TestFromRequestIgnoresGarbage(t *testing.T) {
	r := httptest.NewRequest("GET", "/?limit=abc&offset=-3", nil)
	p := FromRequest(r)

	if p.Limit != DefaultLimit || p.Offset != 0 {
		t.Errorf("got %+v, want defaults", p)
	}
}

func TestPageForHasMore(t *testing.T) {
	cases := []struct {
		name     string
		offset   int
		returned int
		total    int64
		hasMore  bool
	}{
		{"first page of many", 0, 20, 100, true},
		{"last full page", 80, 20, 100, false},
		{"partial last page", 90, 10, 100, false},
		{"empty result", 0, 0, 0, false},
		{"offset past end", 200, 0, 100, false},
		{"one row remaining", 0, 5, 6, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page := PageFor(Params{Limit: 20, Offset: tc.offset}, tc.returned, tc.total)
			if page.HasMore != tc.hasMore {
				t.Errorf("hasMore = %v, want %v", page.HasMore, tc.hasMore)
			}
			// An offset beyond the last row is answered with zero rows,
			// so the window bound only holds for in-range offsets.
			if int64(tc.offset) <= page.Total && int64(tc.offset+tc.returned) > page.Total {
				t.Errorf("offset+returned %d exceeds total %d", tc.offset+tc.returned, page.Total)
			}
		})
	}
}
