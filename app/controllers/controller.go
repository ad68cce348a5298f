// Package controllers holds the HTTP handlers. Each handler composes
// bind → validate → repository → envelope and never lets a raw database
// error reach the client.
package controllers

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"gorm.io/datatypes"

	"github.com/isipark/siteapi/pkg/apperr"
	"github.com/isipark/siteapi/pkg/cache"
	"github.com/isipark/siteapi/pkg/logger"
)

// idParam reads the {id} route parameter.
func idParam(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apperr.Validation("Invalid id")
	}
	return uint(id), nil
}

// boolQuery parses an optional boolean query parameter ("true"/"false").
func boolQuery(r *http.Request, name string) *bool {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// uintQuery parses an optional numeric query parameter.
func uintQuery(r *http.Request, name string) *uint {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	v := uint(n)
	return &v
}

// intQuery parses an optional signed numeric query parameter.
func intQuery(r *http.Request, name string) *int {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// clientIP extracts the requester address, preferring X-Forwarded-For
// when the API sits behind a proxy.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		// first hop is the original client
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return strings.TrimSpace(real)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// invalidate drops every cached read of one entity after a write.
func invalidate(entity string) {
	if err := cache.Flush("siteapi:" + entity + ":"); err != nil {
		logger.Warn("cache invalidation failed", "entity", entity, "error", err)
	}
}

// cacheKey builds the cache key for a read endpoint from its query string.
func cacheKey(entity, op, qs string) string {
	return "siteapi:" + entity + ":" + op + ":" + qs
}

// idKey formats an id for use in cache keys.
func idKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// toJSON marshals a decoded list/map into a JSON column value.
func toJSON(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

