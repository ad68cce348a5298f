// Package response renders the uniform JSON envelope used by every
// endpoint: {success, data, error?, message?, details?, pagination?}.
// The source this API replaced mixed bare arrays with wrapped objects;
// here one shape applies everywhere.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/isipark/siteapi/config"
	"github.com/isipark/siteapi/pkg/apperr"
	"github.com/isipark/siteapi/pkg/pagination"
)

type envelope struct {
	Success    bool             `json:"success"`
	Data       interface{}      `json:"data,omitempty"`
	Error      string           `json:"error,omitempty"`
	Message    string           `json:"message,omitempty"`
	Details    string           `json:"details,omitempty"`
	Errors     interface{}      `json:"errors,omitempty"`
	Pagination *pagination.Page `json:"pagination,omitempty"`
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// OK sends a 200 with data.
func OK(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, envelope{Success: true, Data: data})
}

// Created sends a 201 with the inserted record.
func Created(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusCreated, envelope{Success: true, Data: data})
}

// Paginated sends a 200 with data and the pagination block.
func Paginated(w http.ResponseWriter, data interface{}, page pagination.Page) {
	write(w, http.StatusOK, envelope{Success: true, Data: data, Pagination: &page})
}

// Fail renders a classified error. The underlying cause is included in
// details only outside production.
func Fail(w http.ResponseWriter, err error) {
	ae := apperr.From(err)

	body := envelope{Success: false, Error: ae.Message}
	if !config.Production() && ae.Err != nil {
		body.Details = ae.Err.Error()
	}

	write(w, ae.Status(), body)
}

// Error sends an arbitrary status with a bare error message. Used for
// statuses outside the apperr kinds (401, 429).
func Error(w http.ResponseWriter, status int, msg string) {
	write(w, status, envelope{Success: false, Error: msg})
}

// ValidationErrors renders a 400 with a field-level error map. The top-level
// error string carries the first human-readable message so simple clients
// can show something without walking the map.
func ValidationErrors(w http.ResponseWriter, msg string, errs map[string]string) {
	write(w, http.StatusBadRequest, envelope{Success: false, Error: msg, Errors: errs})
}
