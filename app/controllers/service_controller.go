package controllers

import (
	"net/http"
	"strings"

	"github.com/isipark/siteapi/app/models"
	"github.com/isipark/siteapi/app/repositories"
	"github.com/isipark/siteapi/config"
	"github.com/isipark/siteapi/pkg/apperr"
	"github.com/isipark/siteapi/pkg/bind"
	"github.com/isipark/siteapi/pkg/cache"
	"github.com/isipark/siteapi/pkg/pagination"
	"github.com/isipark/siteapi/pkg/response"
)

type ServiceController struct {
	repo *repositories.ServiceRepository
}

func NewServiceController(repo *repositories.ServiceRepository) *ServiceController {
	return &ServiceController{repo: repo}
}

type serviceCreateInput struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"short_description"`
	Features         []string `json:"features"`
	Benefits         []string `json:"benefits"`
	PriceRange       string   `json:"price_range"`
	Duration         string   `json:"duration"`
	Warranty         string   `json:"warranty"`
	IsFeatured       bool     `json:"is_featured"`
	SortOrder        int      `json:"sort_order"`
}

type serviceUpdateInput struct {
	Title            *string  `json:"title"`
	Description      *string  `json:"description"`
	ShortDescription *string  `json:"short_description"`
	Features         []string `json:"features"`
	Benefits         []string `json:"benefits"`
	PriceRange       *string  `json:"price_range"`
	Duration         *string  `json:"duration"`
	Warranty         *string  `json:"warranty"`
	IsFeatured       *bool    `json:"is_featured"`
	SortOrder        *int     `json:"sort_order"`
}

type cachedServiceList struct {
	Rows []models.Service `json:"rows"`
	Page pagination.Page  `json:"page"`
}

// List handles GET /api/services.
func (c *ServiceController) List(w http.ResponseWriter, r *http.Request) {
	key := cacheKey("services", "list", r.URL.RawQuery)

	var cached cachedServiceList
	if cache.Get(key, &cached) {
		response.Paginated(w, cached.Rows, cached.Page)
		return
	}

	opts := repositories.ServiceListOptions{
		Params:   pagination.FromRequest(r),
		Search:   r.URL.Query().Get("search"),
		Featured: boolQuery(r, "featured"),
	}

	rows, total, err := c.repo.List(r.Context(), opts)
	if err != nil {
		response.Fail(w, err)
		return
	}

	page := pagination.PageFor(opts.Params, len(rows), total)
	cache.Set(key, cachedServiceList{Rows: rows, Page: page}, config.CacheTTL()) //nolint:errcheck
	response.Paginated(w, rows, page)
}

// Get handles GET /api/services/{id}.
func (c *ServiceController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Fail(w, err)
		return
	}

	key := cacheKey("services", "get", idKey(id))
	var cached models.Service
	if cache.Get(key, &cached) {
		response.OK(w, cached)
		return
	}

	row, err := c.repo.FindByID(r.Context(), id)
	if err != nil {
		response.Fail(w, err)
		return
	}

	cache.Set(key, row, config.CacheTTL()) //nolint:errcheck
	response.OK(w, row)
}

// Create handles POST /api/services (admin).
func (c *ServiceController) Create(w http.ResponseWriter, r *http.Request) {
	var in serviceCreateInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, apperr.Validation(err.Error()))
		return
	} else if errs != nil {
		response.ValidationErrors(w, "Validation failed", errs)
		return
	}

	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		response.Fail(w, apperr.Validation("Title and description are required"))
		return
	}

	svc := models.Service{
		Title:            in.Title,
		Description:      in.Description,
		ShortDescription: in.ShortDescription,
		Features:         toJSON(in.Features),
		Benefits:         toJSON(in.Benefits),
		PriceRange:       in.PriceRange,
		Duration:         in.Duration,
		Warranty:         in.Warranty,
		IsFeatured:       in.IsFeatured,
		SortOrder:        in.SortOrder,
	}

	if err := c.repo.Create(r.Context(), &svc); err != nil {
		response.Fail(w, err)
		return
	}

	invalidate("services")
	response.Created(w, svc)
}

// Update handles PUT /api/services/{id} (admin). Partial: omitted fields
// keep their stored values.
func (c *ServiceController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Fail(w, err)
		return
	}

	var in serviceUpdateInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, apperr.Validation(err.Error()))
		return
	}

	fields := map[string]interface{}{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.ShortDescription != nil {
		fields["short_description"] = *in.ShortDescription
	}
	if in.Features != nil {
		fields["features"] = toJSON(in.Features)
	}
	if in.Benefits != nil {
		fields["benefits"] = toJSON(in.Benefits)
	}
	if in.PriceRange != nil {
		fields["price_range"] = *in.PriceRange
	}
	if in.Duration != nil {
		fields["duration"] = *in.Duration
	}
	if in.Warranty != nil {
		fields["warranty"] = *in.Warranty
	}
	if in.IsFeatured != nil {
		fields["is_featured"] = *in.IsFeatured
	}
	if in.SortOrder != nil {
		fields["sort_order"] = *in.SortOrder
	}
	if len(fields) == 0 {
		response.Fail(w, apperr.Validation("No fields to update"))
		return
	}

	row, err := c.repo.Update(r.Context(), id, fields)
	if err != nil {
		response.Fail(w, err)
		return
	}

	invalidate("services")
	response.OK(w, row)
}

// Delete handles DELETE /api/services/{id} (admin, soft).
func (c *ServiceController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Fail(w, err)
		return
	}

	row, err := c.repo.Deactivate(r.Context(), id)
	if err != nil {
		response.Fail(w, err)
		return
	}

	invalidate("services")
	response.OK(w, row)
}
