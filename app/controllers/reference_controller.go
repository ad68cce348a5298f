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

type ReferenceController struct {
	repo *repositories.ReferenceRepository
}

func NewReferenceController(repo *repositories.ReferenceRepository) *ReferenceController {
	return &ReferenceController{repo: repo}
}

type referenceCreateInput struct {
	Title       string `json:"title"`
	Client      string `json:"client"`
	Location    string `json:"location"`
	Year        int    `json:"year"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	SortOrder   int    `json:"sort_order"`
}

type referenceUpdateInput struct {
	Title       *string `json:"title"`
	Client      *string `json:"client"`
	Location    *string `json:"location"`
	Year        *int    `json:"year"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	SortOrder   *int    `json:"sort_order"`
}

type cachedReferenceList struct {
	Rows []models.Reference `json:"rows"`
	Page pagination.Page    `json:"page"`
}

// List handles GET /api/references.
func (c *ReferenceController) List(w http.ResponseWriter, r *http.Request) {
	key := cacheKey("references", "list", r.URL.RawQuery)

	var cached cachedReferenceList
	if cache.Get(key, &cached) {
		response.Paginated(w, cached.Rows, cached.Page)
		return
	}

	opts := repositories.ReferenceListOptions{
		Params: pagination.FromRequest(r),
		Search: r.URL.Query().Get("search"),
		Year:   intQuery(r, "year"),
	}

	rows, total, err := c.repo.List(r.Context(), opts)
	if err != nil {
		response.Fail(w, err)
		return
	}

	page := pagination.PageFor(opts.Params, len(rows), total)
	cache.Set(key, cachedReferenceList{Rows: rows, Page: page}, config.CacheTTL()) //nolint:errcheck
	response.Paginated(w, rows, page)
}

// Get handles GET /api/references/{id}.
func (c *ReferenceController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Fail(w, err)
		return
	}

	row, err := c.repo.FindByID(r.Context(), id)
	if err != nil {
		response.Fail(w, err)
		return
	}
	response.OK(w, row)
}

// Create handles POST /api/references (admin).
func (c *ReferenceController) Create(w http.ResponseWriter, r *http.Request) {
	var in referenceCreateInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, apperr.Validation(err.Error()))
		return
	}

	if strings.TrimSpace(in.Title) == "" {
		response.Fail(w, apperr.Validation("Title is required"))
		return
	}

	ref := models.Reference{
		Title:       in.Title,
		Client:      in.Client,
		Location:    in.Location,
		Year:        in.Year,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		SortOrder:   in.SortOrder,
	}

	if err := c.repo.Create(r.Context(), &ref); err != nil {
		response.Fail(w, err)
		return
	}

	invalidate("references")
	response.Created(w, ref)
}

// Update handles PUT /api/references/{id} (admin).
func (c *ReferenceController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Fail(w, err)
		return
	}

	var in referenceUpdateInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, apperr.Validation(err.Error()))
		return
	}

	fields := map[string]interface{}{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Client != nil {
		fields["client"] = *in.Client
	}
	if in.Location != nil {
		fields["location"] = *in.Location
	}
	if in.Year != nil {
		fields["year"] = *in.Year
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.ImageURL != nil {
		fields["image_url"] = *in.ImageURL
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

	invalidate("references")
	response.OK(w, row)
}

// Delete handles DELETE /api/references/{id} (admin, soft).
func (c *ReferenceController) Delete(w http.ResponseWriter, r *http.Request) {
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

	invalidate("references")
	response.OK(w, row)
}
