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

type TestimonialController struct {
	repo *repositories.TestimonialRepository
}

func NewTestimonialController(repo *repositories.TestimonialRepository) *TestimonialController {
	return &TestimonialController{repo: repo}
}

type testimonialCreateInput struct {
	Name     string `json:"name"`
	Company  string `json:"company"`
	Position string `json:"position"`
	Comment  string `json:"comment"`
	Rating   int    `json:"rating"`
	Category string `json:"category"`
}

type testimonialUpdateInput struct {
	Name       *string `json:"name"`
	Company    *string `json:"company"`
	Position   *string `json:"position"`
	Comment    *string `json:"comment"`
	Rating     *int    `json:"rating"`
	Category   *string `json:"category"`
	IsFeatured *bool   `json:"is_featured"`
	IsApproved *bool   `json:"is_approved"`
	SortOrder  *int    `json:"sort_order"`
}

type cachedTestimonialList struct {
	Rows []models.Testimonial `json:"rows"`
	Page pagination.Page      `json:"page"`
}

// List handles GET /api/testimonials. Public listings only show rows an
// admin has approved.
func (c *TestimonialController) List(w http.ResponseWriter, r *http.Request) {
	key := cacheKey("testimonials", "list", r.URL.RawQuery)

	var cached cachedTestimonialList
	if cache.Get(key, &cached) {
		response.Paginated(w, cached.Rows, cached.Page)
		return
	}

	opts := repositories.TestimonialListOptions{
		Params:       pagination.FromRequest(r),
		Search:       r.URL.Query().Get("search"),
		Featured:     boolQuery(r, "featured"),
		Category:     r.URL.Query().Get("category"),
		ApprovedOnly: true,
	}

	rows, total, err := c.repo.List(r.Context(), opts)
	if err != nil {
		response.Fail(w, err)
		return
	}

	page := pagination.PageFor(opts.Params, len(rows), total)
	cache.Set(key, cachedTestimonialList{Rows: rows, Page: page}, config.CacheTTL()) //nolint:errcheck
	response.Paginated(w, rows, page)
}

// Get handles GET /api/testimonials/{id}.
func (c *TestimonialController) Get(w http.ResponseWriter, r *http.Request) {
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

// Create handles POST /api/testimonials. Open to visitors; the row stays
// hidden until approved.
func (c *TestimonialController) Create(w http.ResponseWriter, r *http.Request) {
	var in testimonialCreateInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, apperr.Validation(err.Error()))
		return
	}

	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Comment) == "" {
		response.Fail(w, apperr.Validation("Name and comment are required"))
		return
	}

	t := models.Testimonial{
		Name:     in.Name,
		Company:  in.Company,
		Position: in.Position,
		Comment:  in.Comment,
		Rating:   in.Rating,
		Category: in.Category,
	}

	if err := c.repo.Create(r.Context(), &t); err != nil {
		response.Fail(w, err)
		return
	}

	invalidate("testimonials")
	response.Created(w, t)
}

// Update handles PUT /api/testimonials/{id} (admin). Approval happens
// here by supplying is_approved:true.
func (c *TestimonialController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Fail(w, err)
		return
	}

	var in testimonialUpdateInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, apperr.Validation(err.Error()))
		return
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Company != nil {
		fields["company"] = *in.Company
	}
	if in.Position != nil {
		fields["position"] = *in.Position
	}
	if in.Comment != nil {
		fields["comment"] = *in.Comment
	}
	if in.Rating != nil {
		if *in.Rating < 1 || *in.Rating > 5 {
			response.Fail(w, apperr.Validation("Rating must be between 1 and 5"))
			return
		}
		fields["rating"] = *in.Rating
	}
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	if in.IsFeatured != nil {
		fields["is_featured"] = *in.IsFeatured
	}
	if in.IsApproved != nil {
		fields["is_approved"] = *in.IsApproved
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

	invalidate("testimonials")
	response.OK(w, row)
}

// Delete handles DELETE /api/testimonials/{id} (admin, soft).
func (c *TestimonialController) Delete(w http.ResponseWriter, r *http.Request) {
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

	invalidate("testimonials")
	response.OK(w, row)
}
