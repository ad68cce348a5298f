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

type FAQController struct {
	repo *repositories.FAQRepository
}

func NewFAQController(repo *repositories.FAQRepository) *FAQController {
	return &FAQController{repo: repo}
}

type faqCreateInput struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Category  string `json:"category"`
	SortOrder int    `json:"sort_order"`
}

type faqUpdateInput struct {
	Question  *string `json:"question"`
	Answer    *string `json:"answer"`
	Category  *string `json:"category"`
	SortOrder *int    `json:"sort_order"`
}

type cachedFAQList struct {
	Rows []models.FAQ    `json:"rows"`
	Page pagination.Page `json:"page"`
}

// List handles GET /api/faq.
func (c *FAQController) List(w http.ResponseWriter, r *http.Request) {
	key := cacheKey("faq", "list", r.URL.RawQuery)

	var cached cachedFAQList
	if cache.Get(key, &cached) {
		response.Paginated(w, cached.Rows, cached.Page)
		return
	}

	opts := repositories.FAQListOptions{
		Params:   pagination.FromRequest(r),
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
	}

	rows, total, err := c.repo.List(r.Context(), opts)
	if err != nil {
		response.Fail(w, err)
		return
	}

	page := pagination.PageFor(opts.Params, len(rows), total)
	cache.Set(key, cachedFAQList{Rows: rows, Page: page}, config.CacheTTL()) //nolint:errcheck
	response.Paginated(w, rows, page)
}

// Get handles GET /api/faq/{id}.
func (c *FAQController) Get(w http.ResponseWriter, r *http.Request) {
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

// Create handles POST /api/faq (admin).
func (c *FAQController) Create(w http.ResponseWriter, r *http.Request) {
	var in faqCreateInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, apperr.Validation(err.Error()))
		return
	}

	if strings.TrimSpace(in.Question) == "" || strings.TrimSpace(in.Answer) == "" {
		response.Fail(w, apperr.Validation("Question and answer are required"))
		return
	}

	faq := models.FAQ{
		Question:  in.Question,
		Answer:    in.Answer,
		Category:  in.Category,
		SortOrder: in.SortOrder,
	}

	if err := c.repo.Create(r.Context(), &faq); err != nil {
		response.Fail(w, err)
		return
	}

	invalidate("faq")
	response.Created(w, faq)
}

// Update handles PUT /api/faq/{id} (admin).
func (c *FAQController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Fail(w, err)
		return
	}

	var in faqUpdateInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, apperr.Validation(err.Error()))
		return
	}

	fields := map[string]interface{}{}
	if in.Question != nil {
		fields["question"] = *in.Question
	}
	if in.Answer != nil {
		fields["answer"] = *in.Answer
	}
	if in.Category != nil {
		fields["category"] = *in.Category
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

	invalidate("faq")
	response.OK(w, row)
}

// Delete handles DELETE /api/faq/{id} (admin, soft).
func (c *FAQController) Delete(w http.ResponseWriter, r *http.Request) {
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

	invalidate("faq")
	response.OK(w, row)
}
