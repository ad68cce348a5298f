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
	"github.com/isipark/siteapi/pkg/response"
)

type CategoryController struct {
	repo *repositories.CategoryRepository
}

func NewCategoryController(repo *repositories.CategoryRepository) *CategoryController {
	return &CategoryController{repo: repo}
}

type categoryCreateInput struct {
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

// List handles GET /api/categories.
func (c *CategoryController) List(w http.ResponseWriter, r *http.Request) {
	key := cacheKey("categories", "list", "all")

	var cached []models.Category
	if cache.Get(key, &cached) {
		response.OK(w, cached)
		return
	}

	rows, err := c.repo.List(r.Context())
	if err != nil {
		response.Fail(w, err)
		return
	}

	cache.Set(key, rows, config.CacheTTL()) //nolint:errcheck
	response.OK(w, rows)
}

// Create handles POST /api/categories.
func (c *CategoryController) Create(w http.ResponseWriter, r *http.Request) {
	var in categoryCreateInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, apperr.Validation(err.Error()))
		return
	}

	if strings.TrimSpace(in.Name) == "" {
		response.Fail(w, apperr.Validation("Name is required"))
		return
	}

	cat := models.Category{Name: in.Name, SortOrder: in.SortOrder}
	if err := c.repo.Create(r.Context(), &cat); err != nil {
		response.Fail(w, err)
		return
	}

	invalidate("categories")
	response.Created(w, cat)
}
