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

type ProductController struct {
	repo *repositories.ProductRepository
}

func NewProductController(repo *repositories.ProductRepository) *ProductController {
	return &ProductController{repo: repo}
}

type productCreateInput struct {
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Brand          string            `json:"brand"`
	CategoryID     *uint             `json:"category_id"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	Price          float64           `json:"price"`
	InStock        *bool             `json:"in_stock"`
	ImageURL       string            `json:"image_url"`
	SortOrder      int               `json:"sort_order"`
}

type productUpdateInput struct {
	Name           *string           `json:"name"`
	Description    *string           `json:"description"`
	Brand          *string           `json:"brand"`
	CategoryID     *uint             `json:"category_id"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	Price          *float64          `json:"price"`
	InStock        *bool             `json:"in_stock"`
	ImageURL       *string           `json:"image_url"`
	SortOrder      *int              `json:"sort_order"`
}

type cachedProductList struct {
	Rows []models.Product `json:"rows"`
	Page pagination.Page  `json:"page"`
}

// List handles GET /api/products.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	key := cacheKey("products", "list", r.URL.RawQuery)

	var cached cachedProductList
	if cache.Get(key, &cached) {
		response.Paginated(w, cached.Rows, cached.Page)
		return
	}

	opts := repositories.ProductListOptions{
		Params:     pagination.FromRequest(r),
		Search:     r.URL.Query().Get("search"),
		CategoryID: uintQuery(r, "category_id"),
		InStock:    boolQuery(r, "in_stock"),
	}

	rows, total, err := c.repo.List(r.Context(), opts)
	if err != nil {
		response.Fail(w, err)
		return
	}

	page := pagination.PageFor(opts.Params, len(rows), total)
	cache.Set(key, cachedProductList{Rows: rows, Page: page}, config.CacheTTL()) //nolint:errcheck
	response.Paginated(w, rows, page)
}

// Get handles GET /api/products/{id}.
func (c *ProductController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Fail(w, err)
		return
	}

	key := cacheKey("products", "get", idKey(id))
	var cached models.Product
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

// Create handles POST /api/products (admin).
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var in productCreateInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, apperr.Validation(err.Error()))
		return
	}

	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Description) == "" || strings.TrimSpace(in.Brand) == "" {
		response.Fail(w, apperr.Validation("Name, description and brand are required"))
		return
	}

	inStock := true
	if in.InStock != nil {
		inStock = *in.InStock
	}

	p := models.Product{
		Name:           in.Name,
		Description:    in.Description,
		Brand:          in.Brand,
		CategoryID:     in.CategoryID,
		Features:       toJSON(in.Features),
		Specifications: toJSON(in.Specifications),
		Price:          in.Price,
		InStock:        inStock,
		ImageURL:       in.ImageURL,
		SortOrder:      in.SortOrder,
	}

	if err := c.repo.Create(r.Context(), &p); err != nil {
		response.Fail(w, err)
		return
	}

	invalidate("products")
	response.Created(w, p)
}

// Update handles PUT /api/products/{id} (admin).
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Fail(w, err)
		return
	}

	var in productUpdateInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, apperr.Validation(err.Error()))
		return
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Brand != nil {
		fields["brand"] = *in.Brand
	}
	if in.CategoryID != nil {
		fields["category_id"] = *in.CategoryID
	}
	if in.Features != nil {
		fields["features"] = toJSON(in.Features)
	}
	if in.Specifications != nil {
		fields["specifications"] = toJSON(in.Specifications)
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.InStock != nil {
		fields["in_stock"] = *in.InStock
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

	invalidate("products")
	response.OK(w, row)
}

// Delete handles DELETE /api/products/{id} (admin, soft).
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
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

	invalidate("products")
	response.OK(w, row)
}
