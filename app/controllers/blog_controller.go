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

type BlogController struct {
	repo *repositories.BlogRepository
}

func NewBlogController(repo *repositories.BlogRepository) *BlogController {
	return &BlogController{repo: repo}
}

type blogCreateInput struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Excerpt     string   `json:"excerpt"`
	Tags        []string `json:"tags"`
	Author      string   `json:"author"`
	CoverURL    string   `json:"cover_url"`
	IsPublished bool     `json:"is_published"`
}

type blogUpdateInput struct {
	Title       *string  `json:"title"`
	Content     *string  `json:"content"`
	Excerpt     *string  `json:"excerpt"`
	Tags        []string `json:"tags"`
	Author      *string  `json:"author"`
	CoverURL    *string  `json:"cover_url"`
	IsPublished *bool    `json:"is_published"`
}

type cachedBlogList struct {
	Rows []models.BlogPost `json:"rows"`
	Page pagination.Page   `json:"page"`
}

// List handles GET /api/blog. Only published posts are public.
func (c *BlogController) List(w http.ResponseWriter, r *http.Request) {
	key := cacheKey("blog", "list", r.URL.RawQuery)

	var cached cachedBlogList
	if cache.Get(key, &cached) {
		response.Paginated(w, cached.Rows, cached.Page)
		return
	}

	opts := repositories.BlogListOptions{
		Params:        pagination.FromRequest(r),
		Search:        r.URL.Query().Get("search"),
		PublishedOnly: true,
	}

	rows, total, err := c.repo.List(r.Context(), opts)
	if err != nil {
		response.Fail(w, err)
		return
	}

	page := pagination.PageFor(opts.Params, len(rows), total)
	cache.Set(key, cachedBlogList{Rows: rows, Page: page}, config.CacheTTL()) //nolint:errcheck
	response.Paginated(w, rows, page)
}

// Get handles GET /api/blog/{id}.
func (c *BlogController) Get(w http.ResponseWriter, r *http.Request) {
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

// Create handles POST /api/blog (admin).
func (c *BlogController) Create(w http.ResponseWriter, r *http.Request) {
	var in blogCreateInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, apperr.Validation(err.Error()))
		return
	}

	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		response.Fail(w, apperr.Validation("Title and content are required"))
		return
	}

	post := models.BlogPost{
		Title:       in.Title,
		Content:     in.Content,
		Excerpt:     in.Excerpt,
		Tags:        toJSON(in.Tags),
		Author:      in.Author,
		CoverURL:    in.CoverURL,
		IsPublished: in.IsPublished,
	}

	if err := c.repo.Create(r.Context(), &post); err != nil {
		response.Fail(w, err)
		return
	}

	invalidate("blog")
	response.Created(w, post)
}

// Update handles PUT /api/blog/{id} (admin).
func (c *BlogController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Fail(w, err)
		return
	}

	var in blogUpdateInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, apperr.Validation(err.Error()))
		return
	}

	fields := map[string]interface{}{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Content != nil {
		fields["content"] = *in.Content
	}
	if in.Excerpt != nil {
		fields["excerpt"] = *in.Excerpt
	}
	if in.Tags != nil {
		fields["tags"] = toJSON(in.Tags)
	}
	if in.Author != nil {
		fields["author"] = *in.Author
	}
	if in.CoverURL != nil {
		fields["cover_url"] = *in.CoverURL
	}
	if in.IsPublished != nil {
		fields["is_published"] = *in.IsPublished
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

	invalidate("blog")
	response.OK(w, row)
}

// Delete handles DELETE /api/blog/{id} (admin, soft).
func (c *BlogController) Delete(w http.ResponseWriter, r *http.Request) {
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

	invalidate("blog")
	response.OK(w, row)
}
