package controllers

import (
	"net/http"

	"github.com/isipark/siteapi/app/models"
	"github.com/isipark/siteapi/app/repositories"
	"github.com/isipark/siteapi/config"
	"github.com/isipark/siteapi/pkg/apperr"
	"github.com/isipark/siteapi/pkg/bind"
	"github.com/isipark/siteapi/pkg/cache"
	"github.com/isipark/siteapi/pkg/response"
)

type CompanyController struct {
	repo *repositories.CompanyRepository
}

func NewCompanyController(repo *repositories.CompanyRepository) *CompanyController {
	return &CompanyController{repo: repo}
}

type companyUpdateInput struct {
	About          *string           `json:"about"`
	Mission        *string           `json:"mission"`
	Vision         *string           `json:"vision"`
	Address        *string           `json:"address"`
	Phone          *string           `json:"phone"`
	Email          *string           `json:"email"`
	WorkingHours   *string           `json:"working_hours"`
	SocialLinks    map[string]string `json:"social_links"`
	Values         []string          `json:"values"`
	Certifications []string          `json:"certifications"`
}

// Get handles GET /api/company.
func (c *CompanyController) Get(w http.ResponseWriter, r *http.Request) {
	key := cacheKey("company", "get", "singleton")

	var cached models.CompanyInfo
	if cache.Get(key, &cached) {
		response.OK(w, cached)
		return
	}

	row, err := c.repo.Get(r.Context())
	if err != nil {
		response.Fail(w, err)
		return
	}

	cache.Set(key, row, config.CacheTTL()) //nolint:errcheck
	response.OK(w, row)
}

// Update handles PUT /api/company (admin). The write is an atomic upsert
// on the singleton key; omitted fields keep their stored values.
func (c *CompanyController) Update(w http.ResponseWriter, r *http.Request) {
	var in companyUpdateInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, apperr.Validation(err.Error()))
		return
	}

	// Merge over the existing row so a partial payload never clears
	// fields. A missing row starts from zero values.
	info := models.CompanyInfo{}
	if existing, err := c.repo.Get(r.Context()); err == nil {
		info = *existing
	}

	if in.About != nil {
		info.About = *in.About
	}
	if in.Mission != nil {
		info.Mission = *in.Mission
	}
	if in.Vision != nil {
		info.Vision = *in.Vision
	}
	if in.Address != nil {
		info.Address = *in.Address
	}
	if in.Phone != nil {
		info.Phone = *in.Phone
	}
	if in.Email != nil {
		info.Email = *in.Email
	}
	if in.WorkingHours != nil {
		info.WorkingHours = *in.WorkingHours
	}
	if in.SocialLinks != nil {
		info.SocialLinks = toJSON(in.SocialLinks)
	}
	if in.Values != nil {
		info.Values = toJSON(in.Values)
	}
	if in.Certifications != nil {
		info.Certifications = toJSON(in.Certifications)
	}

	row, err := c.repo.Upsert(r.Context(), &info)
	if err != nil {
		response.Fail(w, err)
		return
	}

	invalidate("company")
	response.OK(w, row)
}
