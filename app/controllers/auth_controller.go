package controllers

import (
	"net/http"

	"github.com/isipark/siteapi/app/repositories"
	"github.com/isipark/siteapi/pkg/apperr"
	"github.com/isipark/siteapi/pkg/auth"
	"github.com/isipark/siteapi/pkg/bind"
	"github.com/isipark/siteapi/pkg/response"
)

type AuthController struct {
	admins *repositories.AdminUserRepository
}

func NewAuthController(admins *repositories.AdminUserRepository) *AuthController {
	return &AuthController{admins: admins}
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/auth/login. The same "Invalid credentials"
// answer covers unknown email and wrong password so the endpoint does
// not leak which accounts exist.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, apperr.Validation(err.Error()))
		return
	} else if errs != nil {
		response.ValidationErrors(w, "Validation failed", errs)
		return
	}

	admin, err := c.admins.FindByEmail(r.Context(), in.Email)
	if err != nil || !auth.CheckPassword(admin.PasswordHash, in.Password) {
		response.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		response.Fail(w, apperr.Query("Could not issue token", err))
		return
	}

	response.OK(w, map[string]interface{}{
		"token": token,
		"admin": admin,
	})
}
