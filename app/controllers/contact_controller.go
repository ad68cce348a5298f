package controllers

import (
	"net/http"
	"strings"

	"github.com/isipark/siteapi/app/jobs"
	"github.com/isipark/siteapi/app/models"
	"github.com/isipark/siteapi/app/repositories"
	"github.com/isipark/siteapi/pkg/apperr"
	"github.com/isipark/siteapi/pkg/bind"
	"github.com/isipark/siteapi/pkg/logger"
	"github.com/isipark/siteapi/pkg/pagination"
	"github.com/isipark/siteapi/pkg/queue"
	"github.com/isipark/siteapi/pkg/response"
)

type ContactController struct {
	repo *repositories.ContactRepository
}

func NewContactController(repo *repositories.ContactRepository) *ContactController {
	return &ContactController{repo: repo}
}

type contactCreateInput struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"nullable,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Urgency string `json:"urgency" validate:"nullable,in=normal,urgent"`
}

type contactUpdateInput struct {
	Status     *string `json:"status" validate:"nullable,in=new,read,replied,closed"`
	Urgency    *string `json:"urgency" validate:"nullable,in=normal,urgent"`
	AdminNotes *string `json:"admin_notes"`
}

// List handles GET /api/contact (admin inbox).
func (c *ContactController) List(w http.ResponseWriter, r *http.Request) {
	opts := repositories.ContactListOptions{
		Params:  pagination.FromRequest(r),
		Search:  r.URL.Query().Get("search"),
		Status:  r.URL.Query().Get("status"),
		Urgency: r.URL.Query().Get("urgency"),
	}

	rows, total, err := c.repo.List(r.Context(), opts)
	if err != nil {
		response.Fail(w, err)
		return
	}

	response.Paginated(w, rows, pagination.PageFor(opts.Params, len(rows), total))
}

// Get handles GET /api/contact/{id} (admin).
func (c *ContactController) Get(w http.ResponseWriter, r *http.Request) {
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

// Create handles POST /api/contact. Public: captures the requester's IP
// and user agent and queues a notification email for the office inbox.
func (c *ContactController) Create(w http.ResponseWriter, r *http.Request) {
	var in contactCreateInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, apperr.Validation(err.Error()))
		return
	} else if errs != nil {
		response.ValidationErrors(w, "Validation failed", errs)
		return
	}

	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.Message) == "" {
		response.Fail(w, apperr.Validation("Name, email and message are required"))
		return
	}

	msg := models.ContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Subject:   in.Subject,
		Message:   in.Message,
		Urgency:   in.Urgency,
		SourceIP:  clientIP(r),
		UserAgent: r.UserAgent(),
	}

	if err := c.repo.Create(r.Context(), &msg); err != nil {
		response.Fail(w, err)
		return
	}

	if err := queue.Dispatch(jobs.ContactNotificationJob{MessageID: msg.ID}); err != nil {
		// Notification failure never blocks the submission.
		logger.Warn("contact notification dispatch failed", "message_id", msg.ID, "error", err)
	}

	response.Created(w, msg)
}

// Update handles PUT /api/contact/{id} (admin): status transitions and
// internal notes.
func (c *ContactController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Fail(w, err)
		return
	}

	var in contactUpdateInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, apperr.Validation(err.Error()))
		return
	} else if errs != nil {
		response.ValidationErrors(w, "Validation failed", errs)
		return
	}

	fields := map[string]interface{}{}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	if in.Urgency != nil {
		fields["urgency"] = *in.Urgency
	}
	if in.AdminNotes != nil {
		fields["admin_notes"] = *in.AdminNotes
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
	response.OK(w, row)
}

// Delete handles DELETE /api/contact/{id} (admin, physical).
func (c *ContactController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Fail(w, err)
		return
	}

	row, err := c.repo.Delete(r.Context(), id)
	if err != nil {
		response.Fail(w, err)
		return
	}
	response.OK(w, row)
}
