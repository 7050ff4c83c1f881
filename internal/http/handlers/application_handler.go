package handlers

import (
	"jobdesk/internal/domain"
	applog "jobdesk/internal/log"
	"jobdesk/internal/services"
	"jobdesk/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ApplicationHandler struct {
	Apps *services.ApplicationService
}

// POST /jobs/:id/apply
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	jobID, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid job id")
	}
	var req struct {
		CoverLetter string `json:"coverLetter"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "malformed body")
		}
	}
	a, err := h.Apps.Apply(currentUser(c), jobID, req.CoverLetter)
	if err != nil {
		return fail(c, "application.create.fail", err)
	}
	applog.Audit(c, "application.create", map[string]any{"job_id": jobID, "application_id": a.ID})
	return c.Status(fiber.StatusCreated).JSON(a)
}

// GET /applications
func (h *ApplicationHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.Apps.ListMine(currentUser(c))
	if err != nil {
		return fail(c, "application.list.fail", err)
	}
	return c.JSON(out)
}

// GET /jobs/:id/applications
func (h *ApplicationHandler) ListForJob(c *fiber.Ctx) error {
	jobID, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid job id")
	}
	out, err := h.Apps.ListForJob(currentUser(c), jobID)
	if err != nil {
		return fail(c, "application.list.job.fail", err)
	}
	return c.JSON(out)
}

// PUT /applications/:id/status
func (h *ApplicationHandler) SetStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	if !domain.ValidAppStatus(req.Status) {
		return badRequest(c, "invalid status")
	}
	a, err := h.Apps.SetStatus(currentUser(c), id, req.Status)
	if err != nil {
		return fail(c, "application.status.fail", err)
	}
	applog.Audit(c, "application.status", map[string]any{"application_id": id, "status": req.Status})
	return c.JSON(a)
}
