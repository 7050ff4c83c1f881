package handlers

import (
	applog "jobdesk/internal/log"
	"jobdesk/internal/services"
	"jobdesk/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type OrgHandler struct {
	Orgs *services.OrgService
}

type orgReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Location    string `json:"location"`
}

// POST /org/create
func (h *OrgHandler) Create(c *fiber.Ctx) error {
	var req orgReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return badRequest(c, "name is required")
	}
	o, err := h.Orgs.Create(currentUser(c), name, req.Description, req.Website, req.Location)
	if err != nil {
		return fail(c, "org.create.fail", err)
	}
	applog.Audit(c, "org.create", map[string]any{"org_id": o.ID})
	return c.Status(fiber.StatusCreated).JSON(o)
}

// GET /org
func (h *OrgHandler) List(c *fiber.Ctx) error {
	out, err := h.Orgs.List()
	if err != nil {
		return fail(c, "org.list.fail", err)
	}
	return c.JSON(out)
}

// GET /org/:id
func (h *OrgHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	o, err := h.Orgs.Get(id)
	if err != nil {
		return fail(c, "org.get.fail", err)
	}
	return c.JSON(o)
}

// PUT /org/:id
func (h *OrgHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	var req orgReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return badRequest(c, "name is required")
	}
	o, err := h.Orgs.Update(currentUser(c), id, name, req.Description, req.Website, req.Location)
	if err != nil {
		return fail(c, "org.update.fail", err)
	}
	applog.Audit(c, "org.update", map[string]any{"org_id": id})
	return c.JSON(o)
}

// DELETE /org/:id
func (h *OrgHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	if err := h.Orgs.Delete(currentUser(c), id); err != nil {
		return fail(c, "org.delete.fail", err)
	}
	applog.Audit(c, "org.delete", map[string]any{"org_id": id})
	return c.JSON(fiber.Map{"ok": true})
}
