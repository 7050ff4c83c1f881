package handlers

import (
	applog "jobdesk/internal/log"
	"jobdesk/internal/services"
	"jobdesk/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type JobHandler struct {
	Jobs *services.JobService
}

type jobReq struct {
	CategoryID     string  `json:"categoryId"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Salary         float64 `json:"salary"`
	EmploymentType string  `json:"employmentType"`
	Level          string  `json:"level"`
	Skills         string  `json:"skills"`
}

func parseJobInput(c *fiber.Ctx) (services.JobInput, string) {
	var req jobReq
	if err := c.BodyParser(&req); err != nil {
		return services.JobInput{}, "malformed body"
	}
	title, ok := validate.Name(req.Title)
	if !ok {
		return services.JobInput{}, "title is required"
	}
	emp, ok := validate.EmploymentType(req.EmploymentType)
	if !ok {
		return services.JobInput{}, "invalid employment type"
	}
	level, ok := validate.Level(req.Level)
	if !ok {
		return services.JobInput{}, "invalid level"
	}
	if req.Salary < 0 {
		return services.JobInput{}, "salary must be >= 0"
	}
	if req.CategoryID != "" {
		if _, ok := validate.ID(req.CategoryID); !ok {
			return services.JobInput{}, "invalid category id"
		}
	}
	return services.JobInput{
		CategoryID:     req.CategoryID,
		Title:          title,
		Description:    req.Description,
		Salary:         req.Salary,
		EmploymentType: emp,
		Level:          level,
		Skills:         req.Skills,
	}, ""
}

// POST /jobs
func (h *JobHandler) Create(c *fiber.Ctx) error {
	in, msg := parseJobInput(c)
	if msg != "" {
		return badRequest(c, msg)
	}
	j, err := h.Jobs.Create(currentUser(c), in)
	if err != nil {
		return fail(c, "job.create.fail", err)
	}
	applog.Audit(c, "job.create", map[string]any{"job_id": j.ID})
	return c.Status(fiber.StatusCreated).JSON(j)
}

// GET /jobs?category=&org=&page=
func (h *JobHandler) List(c *fiber.Ctx) error {
	category := c.Query("category")
	org := c.Query("org")
	if category != "" {
		if _, ok := validate.ID(category); !ok {
			return badRequest(c, "invalid category")
		}
	}
	if org != "" {
		if _, ok := validate.ID(org); !ok {
			return badRequest(c, "invalid org")
		}
	}
	page := validate.Page(c.Query("page", "1"))
	out, err := h.Jobs.List(category, org, page, 20)
	if err != nil {
		return fail(c, "job.list.fail", err)
	}
	return c.JSON(out)
}

// GET /jobs/:id
func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	j, err := h.Jobs.Get(id)
	if err != nil {
		return fail(c, "job.get.fail", err)
	}
	return c.JSON(j)
}

// PUT /jobs/:id
func (h *JobHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	in, msg := parseJobInput(c)
	if msg != "" {
		return badRequest(c, msg)
	}
	j, err := h.Jobs.Update(currentUser(c), id, in)
	if err != nil {
		return fail(c, "job.update.fail", err)
	}
	applog.Audit(c, "job.update", map[string]any{"job_id": id})
	return c.JSON(j)
}

// DELETE /jobs/:id
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	if err := h.Jobs.Delete(currentUser(c), id); err != nil {
		return fail(c, "job.delete.fail", err)
	}
	applog.Audit(c, "job.delete", map[string]any{"job_id": id})
	return c.JSON(fiber.Map{"ok": true})
}
