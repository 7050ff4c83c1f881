package handlers

import (
	"database/sql"
	"errors"

	"jobdesk/internal/domain"
	applog "jobdesk/internal/log"
	"jobdesk/internal/repos"
	"jobdesk/internal/services"
	"jobdesk/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CategoryHandler talks to the repo directly; the taxonomy has no
// business rules beyond name uniqueness, which the index enforces.
type CategoryHandler struct {
	Cats *repos.CategoryRepo
}

type categoryReq struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// GET /categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.Cats.List()
	if err != nil {
		return fail(c, "category.list.fail", err)
	}
	return c.JSON(out)
}

// GET /categories/:id
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	cat, err := h.Cats.ByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return fail(c, "category.get.fail", services.ErrNotFound)
	}
	if err != nil {
		return fail(c, "category.get.fail", err)
	}
	return c.JSON(cat)
}

// POST /categories (admin)
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req categoryReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return badRequest(c, "name is required")
	}
	cat := &domain.Category{ID: uuid.NewString(), Name: name, ImageURL: req.ImageURL}
	if err := h.Cats.Create(cat); err != nil {
		if repos.IsUniqueViolation(err) {
			return badRequest(c, "category already exists")
		}
		return fail(c, "category.create.fail", err)
	}
	applog.Audit(c, "category.create", map[string]any{"category_id": cat.ID})
	out, err := h.Cats.ByID(cat.ID)
	if err != nil {
		return fail(c, "category.create.fail", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PUT /categories/:id (admin)
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	var req categoryReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return badRequest(c, "name is required")
	}
	if err := h.Cats.Update(&domain.Category{ID: id, Name: name, ImageURL: req.ImageURL}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fail(c, "category.update.fail", services.ErrNotFound)
		}
		return fail(c, "category.update.fail", err)
	}
	applog.Audit(c, "category.update", map[string]any{"category_id": id})
	out, err := h.Cats.ByID(id)
	if err != nil {
		return fail(c, "category.update.fail", err)
	}
	return c.JSON(out)
}

// DELETE /categories/:id (admin)
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	if err := h.Cats.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fail(c, "category.delete.fail", services.ErrNotFound)
		}
		return fail(c, "category.delete.fail", err)
	}
	applog.Audit(c, "category.delete", map[string]any{"category_id": id})
	return c.JSON(fiber.Map{"ok": true})
}
