package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"jobdesk/internal/config"
	"jobdesk/internal/domain"
	"jobdesk/internal/http/handlers"
	applog "jobdesk/internal/log"
	"jobdesk/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	deps := handlers.NewDeps(db, cfg)
	authH := deps.AuthHandler

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	requireAuth := handlers.RequireAuth(deps.Auth)
	employerOnly := handlers.RequireRoles(domain.RoleEmployer)
	jobseekerOnly := handlers.RequireRoles(domain.RoleJobseeker)
	adminOnly := handlers.RequireRoles(domain.RoleAdmin)

	// ---------- Auth (register/login throttled) ----------
	authLimiter := limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.auth.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, try again later"})
		},
	})
	app.Post("/auth/register", authLimiter, authH.Register)
	app.Post("/auth/login", authLimiter, authH.Login)
	app.Post("/auth/logout", authH.Logout)
	app.Get("/auth/user", requireAuth, authH.Me)
	app.Put("/auth/user", requireAuth, authH.UpdateProfile)
	app.Delete("/auth/user", requireAuth, authH.DeleteAccount)

	// ---------- Organizations ----------
	app.Post("/org/create", requireAuth, employerOnly, deps.OrgHandler.Create)
	app.Get("/org", deps.OrgHandler.List)
	app.Get("/org/:id", deps.OrgHandler.Get)
	app.Put("/org/:id", requireAuth, handlers.RequireRoles(domain.RoleEmployer, domain.RoleAdmin), deps.OrgHandler.Update)
	app.Delete("/org/:id", requireAuth, handlers.RequireRoles(domain.RoleEmployer, domain.RoleAdmin), deps.OrgHandler.Delete)

	// ---------- Jobs ----------
	app.Post("/jobs", requireAuth, employerOnly, deps.JobHandler.Create)
	app.Get("/jobs", deps.JobHandler.List)
	app.Get("/jobs/:id", deps.JobHandler.Get)
	app.Put("/jobs/:id", requireAuth, handlers.RequireRoles(domain.RoleEmployer, domain.RoleAdmin), deps.JobHandler.Update)
	app.Delete("/jobs/:id", requireAuth, handlers.RequireRoles(domain.RoleEmployer, domain.RoleAdmin), deps.JobHandler.Delete)

	// ---------- Applications ----------
	app.Post("/jobs/:id/apply", requireAuth, jobseekerOnly, deps.ApplicationHandler.Apply)
	app.Get("/applications", requireAuth, jobseekerOnly, deps.ApplicationHandler.ListMine)
	app.Get("/jobs/:id/applications", requireAuth, handlers.RequireRoles(domain.RoleEmployer, domain.RoleAdmin), deps.ApplicationHandler.ListForJob)
	app.Put("/applications/:id/status", requireAuth, handlers.RequireRoles(domain.RoleEmployer, domain.RoleAdmin), deps.ApplicationHandler.SetStatus)

	// ---------- Categories ----------
	app.Get("/categories", deps.CategoryHandler.List)
	app.Get("/categories/:id", deps.CategoryHandler.Get)
	app.Post("/categories", requireAuth, adminOnly, deps.CategoryHandler.Create)
	app.Put("/categories/:id", requireAuth, adminOnly, deps.CategoryHandler.Update)
	app.Delete("/categories/:id", requireAuth, adminOnly, deps.CategoryHandler.Delete)

	// ---------- Admin ----------
	admin := app.Group("/admin", requireAuth, adminOnly)
	admin.Get("/users", deps.AdminHandler.ListUsers)
	admin.Post("/users/:id/verify", deps.AdminHandler.ToggleVerified)
	admin.Delete("/users/:id", deps.AdminHandler.DeleteUser)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
