package http

import (
	"github.com/gofiber/fiber/v2"
)

// Register mounts the editor and analytics routes. Either handler may be
// nil when that side is not served.
func Register(app *fiber.App, h *Handler, a *AnalyticsHandler) {
	api := app.Group("/api")

	if h != nil {
		api.Get("/catalog", h.Catalog)

		r := api.Group("/resume")
		r.Get("/state", h.GetState)
		r.Put("/document", h.UpdateDocument)
		r.Put("/template", h.SetTemplate)
		r.Put("/color", h.SetColorScheme)
		r.Post("/save", h.Save)
		r.Post("/load", h.Load)
		r.Post("/reset", h.Reset)
		r.Post("/experience", h.AddExperience)
		r.Delete("/experience/:index", h.RemoveExperience)
		r.Put("/experience/:index/current", h.SetCurrent)
		r.Post("/education", h.AddEducation)
		r.Delete("/education/:index", h.RemoveEducation)
		r.Get("/validation", h.Validation)
		r.Get("/preview", h.Preview)
		r.Post("/export", h.StartExport)
		r.Get("/export/:id", h.ExportStatus)
		r.Get("/export/:id/file", h.ExportFile)
		r.Post("/print", h.Print)
	}

	if a != nil {
		an := api.Group("/analytics")
		an.Post("/save", a.Save)
		an.Get("/resumes", a.Resumes)
		an.Get("/templates", a.Templates)
		an.Get("/colors", a.Colors)
	}
}

// ErrorHandler renders unhandled handler errors as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
