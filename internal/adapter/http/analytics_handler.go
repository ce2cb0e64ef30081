package http

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/domain"
	"resume-builder/internal/usecase"
)

// AnalyticsHandler serves the collector side of the analytics push.
type AnalyticsHandler struct {
	svc *usecase.Analytics
}

func NewAnalyticsHandler(svc *usecase.Analytics) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

func (h *AnalyticsHandler) Save(c *fiber.Ctx) error {
	rec, err := h.svc.Save(c.UserContext(), c.Body())
	if err != nil {
		var pe *usecase.PayloadError
		if errors.As(err, &pe) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid resume data", "errors": pe.Issues})
		}
		slog.Error("analytics: save failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to save resume analytics"})
	}
	return c.JSON(fiber.Map{"success": true, "resumeId": rec.ID})
}

func (h *AnalyticsHandler) Resumes(c *fiber.Ctx) error {
	resumes, err := h.svc.List(c.UserContext())
	if err != nil {
		slog.Error("analytics: list failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch resume analytics"})
	}
	if resumes == nil {
		resumes = []domain.ResumeRecord{}
	}
	return c.JSON(fiber.Map{"resumes": resumes})
}

func (h *AnalyticsHandler) Templates(c *fiber.Ctx) error {
	templates, err := h.svc.TemplateUsage(c.UserContext())
	if err != nil {
		slog.Error("analytics: template usage failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch template analytics"})
	}
	return c.JSON(fiber.Map{"templates": templates})
}

func (h *AnalyticsHandler) Colors(c *fiber.Ctx) error {
	colors, err := h.svc.ColorUsage(c.UserContext())
	if err != nil {
		slog.Error("analytics: color usage failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch color analytics"})
	}
	return c.JSON(fiber.Map{"colors": colors})
}
