package http

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-builder/internal/editor"
	"resume-builder/internal/export"
	"resume-builder/internal/model"
	"resume-builder/internal/store"
)

// Toast is a short user-facing notice attached to responses.
type Toast struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant,omitempty"`
}

var (
	toastSaved     = Toast{Title: "Resume saved", Description: "Your resume has been saved to local storage"}
	toastLoaded    = Toast{Title: "Resume loaded", Description: "Your saved resume has been loaded"}
	toastNotSaved  = Toast{Title: "No saved resume", Description: "No previously saved resume was found"}
	toastMissing   = Toast{Title: "Missing information", Description: "Please enter at least your name before exporting", Variant: "destructive"}
	toastPreparing = Toast{Title: "Preparing PDF", Description: "Your resume is being generated..."}
	toastExported  = Toast{Title: "Success!", Description: "Your resume has been exported as a PDF"}
	toastFailed    = Toast{Title: "Error", Description: "Failed to export resume. Please try again.", Variant: "destructive"}
)

// JobLookup finds background export jobs by id.
type JobLookup interface {
	Get(id uuid.UUID) (export.Job, bool)
}

type Handler struct {
	session *editor.Session
	jobs    JobLookup
}

func NewHandler(s *editor.Session, jobs JobLookup) *Handler {
	return &Handler{session: s, jobs: jobs}
}

type documentResp struct {
	store.State
	Errors []model.FieldError `json:"errors"`
}

type loadResp struct {
	store.State
	Loaded bool  `json:"loaded"`
	Toast  Toast `json:"toast"`
}

func (h *Handler) GetState(c *fiber.Ctx) error {
	st, err := h.session.State(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(st)
}

func (h *Handler) UpdateDocument(c *fiber.Ctx) error {
	var d model.Document
	if err := c.BodyParser(&d); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid document"})
	}
	st, err := h.session.UpdateDocument(c.UserContext(), d)
	if err != nil {
		return err
	}
	// validation is advisory: the update above already happened
	verrs, err := model.Validate(st.Document)
	if err != nil {
		return err
	}
	return c.JSON(documentResp{State: st, Errors: fieldErrors(verrs)})
}

type templateReq struct {
	Template model.TemplateID `json:"template"`
}

func (h *Handler) SetTemplate(c *fiber.Ctx) error {
	var req templateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payload"})
	}
	err := h.session.SetTemplate(c.UserContext(), req.Template)
	switch {
	case errors.Is(err, store.ErrUnknownTemplate):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Unknown template", "template": req.Template})
	case errors.Is(err, editor.ErrClosed):
		return err
	case err != nil:
		// the selection stands in memory; only its persistence failed
		slog.Warn("http: template not persisted", "error", err)
	}
	return h.GetState(c)
}

type colorReq struct {
	ColorScheme model.ColorSchemeID `json:"colorScheme"`
}

func (h *Handler) SetColorScheme(c *fiber.Ctx) error {
	var req colorReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payload"})
	}
	err := h.session.SetColorScheme(c.UserContext(), req.ColorScheme)
	switch {
	case errors.Is(err, store.ErrUnknownColorScheme):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Unknown color scheme", "colorScheme": req.ColorScheme})
	case errors.Is(err, editor.ErrClosed):
		return err
	case err != nil:
		slog.Warn("http: color scheme not persisted", "error", err)
	}
	return h.GetState(c)
}

func (h *Handler) Save(c *fiber.Ctx) error {
	if err := h.session.Save(c.UserContext()); err != nil {
		slog.Error("http: save failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to save resume"})
	}
	return c.JSON(fiber.Map{"saved": true, "toast": toastSaved})
}

func (h *Handler) Load(c *fiber.Ctx) error {
	ok, err := h.session.Load(c.UserContext())
	if err != nil {
		return err
	}
	st, err := h.session.State(c.UserContext())
	if err != nil {
		return err
	}
	t := toastLoaded
	if !ok {
		t = toastNotSaved
	}
	return c.JSON(loadResp{State: st, Loaded: ok, Toast: t})
}

func (h *Handler) Reset(c *fiber.Ctx) error {
	if err := h.session.Reset(c.UserContext()); err != nil {
		return err
	}
	return h.GetState(c)
}

func (h *Handler) AddExperience(c *fiber.Ctx) error {
	st, err := h.session.Edit(c.UserContext(), func(d *model.Document) { d.AddExperience() })
	if err != nil {
		return err
	}
	return c.JSON(st)
}

func (h *Handler) RemoveExperience(c *fiber.Ctx) error {
	return h.removeEntry(c, (*model.Document).RemoveExperience)
}

func (h *Handler) AddEducation(c *fiber.Ctx) error {
	st, err := h.session.Edit(c.UserContext(), func(d *model.Document) { d.AddEducation() })
	if err != nil {
		return err
	}
	return c.JSON(st)
}

func (h *Handler) RemoveEducation(c *fiber.Ctx) error {
	return h.removeEntry(c, (*model.Document).RemoveEducation)
}

func (h *Handler) removeEntry(c *fiber.Ctx, remove func(*model.Document, int) bool) error {
	i, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid index"})
	}
	var found bool
	st, err := h.session.Edit(c.UserContext(), func(d *model.Document) { found = remove(d, i) })
	if err != nil {
		return err
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "entry not found"})
	}
	return c.JSON(st)
}

type currentReq struct {
	Current bool `json:"current"`
}

func (h *Handler) SetCurrent(c *fiber.Ctx) error {
	i, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid index"})
	}
	var req currentReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payload"})
	}
	var found bool
	st, err := h.session.Edit(c.UserContext(), func(d *model.Document) { found = d.SetCurrent(i, req.Current) })
	if err != nil {
		return err
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "entry not found"})
	}
	return c.JSON(st)
}

func (h *Handler) Validation(c *fiber.Ctx) error {
	verrs, err := h.session.Validate(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"valid": len(verrs) == 0, "errors": fieldErrors(verrs)})
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	page, err := h.session.Preview(c.UserContext())
	if err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.SendString(page)
}

func (h *Handler) Catalog(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"templates": model.Templates, "colors": model.ColorSchemes})
}

// StartExport kicks off a background PDF export of the current preview.
func (h *Handler) StartExport(c *fiber.Ctx) error {
	job, err := h.session.StartExport(c.UserContext(), func(j export.Job) {
		if j.State == export.JobSucceeded {
			slog.Info("http: export finished", "job", j.ID.String(), "file", j.Artifact.Name)
		}
	})
	if errors.Is(err, export.ErrMissingInformation) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": err.Error(), "toast": toastMissing})
	}
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"jobId": job.ID.String(), "status": "started", "toast": toastPreparing})
}

func (h *Handler) ExportStatus(c *fiber.Ctx) error {
	job, ok := h.job(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "export not found"})
	}
	resp := fiber.Map{"job": job}
	switch job.State {
	case export.JobSucceeded:
		resp["toast"] = toastExported
	case export.JobFailed:
		resp["toast"] = toastFailed
	default:
		resp["toast"] = toastPreparing
	}
	return c.JSON(resp)
}

func (h *Handler) ExportFile(c *fiber.Ctx) error {
	job, ok := h.job(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "export not found"})
	}
	if job.State != export.JobSucceeded || job.Artifact == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "export not ready", "status": job.State})
	}
	return c.Download(job.Artifact.Path, job.Artifact.Name)
}

func (h *Handler) job(c *fiber.Ctx) (export.Job, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return export.Job{}, false
	}
	return h.jobs.Get(id)
}

// Print returns the current preview as a PDF with host-side page breaks.
func (h *Handler) Print(c *fiber.Ctx) error {
	b, err := h.session.Print(c.UserContext())
	if err != nil {
		slog.Error("http: print failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to print resume", "toast": toastFailed})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(b)
}

func fieldErrors(v model.ValidationErrors) []model.FieldError {
	if v == nil {
		return []model.FieldError{}
	}
	return v
}
