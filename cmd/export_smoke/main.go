// Command export_smoke drives a full edit session against a real browser:
// it starts a local analytics collector, applies scripted edits, waits for
// the debounced push and exports a PDF.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/analytics"
	"resume-builder/internal/editor"
	"resume-builder/internal/export"
	"resume-builder/internal/model"
	"resume-builder/internal/store"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/infrastructure"
)

const collectorAddr = "127.0.0.1:8089"

func startCollector(records *repository.MemoryRecords) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	httpadapter.Register(app, nil, httpadapter.NewAnalyticsHandler(usecase.NewAnalytics(records)))
	go func() {
		if err := app.Listen(collectorAddr); err != nil {
			slog.Error("mock collector failed", "error", err)
			os.Exit(1)
		}
	}()
	return app
}

func main() {
	records := repository.NewMemoryRecords()
	collector := startCollector(records)
	defer collector.Shutdown()

	stateDir, err := os.MkdirTemp("", "resume-state-")
	if err != nil {
		fmt.Printf("state dir: %v\n", err)
		return
	}
	defer os.RemoveAll(stateDir)
	kv, err := infrastructure.NewFileKV(stateDir)
	if err != nil {
		fmt.Printf("file kv: %v\n", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st := store.New(kv)
	tracker := analytics.NewTracker(ctx, analytics.NewHTTPSink("http://"+collectorAddr+"/api/analytics/save"), 300*time.Millisecond)
	defer tracker.Close()
	st.Subscribe(tracker.Observe)

	pipeline := export.NewPipeline(infrastructure.NewChromedpRenderer(os.Getenv("CHROME_PATH")), "exports")
	session := editor.NewSession(st, pipeline)
	defer session.Close()

	_, err = session.Edit(ctx, func(d *model.Document) {
		d.PersonalInfo = model.PersonalInfo{
			FullName: "Test User",
			JobTitle: "Engineer",
			Email:    "t@example.com",
			Website:  "https://www.example.co.uk/portfolio",
			Summary:  "Builds reliable data pipelines and the services around them.",
		}
		d.WorkExperience[0] = model.Experience{Company: "Acme", Position: "Engineer", StartDate: "2020-01", Current: true,
			Description: "Did things that matter."}
		d.AddExperience()
		d.WorkExperience[1] = model.Experience{Company: "Initech", Position: "Developer", StartDate: "2017-03", EndDate: "2019-12"}
		d.Education[0] = model.Education{Institution: "State University", Degree: "BSc Computer Science", StartDate: "2013", EndDate: "2017"}
		d.Skills = model.Skills{Technical: "Go, Postgres, Redis", Soft: "Mentoring, Writing"}
	})
	if err != nil {
		fmt.Printf("edit failed: %v\n", err)
		return
	}
	if err := session.SetTemplate(ctx, model.TemplateModern); err != nil {
		fmt.Printf("set template: %v\n", err)
		return
	}
	if err := session.SetColorScheme(ctx, model.ColorGreen); err != nil {
		fmt.Printf("set color: %v\n", err)
		return
	}
	if err := session.Save(ctx); err != nil {
		fmt.Printf("save: %v\n", err)
		return
	}

	done := make(chan export.Job, 1)
	job, err := session.StartExport(ctx, func(j export.Job) { done <- j })
	if err != nil {
		fmt.Printf("export not started: %v\n", err)
		return
	}
	fmt.Printf("export %s started\n", job.ID)

	select {
	case j := <-done:
		if j.State != export.JobSucceeded {
			fmt.Printf("export failed: %s\n", j.Error)
			return
		}
		fmt.Printf("export completed: %s (%d pages, %d bytes)\n", j.Artifact.Path, j.Artifact.Pages, j.Artifact.Size)
	case <-ctx.Done():
		fmt.Printf("export timed out: %v\n", ctx.Err())
		return
	}

	// the debounced push has fired by now; give the request a moment to land
	time.Sleep(500 * time.Millisecond)
	usage, _ := records.CountByTemplate(ctx)
	fmt.Printf("analytics records by template: %v\n", usage)
}
