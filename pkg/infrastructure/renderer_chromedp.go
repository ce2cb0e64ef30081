package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromedpRenderer drives a headless Chrome per call. It is the export
// host: rasterizing for PDF export and printing for the print action.
type ChromedpRenderer struct {
	execPath string
	timeout  time.Duration
}

func NewChromedpRenderer(execPath string) *ChromedpRenderer {
	return &ChromedpRenderer{execPath: execPath, timeout: 60 * time.Second}
}

// Rasterize captures the whole page as JPEG at the given CSS width and
// device scale factor.
func (r *ChromedpRenderer) Rasterize(ctx context.Context, html string, widthPx int64, scale float64, quality int) ([]byte, error) {
	var buf []byte
	err := r.run(ctx, html,
		chromedp.EmulateViewport(widthPx, widthPx*297/210, chromedp.EmulateScale(scale)),
		chromedp.FullScreenshot(&buf, quality),
	)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// PrintToPDF prints the loaded page on A4 portrait with backgrounds.
func (r *ChromedpRenderer) PrintToPDF(ctx context.Context, html string, preferCSSPageSize bool) ([]byte, error) {
	var pdfBuf []byte
	err := r.run(ctx, html, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		// A4: 210mm x 297mm -> inches: 8.27 x 11.69
		pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
			WithLandscape(false).
			WithPaperWidth(8.27).
			WithPaperHeight(11.69).
			WithMarginTop(0).
			WithMarginBottom(0).
			WithMarginLeft(0).
			WithMarginRight(0).
			WithPreferCSSPageSize(preferCSSPageSize).
			Do(ctx)
		return err
	}))
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}

// run loads html from a temp file and executes actions against it.
func (r *ChromedpRenderer) run(ctx context.Context, html string, actions ...chromedp.Action) error {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.execPath != "" {
		opts = append(opts, chromedp.ExecPath(r.execPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	ctx2, cancel2 := context.WithTimeout(cctx, r.timeout)
	defer cancel2()

	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return err
	}

	all := append([]chromedp.Action{
		chromedp.Navigate("file://" + htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
	}, actions...)
	return chromedp.Run(ctx2, all...)
}
