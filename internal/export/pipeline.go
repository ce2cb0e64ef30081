package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"resume-builder/internal/render"
)

const (
	// RasterScale is the device scale factor used when rasterizing.
	RasterScale = 2.0
	// RasterQuality is the JPEG quality for rasterized pages (0.98).
	RasterQuality = 98

	filenameSuffix = "_Resume.pdf"
)

// Host is the browser that turns HTML into pixels and paper.
type Host interface {
	// Rasterize loads html at the given CSS width and device scale and
	// returns a full-length JPEG capture.
	Rasterize(ctx context.Context, html string, widthPx int64, scale float64, quality int) ([]byte, error)
	// PrintToPDF prints html on A4 portrait. With preferCSSPageSize the
	// document's own @page rules and page breaks win.
	PrintToPDF(ctx context.Context, html string, preferCSSPageSize bool) ([]byte, error)
}

// Artifact describes a published export.
type Artifact struct {
	Name  string `json:"filename"`
	Path  string `json:"path"`
	Pages int    `json:"pages"`
	Size  int64  `json:"size"`
}

type Pipeline struct {
	host Host
	dir  string
	jobs *Jobs
}

func NewPipeline(host Host, dir string) *Pipeline {
	return &Pipeline{host: host, dir: dir, jobs: NewJobs()}
}

func (p *Pipeline) Jobs() *Jobs { return p.jobs }

var whitespaceRun = regexp.MustCompile(`\s+`)

// Filename derives "<name with whitespace runs as _>_Resume.pdf".
func Filename(fullName string) string {
	return whitespaceRun.ReplaceAllString(fullName, "_") + filenameSuffix
}

// Export renders node into a paginated PDF named after fullName and
// publishes it in the output directory. It never touches editor state.
func (p *Pipeline) Export(ctx context.Context, node *render.Node, fullName string) (*Artifact, error) {
	if fullName == "" {
		return nil, ErrMissingInformation
	}
	name := Filename(fullName)

	page, err := render.HTMLDocument(node, fullName)
	if err != nil {
		return nil, fail("html", err)
	}
	raster, err := p.host.Rasterize(ctx, page, PageWidthPx, RasterScale, RasterQuality)
	if err != nil {
		return nil, fail("rasterize", err)
	}
	pages, err := Paginate(raster, RasterQuality)
	if err != nil {
		return nil, fail("paginate", err)
	}
	sheets, err := pagesDocument(pages)
	if err != nil {
		return nil, fail("paginate", err)
	}
	pdfBytes, err := p.host.PrintToPDF(ctx, sheets, true)
	if err != nil {
		return nil, fail("print", err)
	}
	if err := verifyPDF(pdfBytes, len(pages)); err != nil {
		return nil, fail("verify", err)
	}

	path, err := p.publish(name, pdfBytes)
	if err != nil {
		return nil, fail("write", err)
	}
	slog.Info("export: pdf written", "file", name, "pages", len(pages), "bytes", len(pdfBytes))
	return &Artifact{Name: name, Path: path, Pages: len(pages), Size: int64(len(pdfBytes))}, nil
}

// Print hands the rendered page to the host's print facility as is; page
// breaks are left to the host.
func (p *Pipeline) Print(ctx context.Context, node *render.Node, title string) ([]byte, error) {
	page, err := render.HTMLDocument(node, title)
	if err != nil {
		return nil, fail("html", err)
	}
	b, err := p.host.PrintToPDF(ctx, page, true)
	if err != nil {
		return nil, fail("print", err)
	}
	return b, nil
}

// publish writes through a temp file and renames so a reader never sees
// a partial artifact.
func (p *Pipeline) publish(name string, b []byte) (string, error) {
	if filepath.Base(name) != name {
		return "", fmt.Errorf("file name %q contains a path separator", name)
	}
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(p.dir, ".export-*.pdf")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	dest := filepath.Join(p.dir, name)
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", fmt.Errorf("publish %s: %w", name, err)
	}
	return dest, nil
}
