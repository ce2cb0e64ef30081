package export

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"image"
	"image/draw"
	"image/jpeg"
)

// A4 portrait. Width in CSS pixels at 96dpi.
const (
	PageWidthMM  = 210
	PageHeightMM = 297
	PageWidthPx  = 794
)

// Paginate cuts a full-length raster into page-sized JPEG slices. The page
// height follows the A4 aspect ratio of the raster's own width, so the
// upscaling factor carries through unchanged.
func Paginate(raster []byte, quality int) ([][]byte, error) {
	src, err := jpeg.Decode(bytes.NewReader(raster))
	if err != nil {
		return nil, fmt.Errorf("decode raster: %w", err)
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, errors.New("empty raster")
	}
	pageH := b.Dx() * PageHeightMM / PageWidthMM

	var pages [][]byte
	for top := b.Min.Y; top < b.Max.Y; top += pageH {
		bottom := min(top+pageH, b.Max.Y)
		slice := image.NewRGBA(image.Rect(0, 0, b.Dx(), bottom-top))
		draw.Draw(slice, slice.Bounds(), src, image.Pt(b.Min.X, top), draw.Src)

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, slice, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("encode page %d: %w", len(pages)+1, err)
		}
		pages = append(pages, buf.Bytes())
	}
	return pages, nil
}

var pagesTpl = template.Must(template.New("pages").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
@page { size: A4 portrait; margin: 0; }
html, body { margin: 0; padding: 0; }
.page { width: 210mm; height: 297mm; overflow: hidden; page-break-after: always; break-after: page; }
.page:last-child { page-break-after: auto; break-after: auto; }
.page img { display: block; width: 210mm; }
</style>
</head>
<body>
{{range .}}<div class="page"><img src="{{.}}"></div>
{{end}}</body>
</html>
`))

// pagesDocument lays each slice on its own A4 sheet.
func pagesDocument(pages [][]byte) (string, error) {
	srcs := make([]template.URL, 0, len(pages))
	for _, p := range pages {
		srcs = append(srcs, template.URL("data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString(p)))
	}
	var out bytes.Buffer
	if err := pagesTpl.Execute(&out, srcs); err != nil {
		return "", err
	}
	return out.String(), nil
}
