// Command render_preview renders a document file (JSON or YAML) to a
// standalone HTML preview.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

func main() {
	in := flag.String("in", "resume.yaml", "document file (.json, .yaml or .yml)")
	out := flag.String("out", "resume-preview.html", "output HTML file")
	tpl := flag.String("template", string(model.DefaultTemplate), "professional, modern or minimalist")
	color := flag.String("color", string(model.DefaultColorScheme), "blue, green, purple, gray or red")
	flag.Parse()

	d, err := readDocument(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read document: %v\n", err)
		os.Exit(2)
	}
	if verrs, err := model.Validate(d); err == nil {
		for _, e := range verrs {
			fmt.Fprintf(os.Stderr, "warning: %s: %s\n", e.Field, e.Message)
		}
	}

	n, err := render.Render(d, model.TemplateID(*tpl), model.ColorSchemeID(*color))
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}
	title := d.PersonalInfo.FullName
	if title == "" {
		title = "Resume"
	}
	page, err := render.HTMLDocument(n, title)
	if err != nil {
		fmt.Fprintf(os.Stderr, "html: %v\n", err)
		os.Exit(2)
	}
	if err := os.WriteFile(*out, []byte(page), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write out: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", *out)
}

func readDocument(path string) (model.Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return model.Document{}, err
	}
	var d model.Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &d)
	default:
		err = json.Unmarshal(b, &d)
	}
	if err != nil {
		return model.Document{}, err
	}
	return d.Normalize(), nil
}
