package render

import (
	"bytes"
	_ "embed"
	"html"
	"html/template"
	"io"
	"sort"
	"strings"
)

//go:embed assets/resume.css
var stylesheet string

var tags = map[Kind]string{
	KindPage:       "div",
	KindBlock:      "div",
	KindSection:    "section",
	KindName:       "h1",
	KindHeading:    "h2",
	KindSubheading: "h3",
	KindLabel:      "h4",
	KindText:       "p",
	KindInline:     "span",
	KindList:       "ul",
	KindListItem:   "li",
	KindLink:       "a",
}

var pageTpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>{{.CSS}}</style>
</head>
<body>
<div id="resume-preview" class="resume-preview">{{.Body}}</div>
</body>
</html>
`))

// HTMLDocument writes n as a standalone HTML page with the stylesheet
// inlined, ready to hand to a browser.
func HTMLDocument(n *Node, title string) (string, error) {
	var body bytes.Buffer
	if err := WriteHTML(&body, n); err != nil {
		return "", err
	}
	var out bytes.Buffer
	err := pageTpl.Execute(&out, struct {
		Title string
		CSS   template.CSS
		Body  template.HTML
	}{
		Title: title,
		CSS:   template.CSS(stylesheet),
		Body:  template.HTML(body.String()),
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// WriteHTML writes the markup for n and its children.
func WriteHTML(w io.Writer, n *Node) error {
	var b strings.Builder
	writeNode(&b, n)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeNode(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	tag, ok := tags[n.Kind]
	if !ok {
		tag = "div"
	}
	b.WriteString("<" + tag)
	if n.Class != "" {
		writeAttr(b, "class", n.Class)
	}
	if n.Role != "" {
		writeAttr(b, "data-role", n.Role)
	}
	if len(n.Style) > 0 {
		writeAttr(b, "style", inlineStyle(n.Style))
	}
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := n.Attrs[k]
		if k == "href" && !safeHref(v) {
			continue
		}
		writeAttr(b, k, v)
	}
	b.WriteString(">")
	// user text is plain text: escaped, never interpreted or stripped
	b.WriteString(html.EscapeString(n.Text))
	for _, c := range n.Children {
		writeNode(b, c)
	}
	b.WriteString("</" + tag + ">")
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteString(" " + name + `="` + html.EscapeString(value) + `"`)
}

func inlineStyle(style map[string]string) string {
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+":"+style[k])
	}
	return strings.Join(parts, ";")
}

func safeHref(v string) bool {
	l := strings.ToLower(strings.TrimSpace(v))
	return strings.HasPrefix(l, "https://") || strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "mailto:")
}
