package render

import (
	"errors"
	"fmt"

	"resume-builder/internal/model"
)

var ErrUnknownTemplate = errors.New("render: unknown template")

// TemplateFunc lays out a document. Implementations must treat d as
// read-only and may only differ from one another in arrangement.
type TemplateFunc func(d *model.Document, color Color) *Node

var templates = map[model.TemplateID]TemplateFunc{
	model.TemplateProfessional: professional,
	model.TemplateModern:       modern,
	model.TemplateMinimalist:   minimalist,
}

// Render projects d through the template selected by id. It has no side
// effects and is cheap enough to run on every edit.
func Render(d model.Document, id model.TemplateID, colorID model.ColorSchemeID) (*Node, error) {
	fn, ok := templates[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
	}
	color := ResolveColor(colorID)
	page := fn(&d, color)
	if page.Attrs == nil {
		page.Attrs = map[string]string{}
	}
	page.Attrs["data-template"] = string(id)
	page.Attrs["data-color"] = string(color.ID)
	return page, nil
}

// Template layout hooks. Each template fills one of these so the shared
// builders below stay free of per-template branching.
type sectionStyle struct {
	section  string
	title    string
	titleCSS map[string]string
}

type entryStyle struct {
	entry       string
	row         string
	heading     string
	dates       string
	sub         string
	subCSS      map[string]string
	description string
	marker      map[string]string // optional leading dot
}

func contactNodes(c content, class string) *Node {
	list := el(KindBlock, RoleContacts, class+"-contacts")
	for _, ct := range c.contacts {
		kind := KindInline
		if ct.attrs["href"] != "" {
			kind = KindLink
		}
		n := text(kind, RoleContact, class+"-contact", ct.value)
		n.Attrs = map[string]string{"data-kind": ct.kind}
		for k, v := range ct.attrs {
			n.Attrs[k] = v
		}
		list.append(n)
	}
	return list
}

func sectionNode(role, title string, st sectionStyle, body ...*Node) *Node {
	s := el(KindSection, role, st.section)
	s.append(text(KindHeading, RoleTitle, st.title, title).with(st.titleCSS))
	return s.append(body...)
}

func summarySection(c content, st sectionStyle, textClass string) *Node {
	if c.summary == "" {
		return nil
	}
	return sectionNode(RoleSummary, titleSummary, st, text(KindText, RoleDescription, textClass, c.summary))
}

func entriesSection(role, title string, entries []entry, st sectionStyle, es entryStyle) *Node {
	if len(entries) == 0 {
		return nil
	}
	s := sectionNode(role, title, st)
	for _, e := range entries {
		s.append(entryNode(e, es))
	}
	return s
}

func entryNode(e entry, es entryStyle) *Node {
	row := el(KindBlock, "", es.row, text(KindSubheading, e.headingRole, es.heading, e.heading))
	if e.dates != "" {
		row.append(text(KindInline, RoleDates, es.dates, e.dates))
	}
	body := el(KindBlock, "", es.entry+"-body",
		row,
		text(KindLabel, e.subRole, es.sub, e.sub).with(es.subCSS),
	)
	if e.description != "" {
		body.append(text(KindText, RoleDescription, es.description, e.description))
	}
	n := el(KindBlock, RoleEntry, es.entry)
	if es.marker != nil {
		n.append(el(KindInline, "", es.entry+"-marker").with(es.marker))
	}
	return n.append(body)
}
