package render

import "resume-builder/internal/model"

// modern: accent sidebar holding identity and skills, main column with a
// dotted timeline. Sections keep document order; the sidebar placement is
// done by grid column classes.
func modern(d *model.Document, color Color) *Node {
	c := derive(d)
	side := map[string]string{"background-color": color.Hex, "color": "#ffffff"}

	header := el(KindBlock, RoleHeader, "mod-side mod-header",
		text(KindName, RoleFullName, "mod-name", c.name),
		text(KindText, RoleJobTitle, "mod-title", c.title),
		contactNodes(c, "mod"),
	).with(side)

	st := sectionStyle{
		section:  "mod-main mod-section",
		title:    "mod-section-title",
		titleCSS: map[string]string{"color": color.Hex},
	}
	es := entryStyle{
		entry:       "mod-entry",
		row:         "mod-entry-row",
		heading:     "mod-entry-heading",
		dates:       "mod-entry-dates",
		sub:         "mod-entry-sub",
		subCSS:      map[string]string{"color": color.Hex},
		description: "mod-entry-description",
		marker:      map[string]string{"background-color": color.Hex},
	}

	page := el(KindPage, "", "tpl-modern", header)
	page.append(
		summarySection(c, st, "mod-summary"),
		entriesSection(RoleExperience, titleExperience, c.work, st, es),
		entriesSection(RoleEducation, titleEducation, c.education, st, es),
		modernSkills(c, side),
	)
	return page
}

func modernSkills(c content, side map[string]string) *Node {
	if len(c.skills) == 0 {
		return nil
	}
	st := sectionStyle{section: "mod-side mod-skills", title: "mod-side-title"}
	var groups []*Node
	for _, g := range c.skills {
		list := el(KindList, "", "mod-skill-list")
		for _, s := range g.items {
			list.append(text(KindListItem, RoleSkill, "mod-skill", s))
		}
		group := el(KindBlock, RoleSkillGroup, "mod-skill-group",
			text(KindSubheading, RoleTitle, "mod-skill-label", g.label),
			list,
		)
		group.Attrs = map[string]string{"data-group": g.kind}
		groups = append(groups, group)
	}
	return sectionNode(RoleSkills, titleSkills, st, groups...).with(side)
}
