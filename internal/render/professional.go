package render

import "resume-builder/internal/model"

// professional: full-width colored header band, single column body,
// underlined section titles, two-column skill lists.
func professional(d *model.Document, color Color) *Node {
	c := derive(d)

	header := el(KindBlock, RoleHeader, "pro-header",
		text(KindName, RoleFullName, "pro-name", c.name),
		text(KindText, RoleJobTitle, "pro-title", c.title),
		contactNodes(c, "pro"),
	).with(map[string]string{"background-color": color.Hex, "color": "#ffffff"})

	st := sectionStyle{
		section:  "pro-section",
		title:    "pro-section-title",
		titleCSS: map[string]string{"color": color.Hex, "border-color": color.Tint},
	}
	es := entryStyle{
		entry:       "pro-entry",
		row:         "pro-entry-row",
		heading:     "pro-entry-heading",
		dates:       "pro-entry-dates",
		sub:         "pro-entry-sub",
		description: "pro-entry-description",
	}

	body := el(KindBlock, "", "pro-body").append(
		summarySection(c, st, "pro-summary"),
		entriesSection(RoleExperience, titleExperience, c.work, st, es),
		entriesSection(RoleEducation, titleEducation, c.education, st, es),
		professionalSkills(c, st),
	)

	return el(KindPage, "", "tpl-professional", header, body)
}

func professionalSkills(c content, st sectionStyle) *Node {
	if len(c.skills) == 0 {
		return nil
	}
	grid := el(KindBlock, "", "pro-skills-grid")
	for _, g := range c.skills {
		list := el(KindList, "", "pro-skill-list")
		for _, s := range g.items {
			list.append(text(KindListItem, RoleSkill, "pro-skill", s))
		}
		group := el(KindBlock, RoleSkillGroup, "pro-skill-group",
			text(KindSubheading, RoleTitle, "pro-skill-label", g.label),
			list,
		)
		group.Attrs = map[string]string{"data-group": g.kind}
		grid.append(group)
	}
	return sectionNode(RoleSkills, titleSkills, st, grid)
}
