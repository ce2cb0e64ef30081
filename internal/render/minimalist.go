package render

import "resume-builder/internal/model"

// minimalist: centered header, hairline section rules, skills as chips.
func minimalist(d *model.Document, color Color) *Node {
	c := derive(d)

	header := el(KindBlock, RoleHeader, "min-header",
		text(KindName, RoleFullName, "min-name", c.name),
		text(KindText, RoleJobTitle, "min-title", c.title).with(map[string]string{"color": color.Hex}),
		contactNodes(c, "min"),
	)

	st := sectionStyle{
		section:  "min-section",
		title:    "min-section-title",
		titleCSS: map[string]string{"color": color.Hex, "border-color": color.Tint},
	}
	es := entryStyle{
		entry:       "min-entry",
		row:         "min-entry-row",
		heading:     "min-entry-heading",
		dates:       "min-entry-dates",
		sub:         "min-entry-sub",
		description: "min-entry-description",
	}

	return el(KindPage, "", "tpl-minimalist", header).append(
		summarySection(c, st, "min-summary"),
		entriesSection(RoleExperience, titleExperience, c.work, st, es),
		entriesSection(RoleEducation, titleEducation, c.education, st, es),
		minimalistSkills(c, st, color),
	)
}

func minimalistSkills(c content, st sectionStyle, color Color) *Node {
	if len(c.skills) == 0 {
		return nil
	}
	wrap := el(KindBlock, "", "min-skills")
	for _, g := range c.skills {
		chips := el(KindBlock, "", "min-chips")
		for _, s := range g.items {
			chips.append(text(KindInline, RoleSkill, "min-chip", s).with(map[string]string{"border-color": color.Tint}))
		}
		group := el(KindBlock, RoleSkillGroup, "min-skill-group",
			text(KindSubheading, RoleTitle, "min-skill-label", g.label),
			chips,
		)
		group.Attrs = map[string]string{"data-group": g.kind}
		wrap.append(group)
	}
	return sectionNode(RoleSkills, titleSkills, st, wrap)
}
