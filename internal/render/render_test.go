package render

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/model"
)

var allTemplates = []model.TemplateID{model.TemplateProfessional, model.TemplateModern, model.TemplateMinimalist}

func janeDoe() model.Document {
	return model.Document{
		PersonalInfo: model.PersonalInfo{FullName: "Jane Doe", JobTitle: "Staff Engineer"},
		WorkExperience: []model.Experience{
			{Company: "Acme", Position: "Engineer", StartDate: "2020-01", Current: true},
		},
		Education: []model.Education{},
	}
}

func fullDocument() model.Document {
	return model.Document{
		PersonalInfo: model.PersonalInfo{
			FullName: "Jane Doe",
			JobTitle: "Staff Engineer",
			Email:    "jane@example.com",
			Phone:    "+1 555 0100",
			Location: "Berlin",
			Website:  "www.janedoe.dev",
			Summary:  "Ten years of backend work.",
		},
		WorkExperience: []model.Experience{
			{Company: "Acme", Position: "Engineer", StartDate: "2020-01", EndDate: "2024-01", Current: true, Description: "Payments."},
			{Company: "Initech", Position: "Developer", StartDate: "2016-03", EndDate: "2019-12"},
		},
		Education: []model.Education{
			{Institution: "State U", Degree: "BSc", StartDate: "2012", EndDate: "2016", Description: "CS"},
		},
		Skills: model.Skills{Technical: " React, Node.js ,  ", Soft: "Mentoring"},
	}
}

func mustRender(t *testing.T, d model.Document, id model.TemplateID, color model.ColorSchemeID) *Node {
	t.Helper()
	n, err := Render(d, id, color)
	require.NoError(t, err)
	require.NotNil(t, n)
	return n
}

func TestScenarioModernThenMinimalist(t *testing.T) {
	d := janeDoe()
	modernPage := mustRender(t, d, model.TemplateModern, model.ColorGreen)

	work := modernPage.Find(RoleExperience)
	require.NotNil(t, work)
	entries := work.FindAll(RoleEntry)
	require.Len(t, entries, 1)
	assert.Equal(t, "Engineer", entries[0].Find(RolePosition).Text)
	assert.Equal(t, "Acme", entries[0].Find(RoleCompany).Text)
	assert.Equal(t, "2020-01 - Present", entries[0].Find(RoleDates).Text)
	assert.Equal(t, "green", modernPage.Attrs["data-color"])

	minimal := mustRender(t, d, model.TemplateMinimalist, model.ColorGreen)
	assert.Equal(t, modernPage.TextContent(), minimal.TextContent())
	assert.NotEqual(t, modernPage.Class, minimal.Class)
}

func TestSectionPresenceIsTemplateInvariant(t *testing.T) {
	docs := map[string]model.Document{
		"seeded":   model.NewDocument(),
		"full":     fullDocument(),
		"scenario": janeDoe(),
		"empty lists": {
			PersonalInfo: model.PersonalInfo{FullName: "A", Summary: "S"},
			Skills:       model.Skills{Technical: "   ", Soft: " , "},
		},
		"soft only": {
			Skills: model.Skills{Soft: "Listening"},
		},
	}

	for name, d := range docs {
		t.Run(name, func(t *testing.T) {
			wantSummary := d.PersonalInfo.Summary != ""
			wantWork := len(d.WorkExperience) > 0
			wantEdu := len(d.Education) > 0
			wantTech := len(model.ParseSkills(d.Skills.Technical)) > 0
			wantSoft := len(model.ParseSkills(d.Skills.Soft)) > 0

			var texts []string
			for _, id := range allTemplates {
				page := mustRender(t, d, id, model.ColorBlue)
				assert.Equal(t, wantSummary, page.Find(RoleSummary) != nil, "%s summary", id)
				assert.Equal(t, wantWork, page.Find(RoleExperience) != nil, "%s experience", id)
				assert.Equal(t, wantEdu, page.Find(RoleEducation) != nil, "%s education", id)
				assert.Equal(t, wantTech || wantSoft, page.Find(RoleSkills) != nil, "%s skills", id)

				groups := map[string]bool{}
				for _, g := range page.FindAll(RoleSkillGroup) {
					groups[g.Attrs["data-group"]] = true
				}
				assert.Equal(t, wantTech, groups["technical"], "%s technical group", id)
				assert.Equal(t, wantSoft, groups["soft"], "%s soft group", id)

				assert.NotNil(t, page.Find(RoleHeader))
				texts = append(texts, page.TextContent())
			}
			assert.Equal(t, texts[0], texts[1])
			assert.Equal(t, texts[0], texts[2])
		})
	}
}

func TestSectionOrderIsFixed(t *testing.T) {
	want := []string{RoleHeader, RoleSummary, RoleExperience, RoleEducation, RoleSkills}
	for _, id := range allTemplates {
		page := mustRender(t, fullDocument(), id, model.ColorBlue)
		var got []string
		page.Walk(func(n *Node) {
			switch n.Role {
			case RoleHeader, RoleSummary, RoleExperience, RoleEducation, RoleSkills:
				got = append(got, n.Role)
			}
		})
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s section order (-want +got):\n%s", id, diff)
		}
	}
}

func TestCurrentPositionAlwaysShowsPresent(t *testing.T) {
	for _, id := range allTemplates {
		page := mustRender(t, fullDocument(), id, model.ColorBlue)
		dates := page.Find(RoleExperience).FindAll(RoleDates)
		require.Len(t, dates, 2)
		assert.Equal(t, "2020-01 - Present", dates[0].Text, "stored endDate ignored for %s", id)
		assert.Equal(t, "2016-03 - 2019-12", dates[1].Text)
	}
}

func TestEducationPeriod(t *testing.T) {
	assert.Equal(t, "2012 - 2016", EducationPeriod(model.Education{StartDate: "2012", EndDate: "2016"}))
	assert.Equal(t, "2012", EducationPeriod(model.Education{StartDate: "2012"}))
	assert.Equal(t, "2016", EducationPeriod(model.Education{EndDate: "2016"}))
	assert.Equal(t, "", EducationPeriod(model.Education{}))

	page := mustRender(t, model.NewDocument(), model.TemplateProfessional, model.ColorBlue)
	assert.Empty(t, page.Find(RoleEducation).FindAll(RoleDates), "no date node without bounds")
}

func TestHeaderContactsAndPlaceholders(t *testing.T) {
	page := mustRender(t, model.NewDocument(), model.TemplateMinimalist, model.ColorBlue)
	assert.Equal(t, "Full Name", page.Find(RoleFullName).Text)
	assert.Equal(t, "Job Title", page.Find(RoleJobTitle).Text)
	assert.Empty(t, page.FindAll(RoleContact))

	page = mustRender(t, fullDocument(), model.TemplateProfessional, model.ColorBlue)
	contacts := page.FindAll(RoleContact)
	require.Len(t, contacts, 4)
	assert.Equal(t, "email", contacts[0].Attrs["data-kind"])
	assert.Equal(t, "mailto:jane@example.com", contacts[0].Attrs["href"])
	assert.Equal(t, "website", contacts[3].Attrs["data-kind"])
	assert.Equal(t, "https://www.janedoe.dev", contacts[3].Attrs["href"])
	assert.Equal(t, "janedoe.dev", contacts[3].Attrs["data-domain"])
	assert.Equal(t, "www.janedoe.dev", contacts[3].Text)
}

func TestSkillsParsedInOrder(t *testing.T) {
	page := mustRender(t, fullDocument(), model.TemplateModern, model.ColorBlue)
	var skills []string
	for _, n := range page.FindAll(RoleSkill) {
		skills = append(skills, n.Text)
	}
	assert.Equal(t, []string{"React", "Node.js", "Mentoring"}, skills)
}

func TestRenderDoesNotMutateDocument(t *testing.T) {
	d := fullDocument()
	before := d.Clone()
	for _, id := range allTemplates {
		mustRender(t, d, id, model.ColorPurple)
	}
	if diff := cmp.Diff(before, d); diff != "" {
		t.Fatalf("document mutated (-before +after):\n%s", diff)
	}
}

func TestUnknownColorFallsBackToBlue(t *testing.T) {
	page := mustRender(t, janeDoe(), model.TemplateProfessional, "teal")
	assert.Equal(t, "blue", page.Attrs["data-color"])
	assert.Equal(t, "#2563eb", page.Find(RoleHeader).Style["background-color"])
}

func TestUnknownTemplate(t *testing.T) {
	_, err := Render(janeDoe(), "fancy", model.ColorBlue)
	assert.True(t, errors.Is(err, ErrUnknownTemplate))
}

func TestResolveColor(t *testing.T) {
	c := ResolveColor(model.ColorRed)
	assert.Equal(t, "#dc2626", c.Hex)
	assert.Equal(t, "#f5bebe", c.Tint)
	assert.Equal(t, "#ffffff", mixWhite("#000000", 1))
	assert.Equal(t, "nope", mixWhite("nope", 0.5))
}
