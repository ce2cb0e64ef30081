package render

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"resume-builder/internal/model"
)

const (
	placeholderName  = "Full Name"
	placeholderTitle = "Job Title"
	present          = "Present"

	titleSummary    = "Professional Summary"
	titleExperience = "Work Experience"
	titleEducation  = "Education"
	titleSkills     = "Skills"
	titleTechnical  = "Technical Skills"
	titleSoft       = "Soft Skills"
)

// content is everything a template may show, derived once from the
// document. Templates only arrange it; they never decide what appears.
type content struct {
	name      string
	title     string
	contacts  []contact
	summary   string
	work      []entry
	education []entry
	skills    []skillGroup
}

type contact struct {
	kind  string
	value string
	attrs map[string]string
}

type entry struct {
	heading     string
	headingRole string
	sub         string
	subRole     string
	dates       string
	description string
}

type skillGroup struct {
	kind  string
	label string
	items []string
}

func derive(d *model.Document) content {
	p := d.PersonalInfo
	c := content{
		name:    orDefault(p.FullName, placeholderName),
		title:   orDefault(p.JobTitle, placeholderTitle),
		summary: p.Summary,
	}

	if p.Email != "" {
		c.contacts = append(c.contacts, contact{kind: "email", value: p.Email, attrs: map[string]string{"href": "mailto:" + p.Email}})
	}
	if p.Phone != "" {
		c.contacts = append(c.contacts, contact{kind: "phone", value: p.Phone})
	}
	if p.Location != "" {
		c.contacts = append(c.contacts, contact{kind: "location", value: p.Location})
	}
	if p.Website != "" {
		c.contacts = append(c.contacts, contact{kind: "website", value: p.Website, attrs: websiteAttrs(p.Website)})
	}

	for _, e := range d.WorkExperience {
		c.work = append(c.work, entry{
			heading:     e.Position,
			headingRole: RolePosition,
			sub:         e.Company,
			subRole:     RoleCompany,
			dates:       ExperiencePeriod(e),
			description: e.Description,
		})
	}
	for _, e := range d.Education {
		c.education = append(c.education, entry{
			heading:     e.Degree,
			headingRole: RoleDegree,
			sub:         e.Institution,
			subRole:     RoleInstitution,
			dates:       EducationPeriod(e),
			description: e.Description,
		})
	}

	if items := model.ParseSkills(d.Skills.Technical); len(items) > 0 {
		c.skills = append(c.skills, skillGroup{kind: "technical", label: titleTechnical, items: items})
	}
	if items := model.ParseSkills(d.Skills.Soft); len(items) > 0 {
		c.skills = append(c.skills, skillGroup{kind: "soft", label: titleSoft, items: items})
	}
	return c
}

// ExperiencePeriod renders "start - end", with "Present" replacing the end
// of a current position whatever endDate holds.
func ExperiencePeriod(e model.Experience) string {
	end := e.EndDate
	if e.Current {
		end = present
	}
	return e.StartDate + " - " + end
}

// EducationPeriod joins the bounds with " - " only when both are present.
func EducationPeriod(e model.Education) string {
	switch {
	case e.StartDate != "" && e.EndDate != "":
		return e.StartDate + " - " + e.EndDate
	case e.StartDate != "":
		return e.StartDate
	default:
		return e.EndDate
	}
}

func websiteAttrs(raw string) map[string]string {
	href := strings.TrimSpace(raw)
	if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
		href = "https://" + href
	}
	attrs := map[string]string{"href": href}
	if u, err := url.Parse(href); err == nil && u.Hostname() != "" {
		host := u.Hostname()
		if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
			attrs["data-domain"] = strings.TrimPrefix(etld, "www.")
		} else {
			attrs["data-domain"] = strings.TrimPrefix(host, "www.")
		}
	}
	return attrs
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
