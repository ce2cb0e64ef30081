package model

import "strings"

// Go models matching document.schema.json. Field names follow the JSON shape
// persisted under the document-data key and posted to the analytics sink.

type PersonalInfo struct {
	FullName string `json:"fullName" yaml:"fullName"`
	JobTitle string `json:"jobTitle" yaml:"jobTitle"`
	Email    string `json:"email" yaml:"email"`
	Phone    string `json:"phone" yaml:"phone"`
	Location string `json:"location" yaml:"location"`
	Website  string `json:"website" yaml:"website"`
	Summary  string `json:"summary" yaml:"summary"`
}

type Experience struct {
	Company     string `json:"company" yaml:"company"`
	Position    string `json:"position" yaml:"position"`
	StartDate   string `json:"startDate" yaml:"startDate"`
	EndDate     string `json:"endDate" yaml:"endDate"`
	Current     bool   `json:"current" yaml:"current"`
	Description string `json:"description" yaml:"description"`
}

type Education struct {
	Institution string `json:"institution" yaml:"institution"`
	Degree      string `json:"degree" yaml:"degree"`
	StartDate   string `json:"startDate" yaml:"startDate"`
	EndDate     string `json:"endDate" yaml:"endDate"`
	Description string `json:"description" yaml:"description"`
}

// Skills keeps each group as the raw comma-separated string the user typed.
type Skills struct {
	Technical string `json:"technical" yaml:"technical"`
	Soft      string `json:"soft" yaml:"soft"`
}

type Document struct {
	PersonalInfo   PersonalInfo `json:"personalInfo" yaml:"personalInfo"`
	WorkExperience []Experience `json:"workExperience" yaml:"workExperience"`
	Education      []Education  `json:"education" yaml:"education"`
	Skills         Skills       `json:"skills" yaml:"skills"`
}

// NewDocument returns the seeded initial shape: empty personal info, one
// blank experience block and one blank education block.
func NewDocument() Document {
	return Document{
		WorkExperience: []Experience{{}},
		Education:      []Education{{}},
	}
}

// Clone returns a deep copy so callers can never alias the entry slices.
func (d Document) Clone() Document {
	out := d
	if d.WorkExperience != nil {
		out.WorkExperience = append([]Experience(nil), d.WorkExperience...)
	}
	if d.Education != nil {
		out.Education = append([]Education(nil), d.Education...)
	}
	return out
}

// Normalize returns a copy that satisfies the model invariants: entry lists
// are never nil and a current position carries no end date.
func (d Document) Normalize() Document {
	out := d.Clone()
	if out.WorkExperience == nil {
		out.WorkExperience = []Experience{}
	}
	if out.Education == nil {
		out.Education = []Education{}
	}
	for i := range out.WorkExperience {
		if out.WorkExperience[i].Current {
			out.WorkExperience[i].EndDate = ""
		}
	}
	return out
}

// AddExperience appends a blank experience block.
func (d *Document) AddExperience() {
	d.WorkExperience = append(d.WorkExperience, Experience{})
}

// RemoveExperience drops the entry at index i. Removing the last remaining
// entry is allowed; the renderer omits the empty section.
func (d *Document) RemoveExperience(i int) bool {
	if i < 0 || i >= len(d.WorkExperience) {
		return false
	}
	d.WorkExperience = append(d.WorkExperience[:i:i], d.WorkExperience[i+1:]...)
	return true
}

// SetCurrent toggles the current flag of entry i, clearing its end date
// when the position becomes current.
func (d *Document) SetCurrent(i int, current bool) bool {
	if i < 0 || i >= len(d.WorkExperience) {
		return false
	}
	d.WorkExperience[i].Current = current
	if current {
		d.WorkExperience[i].EndDate = ""
	}
	return true
}

func (d *Document) AddEducation() {
	d.Education = append(d.Education, Education{})
}

func (d *Document) RemoveEducation(i int) bool {
	if i < 0 || i >= len(d.Education) {
		return false
	}
	d.Education = append(d.Education[:i:i], d.Education[i+1:]...)
	return true
}

// ParseSkills splits a comma-separated skill list into trimmed, non-empty
// tokens in input order.
func ParseSkills(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
