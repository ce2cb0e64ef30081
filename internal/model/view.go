package model

type TemplateID string

const (
	TemplateProfessional TemplateID = "professional"
	TemplateModern       TemplateID = "modern"
	TemplateMinimalist   TemplateID = "minimalist"
)

type ColorSchemeID string

const (
	ColorBlue   ColorSchemeID = "blue"
	ColorGreen  ColorSchemeID = "green"
	ColorPurple ColorSchemeID = "purple"
	ColorGray   ColorSchemeID = "gray"
	ColorRed    ColorSchemeID = "red"
)

const (
	DefaultTemplate    = TemplateProfessional
	DefaultColorScheme = ColorBlue
)

// ViewState is the template and color selection, independent of the document.
type ViewState struct {
	TemplateID    TemplateID    `json:"template"`
	ColorSchemeID ColorSchemeID `json:"colorScheme"`
}

func DefaultViewState() ViewState {
	return ViewState{TemplateID: DefaultTemplate, ColorSchemeID: DefaultColorScheme}
}

type TemplateOption struct {
	ID          TemplateID `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Swatch      string     `json:"color"`
}

var Templates = []TemplateOption{
	{ID: TemplateProfessional, Name: "Professional", Description: "Clean and traditional design for corporate environments", Swatch: "blue-600"},
	{ID: TemplateModern, Name: "Modern", Description: "Contemporary layout with visual emphasis and bold elements", Swatch: "purple-600"},
	{ID: TemplateMinimalist, Name: "Minimalist", Description: "Simple and elegant with plenty of white space", Swatch: "green-600"},
}

type ColorScheme struct {
	ID   ColorSchemeID `json:"id"`
	Name string        `json:"name"`
	Hex  string        `json:"hex"`
}

// ColorSchemes is ordered; the first entry is the fallback for unknown ids.
var ColorSchemes = []ColorScheme{
	{ID: ColorBlue, Name: "Blue", Hex: "#2563eb"},
	{ID: ColorGreen, Name: "Green", Hex: "#16a34a"},
	{ID: ColorPurple, Name: "Purple", Hex: "#9333ea"},
	{ID: ColorGray, Name: "Gray", Hex: "#4b5563"},
	{ID: ColorRed, Name: "Red", Hex: "#dc2626"},
}

// LookupColorScheme resolves id against ColorSchemes, falling back to the
// first entry when id is unknown.
func LookupColorScheme(id ColorSchemeID) ColorScheme {
	for _, c := range ColorSchemes {
		if c.ID == id {
			return c
		}
	}
	return ColorSchemes[0]
}

func KnownTemplate(id TemplateID) bool {
	for _, t := range Templates {
		if t.ID == id {
			return true
		}
	}
	return false
}

func KnownColorScheme(id ColorSchemeID) bool {
	for _, c := range ColorSchemes {
		if c.ID == id {
			return true
		}
	}
	return false
}
