package render

import "strings"

// Kind selects the element a node is written as.
type Kind string

const (
	KindPage       Kind = "page"
	KindBlock      Kind = "block"
	KindSection    Kind = "section"
	KindName       Kind = "name"
	KindHeading    Kind = "heading"
	KindSubheading Kind = "subheading"
	KindLabel      Kind = "label"
	KindText       Kind = "text"
	KindInline     Kind = "inline"
	KindList       Kind = "list"
	KindListItem   Kind = "item"
	KindLink       Kind = "link"
)

// Semantic roles. Layout may differ per template; roles never do.
const (
	RoleHeader      = "header"
	RoleFullName    = "full-name"
	RoleJobTitle    = "job-title"
	RoleContacts    = "contacts"
	RoleContact     = "contact"
	RoleSummary     = "summary"
	RoleExperience  = "experience"
	RoleEducation   = "education"
	RoleSkills      = "skills"
	RoleSkillGroup  = "skill-group"
	RoleSkill       = "skill"
	RoleEntry       = "entry"
	RolePosition    = "position"
	RoleCompany     = "company"
	RoleDegree      = "degree"
	RoleInstitution = "institution"
	RoleDates       = "dates"
	RoleDescription = "description"
	RoleTitle       = "section-title"
)

// Node is one element of the rendered visual tree.
type Node struct {
	Kind     Kind              `json:"kind"`
	Role     string            `json:"role,omitempty"`
	Text     string            `json:"text,omitempty"`
	Class    string            `json:"class,omitempty"`
	Style    map[string]string `json:"style,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []*Node           `json:"children,omitempty"`
}

func el(kind Kind, role, class string, children ...*Node) *Node {
	return &Node{Kind: kind, Role: role, Class: class, Children: children}
}

func text(kind Kind, role, class, s string) *Node {
	return &Node{Kind: kind, Role: role, Class: class, Text: s}
}

func (n *Node) with(style map[string]string) *Node {
	n.Style = style
	return n
}

func (n *Node) append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Walk visits n and its descendants depth-first in document order.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns the first node with the given role, or nil.
func (n *Node) Find(role string) *Node {
	var found *Node
	n.Walk(func(x *Node) {
		if found == nil && x.Role == role {
			found = x
		}
	})
	return found
}

// FindAll returns every node with the given role in document order.
func (n *Node) FindAll(role string) []*Node {
	var out []*Node
	n.Walk(func(x *Node) {
		if x.Role == role {
			out = append(out, x)
		}
	})
	return out
}

// TextContent returns the visible text of n, one text run per line.
func (n *Node) TextContent() string {
	var runs []string
	n.Walk(func(x *Node) {
		if x.Text != "" {
			runs = append(runs, x.Text)
		}
	})
	return strings.Join(runs, "\n")
}
