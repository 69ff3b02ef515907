package intent

import "strings"

// Category is the topic a chat message is routed to.
type Category string

const (
	CategorySkills       Category = "skills"
	CategoryTechnologies Category = "technologies"
	CategoryProjects     Category = "projects"
	CategoryExperience   Category = "experience"
	CategoryEducation    Category = "education"
	CategoryGitHub       Category = "github"
	CategoryContact      Category = "contact"
	CategoryAbout        Category = "about"
	CategoryGreeting     Category = "greeting"
	CategoryDefault      Category = "default"
	CategoryError        Category = "error"
)

var allCategories = []Category{
	CategorySkills,
	CategoryTechnologies,
	CategoryProjects,
	CategoryExperience,
	CategoryEducation,
	CategoryGitHub,
	CategoryContact,
	CategoryAbout,
	CategoryGreeting,
	CategoryDefault,
	CategoryError,
}

// Rule maps a set of substring triggers to a category.
// Triggers are matched against the lower-cased message.
type Rule struct {
	Category Category
	Triggers []string
}

// Categories returns the closed set of known categories.
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory normalizes s and reports whether it names a known category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	return c, c.Valid()
}
