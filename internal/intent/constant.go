package intent

// ShortMessageLen is the rune count below which a trimmed message counts as a greeting.
const ShortMessageLen = 10

// DefaultRules returns the built-in rules in priority order (highest first).
// The greeting rule must stay last so the short-message rule only applies
// when nothing more specific matched.
func DefaultRules() []Rule {
	return []Rule{
		{Category: CategorySkills, Triggers: []string{
			"skill", "good at", "expertise", "proficien", "abilit", "strength",
		}},
		{Category: CategoryTechnologies, Triggers: []string{
			"technolog", "tech stack", "stack", "framework", "language", "tool",
			"library", "react", "next.js", "node", "python", "golang", "typescript",
			"javascript", "database",
		}},
		{Category: CategoryProjects, Triggers: []string{
			"project", "portfolio", "built", "build", "work on", "side project", "demo",
		}},
		{Category: CategoryExperience, Triggers: []string{
			"experience", "job", "work", "career", "employ", "company", "intern",
			"role", "position",
		}},
		{Category: CategoryEducation, Triggers: []string{
			"education", "degree", "university", "college", "school", "study",
			"studied", "certificat", "course",
		}},
		{Category: CategoryGitHub, Triggers: []string{
			"github", "repo", "open source", "commit", "source code",
		}},
		{Category: CategoryContact, Triggers: []string{
			"contact", "email", "e-mail", "reach", "hire", "get in touch",
			"linkedin", "phone", "connect",
		}},
		{Category: CategoryAbout, Triggers: []string{
			"about", "who are you", "yourself", "background", "bio", "introduce",
			"tell me",
		}},
		{Category: CategoryGreeting, Triggers: []string{
			"hello", "hey", "greetings", "good morning", "good afternoon",
			"good evening", "what's up", "howdy",
		}},
	}
}
