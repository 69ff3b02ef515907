package intent

import (
	"strings"
	"unicode/utf8"
)

// Classify returns exactly one category for message. The first rule with a
// trigger present in the lower-cased message wins; match counts do not matter.
func (c *Classifier) Classify(message string) Category {
	lower := strings.ToLower(message)

	for _, rule := range c.rules {
		for _, trigger := range rule.Triggers {
			if trigger != "" && strings.Contains(lower, trigger) {
				return rule.Category
			}
		}
	}

	if c.isShort(message) {
		return CategoryGreeting
	}
	return CategoryDefault
}

func (c *Classifier) isShort(message string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(message)) < c.shortMessageLen
}
