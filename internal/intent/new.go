package intent

// Classifier maps free text to a Category with ordered substring rules.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	rules           []Rule
	shortMessageLen int
}

// NewClassifier builds a classifier from rules in priority order.
// Messages shorter than shortMessageLen runes (after trimming) classify as
// CategoryGreeting when no rule matched; zero disables that check.
func NewClassifier(rules []Rule, shortMessageLen int) *Classifier {
	cp := make([]Rule, len(rules))
	for i, r := range rules {
		triggers := make([]string, len(r.Triggers))
		copy(triggers, r.Triggers)
		cp[i] = Rule{Category: r.Category, Triggers: triggers}
	}
	return &Classifier{
		rules:           cp,
		shortMessageLen: shortMessageLen,
	}
}

// New returns the classifier with the built-in rules.
func New() *Classifier {
	return NewClassifier(DefaultRules(), ShortMessageLen)
}
