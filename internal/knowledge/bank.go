package knowledge

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"portfolio-assistant/internal/intent"
)

//go:embed data/knowledge.json
var embeddedBank []byte

// Bank is the immutable category to response-variants mapping loaded at startup.
// Accessors return copies, so a Bank is safe to share between goroutines.
type Bank struct {
	responses map[intent.Category][]string
	quick     map[intent.Category]string
}

type bankFile struct {
	Responses      map[string][]string `json:"responses"`
	QuickResponses map[string]string   `json:"quickResponses"`
}

// Default loads the bank embedded in the binary.
func Default() (*Bank, error) {
	return Load(bytes.NewReader(embeddedBank))
}

// LoadFile loads a bank from a JSON file on disk.
func LoadFile(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open knowledge file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes and validates a knowledge file.
func Load(r io.Reader) (*Bank, error) {
	var raw bankFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBank, err)
	}

	responses := make(map[intent.Category][]string, len(raw.Responses))
	for key, variants := range raw.Responses {
		cat, ok := intent.ParseCategory(key)
		if !ok {
			return nil, fmt.Errorf("%w: unknown category %q in responses", ErrInvalidBank, key)
		}
		responses[cat] = append(responses[cat], variants...)
	}

	quick := make(map[intent.Category]string, len(raw.QuickResponses))
	for key, text := range raw.QuickResponses {
		cat, ok := intent.ParseCategory(key)
		if !ok {
			return nil, fmt.Errorf("%w: unknown category %q in quickResponses", ErrInvalidBank, key)
		}
		quick[cat] = text
	}

	return NewBank(responses, quick)
}

// NewBank validates and copies the given maps. Blank variants are dropped;
// the default category must keep at least one variant.
func NewBank(responses map[intent.Category][]string, quick map[intent.Category]string) (*Bank, error) {
	b := &Bank{
		responses: make(map[intent.Category][]string, len(responses)),
		quick:     make(map[intent.Category]string, len(quick)),
	}

	for cat, variants := range responses {
		if !cat.Valid() {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidBank, cat)
		}
		kept := make([]string, 0, len(variants))
		for _, v := range variants {
			if strings.TrimSpace(v) != "" {
				kept = append(kept, v)
			}
		}
		if len(kept) > 0 {
			b.responses[cat] = kept
		}
	}

	for cat, text := range quick {
		if !cat.Valid() {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidBank, cat)
		}
		if strings.TrimSpace(text) != "" {
			b.quick[cat] = text
		}
	}

	if len(b.responses[intent.CategoryDefault]) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBank, ErrNoDefaultResponse)
	}

	return b, nil
}

// Variants returns a copy of the variants configured for cat.
func (b *Bank) Variants(cat intent.Category) []string {
	if b == nil {
		return nil
	}
	v := b.responses[cat]
	out := make([]string, len(v))
	copy(out, v)
	return out
}

// Quick returns a copy of the quick-reply prompts.
func (b *Bank) Quick() map[intent.Category]string {
	out := make(map[intent.Category]string)
	if b == nil {
		return out
	}
	for k, v := range b.quick {
		out[k] = v
	}
	return out
}

// Categories lists the categories that have at least one variant, sorted.
func (b *Bank) Categories() []intent.Category {
	if b == nil {
		return nil
	}
	out := make([]intent.Category, 0, len(b.responses))
	for cat := range b.responses {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (b *Bank) defaultResponse() (string, bool) {
	if b == nil {
		return "", false
	}
	v := b.responses[intent.CategoryDefault]
	if len(v) == 0 {
		return "", false
	}
	return v[0], true
}
