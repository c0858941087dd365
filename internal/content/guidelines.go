package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed guidelines.yaml
var guidelinesYAML []byte

// StyleRules are the advisory writing rules for one section. Lengths are
// word counts and are not enforced by the generator.
type StyleRules struct {
	MinLength  int      `json:"minLength,omitempty"`
	MaxLength  int      `json:"maxLength,omitempty"`
	Components []string `json:"components,omitempty"`
	Style      []string `json:"style,omitempty"`
}

type rulesDoc struct {
	Length struct {
		Min int `yaml:"min"`
		Max int `yaml:"max"`
	} `yaml:"length"`
	Components []string `yaml:"components"`
	Style      []string `yaml:"style"`
}

var catalog = mustLoadCatalog(guidelinesYAML)

func mustLoadCatalog(raw []byte) map[Section]StyleRules {
	out, err := parseCatalog(raw)
	if err != nil {
		panic(err)
	}
	return out
}

func parseCatalog(raw []byte) (map[Section]StyleRules, error) {
	var docs map[string]rulesDoc
	if err := yaml.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("parse guidelines: %w", err)
	}
	out := make(map[Section]StyleRules, len(docs))
	for key, doc := range docs {
		section, err := ParseSection(key)
		if err != nil {
			return nil, fmt.Errorf("parse guidelines: %w", err)
		}
		out[section] = StyleRules{
			MinLength:  doc.Length.Min,
			MaxLength:  doc.Length.Max,
			Components: doc.Components,
			Style:      doc.Style,
		}
	}
	return out, nil
}

// RulesFor returns the guideline entry for section. Only title, abstract,
// introduction, literature and methodology carry one.
func RulesFor(section Section) (StyleRules, bool) {
	rules, ok := catalog[section]
	if !ok {
		return StyleRules{}, false
	}
	rules.Components = append([]string(nil), rules.Components...)
	rules.Style = append([]string(nil), rules.Style...)
	return rules, true
}

// Guidelines returns a copy of every catalog entry.
func Guidelines() map[Section]StyleRules {
	out := make(map[Section]StyleRules, len(catalog))
	for section := range catalog {
		out[section], _ = RulesFor(section)
	}
	return out
}
