package content

import (
	"fmt"
	"strings"
)

// Section identifies one part of a generated study document.
type Section string

const (
	SectionSetup        Section = "setup"
	SectionTitle        Section = "title"
	SectionAbstract     Section = "abstract"
	SectionIntroduction Section = "introduction"
	SectionLiterature   Section = "literature"
	SectionMethodology  Section = "methodology"
	SectionResults      Section = "results"
	SectionDiscussion   Section = "discussion"
	SectionConclusion   Section = "conclusion"
	SectionReferences   Section = "references"
)

var allSections = []Section{
	SectionSetup,
	SectionTitle,
	SectionAbstract,
	SectionIntroduction,
	SectionLiterature,
	SectionMethodology,
	SectionResults,
	SectionDiscussion,
	SectionConclusion,
	SectionReferences,
}

// UnknownSectionError is returned for section keys outside the fixed set.
type UnknownSectionError struct {
	Section string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown section: %s", e.Section)
}

// AllSections returns every section key, setup first.
func AllSections() []Section {
	return append([]Section(nil), allSections...)
}

// ContentSections returns the sections that produce storable prose.
func ContentSections() []Section {
	return append([]Section(nil), allSections[1:]...)
}

// ParseSection validates a raw section key.
func ParseSection(raw string) (Section, error) {
	key := strings.TrimSpace(raw)
	for _, s := range allSections {
		if string(s) == key {
			return s, nil
		}
	}
	return "", &UnknownSectionError{Section: raw}
}

// InputKey is the key under which auxiliary input for the section is carried.
func (s Section) InputKey() string {
	return string(s) + "_input"
}

// Storable reports whether generated output for the section is persisted:
// any known section except setup.
func (s Section) Storable() bool {
	if s == SectionSetup {
		return false
	}
	for _, known := range allSections {
		if s == known {
			return true
		}
	}
	return false
}
