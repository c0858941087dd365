package content

import (
	"strings"
)

type assembleFunc func(g *Generator, in StudyInput, rng Rand) string

// assemblers holds one routine per section; a test keeps it in step with
// AllSections.
var assemblers = map[Section]assembleFunc{
	SectionSetup:        (*Generator).setup,
	SectionTitle:        (*Generator).title,
	SectionAbstract:     (*Generator).abstract,
	SectionIntroduction: (*Generator).introduction,
	SectionLiterature:   (*Generator).literature,
	SectionMethodology:  (*Generator).methodology,
	SectionResults:      (*Generator).results,
	SectionDiscussion:   (*Generator).discussion,
	SectionConclusion:   (*Generator).conclusion,
	SectionReferences:   (*Generator).references,
}

// Generator assembles section content and runs it through the humanization
// pipeline. It holds no per-call state and is safe for concurrent use as
// long as each call gets its own Rand.
type Generator struct {
	Pipeline Pipeline
}

// NewGenerator returns a Generator using DefaultPipeline.
func NewGenerator() *Generator {
	return &Generator{Pipeline: DefaultPipeline()}
}

// Generate produces the markup for section. The only error is
// *UnknownSectionError.
func (g *Generator) Generate(section Section, in StudyInput, rng Rand) (string, error) {
	assemble, ok := assemblers[section]
	if !ok {
		return "", &UnknownSectionError{Section: string(section)}
	}
	return assemble(g, in, rng), nil
}

// GenerateRaw is Generate for untyped boundary input.
func (g *Generator) GenerateRaw(section string, data map[string]any, rng Rand) (string, error) {
	s, err := ParseSection(section)
	if err != nil {
		return "", err
	}
	return g.Generate(s, InputFromMap(data), rng)
}

const (
	missingFieldsPrefix = "الحقول المطلوبة مفقودة: "
	setupConfirmation   = "تم التحقق من البيانات بنجاح. يمكنك الآن الانتقال لإنشاء عنوان الدراسة."

	paragraphSeparator = "\n\n"
	paragraphBreak     = "</p><p>"
)

// ValidateSetup returns the required setup fields that are empty, in the
// order studyType, mainTopic, problemDescription.
func ValidateSetup(in StudyInput) []string {
	var missing []string
	if in.StudyType == "" {
		missing = append(missing, "studyType")
	}
	if in.MainTopic == "" {
		missing = append(missing, "mainTopic")
	}
	if in.ProblemDescription == "" {
		missing = append(missing, "problemDescription")
	}
	return missing
}

// setup reports validation problems as ordinary output, not as an error.
func (g *Generator) setup(in StudyInput, _ Rand) string {
	if missing := ValidateSetup(in); len(missing) > 0 {
		return missingFieldsPrefix + strings.Join(missing, ", ")
	}
	return setupConfirmation
}

func (g *Generator) humanize(text string, rng Rand) string {
	if g.Pipeline == nil {
		return text
	}
	return g.Pipeline.Humanize(text, rng)
}

// paragraphs joins parts with the paragraph separator, humanizes the result
// and turns separators into paragraph breaks.
func (g *Generator) paragraphs(parts []string, rng Rand) string {
	text := g.humanize(strings.Join(parts, paragraphSeparator), rng)
	return strings.ReplaceAll(text, paragraphSeparator, paragraphBreak)
}
