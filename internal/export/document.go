// Package export turns stored study sections into a downloadable PDF.
package export

import (
	"study-backend/internal/content"
)

// Part is one headed block of section markup.
type Part struct {
	Heading string
	Markup  string
}

// Document is the ordered content of one export.
type Document struct {
	StudyID string
	Parts   []Part
}

const (
	titleHeading    = "عنوان الدراسة"
	abstractHeading = "الملخص"
)

var sectionHeadings = map[content.Section]string{
	content.SectionIntroduction: "المقدمة",
	content.SectionLiterature:   "الإطار النظري والدراسات السابقة",
	content.SectionMethodology:  "منهجية الدراسة",
	content.SectionResults:      "النتائج",
	content.SectionDiscussion:   "المناقشة",
	content.SectionConclusion:   "الخلاصة والتوصيات",
	content.SectionReferences:   "المراجع",
}

// Heading returns the export heading for section. Title and abstract are
// always exported first and are not selectable.
func Heading(section content.Section) (string, bool) {
	h, ok := sectionHeadings[section]
	return h, ok
}

// BuildDocument lays out an export: title and abstract when generated, then
// the requested sections in request order. Requested keys without a heading
// or without stored content are skipped, as are repeats.
func BuildDocument(studyID string, contents map[content.Section]string, requested []string) Document {
	doc := Document{StudyID: studyID}
	if markup := contents[content.SectionTitle]; markup != "" {
		doc.Parts = append(doc.Parts, Part{Heading: titleHeading, Markup: markup})
	}
	if markup := contents[content.SectionAbstract]; markup != "" {
		doc.Parts = append(doc.Parts, Part{Heading: abstractHeading, Markup: markup})
	}

	seen := make(map[content.Section]bool, len(requested))
	for _, raw := range requested {
		section := content.Section(raw)
		heading, ok := sectionHeadings[section]
		if !ok || seen[section] {
			continue
		}
		seen[section] = true
		markup := contents[section]
		if markup == "" {
			continue
		}
		doc.Parts = append(doc.Parts, Part{Heading: heading, Markup: markup})
	}
	return doc
}

// FileName is the attachment name for an exported study.
func FileName(studyID string) string {
	return "academic_study_" + studyID + ".pdf"
}
