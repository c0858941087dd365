package studies

import (
	"time"

	"github.com/google/uuid"

	"study-backend/internal/content"
)

// ValidID reports whether id has the canonical form minted for new studies.
// Anything else cannot name a stored study.
func ValidID(id string) bool {
	parsed, err := uuid.Parse(id)
	return err == nil && parsed.String() == id
}

// Study is one academic study being drafted section by section.
type Study struct {
	ID                 string
	StudyType          string
	FieldOfStudy       string
	MainTopic          string
	ProblemDescription string
	Keywords           string
	// Contents holds the last generated markup per content section.
	Contents  map[content.Section]string
	Progress  content.Progress
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Content returns the stored markup for section, or "" if none.
func (s Study) Content(section content.Section) string {
	return s.Contents[section]
}

// SetContent stores markup for a content section.
func (s *Study) SetContent(section content.Section, markup string) {
	if !section.Storable() {
		return
	}
	if s.Contents == nil {
		s.Contents = make(map[content.Section]string)
	}
	s.Contents[section] = markup
}

func (s Study) clone() Study {
	out := s
	out.Contents = make(map[content.Section]string, len(s.Contents))
	for k, v := range s.Contents {
		out.Contents[k] = v
	}
	out.Progress = s.Progress.Clone()
	return out
}
