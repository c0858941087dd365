package studies

import (
	"time"

	"study-backend/internal/content"
)

// StudyResponse is the outward-facing representation of a study.
type StudyResponse struct {
	ID                  string            `json:"id"`
	StudyType           string            `json:"study_type"`
	FieldOfStudy        string            `json:"field_of_study"`
	MainTopic           string            `json:"main_topic"`
	ProblemDescription  string            `json:"problem_description"`
	Keywords            string            `json:"keywords"`
	TitleContent        *string           `json:"title_content"`
	AbstractContent     *string           `json:"abstract_content"`
	IntroductionContent *string           `json:"introduction_content"`
	LiteratureContent   *string           `json:"literature_content"`
	MethodologyContent  *string           `json:"methodology_content"`
	ResultsContent      *string           `json:"results_content"`
	DiscussionContent   *string           `json:"discussion_content"`
	ConclusionContent   *string           `json:"conclusion_content"`
	ReferencesContent   *string           `json:"references_content"`
	AdditionalInputs    map[string]string `json:"additional_inputs"`
	CompletedSections   []content.Section `json:"completed_sections"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// ToResponse converts a study to its JSON shape. Sections never generated
// encode as null.
func (s Study) ToResponse() StudyResponse {
	progress := s.Progress.Clone()
	return StudyResponse{
		ID:                  s.ID,
		StudyType:           s.StudyType,
		FieldOfStudy:        s.FieldOfStudy,
		MainTopic:           s.MainTopic,
		ProblemDescription:  s.ProblemDescription,
		Keywords:            s.Keywords,
		TitleContent:        s.contentPtr(content.SectionTitle),
		AbstractContent:     s.contentPtr(content.SectionAbstract),
		IntroductionContent: s.contentPtr(content.SectionIntroduction),
		LiteratureContent:   s.contentPtr(content.SectionLiterature),
		MethodologyContent:  s.contentPtr(content.SectionMethodology),
		ResultsContent:      s.contentPtr(content.SectionResults),
		DiscussionContent:   s.contentPtr(content.SectionDiscussion),
		ConclusionContent:   s.contentPtr(content.SectionConclusion),
		ReferencesContent:   s.contentPtr(content.SectionReferences),
		AdditionalInputs:    progress.AdditionalInputs,
		CompletedSections:   progress.CompletedSections,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

func (s Study) contentPtr(section content.Section) *string {
	v, ok := s.Contents[section]
	if !ok {
		return nil
	}
	return &v
}

// GenerateRequest is the body of POST /generate.
type GenerateRequest struct {
	Section string         `json:"section"`
	Data    map[string]any `json:"data"`
}

// GenerateResult is what one generation call produced.
type GenerateResult struct {
	Content string
	// StudyID is empty when no study was created or updated.
	StudyID string
}

// GenerateResponse is the body returned from POST /generate.
type GenerateResponse struct {
	Success bool    `json:"success"`
	Content string  `json:"content"`
	StudyID *string `json:"study_id"`
}

// ExportRequest is the body of POST /export.
type ExportRequest struct {
	Data     map[string]any `json:"data"`
	Sections []string       `json:"sections"`
}
