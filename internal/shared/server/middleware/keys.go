package middleware

// Context keys handlers set so request logs can carry study details.
const (
	StudyIDKey = "studyId"
	SectionKey = "section"
)
