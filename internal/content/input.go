package content

import (
	"fmt"
	"strconv"
	"strings"
)

// StudyInput is the structured request data for one generation call.
type StudyInput struct {
	StudyType          string
	FieldOfStudy       string
	MainTopic          string
	ProblemDescription string
	Keywords           string
	StudyID            string
	// AdditionalInputs is keyed by "<section>_input".
	AdditionalInputs map[string]string
}

// InputFromMap builds a StudyInput from a loosely typed request payload.
// Unknown keys are ignored; missing keys become empty strings.
func InputFromMap(data map[string]any) StudyInput {
	in := StudyInput{
		StudyType:          stringValue(data["studyType"]),
		FieldOfStudy:       stringValue(data["fieldOfStudy"]),
		MainTopic:          stringValue(data["mainTopic"]),
		ProblemDescription: stringValue(data["problemDescription"]),
		Keywords:           stringValue(data["keywords"]),
		StudyID:            stringValue(data["study_id"]),
	}
	for _, s := range ContentSections() {
		raw, ok := data[s.InputKey()]
		if !ok || raw == nil {
			continue
		}
		if in.AdditionalInputs == nil {
			in.AdditionalInputs = make(map[string]string)
		}
		in.AdditionalInputs[s.InputKey()] = stringValue(raw)
	}
	return in
}

// AdditionalInput returns the auxiliary input supplied for section, if any.
func (in StudyInput) AdditionalInput(section Section) (string, bool) {
	v, ok := in.AdditionalInputs[section.InputKey()]
	return v, ok
}

func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		// JSON numbers decode as float64; ids are integral.
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case fmt.Stringer:
		return t.String()
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}
