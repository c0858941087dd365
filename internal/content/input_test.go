package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputFromMap(t *testing.T) {
	in := InputFromMap(map[string]any{
		"studyType":          "phd",
		"fieldOfStudy":       "law",
		"mainTopic":          "العقود الذكية",
		"problemDescription": "غياب الإطار التشريعي",
		"keywords":           "عقود",
		"study_id":           float64(42),
		"results_input":      "ملاحظة",
		"setup_input":        "ignored",
		"unrelated":          true,
	})

	assert.Equal(t, "phd", in.StudyType)
	assert.Equal(t, "law", in.FieldOfStudy)
	assert.Equal(t, "42", in.StudyID)
	assert.Equal(t, map[string]string{"results_input": "ملاحظة"}, in.AdditionalInputs)

	v, ok := in.AdditionalInput(SectionResults)
	assert.True(t, ok)
	assert.Equal(t, "ملاحظة", v)
	_, ok = in.AdditionalInput(SectionTitle)
	assert.False(t, ok)
}

func TestInputFromMapMissingKeys(t *testing.T) {
	in := InputFromMap(nil)
	assert.Equal(t, StudyInput{}, in)
}

func TestStringValue(t *testing.T) {
	assert.Equal(t, "", stringValue(nil))
	assert.Equal(t, "7", stringValue(float64(7)))
	assert.Equal(t, "1.5", stringValue(1.5))
	assert.Equal(t, "true", stringValue(true))
	assert.Equal(t, "12", stringValue(12))
}
