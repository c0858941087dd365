package content

// Progress tracks which sections of a study are done and the auxiliary input
// supplied per section. It is not synchronized; callers serialize writers
// for the same study.
type Progress struct {
	CompletedSections []Section         `json:"completed_sections"`
	AdditionalInputs  map[string]string `json:"additional_inputs"`
}

// NewProgress returns empty progress.
func NewProgress() Progress {
	return Progress{
		CompletedSections: []Section{},
		AdditionalInputs:  map[string]string{},
	}
}

// MarkComplete records section as completed. Repeats and setup are no-ops.
func (p *Progress) MarkComplete(section Section) {
	if !section.Storable() || p.IsComplete(section) {
		return
	}
	p.CompletedSections = append(p.CompletedSections, section)
}

// IsComplete reports whether section has been marked complete.
func (p *Progress) IsComplete(section Section) bool {
	for _, s := range p.CompletedSections {
		if s == section {
			return true
		}
	}
	return false
}

// RecordAdditionalInput stores value under "<section>_input", replacing any
// earlier value.
func (p *Progress) RecordAdditionalInput(section Section, value string) {
	if !section.Storable() {
		return
	}
	if p.AdditionalInputs == nil {
		p.AdditionalInputs = make(map[string]string)
	}
	p.AdditionalInputs[section.InputKey()] = value
}

// Clone returns a deep copy.
func (p Progress) Clone() Progress {
	out := Progress{
		CompletedSections: append([]Section{}, p.CompletedSections...),
		AdditionalInputs:  make(map[string]string, len(p.AdditionalInputs)),
	}
	for k, v := range p.AdditionalInputs {
		out.AdditionalInputs[k] = v
	}
	return out
}
