package render

// Reserved section names that receive special layout treatment.
const (
	// SectionHeader is the compact top summary block rendered directly
	// under the header banner, without a titled separator.
	SectionHeader = "Header"
	// SectionSummary holds free prose and is word-wrapped instead of
	// dot-leader formatted.
	SectionSummary = "Summary"
)

// Section is a named, ordered block of content lines. The name doubles as
// the separator title. An empty line slice is invalid; producers substitute
// the "N/A" sentinel before handing sections to the engine.
type Section struct {
	Name  string
	Lines []string
}

// WithLines returns a copy of the section carrying the given lines.
func (s Section) WithLines(lines []string) Section {
	return Section{Name: s.Name, Lines: append([]string(nil), lines...)}
}

// Clone returns a deep copy of the section.
func (s Section) Clone() Section {
	return s.WithLines(s.Lines)
}

// CloneSections deep-copies a section list.
func CloneSections(sections []Section) []Section {
	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.Clone())
	}
	return out
}
