package render

import "strings"

// Assemble renders the ordered section list into the final document: header
// banner, the reserved "Header" section framed without a separator, every
// other section behind its titled separator, and the footer banner set off
// by exactly one blank line. The result is newline-joined with trailing
// whitespace stripped and exactly one trailing newline.
func Assemble(sections []Section, tpl Templates) string {
	var lines []string
	lines = append(lines, tpl.Header...)

	for _, section := range sections {
		if section.Name != SectionHeader {
			continue
		}
		framed := FrameSection(section.Lines, tpl.Separator, Flags{Wrap: true, Pad: 1})
		if len(framed) == 0 {
			framed = section.Lines
		}
		lines = append(lines, framed...)
	}

	for _, section := range sections {
		if section.Name == SectionHeader {
			continue
		}
		if sep := BuildSeparator(section.Name, tpl.Separator); len(sep) > 0 {
			lines = append(lines, sep...)
		} else {
			lines = append(lines, section.Name)
		}
		lines = append(lines, FrameSection(section.Lines, tpl.Separator, Flags{
			Wrap:        section.Name == SectionSummary,
			Pad:         1,
			UseDots:     section.Name != SectionSummary,
			AddPadLines: true,
		})...)
	}

	if len(tpl.Footer) > 0 {
		if len(lines) > 0 && lines[len(lines)-1] != "" {
			lines = append(lines, "")
		}
		lines = append(lines, tpl.Footer...)
	}

	return strings.TrimRight(strings.Join(lines, "\n"), " \t\r\n") + "\n"
}
