package interactive

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"nfomaker/internal/render"
	"nfomaker/internal/textutil"
)

// Session drives a review pass over document sections.
type Session struct {
	Prompter Prompter
	Out      io.Writer

	// RefreshLookup re-runs movie resolution and returns fresh sections.
	RefreshLookup func() ([]render.Section, error)
	// RefreshTech re-runs technical extraction and returns fresh sections.
	RefreshTech func() ([]render.Section, error)
}

const (
	actionManual = "Enter a value manually"
	actionKeep   = "Keep N/A"
	actionDelete = "Delete the line"
)

// Review walks every section, offering fixes for N/A values and manual
// edits. The input slice is never mutated; the result is a fresh copy.
func (s *Session) Review(sections []render.Section) ([]render.Section, error) {
	reviewed := render.CloneSections(sections)
	manual := make(map[string]bool)

	for idx := range reviewed {
		if err := s.reviewSection(reviewed, idx, manual); err != nil {
			return nil, err
		}
	}
	return reviewed, nil
}

func (s *Session) reviewSection(sections []render.Section, idx int, manual map[string]bool) error {
	for {
		section := sections[idx]
		s.showSection(section, false)

		if err := s.fixMissing(sections, idx, manual); err != nil {
			return err
		}
		section = sections[idx]

		ok, err := s.Prompter.Confirm(fmt.Sprintf("Section %s correct?", section.Name), true)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}

		options := []string{"Edit a line"}
		if s.refresherFor(section.Name) != nil {
			options = append(options, "Retry automatic detection")
		}
		choice := 0
		if len(options) > 1 {
			choice, err = s.Prompter.Select("What do you want to do?", options)
			if err != nil {
				return err
			}
		}

		if choice == 1 {
			if err := s.refresh(sections, idx, manual); err != nil {
				return err
			}
			continue
		}
		if err := s.editLine(sections, idx, manual); err != nil {
			return err
		}
	}
}

// fixMissing offers a fix for every line still carrying the N/A sentinel.
func (s *Session) fixMissing(sections []render.Section, idx int, manual map[string]bool) error {
	section := sections[idx]
	missing := naIndices(section.Lines)
	if len(missing) == 0 {
		return nil
	}

	fmt.Fprintf(s.Out, "%d line(s) with N/A values detected.\n", len(missing))
	lines := append([]string(nil), section.Lines...)
	removed := 0
	for _, lineIdx := range missing {
		lineIdx -= removed
		if lineIdx < 0 || lineIdx >= len(lines) {
			continue
		}
		choice, err := s.Prompter.Select(
			fmt.Sprintf("Line %q", lines[lineIdx]),
			[]string{actionManual, actionKeep, actionDelete},
		)
		if err != nil {
			return err
		}
		switch choice {
		case 0:
			value, err := s.Prompter.Input("New value")
			if err != nil {
				return err
			}
			lines = replaceAt(lines, lineIdx, s.applyValue(section.Name, lines[lineIdx], value))
			manual[section.Name] = true
		case 2:
			lines = append(lines[:lineIdx], lines[lineIdx+1:]...)
			removed++
			if len(lines) == 0 {
				lines = []string{textutil.NotAvailable}
			}
			manual[section.Name] = true
		}
	}
	sections[idx] = section.WithLines(lines)
	return nil
}

func (s *Session) editLine(sections []render.Section, idx int, manual map[string]bool) error {
	section := sections[idx]
	s.showSection(section, true)

	options := make([]string, len(section.Lines))
	for i, line := range section.Lines {
		if line == "" {
			line = "(empty)"
		}
		options[i] = line
	}
	lineIdx, err := s.Prompter.Select("Line to change", options)
	if err != nil {
		return err
	}
	value, err := s.Prompter.Input("New value")
	if err != nil {
		return err
	}

	lines := replaceAt(section.Lines, lineIdx, s.applyValue(section.Name, section.Lines[lineIdx], value))
	sections[idx] = section.WithLines(lines)
	manual[section.Name] = true
	return nil
}

// refresh re-runs the automatic detection backing the section and merges the
// fresh lines in, leaving manually edited sections alone. The refreshed
// header follows along unless the user already touched it.
func (s *Session) refresh(sections []render.Section, idx int, manual map[string]bool) error {
	section := sections[idx]
	refresher := s.refresherFor(section.Name)
	if refresher == nil {
		fmt.Fprintln(s.Out, "No automatic detection available for this section.")
		return nil
	}

	fresh, err := refresher()
	if err != nil {
		fmt.Fprintf(s.Out, "Automatic detection failed: %v\n", err)
		return nil
	}

	freshByName := make(map[string][]string, len(fresh))
	for _, sec := range fresh {
		freshByName[sec.Name] = sec.Lines
	}

	if lines, ok := freshByName[section.Name]; ok {
		sections[idx] = section.WithLines(lines)
		delete(manual, section.Name)
	}
	if !manual[render.SectionHeader] {
		for i := range sections {
			if sections[i].Name != render.SectionHeader {
				continue
			}
			if lines, ok := freshByName[render.SectionHeader]; ok {
				sections[i] = sections[i].WithLines(lines)
			}
		}
	}
	return nil
}

func (s *Session) refresherFor(name string) func() ([]render.Section, error) {
	switch name {
	case "Movie", render.SectionHeader:
		return s.RefreshLookup
	case "General", "Video", "Audio", "Subtitles", "File":
		return s.RefreshTech
	}
	return nil
}

// applyValue replaces a line's value, preserving the key of "Key: value"
// lines and the Source field of the header detail line.
func (s *Session) applyValue(sectionName, line, value string) string {
	if value == "" {
		value = textutil.NotAvailable
	}
	if sectionName == render.SectionHeader && strings.Contains(line, "Source:") {
		return ReplaceHeaderField(line, "Source", value)
	}
	if key, _, found := strings.Cut(line, ": "); found && !strings.Contains(key, "|") {
		return key + ": " + value
	}
	return value
}

func (s *Session) showSection(section render.Section, numbered bool) {
	fmt.Fprintln(s.Out)
	fmt.Fprintln(s.Out, section.Name)
	for i, line := range section.Lines {
		if numbered {
			label := line
			if label == "" {
				label = "(empty)"
			}
			fmt.Fprintf(s.Out, "%2d) %s\n", i+1, label)
		} else {
			fmt.Fprintln(s.Out, line)
		}
	}
}

// ReplaceHeaderField swaps the value of a "Field: value" segment inside the
// pipe-separated header detail line.
func ReplaceHeaderField(line, field, value string) string {
	if strings.TrimSpace(value) == "" {
		value = textutil.NotAvailable
	}
	pattern := regexp.MustCompile(regexp.QuoteMeta(field) + `:\s*[^|]+`)
	if !pattern.MatchString(line) {
		return line
	}
	return strings.TrimRight(pattern.ReplaceAllString(line, field+": "+value+" "), " ")
}

func naIndices(lines []string) []int {
	var indices []int
	for i, line := range lines {
		if strings.Contains(line, textutil.NotAvailable) {
			indices = append(indices, i)
		}
	}
	return indices
}

func replaceAt(lines []string, idx int, value string) []string {
	out := append([]string(nil), lines...)
	out[idx] = value
	return out
}
