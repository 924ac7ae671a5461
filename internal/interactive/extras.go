package interactive

import (
	"fmt"
	"os"
	"path/filepath"

	"nfomaker/internal/render"
)

// ProposeRename offers the proposed conventional filename and applies the
// rename when confirmed. It returns the final path, which is unchanged when
// the user declines.
func (s *Session) ProposeRename(path, proposed string) (string, error) {
	fmt.Fprintf(s.Out, "Proposed name: %s\n", proposed)

	ok, err := s.Prompter.Confirm("Rename the file to this name?", true)
	if err != nil {
		return path, err
	}
	if !ok {
		manual, err := s.Prompter.Input("Manual name (empty to skip renaming)")
		if err != nil {
			return path, err
		}
		if manual == "" {
			return path, nil
		}
		proposed = manual
	}

	target := proposed
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	if target == path {
		return path, nil
	}
	if _, err := os.Stat(target); err == nil {
		overwrite, err := s.Prompter.Confirm(fmt.Sprintf("%s exists. Overwrite?", target), false)
		if err != nil {
			return path, err
		}
		if !overwrite {
			return path, nil
		}
	}
	if err := os.Rename(path, target); err != nil {
		return path, fmt.Errorf("rename file: %w", err)
	}
	return target, nil
}

// ExtraSections optionally collects Notes and Greetz sections.
func (s *Session) ExtraSections() ([]render.Section, error) {
	var extras []render.Section
	for _, name := range []string{"Notes", "Greetz"} {
		ok, err := s.Prompter.Confirm(fmt.Sprintf("Add a %s section?", name), false)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		lines, err := s.Prompter.Multiline(fmt.Sprintf("%s content", name))
		if err != nil {
			return nil, err
		}
		if len(lines) > 0 {
			extras = append(extras, render.Section{Name: name, Lines: lines})
		}
	}
	return extras, nil
}
