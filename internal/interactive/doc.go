// Package interactive walks the user through correcting document sections
// before rendering. Prompts go through the Prompter interface so tests can
// script a whole session; the real implementation is backed by survey.
package interactive
