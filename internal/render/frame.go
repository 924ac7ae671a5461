package render

import "strings"

// Flags controls how a section's content lines are framed.
type Flags struct {
	// Wrap word-wraps long lines to the inner width instead of letting the
	// line formatter truncate them.
	Wrap bool
	// Pad is the number of literal spaces between a motif fragment and the
	// formatted content.
	Pad int
	// UseDots enables dot-leader formatting for lines containing ':'.
	UseDots bool
	// AddPadLines inserts one blank framed line at the top and bottom of the
	// section block.
	AddPadLines bool
}

// FrameSection renders content lines as bordered, width-exact output using
// the separator template's motifs. When the template has no usable motif
// body the input is returned unchanged (no framing available).
//
// A single token wider than the inner width is emitted unclipped, so that
// one line may exceed the document width rather than losing content.
func FrameSection(lines []string, separator Template, flags Flags) []string {
	if len(separator) < 4 {
		return append([]string(nil), lines...)
	}
	motifs := ExtractMotifs(separator[3:])
	if len(motifs) == 0 {
		return append([]string(nil), lines...)
	}

	width := runeLen(separator[0])
	inner := width - runeLen(motifs[0].Left) - runeLen(motifs[0].Right) - 2*flags.Pad

	cleaned := make([]string, 0, len(lines)+2)
	if flags.AddPadLines {
		cleaned = append(cleaned, "")
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cleaned = append(cleaned, line)
	}
	if flags.AddPadLines {
		cleaned = append(cleaned, "")
	}

	pad := strings.Repeat(" ", flags.Pad)
	framed := make([]string, 0, len(cleaned))
	idx := 0
	for _, line := range cleaned {
		chunks := []string{line}
		if flags.Wrap {
			chunks = wrapText(line, inner)
		}
		for _, chunk := range chunks {
			motif := motifs[idx%len(motifs)]
			formatted := FormatLine(chunk, inner, flags.UseDots)
			if flags.Wrap && runeLen(chunk) > inner {
				// An unbroken token wider than the inner width survives
				// unclipped; the line overflows the document width instead
				// of losing content.
				formatted = chunk
			}
			framed = append(framed, motif.Left+pad+formatted+pad+motif.Right)
			idx++
		}
	}
	return framed
}

// wrapText greedily word-wraps text into lines of at most width columns.
// Words are never split and hyphenated tokens stay intact, so an oversized
// token overflows its line. Embedded newlines force breaks, and an empty
// piece yields exactly one empty output line.
func wrapText(text string, width int) []string {
	var out []string
	for _, piece := range strings.Split(text, "\n") {
		words := strings.Fields(piece)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			if runeLen(line)+1+runeLen(word) <= width {
				line += " " + word
				continue
			}
			out = append(out, line)
			line = word
		}
		out = append(out, line)
	}
	if len(out) == 0 {
		out = append(out, "")
	}
	return out
}
