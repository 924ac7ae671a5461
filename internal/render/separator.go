package render

// BuildSeparator renders the 3-line titled separator for a section: the
// template's top rule, its middle rule rebuilt around the centered title,
// and its bottom rule. A template with fewer than 3 lines yields nil so the
// caller can fall back to printing the bare title; a middle rule too narrow
// to center into is passed through unchanged.
func BuildSeparator(title string, separator Template) []string {
	if len(separator) < 3 {
		return nil
	}
	top, middle, bottom := separator[0], separator[1], separator[2]
	mid := []rune(middle)
	inner := len(mid) - 2
	if inner < 1 {
		return []string{top, middle, bottom}
	}
	centered := centerRunes(truncateRunes(title, inner), inner)
	rebuilt := string(mid[0]) + centered + string(mid[len(mid)-1])
	return []string{top, rebuilt, bottom}
}
