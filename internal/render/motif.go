package render

// Motif is a left/right border fragment pair. Framed output lines consume
// motifs round-robin by physical line index.
type Motif struct {
	Left  string
	Right string
}

// motifFragmentLen is the fragment width sliced from each motif body line.
const motifFragmentLen = 3

// ExtractMotifs derives border fragments from the separator template's body
// lines (index 3 onward). Each line of at least 6 characters contributes its
// first and last 3 characters; shorter lines are dropped by policy rather
// than reported. An empty result signals that no framing is available.
func ExtractMotifs(body []string) []Motif {
	var motifs []Motif
	for _, line := range body {
		runes := []rune(line)
		if len(runes) < 2*motifFragmentLen {
			continue
		}
		motifs = append(motifs, Motif{
			Left:  string(runes[:motifFragmentLen]),
			Right: string(runes[len(runes)-motifFragmentLen:]),
		})
	}
	return motifs
}
