package adaptation

import "strings"

// FallbackConcept is returned when no vocabulary keyword matches.
const FallbackConcept = "lesson concept diagram"

// conceptVocabulary is scanned in order; the match order fixes the order of
// the returned labels.
var conceptVocabulary = []struct {
	keyword string
	label   string
}{
	// Science
	{"water cycle", "water cycle"},
	{"evaporation", "evaporation"},
	{"condensation", "condensation"},
	{"precipitation", "precipitation"},
	// Math
	{"fraction", "fractions"},
	{"multiplication", "multiplication"},
	{"division", "division"},
}

// ExtractConcepts scans lesson content for visualizable concepts. Each label
// appears at most once, in vocabulary order; with no match at all it returns
// the single fallback entry. Callers cap the list before requesting images.
func ExtractConcepts(content string) []string {
	text := strings.ToLower(content)

	var concepts []string
	seen := make(map[string]bool)
	for _, entry := range conceptVocabulary {
		if !strings.Contains(text, entry.keyword) || seen[entry.label] {
			continue
		}
		seen[entry.label] = true
		concepts = append(concepts, entry.label)
	}

	if len(concepts) == 0 {
		return []string{FallbackConcept}
	}
	return concepts
}
