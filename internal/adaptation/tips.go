package adaptation

import "strings"

// Markers the coaching-tip prompt asks the model to emit per tip.
const (
	tipTypeMarker    = "**Tip Type**:"
	suggestionMarker = "**Suggestion**:"
	whyMarker        = "**Why**:"
)

// MaxCoachingTips bounds the parsed tip list.
const MaxCoachingTips = 7

// TipType tags a coaching tip with its category. The set is closed; the
// classifier maps anything unrecognized to TipTypeEngagement.
type TipType string

const (
	TipTypeEngagement TipType = "engagement"
	TipTypeBreak      TipType = "break"
	TipTypeVisual     TipType = "visual"
	TipTypeMovement   TipType = "movement"
	TipTypeAttention  TipType = "attention"
)

// CoachingTip is one parsed suggestion with its category tag. Type values
// match the coaching_tips.tip_type column.
type CoachingTip struct {
	Type       TipType
	Suggestion string
}

// ParseCoachingTips slices the model's semi-structured markdown into discrete
// tips. The model is asked for `**Tip Type**` / `**Suggestion**` / `**Why**`
// groups, but its output drifts, so the pass degrades gracefully: "Why" lines
// are dropped, unlabeled prose after a suggestion is folded into it, and
// malformed input just yields fewer tips. It never fails.
func ParseCoachingTips(tipsText string) []CoachingTip {
	var tips []CoachingTip

	current := CoachingTip{Type: TipTypeEngagement}

	for _, line := range strings.Split(tipsText, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		switch {
		case strings.Contains(line, tipTypeMarker):
			if current.Suggestion != "" {
				tips = append(tips, current)
			}
			current.Type = classifyTipType(line)
			current.Suggestion = ""

		case strings.Contains(line, suggestionMarker):
			rest := line[strings.Index(line, suggestionMarker)+len(suggestionMarker):]
			current.Suggestion = strings.TrimSpace(rest)

		case current.Suggestion != "" && !strings.Contains(line, whyMarker):
			// The model sometimes wraps a suggestion across lines.
			current.Suggestion += " " + line
		}
	}

	if current.Suggestion != "" {
		tips = append(tips, current)
	}

	if len(tips) > MaxCoachingTips {
		tips = tips[:MaxCoachingTips]
	}
	return tips
}

// classifyTipType is a first-match-wins substring chain. Keep this order:
// a line mentioning both "visual" and "break" must classify as break.
func classifyTipType(line string) TipType {
	lowered := strings.ToLower(line)
	switch {
	case strings.Contains(lowered, "break"):
		return TipTypeBreak
	case strings.Contains(lowered, "visual"):
		return TipTypeVisual
	case strings.Contains(lowered, "movement"):
		return TipTypeMovement
	case strings.Contains(lowered, "attention"):
		return TipTypeAttention
	default:
		return TipTypeEngagement
	}
}
