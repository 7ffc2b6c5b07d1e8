// Package adaptation holds the text-processing core behind the ADHD
// adaptation endpoints: the grade-level break-interval policy, the
// lesson-concept extractor, and the coaching-tip parser.
package adaptation

// DefaultBreakIntervalMinutes is returned for any grade label outside the
// known table.
const DefaultBreakIntervalMinutes = 20

// Break intervals by grade, in minutes. Younger students get shorter
// stretches between breaks.
var breakIntervals = map[string]int{
	"Pre-K":        8,
	"Kindergarten": 10,
	"1st Grade":    12,
	"2nd Grade":    12,
	"3rd Grade":    15,
	"4th Grade":    15,
	"5th Grade":    18,
	"6th Grade":    20,
	"7th Grade":    20,
	"8th Grade":    22,
	"9th Grade":    25,
	"10th Grade":   25,
	"11th Grade":   25,
	"12th Grade":   30,
}

// IntervalMinutes maps a grade-level label to a break interval. Total over
// all strings; unknown labels fall back to DefaultBreakIntervalMinutes.
func IntervalMinutes(gradeLevel string) int {
	if minutes, ok := breakIntervals[gradeLevel]; ok {
		return minutes
	}
	return DefaultBreakIntervalMinutes
}
