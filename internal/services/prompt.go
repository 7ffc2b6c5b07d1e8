package services

import "fmt"

// Prompt templates for the two chat calls and the image call. The coaching
// prompt's three-marker format is what adaptation.ParseCoachingTips expects;
// change them together.

const adaptationSystemPrompt = `You are an ADHD education specialist. Adapt lesson plans to be more ADHD-friendly by breaking content into smaller chunks, adding engagement points, suggesting visual aids, and incorporating movement breaks.`

const coachingSystemPrompt = `You are an ADHD education specialist. Analyze lesson plans and provide specific, actionable coaching tips for teachers to better support ADHD students. Focus on attention management, engagement strategies, break timing, and sensory considerations.`

func adaptationUserPrompt(content, subject, gradeLevel string) string {
	return fmt.Sprintf(`Adapt this %s lesson for grade %s to be ADHD-friendly:

Original Lesson:
%s

Please provide:
1. **Chunked Content**: Break into 10-15 minute segments
2. **Engagement Points**: Interactive elements throughout
3. **Visual Aids Needed**: Specific suggestions for visual supports
4. **Movement Breaks**: Strategic break points and activities
5. **Attention Grabbers**: Hooks to maintain focus`, subject, gradeLevel, content)
}

func coachingUserPrompt(content, subject, gradeLevel string) string {
	return fmt.Sprintf(`Analyze this %s lesson for grade %s and provide 5-7 specific ADHD-friendly coaching tips:

Lesson Content:
%s

Please provide tips in this format:
- **Tip Type**: [engagement/break/visual/movement/attention]
- **Suggestion**: [specific actionable tip]
- **Why**: [brief explanation of ADHD benefit]`, subject, gradeLevel, content)
}

func visualizerPrompt(concept, gradeLevel string) string {
	return fmt.Sprintf(`Create an educational illustration for grade %s students that visually explains the concept of "%s". The image should be:
- Clear and simple with bright, engaging colors
- Cartoon or illustration style (not photorealistic)
- Educational and age-appropriate
- Designed to help ADHD students understand abstract concepts
- Include visual metaphors or analogies when helpful`, gradeLevel, concept)
}
