package scoring

import (
	"fmt"
	"sort"
	"strings"
)

const applicationSystemPrompt = `
You review applications to an intensive education program.

Score the applicant from 0 to 100 on motivation, relevant experience, clarity of goals and fit with the program.

Return pure JSON only, with this shape:

{
  "score": <integer 0-100>,
  "recommendation": "<accept | review | reject>",
  "strengths": ["..."],
  "concerns": ["..."],
  "summary": "<two or three sentences>"
}

Be fair and specific. Never invent facts that are not in the application.
`

const pitchSystemPrompt = `
You evaluate startup pitches written by students.

Rate each criterion from 0 to 10:
- clarity: is the problem and solution easy to understand?
- market: is there a real, reachable market?
- innovation: how new is the approach?
- feasibility: can this team realistically build it?

Return pure JSON only, with this shape:

{
  "scores": {"clarity": <0-10>, "market": <0-10>, "innovation": <0-10>, "feasibility": <0-10>},
  "overall": <0-10>,
  "feedback": "<short paragraph>",
  "suggestions": ["..."]
}
`

func buildApplicationPrompt(req ApplicationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Applicant: %s\n", req.ApplicantName)
	if req.Program != "" {
		fmt.Fprintf(&b, "Program: %s\n", req.Program)
	}
	fmt.Fprintf(&b, "\nMotivation:\n%s\n", req.Motivation)
	if req.Experience != "" {
		fmt.Fprintf(&b, "\nExperience:\n%s\n", req.Experience)
	}
	if req.Goals != "" {
		fmt.Fprintf(&b, "\nGoals:\n%s\n", req.Goals)
	}
	if len(req.Answers) > 0 {
		keys := make([]string, 0, len(req.Answers))
		for k := range req.Answers {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString("\nAdditional answers:\n")
		for _, k := range keys {
			fmt.Fprintf(&b, "- %s: %s\n", k, req.Answers[k])
		}
	}
	return b.String()
}

func buildPitchPrompt(req PitchRequest) string {
	audience := ""
	if req.Audience != "" {
		audience = fmt.Sprintf("Target audience: %s\n", req.Audience)
	}
	return fmt.Sprintf("Title: %s\n%s\nPitch:\n%s\n", req.Title, audience, req.Pitch)
}
