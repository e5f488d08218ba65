package report

// Recommendations returns reading advice for a difficulty score, in three
// tiers matching the difficulty bands learners actually struggle at.
func Recommendations(score float64) []string {
	switch {
	case score > 8:
		return []string{
			"This text is demanding. Suggested approach:",
			"- Preview the subject's background knowledge and terminology first",
			"- Use SQ3R: survey, question, read, recite, review",
			"- Focus on the text's structure and chain of argument",
			"- Keep an academic dictionary or subject glossary at hand",
			"- Take detailed notes and sketch concept maps as you go",
		}
	case score > 6:
		return []string{
			"This text has real academic bite. Suggested approach:",
			"- Preview headings, subheadings, and structural features before reading",
			"- Identify the main claims and their supporting evidence",
			"- Read critically: evaluate the evidence as you meet it",
			"- Connect new ideas to what you already know",
			"- Look up background material where the argument assumes it",
		}
	default:
		return []string{
			"This text is a comfortable read. Suggested approach:",
			"- Read actively, thinking as you go",
			"- Notice how the text is organized and how its parts connect",
			"- Practice summarizing the key information in your own words",
			"- Compare the author's views with your own",
			"- Enjoy learning something new",
		}
	}
}
