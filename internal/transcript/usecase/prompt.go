package usecase

import "strings"

// systemInstruction fixes the extraction task and the output contract.
const systemInstruction = `You analyze meeting transcripts and return the key information as structured JSON.

Rules:
1. Write every item in clear, actionable language.
2. Do not repeat items and do not include vague ones.
3. When a deadline is mentioned, keep it in the wording used in the meeting.
4. A task is an action someone committed to, together with its deadline if one was given.
5. A decision is a definitive conclusion or agreement reached in the meeting.
6. The summary is one to three sentences covering the main discussion points.

Respond with exactly one JSON object. Do not add prose, explanations or markdown code fences.`

const responseExample = `{
  "summary": "Concise summary of key discussion points.",
  "decisions": ["Decision 1", "Decision 2"],
  "tasks": [
    {"title": "Clear action item", "due_date": "deadline if mentioned or null"},
    {"title": "Another action item", "due_date": "deadline if mentioned or null"}
  ]
}`

// buildUserPrompt embeds the trimmed transcript and the expected response shape.
func buildUserPrompt(transcriptText string) string {
	var b strings.Builder

	b.WriteString("Read the meeting transcript below and extract:\n")
	b.WriteString("1. A concise summary of the key discussion points\n")
	b.WriteString("2. Every decision that was made\n")
	b.WriteString("3. Every actionable task, with its deadline when one was mentioned\n\n")
	b.WriteString("Meeting transcript:\n")
	b.WriteString(transcriptText)
	b.WriteString("\n\nReturn the result in exactly this JSON format:\n")
	b.WriteString(responseExample)
	b.WriteString("\n\nReminders:\n")
	b.WriteString("- Task titles must be clear and actionable\n")
	b.WriteString("- Keep deadline wording exactly as it was said\n")
	b.WriteString("- No duplicates\n")
	b.WriteString("- Use JSON null for due_date when no deadline was mentioned\n")
	b.WriteString("- Output only the JSON object")

	return b.String()
}
