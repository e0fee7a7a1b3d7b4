// Package prompt composes the chat messages sent to the completion provider.
package prompt

import "strings"

// SystemMessage frames the assistant as a meeting-notes summarizer.
const SystemMessage = "You are a helpful assistant that summarizes meeting notes and transcripts. " +
	"Follow the user's instructions carefully and produce a well-structured, professional summary."

const formatDirective = "Please provide a clear, well-formatted summary based on the instructions above."

// Prompt is a system/user message pair.
type Prompt struct {
	System string
	User   string
}

// Build embeds the transcript and the instruction verbatim in the user message.
// Nothing is escaped; both come from the same caller.
func Build(content, instruction string) Prompt {
	var b strings.Builder
	b.Grow(len(content) + len(instruction) + 128)

	b.WriteString("Here is the meeting transcript/notes:\n\n")
	b.WriteString(content)
	b.WriteString("\n\nInstructions: ")
	b.WriteString(instruction)
	b.WriteString("\n\n")
	b.WriteString(formatDirective)

	return Prompt{
		System: SystemMessage,
		User:   b.String(),
	}
}
