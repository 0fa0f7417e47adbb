package message

import "strings"

// Format renders a commit message as the text handed to git commit.
func Format(msg *CommitMessage, style Style) string {
	switch style {
	case StyleConventional:
		return formatConventional(msg)
	case StyleDetailed:
		if msg.Body != "" {
			return msg.Title + "\n\n" + msg.Body
		}
		return msg.Title
	default:
		return msg.Title
	}
}

func formatConventional(msg *CommitMessage) string {
	var b strings.Builder

	// Parsed titles keep their original type prefix, so only compose one
	// when the title does not already carry it.
	if msg.Type != "" && !conventionalPattern.MatchString(msg.Title) {
		b.WriteString(msg.Type)
		if msg.Scope != "" {
			b.WriteString("(" + msg.Scope + ")")
		}
		if msg.Breaking {
			b.WriteString("!")
		}
		b.WriteString(": ")
	}
	b.WriteString(msg.Title)

	if msg.Body != "" {
		b.WriteString("\n\n" + msg.Body)
	}
	return b.String()
}
