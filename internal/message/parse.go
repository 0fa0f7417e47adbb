package message

import (
	"errors"
	"regexp"
	"strings"
)

// ErrEmptyResponse indicates the model response contained no usable text
// after cleanup.
var ErrEmptyResponse = errors.New("empty response from model")

// conventionalPattern is a best-effort parse of <type>[(scope)][!]: <subject>.
// Any leading word is accepted as a type here; Validate enforces the closed
// set separately.
var conventionalPattern = regexp.MustCompile(`^(\w+)(?:\(([^)]*)\))?(!)?: (.+)$`)

// Parse interprets raw model output as a commit message. It strips code
// fences and stray backticks, splits the text into a title and optional
// body, decomposes conventional titles into their parts, and scores the
// result with a confidence heuristic.
func Parse(raw string, style Style) (*CommitMessage, error) {
	text := strings.TrimSpace(raw)
	text = stripCodeFence(text)
	text = strings.Trim(text, "`")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmptyResponse
	}

	msg := &CommitMessage{
		Title: lines[0],
		Body:  strings.TrimSpace(strings.Join(lines[1:], "\n")),
	}

	if style == StyleConventional {
		if m := conventionalPattern.FindStringSubmatch(msg.Title); m != nil {
			msg.Type = m[1]
			msg.Scope = m[2]
			msg.Breaking = m[3] == "!"
		}
	}

	msg.Confidence = scoreConfidence(msg)
	return msg, nil
}

// stripCodeFence removes one leading and one trailing fence delimiter. The
// opening fence line is dropped entirely so language tags disappear with it.
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}

	if idx := strings.Index(text, "\n"); idx >= 0 {
		text = text[idx+1:]
	} else {
		text = strings.TrimPrefix(text, "```")
	}

	text = strings.TrimSpace(text)
	if strings.HasSuffix(text, "```") {
		text = strings.TrimSpace(strings.TrimSuffix(text, "```"))
	}
	return text
}

// scoreConfidence is a fixed additive heuristic, not a calibrated
// probability. It rewards the stylistic signals of a good commit title.
func scoreConfidence(msg *CommitMessage) float64 {
	score := 0.5

	titleLen := len(msg.Title)
	if titleLen > 10 && titleLen <= 50 {
		score += 0.2
	}
	if titleLen > 0 {
		first := msg.Title[0]
		if first >= 'a' && first <= 'z' {
			score += 0.1
		}
	}
	if !strings.HasSuffix(msg.Title, ".") {
		score += 0.1
	}
	if strings.Contains(msg.Title, ":") {
		score += 0.1
	}
	if msg.Body != "" && len(msg.Body) > 20 {
		score += 0.1
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
