package message

import (
	"regexp"
	"strings"
)

// validConventional enforces the closed set of conventional commit types,
// unlike the permissive pattern used when parsing model output.
var validConventional = regexp.MustCompile(`^(feat|fix|docs|style|refactor|test|chore|perf|ci|build|revert)(\([^)]+\))?(!)?: .+$`)

// Validate reports whether text is an acceptable commit message for the
// given style. Only the first line is held to the style rules.
func Validate(text string, style Style) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	title := text
	if idx := strings.Index(text, "\n"); idx >= 0 {
		title = text[:idx]
	}
	title = strings.TrimSpace(title)

	if style == StyleConventional {
		return validConventional.MatchString(title)
	}
	return len(title) <= 50 && !strings.HasSuffix(title, ".")
}
