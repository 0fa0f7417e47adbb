package message

// Style controls the shape of generated commit messages.
type Style string

const (
	StyleConventional Style = "conventional"
	StyleStandard     Style = "standard"
	StyleDetailed     Style = "detailed"
)

// ParseStyle maps user input to a known style, falling back to standard.
func ParseStyle(s string) Style {
	switch Style(s) {
	case StyleConventional, StyleDetailed:
		return Style(s)
	default:
		return StyleStandard
	}
}

// CommitMessage is the structured result of interpreting a model response.
// Type, Scope and Breaking are only populated for the conventional style.
type CommitMessage struct {
	Title      string
	Body       string
	Type       string
	Scope      string
	Breaking   bool
	Confidence float64
}
