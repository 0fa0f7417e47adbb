package prompt

import (
	"fmt"
	"strings"

	"github.com/hauran/git-ai/internal/git"
	"github.com/hauran/git-ai/internal/message"
)

// DefaultMaxDiffLen bounds how much raw diff text is embedded in a prompt.
// Remote providers charge and cap by input size, so the diff is the one
// part of the prompt that must stay bounded no matter how large the
// staged changes are.
const DefaultMaxDiffLen = 3000

// TruncationMarker is appended whenever the embedded diff was cut short.
const TruncationMarker = "... (diff truncated)"

// maxRecentCommits caps how many prior subject lines the prompt carries.
const maxRecentCommits = 3

// Context carries everything the builder needs for one generation
// attempt. RepoName, Branch and RecentCommits are optional.
type Context struct {
	Diff          *git.DiffSummary
	Style         message.Style
	RepoName      string
	Branch        string
	RecentCommits []string
}

const baseInstruction = `You are an expert at writing git commit messages. Analyze the provided diff and write a commit message that accurately describes the change.`

const conventionalInstruction = baseInstruction + `

Use the Conventional Commits format: <type>[(scope)][!]: <description>
- type MUST be one of: feat, fix, docs, style, refactor, test, chore, perf, ci, build, revert
- type and description are lowercase
- scope is optional and names the affected area
- append ! after the type/scope when the change is breaking
- a body and footer are allowed for breaking changes`

const detailedInstruction = baseInstruction + `

Write a concise title followed by an explanatory body. Use bullet points in the body to list the individual changes and include relevant technical detail.`

const standardInstruction = baseInstruction + `

Write a single concise title in imperative mood ("add feature", not "added feature") with no closing punctuation.`

// Build produces the system instruction and user prompt for one
// generation attempt. It is a pure function of its inputs.
func Build(ctx Context, maxDiffLen int) (string, string) {
	return systemInstruction(ctx.Style), userPrompt(ctx, maxDiffLen)
}

func systemInstruction(style message.Style) string {
	switch style {
	case message.StyleConventional:
		return conventionalInstruction
	case message.StyleDetailed:
		return detailedInstruction
	default:
		return standardInstruction
	}
}

func userPrompt(ctx Context, maxDiffLen int) string {
	if maxDiffLen <= 0 {
		maxDiffLen = DefaultMaxDiffLen
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("Write a %s commit message for the following staged changes.", ctx.Style))

	if ctx.RepoName != "" {
		parts = append(parts, fmt.Sprintf("Repository: %s", ctx.RepoName))
	}
	if ctx.Branch != "" {
		parts = append(parts, fmt.Sprintf("Branch: %s", ctx.Branch))
	}

	parts = append(parts, "", "Files changed:")
	for _, file := range ctx.Diff.Files {
		parts = append(parts, fmt.Sprintf("%s: %s (+%d/-%d)", file.Status, file.Path, file.Insertions, file.Deletions))
	}

	if len(ctx.RecentCommits) > 0 {
		recent := ctx.RecentCommits
		if len(recent) > maxRecentCommits {
			recent = recent[:maxRecentCommits]
		}
		parts = append(parts, "", "Recent commits:")
		for _, subject := range recent {
			parts = append(parts, "- "+subject)
		}
	}

	parts = append(parts, "", "```diff")
	parts = append(parts, TruncateDiff(ctx.Diff.Raw, maxDiffLen))
	parts = append(parts, "```")
	parts = append(parts, "", "Respond with only the commit message, no explanations or surrounding commentary.")

	return strings.Join(parts, "\n")
}

// TruncateDiff cuts diff down to at most max characters, backing off to
// the previous line break so no partial line is emitted, and marks the
// cut. Diffs within the bound pass through untouched.
func TruncateDiff(diff string, max int) string {
	if max <= 0 || len(diff) <= max {
		return diff
	}

	head := diff[:max]
	if idx := strings.LastIndex(head, "\n"); idx > 0 {
		head = head[:idx]
	}
	return head + "\n" + TruncationMarker
}
