package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/hauran/git-ai/internal/git"
)

// RenderSummary formats the staged file list with per-file counts for
// display before generation.
func RenderSummary(summary *git.DiffSummary, colored bool) string {
	green := sprintFunc(color.FgGreen, colored)
	red := sprintFunc(color.FgRed, colored)
	yellow := sprintFunc(color.FgYellow, colored)

	parts := []string{fmt.Sprintf("%s: %d file(s), +%d/-%d",
		yellow("Staged"), len(summary.Files), summary.Insertions, summary.Deletions)}

	for _, file := range summary.Files {
		parts = append(parts, fmt.Sprintf("  %s %s %s (%s)",
			green(fmt.Sprintf("+%d", file.Insertions)),
			red(fmt.Sprintf("-%d", file.Deletions)),
			file.Path, file.Status))
	}

	return strings.Join(parts, "\n")
}

// RenderGenerated tints the message preview by confidence: green for
// strong signals, yellow for middling, red for weak. The score is a
// display hint only.
func RenderGenerated(text string, confidence float64, colored bool) string {
	if !colored {
		return fmt.Sprintf("%s\n(confidence: %.0f%%)", text, confidence*100)
	}

	tint := color.New(color.FgRed)
	switch {
	case confidence >= 0.8:
		tint = color.New(color.FgGreen)
	case confidence >= 0.6:
		tint = color.New(color.FgYellow)
	}

	return fmt.Sprintf("%s\n%s", tint.Sprint(text),
		color.New(color.Faint).Sprintf("(confidence: %.0f%%)", confidence*100))
}

func sprintFunc(attr color.Attribute, colored bool) func(a ...interface{}) string {
	if !colored {
		return fmt.Sprint
	}
	return color.New(attr).SprintFunc()
}
