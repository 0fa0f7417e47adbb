package message

import (
	"errors"
	"testing"
)

func TestParseEmptyResponses(t *testing.T) {
	inputs := []string{
		"",
		"   \n\n  ",
		"```\n```",
		"``````",
	}

	for _, input := range inputs {
		for _, style := range []Style{StyleConventional, StyleStandard, StyleDetailed} {
			_, err := Parse(input, style)
			if !errors.Is(err, ErrEmptyResponse) {
				t.Errorf("Parse(%q, %s): expected ErrEmptyResponse, got %v", input, style, err)
			}
		}
	}
}

func TestParseStripsCodeFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		title string
	}{
		{"plain fence", "```\nfeat: add x\n```", "feat: add x"},
		{"language tag", "```text\nfeat: add x\n```", "feat: add x"},
		{"inline backticks", "`fix: typo`", "fix: typo"},
		{"no fence", "feat: add x", "feat: add x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Parse(tt.input, StyleConventional)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if msg.Title != tt.title {
				t.Errorf("title = %q, want %q", msg.Title, tt.title)
			}
		})
	}
}

func TestParseConventionalDecomposition(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		title    string
		typ      string
		scope    string
		breaking bool
		body     string
	}{
		{
			name:  "fenced simple",
			input: "```\nfeat: add x\n```",
			title: "feat: add x",
			typ:   "feat",
		},
		{
			name:     "scope and breaking with body",
			input:    "fix(parser)!: handle edge case\n\nDetails here.",
			title:    "fix(parser)!: handle edge case",
			typ:      "fix",
			scope:    "parser",
			breaking: true,
			body:     "Details here.",
		},
		{
			name:  "unknown leading token accepted",
			input: "yolo: whatever works",
			title: "yolo: whatever works",
			typ:   "yolo",
		},
		{
			name:  "no grammar match leaves fields empty",
			input: "just a plain title",
			title: "just a plain title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Parse(tt.input, StyleConventional)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if msg.Title != tt.title {
				t.Errorf("title = %q, want %q", msg.Title, tt.title)
			}
			if msg.Type != tt.typ {
				t.Errorf("type = %q, want %q", msg.Type, tt.typ)
			}
			if msg.Scope != tt.scope {
				t.Errorf("scope = %q, want %q", msg.Scope, tt.scope)
			}
			if msg.Breaking != tt.breaking {
				t.Errorf("breaking = %t, want %t", msg.Breaking, tt.breaking)
			}
			if msg.Body != tt.body {
				t.Errorf("body = %q, want %q", msg.Body, tt.body)
			}
		})
	}
}

func TestParseNoDecompositionForOtherStyles(t *testing.T) {
	msg, err := Parse("feat(core): add thing", StyleStandard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Type != "" || msg.Scope != "" || msg.Breaking {
		t.Errorf("standard style should not decompose title, got type=%q scope=%q breaking=%t",
			msg.Type, msg.Scope, msg.Breaking)
	}
}

func TestConfidenceMonotonic(t *testing.T) {
	// Each input satisfies one more heuristic than the previous one:
	// lowercase start, no trailing period, length in (10, 50], a colon,
	// and finally a body longer than 20 characters.
	inputs := []string{
		"Wip.",
		"wip.",
		"wip",
		"update parser module",
		"fix: update parser module",
		"fix: update parser module\n\nHandle the unbalanced bracket case.",
	}

	prev := -1.0
	for _, input := range inputs {
		msg, err := Parse(input, StyleConventional)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		if msg.Confidence < prev {
			t.Errorf("confidence decreased at %q: %.2f < %.2f", input, msg.Confidence, prev)
		}
		if msg.Confidence > 1.0 {
			t.Errorf("confidence above cap for %q: %.2f", input, msg.Confidence)
		}
		prev = msg.Confidence
	}
}

func TestConfidenceBounds(t *testing.T) {
	msg, err := Parse("Wip.", StyleStandard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Confidence != 0.5 {
		t.Errorf("confidence = %.2f, want base 0.5", msg.Confidence)
	}

	msg, err = Parse("fix: update parser module\n\nHandle the unbalanced bracket case.", StyleConventional)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Confidence != 1.0 {
		t.Errorf("confidence = %.2f, want capped 1.0", msg.Confidence)
	}
}

func TestParseStyleFallback(t *testing.T) {
	if got := ParseStyle("conventional"); got != StyleConventional {
		t.Errorf("ParseStyle(conventional) = %s", got)
	}
	if got := ParseStyle("detailed"); got != StyleDetailed {
		t.Errorf("ParseStyle(detailed) = %s", got)
	}
	for _, unknown := range []string{"", "fancy", "CONVENTIONAL"} {
		if got := ParseStyle(unknown); got != StyleStandard {
			t.Errorf("ParseStyle(%q) = %s, want standard", unknown, got)
		}
	}
}
