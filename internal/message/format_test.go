package message

import (
	"strings"
	"testing"
)

func TestFormatConventional(t *testing.T) {
	tests := []struct {
		name string
		msg  CommitMessage
		want string
	}{
		{
			name: "type only",
			msg:  CommitMessage{Title: "add login form", Type: "feat"},
			want: "feat: add login form",
		},
		{
			name: "type and scope",
			msg:  CommitMessage{Title: "add login form", Type: "feat", Scope: "auth"},
			want: "feat(auth): add login form",
		},
		{
			name: "breaking with body",
			msg:  CommitMessage{Title: "drop v1 endpoints", Type: "fix", Scope: "api", Breaking: true, Body: "Clients must migrate to v2."},
			want: "fix(api)!: drop v1 endpoints\n\nClients must migrate to v2.",
		},
		{
			name: "no type falls back to bare title",
			msg:  CommitMessage{Title: "update readme"},
			want: "update readme",
		},
		{
			name: "prefixed title is not prefixed twice",
			msg:  CommitMessage{Title: "feat: add login form", Type: "feat"},
			want: "feat: add login form",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(&tt.msg, StyleConventional); got != tt.want {
				t.Errorf("Format = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatDetailedAndStandard(t *testing.T) {
	msg := &CommitMessage{Title: "add caching layer", Body: "Cache diff summaries per invocation."}

	if got := Format(msg, StyleDetailed); got != "add caching layer\n\nCache diff summaries per invocation." {
		t.Errorf("detailed format = %q", got)
	}
	if got := Format(msg, StyleStandard); got != "add caching layer" {
		t.Errorf("standard format = %q, want title only", got)
	}

	bare := &CommitMessage{Title: "add caching layer"}
	if got := Format(bare, StyleDetailed); got != "add caching layer" {
		t.Errorf("detailed format without body = %q", got)
	}
}

func TestValidateConventional(t *testing.T) {
	valid := []string{
		"feat: add login form",
		"fix(api)!: drop v1 endpoints",
		"revert: undo release commit",
		"chore(deps): bump cobra",
		"feat: add login form\n\nLonger explanation.",
	}
	invalid := []string{
		"",
		"   \n ",
		"feature: add login form",
		"feat:missing space",
		"feat: ",
		"add login form",
		"FEAT: shouting type",
	}

	for _, text := range valid {
		if !Validate(text, StyleConventional) {
			t.Errorf("Validate(%q) = false, want true", text)
		}
	}
	for _, text := range invalid {
		if Validate(text, StyleConventional) {
			t.Errorf("Validate(%q) = true, want false", text)
		}
	}
}

func TestValidateStandard(t *testing.T) {
	if !Validate("add login form", StyleStandard) {
		t.Error("short imperative title should validate")
	}
	if Validate("add login form.", StyleStandard) {
		t.Error("trailing period should fail")
	}
	if Validate(strings.Repeat("x", 51), StyleStandard) {
		t.Error("title longer than 50 should fail")
	}
	if !Validate(strings.Repeat("x", 50), StyleStandard) {
		t.Error("title of exactly 50 should validate")
	}
	if Validate("  ", StyleDetailed) {
		t.Error("blank message should fail for every style")
	}
}

func TestFormatValidateRoundTrip(t *testing.T) {
	types := []string{"feat", "fix", "docs", "style", "refactor", "test", "chore", "perf", "ci", "build", "revert"}

	for _, typ := range types {
		msg := &CommitMessage{Title: "do the thing", Type: typ, Scope: "core"}
		text := Format(msg, StyleConventional)
		if !Validate(text, StyleConventional) {
			t.Errorf("formatted message %q failed validation", text)
		}
	}
}
