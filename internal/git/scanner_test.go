package git

import "testing"

const sampleRawDiff = `diff --git a/main.go b/main.go
index 1111111..2222222 100644
--- a/main.go
+++ b/main.go
@@ -1,3 +1,4 @@
+import "fmt"
diff --git a/docs/guide.md b/docs/guide.md
new file mode 100644
--- /dev/null
+++ b/docs/guide.md
@@ -0,0 +1,2 @@
+# Guide
+Intro text`

func TestBuildSummary(t *testing.T) {
	numstat := "1\t0\tmain.go\n2\t0\tdocs/guide.md\n-\t-\tassets/logo.png"
	nameStatus := "M\tmain.go\nA\tdocs/guide.md\nA\tassets/logo.png"

	summary := buildSummary(numstat, nameStatus, sampleRawDiff)

	if len(summary.Files) != 3 {
		t.Fatalf("expected 3 files, got %d", len(summary.Files))
	}

	main := summary.Files[0]
	if main.Path != "main.go" || main.Status != StatusModified || main.Insertions != 1 {
		t.Errorf("unexpected first file: %+v", main)
	}

	guide := summary.Files[1]
	if guide.Status != StatusAdded || guide.Insertions != 2 {
		t.Errorf("unexpected second file: %+v", guide)
	}
	if guide.Diff == "" || guide.Diff == main.Diff {
		t.Error("per-file diff chunks should be split per path")
	}

	// Binary files report "-" counts and contribute zero.
	logo := summary.Files[2]
	if logo.Insertions != 0 || logo.Deletions != 0 {
		t.Errorf("binary file should count as zero, got %+v", logo)
	}

	if summary.Insertions != 3 || summary.Deletions != 0 {
		t.Errorf("aggregates = +%d/-%d, want +3/-0", summary.Insertions, summary.Deletions)
	}
}

func TestParseNameStatus(t *testing.T) {
	statuses := parseNameStatus("A\tnew.go\nM\told.go\nD\tgone.go\nR100\tsrc.go\tdst.go\nC75\ta.go\tb.go")

	want := map[string]FileStatus{
		"new.go":  StatusAdded,
		"old.go":  StatusModified,
		"gone.go": StatusDeleted,
		"dst.go":  StatusRenamed,
		"b.go":    StatusCopied,
	}
	for path, status := range want {
		if statuses[path] != status {
			t.Errorf("status[%s] = %s, want %s", path, statuses[path], status)
		}
	}
}

func TestRenameDestination(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain.go", "plain.go"},
		{"old.go => new.go", "new.go"},
		{"internal/{old => new}/file.go", "internal/new/file.go"},
		{"cmd/{ => sub}/main.go", "cmd/sub/main.go"},
	}

	for _, tt := range tests {
		if got := renameDestination(tt.in); got != tt.want {
			t.Errorf("renameDestination(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFilterSummary(t *testing.T) {
	summary := &DiffSummary{
		Files: []FileChange{
			{Path: "go.sum", Insertions: 100, Deletions: 90, Diff: "diff --git a/go.sum b/go.sum"},
			{Path: "main.go", Insertions: 5, Deletions: 1, Diff: "diff --git a/main.go b/main.go"},
			{Path: "vendor/lib.go", Insertions: 30, Deletions: 0, Diff: "diff --git a/vendor/lib.go b/vendor/lib.go"},
		},
		Insertions: 135,
		Deletions:  91,
	}

	filtered := filterSummary(summary, []string{"go.sum", "vendor/*"})

	if len(filtered.Files) != 1 || filtered.Files[0].Path != "main.go" {
		t.Fatalf("expected only main.go to survive, got %+v", filtered.Files)
	}
	if filtered.Insertions != 5 || filtered.Deletions != 1 {
		t.Errorf("aggregates not recomputed: +%d/-%d", filtered.Insertions, filtered.Deletions)
	}
	if filtered.Raw != "diff --git a/main.go b/main.go" {
		t.Errorf("raw diff should only contain kept files: %q", filtered.Raw)
	}
}

func TestMatchesAny(t *testing.T) {
	globs := []string{"*.lock", "go.sum", "dist/*"}

	matching := []string{"yarn.lock", "sub/dir/Cargo.lock", "go.sum", "dist/bundle.js"}
	for _, path := range matching {
		if !matchesAny(path, globs) {
			t.Errorf("expected %q to match", path)
		}
	}

	if matchesAny("main.go", globs) {
		t.Error("main.go should not match any exclusion glob")
	}
}
