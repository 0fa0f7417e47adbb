package git

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// FileStatus classifies how a staged file changed.
type FileStatus string

const (
	StatusAdded    FileStatus = "added"
	StatusModified FileStatus = "modified"
	StatusDeleted  FileStatus = "deleted"
	StatusRenamed  FileStatus = "renamed"
	StatusCopied   FileStatus = "copied"
)

// FileChange describes a single staged file.
type FileChange struct {
	Path       string
	Status     FileStatus
	Insertions int
	Deletions  int
	Diff       string
}

// DiffSummary aggregates the staged changes of one invocation. Insertions
// and Deletions always equal the sums over Files; binary files count as
// zero on both sides.
type DiffSummary struct {
	Files      []FileChange
	Insertions int
	Deletions  int
	Raw        string
}

// IsRepository reports whether the working directory is inside a git
// work tree.
func IsRepository() bool {
	out, err := runGit("rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(out) == "true"
}

// HasStagedChanges reports whether anything is staged for commit.
func HasStagedChanges() bool {
	err := exec.Command("git", "diff", "--cached", "--quiet").Run()
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode() == 1
	}
	return false
}

// StagedDiff builds a DiffSummary of the staged changes. Files whose name
// matches one of excludeGlobs are dropped along with their diff text, and
// the aggregate counts cover only the files kept.
func StagedDiff(excludeGlobs []string) (*DiffSummary, error) {
	numstat, err := runGit("diff", "--cached", "--numstat")
	if err != nil {
		return nil, fmt.Errorf("failed to run git diff --numstat: %w", err)
	}

	nameStatus, err := runGit("diff", "--cached", "--name-status")
	if err != nil {
		return nil, fmt.Errorf("failed to run git diff --name-status: %w", err)
	}

	raw, err := runGit("diff", "--cached")
	if err != nil {
		return nil, fmt.Errorf("failed to run git diff: %w", err)
	}

	summary := buildSummary(numstat, nameStatus, raw)

	if len(excludeGlobs) > 0 {
		summary = filterSummary(summary, excludeGlobs)
	}
	return summary, nil
}

func buildSummary(numstat, nameStatus, raw string) *DiffSummary {
	statuses := parseNameStatus(nameStatus)
	perFile := splitDiffByFile(raw)

	summary := &DiffSummary{Raw: raw}
	for _, line := range strings.Split(strings.TrimSpace(numstat), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 3 {
			continue
		}

		// Binary files report "-" for both counts.
		insertions, _ := strconv.Atoi(parts[0])
		deletions, _ := strconv.Atoi(parts[1])

		path := strings.Join(parts[2:], " ")
		// Renames show as "old => new" or "prefix{old => new}suffix";
		// keep the destination path.
		path = renameDestination(path)

		status, ok := statuses[path]
		if !ok {
			status = StatusModified
		}

		summary.Files = append(summary.Files, FileChange{
			Path:       path,
			Status:     status,
			Insertions: insertions,
			Deletions:  deletions,
			Diff:       perFile[path],
		})
		summary.Insertions += insertions
		summary.Deletions += deletions
	}

	return summary
}

func parseNameStatus(output string) map[string]FileStatus {
	statuses := make(map[string]FileStatus)
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}

		var status FileStatus
		switch parts[0][0] {
		case 'A':
			status = StatusAdded
		case 'D':
			status = StatusDeleted
		case 'R':
			status = StatusRenamed
		case 'C':
			status = StatusCopied
		default:
			status = StatusModified
		}

		// Renames and copies list source then destination.
		path := parts[len(parts)-1]
		statuses[path] = status
	}
	return statuses
}

// splitDiffByFile breaks a unified diff into per-file chunks keyed by the
// destination path of each "diff --git" header.
func splitDiffByFile(raw string) map[string]string {
	chunks := make(map[string]string)
	if strings.TrimSpace(raw) == "" {
		return chunks
	}

	var path string
	var current []string
	flush := func() {
		if path != "" {
			chunks[path] = strings.Join(current, "\n")
		}
	}

	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, "diff --git ") {
			flush()
			path = diffHeaderPath(line)
			current = nil
		}
		current = append(current, line)
	}
	flush()
	return chunks
}

func diffHeaderPath(header string) string {
	fields := strings.Fields(header)
	if len(fields) < 4 {
		return ""
	}
	return strings.TrimPrefix(fields[3], "b/")
}

func renameDestination(path string) string {
	if open := strings.Index(path, "{"); open >= 0 {
		if end := strings.Index(path, "}"); end > open {
			inner := path[open+1 : end]
			if arrow := strings.Index(inner, " => "); arrow >= 0 {
				inner = inner[arrow+4:]
			}
			return strings.ReplaceAll(path[:open]+inner+path[end+1:], "//", "/")
		}
	}
	if arrow := strings.Index(path, " => "); arrow >= 0 {
		return path[arrow+4:]
	}
	return path
}

func filterSummary(summary *DiffSummary, globs []string) *DiffSummary {
	filtered := &DiffSummary{}
	var parts []string
	for _, file := range summary.Files {
		if matchesAny(file.Path, globs) {
			continue
		}
		filtered.Files = append(filtered.Files, file)
		filtered.Insertions += file.Insertions
		filtered.Deletions += file.Deletions
		if file.Diff != "" {
			parts = append(parts, file.Diff)
		}
	}
	filtered.Raw = strings.Join(parts, "\n")
	return filtered
}

func matchesAny(path string, globs []string) bool {
	base := filepath.Base(path)
	for _, glob := range globs {
		if ok, _ := filepath.Match(glob, base); ok {
			return true
		}
		if ok, _ := filepath.Match(glob, path); ok {
			return true
		}
	}
	return false
}

func runGit(args ...string) (string, error) {
	out, err := exec.Command("git", args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
