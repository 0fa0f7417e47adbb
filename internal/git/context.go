package git

import (
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// RepoContext carries optional repository details used to enrich the
// prompt. Every field degrades to its zero value when git cannot supply
// it; none of them is required for generation.
type RepoContext struct {
	RepoName      string
	Branch        string
	RecentCommits []string
}

// Context gathers branch name, repository name and up to maxCommits recent
// commit subjects. The three lookups run concurrently and failures are
// swallowed, the generation flow works fine without them.
func Context(maxCommits int) RepoContext {
	var ctx RepoContext
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		ctx.Branch = CurrentBranch()
	}()
	go func() {
		defer wg.Done()
		ctx.RepoName = RepoName()
	}()
	go func() {
		defer wg.Done()
		ctx.RecentCommits = RecentCommitSubjects(maxCommits)
	}()
	wg.Wait()

	return ctx
}

// CurrentBranch returns the checked-out branch name, or "" when detached
// or unavailable.
func CurrentBranch() string {
	out, err := runGit("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return ""
	}
	branch := strings.TrimSpace(out)
	if branch == "HEAD" {
		return ""
	}
	return branch
}

// RepoName derives the repository name from the origin remote, falling
// back to the work-tree directory name.
func RepoName() string {
	if out, err := runGit("remote", "get-url", "origin"); err == nil {
		url := strings.TrimSuffix(strings.TrimSpace(out), ".git")
		if idx := strings.LastIndexAny(url, "/:"); idx >= 0 && idx < len(url)-1 {
			return url[idx+1:]
		}
	}

	root, err := RepoRoot()
	if err != nil {
		return ""
	}
	return filepath.Base(root)
}

// RecentCommitSubjects returns up to count subject lines, most recent
// first. An empty repository yields nil.
func RecentCommitSubjects(count int) []string {
	if count <= 0 {
		return nil
	}

	out, err := runGit("log", "--pretty=%s", "-n", strconv.Itoa(count))
	if err != nil {
		return nil
	}

	var subjects []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			subjects = append(subjects, line)
		}
	}
	return subjects
}
