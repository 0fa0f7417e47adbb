package git

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotRepository reports that the working directory is not inside a git
// repository.
var ErrNotRepository = errors.New("not a git repository")

// ErrNoStagedChanges reports that nothing is staged for commit.
var ErrNoStagedChanges = errors.New("no staged changes")

// RepoRoot returns the top-level directory of the enclosing repository so
// git can be driven from any subdirectory.
func RepoRoot() (string, error) {
	out, err := runGit("rev-parse", "--show-toplevel")
	if err != nil {
		return "", ErrNotRepository
	}
	return strings.TrimSpace(out), nil
}

// Commit records the staged changes with the given message.
func Commit(message string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("commit message cannot be empty")
	}

	root, err := RepoRoot()
	if err != nil {
		return err
	}

	cmd := exec.Command("git", "commit", "-m", message)
	cmd.Dir = root
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to create commit: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
