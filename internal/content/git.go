package content

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
)

// TrackedByGit reports whether dir lies inside a git work tree. The
// generator reads last-update author and time from git history.
func TrackedByGit(dir string) (bool, error) {
	_, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, git.ErrRepositoryNotExists):
		return false, nil
	default:
		return false, fmt.Errorf("open git repository for %s: %w", dir, err)
	}
}
