// Package git shells out to the local git binary to discover which
// repository and commit to open when flags are omitted.
package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// DetectRepo parses the origin remote of the repository at dir into an
// owner/repo pair.
func DetectRepo(dir string) (owner, repo string, err error) {
	url, err := runGit(dir, "remote", "get-url", "origin")
	if err != nil {
		return "", "", fmt.Errorf("failed to read origin remote: %w", err)
	}
	return ParseRemoteURL(url)
}

// HeadSHA returns the commit the repository at dir currently has
// checked out.
func HeadSHA(dir string) (string, error) {
	sha, err := runGit(dir, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return sha, nil
}

// ParseRemoteURL extracts owner and repo from a GitHub remote URL.
// Supported forms:
//
//	https://github.com/owner/repo.git
//	git@github.com:owner/repo.git
//	ssh://git@github.com/owner/repo.git
func ParseRemoteURL(url string) (owner, repo string, err error) {
	s := strings.TrimSpace(url)
	s = strings.TrimSuffix(s, ".git")

	switch {
	case strings.HasPrefix(s, "https://"), strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "ssh://"):
		parts := strings.Split(s, "/")
		if len(parts) < 2 {
			return "", "", fmt.Errorf("unrecognized remote URL: %s", url)
		}
		owner = parts[len(parts)-2]
		repo = parts[len(parts)-1]
	case strings.Contains(s, ":"):
		// scp-like syntax: git@github.com:owner/repo
		after := s[strings.Index(s, ":")+1:]
		parts := strings.Split(after, "/")
		if len(parts) != 2 {
			return "", "", fmt.Errorf("unrecognized remote URL: %s", url)
		}
		owner = parts[0]
		repo = parts[1]
	default:
		return "", "", fmt.Errorf("unrecognized remote URL: %s", url)
	}

	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("unrecognized remote URL: %s", url)
	}
	return owner, repo, nil
}

func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}
