package config

import (
	"context"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/shipwright/pkg/domain/model"
)

// AutoDetectRepo fills owner/name from the origin remote of the git
// repository in the working directory, keeping fields already set.
func AutoDetectRepo(_ context.Context, repo *model.GitHubRepo) error {
	gitRepo, err := git.PlainOpen(".")
	if err != nil {
		return goerr.Wrap(err, "failed to open git repository")
	}

	remote, err := gitRepo.Remote("origin")
	if err != nil {
		return goerr.Wrap(err, "failed to get remote origin")
	}

	if len(remote.Config().URLs) == 0 {
		return goerr.New("no remote URL found")
	}

	owner, name, err := parseGitHubRemoteURL(remote.Config().URLs[0])
	if err != nil {
		return err
	}

	if repo.Owner == "" {
		repo.Owner = owner
	}
	if repo.Name == "" {
		repo.Name = name
	}

	return nil
}

// parseGitHubRemoteURL parses a git remote URL
// (e.g. git@github.com:owner/repo.git or https://github.com/owner/repo.git)
func parseGitHubRemoteURL(url string) (owner, repo string, err error) {
	if strings.HasPrefix(url, "git@github.com:") {
		// SSH format: git@github.com:owner/repo.git
		parts := strings.TrimPrefix(url, "git@github.com:")
		parts = strings.TrimSuffix(parts, ".git")
		ownerRepo := strings.Split(parts, "/")
		if len(ownerRepo) == 2 {
			owner = ownerRepo[0]
			repo = ownerRepo[1]
		}
	} else if strings.Contains(url, "github.com/") {
		// HTTPS format: https://github.com/owner/repo.git
		parts := strings.Split(url, "github.com/")
		if len(parts) == 2 {
			trimmed := strings.TrimSuffix(parts[1], ".git")
			ownerRepo := strings.Split(trimmed, "/")
			if len(ownerRepo) == 2 {
				owner = ownerRepo[0]
				repo = ownerRepo[1]
			}
		}
	}

	if owner == "" || repo == "" {
		return "", "", goerr.New("failed to parse GitHub owner/repo from git remote URL", goerr.V("url", url))
	}

	return owner, repo, nil
}
