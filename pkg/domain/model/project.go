package model

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/shipwright/pkg/domain/types"
)

// GitHubRepo identifies a repository on GitHub
type GitHubRepo struct {
	Owner string
	Name  string
}

func (x GitHubRepo) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner is empty")
	}
	if x.Name == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repo name is empty")
	}
	return nil
}

func (x GitHubRepo) String() string {
	return x.Owner + "/" + x.Name
}

// URL returns the repository page on github.com
func (x GitHubRepo) URL() string {
	return fmt.Sprintf("https://github.com/%s/%s", x.Owner, x.Name)
}

// TagURL returns the release page of the given tag
func (x GitHubRepo) TagURL(tag types.TagName) string {
	return fmt.Sprintf("%s/releases/tag/%s", x.URL(), tag)
}

// Project is the target repository plus its tag naming convention. It is
// immutable once a release flow begins.
type Project struct {
	GitHubRepo
	VersioningStrategy types.VersioningStrategy
}

func (x Project) Validate() error {
	if err := x.GitHubRepo.Validate(); err != nil {
		return err
	}
	if err := x.VersioningStrategy.Validate(); err != nil {
		return err
	}
	return nil
}
