package config

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/shipwright/pkg/domain/model"
	"github.com/secmon-lab/shipwright/pkg/domain/types"
)

func TestProjectResolve(t *testing.T) {
	t.Run("explicit owner and repo skip detection", func(t *testing.T) {
		cfg := &Project{
			owner:    "secmon-lab",
			repo:     "shipwright",
			strategy: "semver",
			detect: func(ctx context.Context, repo *model.GitHubRepo) error {
				t.Fatal("detect should not be called")
				return nil
			},
		}

		project := gt.R1(cfg.Resolve(context.Background())).NoError(t)
		gt.V(t, project.Owner).Equal("secmon-lab")
		gt.V(t, project.Name).Equal("shipwright")
		gt.V(t, project.VersioningStrategy).Equal(types.StrategySemver)
	})

	t.Run("missing fields are detected from git", func(t *testing.T) {
		cfg := &Project{
			strategy: "calver",
			detect: func(ctx context.Context, repo *model.GitHubRepo) error {
				repo.Owner = "detected-owner"
				repo.Name = "detected-repo"
				return nil
			},
		}

		project := gt.R1(cfg.Resolve(context.Background())).NoError(t)
		gt.V(t, project.Owner).Equal("detected-owner")
		gt.V(t, project.Name).Equal("detected-repo")
		gt.V(t, project.VersioningStrategy).Equal(types.StrategyCalver)
	})

	t.Run("invalid strategy fails validation", func(t *testing.T) {
		cfg := &Project{
			owner:    "secmon-lab",
			repo:     "shipwright",
			strategy: "datever",
		}

		_, err := cfg.Resolve(context.Background())
		gt.Error(t, err)
	})
}

func TestParseGitHubRemoteURL(t *testing.T) {
	testCases := map[string]struct {
		url   string
		owner string
		repo  string
		isErr bool
	}{
		"ssh format": {
			url:   "git@github.com:secmon-lab/shipwright.git",
			owner: "secmon-lab",
			repo:  "shipwright",
		},
		"ssh without suffix": {
			url:   "git@github.com:secmon-lab/shipwright",
			owner: "secmon-lab",
			repo:  "shipwright",
		},
		"https format": {
			url:   "https://github.com/secmon-lab/shipwright.git",
			owner: "secmon-lab",
			repo:  "shipwright",
		},
		"https without suffix": {
			url:   "https://github.com/secmon-lab/shipwright",
			owner: "secmon-lab",
			repo:  "shipwright",
		},
		"not github":   {url: "git@gitlab.com:owner/repo.git", isErr: true},
		"no repo part": {url: "https://github.com/secmon-lab", isErr: true},
		"empty":        {url: "", isErr: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			owner, repo, err := parseGitHubRemoteURL(tc.url)
			if tc.isErr {
				gt.Error(t, err)
				return
			}

			gt.NoError(t, err)
			gt.V(t, owner).Equal(tc.owner)
			gt.V(t, repo).Equal(tc.repo)
		})
	}
}
