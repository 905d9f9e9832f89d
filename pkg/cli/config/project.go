package config

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/shipwright/pkg/domain/model"
	"github.com/secmon-lab/shipwright/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Project is the target repository configuration. Owner and repo are
// auto-detected from the local git remote when not specified.
type Project struct {
	owner    string
	repo     string
	strategy string

	// detect resolves owner/repo from the working directory; tests swap it
	detect func(ctx context.Context, repo *model.GitHubRepo) error
}

func (x *Project) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "owner",
			Usage:       "GitHub repository owner (auto-detect from git if not specified)",
			Category:    "Project",
			Sources:     cli.EnvVars("SHIPWRIGHT_OWNER"),
			Destination: &x.owner,
		},
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "GitHub repository name (auto-detect from git if not specified)",
			Category:    "Project",
			Sources:     cli.EnvVars("SHIPWRIGHT_REPO"),
			Destination: &x.repo,
		},
		&cli.StringFlag{
			Name:        "versioning-strategy",
			Usage:       "Tag naming convention [semver|calver]",
			Category:    "Project",
			Sources:     cli.EnvVars("SHIPWRIGHT_VERSIONING_STRATEGY"),
			Destination: &x.strategy,
			Value:       "semver",
		},
	}
}

// Resolve builds the validated project, auto-detecting missing owner/repo
// from the local git repository.
func (x *Project) Resolve(ctx context.Context) (model.Project, error) {
	project := model.Project{
		GitHubRepo: model.GitHubRepo{
			Owner: x.owner,
			Name:  x.repo,
		},
		VersioningStrategy: types.VersioningStrategy(x.strategy),
	}

	if project.Owner == "" || project.Name == "" {
		detect := x.detect
		if detect == nil {
			detect = AutoDetectRepo
		}
		if err := detect(ctx, &project.GitHubRepo); err != nil {
			return model.Project{}, err
		}
	}

	if err := project.Validate(); err != nil {
		return model.Project{}, err
	}

	return project, nil
}

func (x Project) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("owner", x.owner),
		slog.String("repo", x.repo),
		slog.String("strategy", x.strategy),
	)
}
