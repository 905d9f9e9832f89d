package cli

import (
	"context"

	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/shipwright/pkg/cli/config"
	"github.com/secmon-lab/shipwright/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func commitsCommand() *cli.Command {
	var (
		githubCfg  config.GitHub
		projectCfg config.Project
		branch     string
		limit      int64
	)

	return &cli.Command{
		Name:  "commits",
		Usage: "List recent commits on a branch, candidates for the 'patch' command",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "branch",
				Aliases:     []string{"b"},
				Usage:       "Branch to list (defaults to the repository default branch)",
				Destination: &branch,
			},
			&cli.Int64Flag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       "Maximum number of commits to show",
				Destination: &limit,
				Value:       20,
			},
		},
			githubCfg.Flags(),
			projectCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			project, err := projectCfg.Resolve(ctx)
			if err != nil {
				return err
			}

			ghClient, err := githubCfg.New()
			if err != nil {
				return err
			}

			if branch == "" {
				repo, err := ghClient.GetRepository(ctx, project.GitHubRepo)
				if err != nil {
					return err
				}
				branch = string(repo.DefaultBranch)
			}

			commits, err := ghClient.ListCommits(ctx, project.GitHubRepo, types.BranchName(branch), int(limit))
			if err != nil {
				return err
			}

			printCommits(commits)
			return nil
		},
	}
}
