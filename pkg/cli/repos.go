package cli

import (
	"context"

	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/shipwright/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func reposCommand() *cli.Command {
	var (
		githubCfg config.GitHub
		owner     string
	)

	return &cli.Command{
		Name:  "repos",
		Usage: "List repositories visible to the configured credentials",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "owner",
				Usage:       "Owner to list (defaults to the authenticated user)",
				Sources:     cli.EnvVars("SHIPWRIGHT_OWNER"),
				Destination: &owner,
			},
		},
			githubCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			ghClient, err := githubCfg.New()
			if err != nil {
				return err
			}

			if owner == "" {
				user, err := ghClient.AuthenticatedUser(ctx)
				if err != nil {
					return err
				}
				owner = user.Login
			}

			repos, err := ghClient.ListOwnerRepos(ctx, owner)
			if err != nil {
				return err
			}

			printRepos(repos)
			return nil
		},
	}
}
