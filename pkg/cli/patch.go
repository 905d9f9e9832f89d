package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/shipwright/pkg/cli/config"
	"github.com/secmon-lab/shipwright/pkg/domain/model"
	"github.com/secmon-lab/shipwright/pkg/domain/types"
	"github.com/secmon-lab/shipwright/pkg/usecase"
	"github.com/secmon-lab/shipwright/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func patchCommand() *cli.Command {
	var (
		githubCfg  config.GitHub
		projectCfg config.Project
		sentryCfg  config.Sentry
		commitSHA  string
	)

	return &cli.Command{
		Name:  "patch",
		Usage: "Cherry-pick a commit onto the current release branch and bump the patch tag",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "commit",
				Aliases:     []string{"c"},
				Usage:       "SHA of the commit to cherry-pick (see the 'commits' command)",
				Destination: &commitSHA,
				Required:    true,
			},
		},
			githubCfg.Flags(),
			projectCfg.Flags(),
			sentryCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := sentryCfg.Configure(ctx); err != nil {
				return err
			}

			project, err := projectCfg.Resolve(ctx)
			if err != nil {
				return err
			}

			logging.Default().Info("patching release",
				slog.Any("project", projectCfg),
				slog.String("commit", commitSHA),
			)

			uc, ctx, err := newUseCase(ctx, &githubCfg, usecase.WithStepNotify(stepPrinter()))
			if err != nil {
				return err
			}

			result, err := uc.Patch(ctx, &model.PatchInput{
				Project:   project,
				CommitSHA: types.CommitSHA(commitSHA),
			})
			if err != nil {
				return err
			}

			fmt.Printf("\nPatched %s to %s: %s\n", result.PreviousTag, result.TagName, result.ReleaseURL)
			return nil
		},
	}
}
