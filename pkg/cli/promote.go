package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/shipwright/pkg/cli/config"
	"github.com/secmon-lab/shipwright/pkg/domain/model"
	"github.com/secmon-lab/shipwright/pkg/usecase"
	"github.com/secmon-lab/shipwright/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func promoteCommand() *cli.Command {
	var (
		githubCfg  config.GitHub
		projectCfg config.Project
		sentryCfg  config.Sentry
	)

	return &cli.Command{
		Name:  "promote",
		Usage: "Promote the current release candidate to a generally-available release",
		Flags: slice.Flatten(
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

			logging.Default().Info("promoting release candidate",
				slog.Any("project", projectCfg),
			)

			uc, ctx, err := newUseCase(ctx, &githubCfg, usecase.WithStepNotify(stepPrinter()))
			if err != nil {
				return err
			}

			result, err := uc.Promote(ctx, &model.PromoteInput{Project: project})
			if err != nil {
				return err
			}

			fmt.Printf("\nPromoted %s to %s: %s\n", result.PreviousTag, result.TagName, result.ReleaseURL)
			return nil
		},
	}
}
