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

func createRcCommand() *cli.Command {
	var (
		githubCfg  config.GitHub
		projectCfg config.Project
		sentryCfg  config.Sentry
	)

	return &cli.Command{
		Name:    "create-rc",
		Aliases: []string{"rc"},
		Usage:   "Cut a new release candidate from the default branch",
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

			logging.Default().Info("creating release candidate",
				slog.Any("project", projectCfg),
				slog.Any("github", githubCfg),
			)

			uc, ctx, err := newUseCase(ctx, &githubCfg, usecase.WithStepNotify(stepPrinter()))
			if err != nil {
				return err
			}

			result, err := uc.CreateRc(ctx, &model.CreateRcInput{Project: project})
			if err != nil {
				return err
			}

			fmt.Printf("\nRelease candidate %s is ready: %s\n", result.TagName, result.ReleaseURL)
			return nil
		},
	}
}
