package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/shipwright/pkg/cli/config"
	"github.com/secmon-lab/shipwright/pkg/domain/model"
	"github.com/secmon-lab/shipwright/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func statusCommand() *cli.Command {
	var (
		githubCfg  config.GitHub
		projectCfg config.Project
	)

	return &cli.Command{
		Name:    "status",
		Aliases: []string{"st"},
		Usage:   "Show the derived release state and the actions it enables",
		Flags: slice.Flatten(
			githubCfg.Flags(),
			projectCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			project, err := projectCfg.Resolve(ctx)
			if err != nil {
				return err
			}

			logging.Default().Debug("resolving release status",
				slog.Any("project", projectCfg),
				slog.Any("github", githubCfg),
			)

			uc, ctx, err := newUseCase(ctx, &githubCfg)
			if err != nil {
				return err
			}

			status, err := uc.Status(ctx, &model.StatusInput{Project: project})
			if err != nil {
				return err
			}

			printStatus(status)
			return nil
		},
	}
}
