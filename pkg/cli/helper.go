package cli

import (
	"context"

	"github.com/secmon-lab/shipwright/pkg/cli/config"
	"github.com/secmon-lab/shipwright/pkg/infra"
	"github.com/secmon-lab/shipwright/pkg/usecase"
	"github.com/secmon-lab/shipwright/pkg/utils/logging"
)

// newUseCase builds the usecase over a configured GitHub client and returns a
// context carrying a flow ID bound logger.
func newUseCase(ctx context.Context, githubCfg *config.GitHub, options ...usecase.Option) (*usecase.UseCase, context.Context, error) {
	ghClient, err := githubCfg.New()
	if err != nil {
		return nil, ctx, err
	}

	flowID, ctx := logging.CtxFlowID(ctx)
	ctx = logging.With(ctx, logging.Default().With("flow_id", flowID))

	clients := infra.New(infra.WithGitHub(ghClient))
	return usecase.New(clients, options...), ctx, nil
}
