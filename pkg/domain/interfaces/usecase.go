package interfaces

import (
	"context"

	"github.com/secmon-lab/shipwright/pkg/domain/model"
)

type UseCase interface {
	Status(ctx context.Context, input *model.StatusInput) (*model.ReleaseStatus, error)
	CreateRc(ctx context.Context, input *model.CreateRcInput) (*model.CreateRcResult, error)
	Patch(ctx context.Context, input *model.PatchInput) (*model.PatchResult, error)
	Promote(ctx context.Context, input *model.PromoteInput) (*model.PromoteResult, error)
}
