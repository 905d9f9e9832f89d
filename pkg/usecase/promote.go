package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/shipwright/pkg/domain/interfaces"
	"github.com/secmon-lab/shipwright/pkg/domain/model"
	"github.com/secmon-lab/shipwright/pkg/domain/types"
	"github.com/secmon-lab/shipwright/pkg/utils/logging"
)

const promoteTotalSteps = 1

// Promote converts the current release candidate into a generally-available
// release: the prerelease flag is cleared and the tag is renamed from rc-*
// to version-*. The release id never changes.
func (x *UseCase) Promote(ctx context.Context, input *model.PromoteInput) (*model.PromoteResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	gh := x.clients.GitHub()
	repo := input.Project.GitHubRepo
	steps := x.newStepLog(promoteTotalSteps)

	release, parts, err := x.latestParsedRelease(ctx, input.Project)
	if err != nil {
		return nil, err
	}

	if !release.Prerelease || parts.Prefix != model.PrefixRC {
		return nil, goerr.Wrap(types.ErrValidationFailed, "the latest release is not a release candidate",
			goerr.V("tag", release.TagName),
			goerr.V("prerelease", release.Prerelease),
		)
	}

	promoted := parts.Promoted().Name()

	logging.From(ctx).Info("promoting release candidate",
		"repo", repo.String(),
		"from", release.TagName,
		"to", promoted,
	)

	prerelease := false
	updated, err := gh.UpdateRelease(ctx, repo, release.ID, &interfaces.ReleaseInput{
		TagName:    promoted,
		Name:       string(promoted),
		Prerelease: &prerelease,
	})
	if err != nil {
		return nil, err
	}
	steps.add(model.ResponseStep{
		Message:          fmt.Sprintf("Promoted %q to %q", release.TagName, promoted),
		SecondaryMessage: "cleared prerelease flag",
		Link:             updated.HTMLURL,
	})

	return &model.PromoteResult{
		ID:             updated.ID,
		PreviousTag:    release.TagName,
		PreviousTagURL: repo.TagURL(release.TagName),
		TagName:        promoted,
		TagURL:         repo.TagURL(promoted),
		ReleaseURL:     updated.HTMLURL,
		Steps:          steps.steps,
	}, nil
}
