package usecase

import (
	"context"
	"fmt"

	"github.com/secmon-lab/shipwright/pkg/domain/model"
	"github.com/secmon-lab/shipwright/pkg/domain/types"
	"github.com/secmon-lab/shipwright/pkg/utils/logging"
)

// Status reconstructs the release state of a project from GitHub. Exactly one
// of the four states holds; a strategy mismatch blocks every action. Nothing
// is cached, so calling Status again always reflects the remote state.
func (x *UseCase) Status(ctx context.Context, input *model.StatusInput) (*model.ReleaseStatus, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	gh := x.clients.GitHub()
	repo := input.Project.GitHubRepo

	repository, err := gh.GetRepository(ctx, repo)
	if err != nil {
		return nil, err
	}

	status := &model.ReleaseStatus{
		Project:       input.Project,
		DefaultBranch: string(repository.DefaultBranch),
	}

	release, err := gh.GetLatestRelease(ctx, repo)
	if err != nil {
		return nil, err
	}

	if release == nil {
		next := model.InitialRc(input.Project.VersioningStrategy, logging.CtxTime(ctx))
		status.State = model.StateNoRelease
		status.Actions = []model.Action{model.ActionCreateRc}
		status.NextRcTag = string(next.Name())
		return status, nil
	}

	status.LatestRelease = release

	parts, err := model.ParseTag(release.TagName, input.Project.VersioningStrategy)
	if err != nil {
		status.State = model.StateStrategyMismatch
		status.Warning = fmt.Sprintf(
			"latest tag %q does not follow the %s convention; fix the tag history before using release actions",
			release.TagName, input.Project.VersioningStrategy,
		)
		return status, nil
	}

	if date, err := x.getTagDate(ctx, repo, release.TagName); err == nil {
		status.LatestTagDate = date
	} else {
		logging.From(ctx).Warn("failed to resolve tag date", "tag", release.TagName, "error", err)
	}

	if branch, err := gh.GetBranch(ctx, repo, types.BranchName(release.TargetCommitish)); err == nil {
		status.ReleaseBranch = branch
	} else {
		logging.From(ctx).Warn("failed to get release branch", "branch", release.TargetCommitish, "error", err)
	}

	if release.Prerelease {
		status.State = model.StateCandidate
		status.Actions = []model.Action{model.ActionPatch, model.ActionPromote}
		return status, nil
	}

	status.State = model.StateReleased
	status.Actions = []model.Action{model.ActionCreateRc, model.ActionPatch}
	status.NextRcTag = string(parts.NextRc(logging.CtxTime(ctx)).Name())
	return status, nil
}
