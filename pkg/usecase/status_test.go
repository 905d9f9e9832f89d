package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/shipwright/pkg/domain/mock"
	"github.com/secmon-lab/shipwright/pkg/domain/model"
	"github.com/secmon-lab/shipwright/pkg/domain/types"
)

func statusMock(release *model.Release) *mock.GitHubClientMock {
	return &mock.GitHubClientMock{
		GetRepositoryFunc: func(ctx context.Context, repo model.GitHubRepo) (*model.Repository, error) {
			return &model.Repository{
				Owner:         repo.Owner,
				Name:          repo.Name,
				DefaultBranch: "main",
			}, nil
		},
		GetLatestReleaseFunc: func(ctx context.Context, repo model.GitHubRepo) (*model.Release, error) {
			return release, nil
		},
		GetBranchFunc: func(ctx context.Context, repo model.GitHubRepo, branch types.BranchName) (*model.ReleaseBranch, error) {
			return &model.ReleaseBranch{
				Name:    branch,
				HeadSHA: testHeadSHA,
			}, nil
		},
		GetTagRefFunc: func(ctx context.Context, repo model.GitHubRepo, tag types.TagName) (*model.TagRef, error) {
			return &model.TagRef{
				Name:       tag,
				SHA:        "annotated-tag-sha",
				ObjectType: "tag",
			}, nil
		},
		GetTagObjectFunc: func(ctx context.Context, repo model.GitHubRepo, sha types.CommitSHA) (*model.TagObject, error) {
			return &model.TagObject{
				SHA:  sha,
				Date: time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC),
			}, nil
		},
		GetCommitFunc: func(ctx context.Context, repo model.GitHubRepo, sha types.CommitSHA) (*model.Commit, error) {
			return &model.Commit{
				SHA:        sha,
				AuthorDate: time.Date(2024, 5, 19, 9, 0, 0, 0, time.UTC),
			}, nil
		},
	}
}

func TestStatusNoRelease(t *testing.T) {
	mockGH := statusMock(nil)
	uc := newTestUseCase(t, mockGH)
	ctx := testCtx(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	status := gt.R1(uc.Status(ctx, &model.StatusInput{
		Project: testProject(types.StrategySemver),
	})).NoError(t)

	gt.V(t, status.State).Equal(model.StateNoRelease)
	gt.V(t, status.DefaultBranch).Equal("main")
	gt.V(t, status.Actions).Equal([]model.Action{model.ActionCreateRc})
	gt.V(t, status.NextRcTag).Equal("rc-1.0.0")
	gt.V(t, status.LatestRelease).Nil()
}

func TestStatusCandidate(t *testing.T) {
	mockGH := statusMock(&model.Release{
		ID:              7,
		TagName:         "rc-1.3.0",
		TargetCommitish: "rc/1.3.0",
		Prerelease:      true,
	})
	uc := newTestUseCase(t, mockGH)
	ctx := testCtx(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	status := gt.R1(uc.Status(ctx, &model.StatusInput{
		Project: testProject(types.StrategySemver),
	})).NoError(t)

	gt.V(t, status.State).Equal(model.StateCandidate)
	gt.V(t, status.Actions).Equal([]model.Action{model.ActionPatch, model.ActionPromote})
	gt.V(t, status.LatestTagDate).Equal(time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC))
	gt.V(t, status.ReleaseBranch).NotNil()
	gt.V(t, status.ReleaseBranch.Name).Equal(types.BranchName("rc/1.3.0"))
}

func TestStatusReleased(t *testing.T) {
	mockGH := statusMock(&model.Release{
		ID:              7,
		TagName:         "version-1.3.0",
		TargetCommitish: "rc/1.3.0",
		Prerelease:      false,
	})
	uc := newTestUseCase(t, mockGH)
	ctx := testCtx(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	status := gt.R1(uc.Status(ctx, &model.StatusInput{
		Project: testProject(types.StrategySemver),
	})).NoError(t)

	gt.V(t, status.State).Equal(model.StateReleased)
	gt.V(t, status.Actions).Equal([]model.Action{model.ActionCreateRc, model.ActionPatch})
	gt.V(t, status.NextRcTag).Equal("rc-1.4.0")
}

func TestStatusStrategyMismatch(t *testing.T) {
	mockGH := statusMock(&model.Release{
		ID:      7,
		TagName: "v1.3.0",
	})
	uc := newTestUseCase(t, mockGH)
	ctx := testCtx(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	status := gt.R1(uc.Status(ctx, &model.StatusInput{
		Project: testProject(types.StrategySemver),
	})).NoError(t)

	// a mismatching tag blocks every action instead of failing the call
	gt.V(t, status.State).Equal(model.StateStrategyMismatch)
	gt.V(t, len(status.Actions)).Equal(0)
	gt.True(t, status.Warning != "")
	gt.V(t, len(mockGH.GetTagRefCalls())).Equal(0)
}

func TestStatusLightweightTagDate(t *testing.T) {
	// a lightweight tag ref points directly at a commit; the author date of
	// that commit stands in for the missing tag object date
	mockGH := statusMock(&model.Release{
		ID:              7,
		TagName:         "rc-1.3.0",
		TargetCommitish: "rc/1.3.0",
		Prerelease:      true,
	})
	mockGH.GetTagRefFunc = func(ctx context.Context, repo model.GitHubRepo, tag types.TagName) (*model.TagRef, error) {
		return &model.TagRef{
			Name:       tag,
			SHA:        "commit-sha",
			ObjectType: "commit",
		}, nil
	}

	uc := newTestUseCase(t, mockGH)
	ctx := testCtx(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	status := gt.R1(uc.Status(ctx, &model.StatusInput{
		Project: testProject(types.StrategySemver),
	})).NoError(t)

	gt.V(t, status.LatestTagDate).Equal(time.Date(2024, 5, 19, 9, 0, 0, 0, time.UTC))
	gt.V(t, len(mockGH.GetTagObjectCalls())).Equal(0)
}

func TestStatusCalverNextTag(t *testing.T) {
	mockGH := statusMock(&model.Release{
		ID:              7,
		TagName:         "version-2024.06.01_0",
		TargetCommitish: "rc/2024.06.01_0",
		Prerelease:      false,
	})
	uc := newTestUseCase(t, mockGH)
	ctx := testCtx(time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC))

	status := gt.R1(uc.Status(ctx, &model.StatusInput{
		Project: testProject(types.StrategyCalver),
	})).NoError(t)

	gt.V(t, status.State).Equal(model.StateReleased)
	gt.V(t, status.NextRcTag).Equal("rc-2024.06.01_1")
}
