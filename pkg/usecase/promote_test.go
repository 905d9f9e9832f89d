package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/shipwright/pkg/domain/interfaces"
	"github.com/secmon-lab/shipwright/pkg/domain/mock"
	"github.com/secmon-lab/shipwright/pkg/domain/model"
	"github.com/secmon-lab/shipwright/pkg/domain/types"
)

func promoteMock() *mock.GitHubClientMock {
	return &mock.GitHubClientMock{
		GetLatestReleaseFunc: func(ctx context.Context, repo model.GitHubRepo) (*model.Release, error) {
			return &model.Release{
				ID:              7,
				TagName:         "rc-1.3.0",
				TargetCommitish: "rc/1.3.0",
				Prerelease:      true,
			}, nil
		},
		UpdateReleaseFunc: func(ctx context.Context, repo model.GitHubRepo, id types.ReleaseID, input *interfaces.ReleaseInput) (*model.Release, error) {
			return &model.Release{
				ID:         id,
				TagName:    input.TagName,
				Prerelease: false,
				HTMLURL:    "https://github.com/secmon-lab/shipwright/releases/tag/" + string(input.TagName),
			}, nil
		},
	}
}

func TestPromote(t *testing.T) {
	mockGH := promoteMock()
	uc := newTestUseCase(t, mockGH)
	ctx := testCtx(time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC))

	result := gt.R1(uc.Promote(ctx, &model.PromoteInput{
		Project: testProject(types.StrategySemver),
	})).NoError(t)

	// the release object is reused, only the tag and the flag change
	gt.V(t, result.ID).Equal(types.ReleaseID(7))
	gt.V(t, result.PreviousTag).Equal(types.TagName("rc-1.3.0"))
	gt.V(t, result.TagName).Equal(types.TagName("version-1.3.0"))
	gt.V(t, result.PreviousTagURL).Equal("https://github.com/secmon-lab/shipwright/releases/tag/rc-1.3.0")
	gt.V(t, result.TagURL).Equal("https://github.com/secmon-lab/shipwright/releases/tag/version-1.3.0")
	gt.V(t, len(result.Steps)).Equal(1)

	updateCalls := mockGH.UpdateReleaseCalls()
	gt.V(t, len(updateCalls)).Equal(1)
	gt.V(t, updateCalls[0].Id).Equal(types.ReleaseID(7))
	gt.V(t, updateCalls[0].Input.TagName).Equal(types.TagName("version-1.3.0"))
	gt.V(t, *updateCalls[0].Input.Prerelease).Equal(false)
}

func TestPromoteCalver(t *testing.T) {
	mockGH := promoteMock()
	mockGH.GetLatestReleaseFunc = func(ctx context.Context, repo model.GitHubRepo) (*model.Release, error) {
		return &model.Release{
			ID:         7,
			TagName:    "rc-2024.06.03_1",
			Prerelease: true,
		}, nil
	}

	uc := newTestUseCase(t, mockGH)
	ctx := testCtx(time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC))

	result := gt.R1(uc.Promote(ctx, &model.PromoteInput{
		Project: testProject(types.StrategyCalver),
	})).NoError(t)

	gt.V(t, result.TagName).Equal(types.TagName("version-2024.06.03_1"))
}

func TestPromoteNotACandidate(t *testing.T) {
	t.Run("already promoted", func(t *testing.T) {
		mockGH := promoteMock()
		mockGH.GetLatestReleaseFunc = func(ctx context.Context, repo model.GitHubRepo) (*model.Release, error) {
			return &model.Release{
				ID:         7,
				TagName:    "version-1.3.0",
				Prerelease: false,
			}, nil
		}

		uc := newTestUseCase(t, mockGH)
		_, err := uc.Promote(context.Background(), &model.PromoteInput{
			Project: testProject(types.StrategySemver),
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
		gt.V(t, len(mockGH.UpdateReleaseCalls())).Equal(0)
	})

	t.Run("version tag still marked prerelease", func(t *testing.T) {
		mockGH := promoteMock()
		mockGH.GetLatestReleaseFunc = func(ctx context.Context, repo model.GitHubRepo) (*model.Release, error) {
			return &model.Release{
				ID:         7,
				TagName:    "version-1.3.0",
				Prerelease: true,
			}, nil
		}

		uc := newTestUseCase(t, mockGH)
		_, err := uc.Promote(context.Background(), &model.PromoteInput{
			Project: testProject(types.StrategySemver),
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("no release at all", func(t *testing.T) {
		mockGH := promoteMock()
		mockGH.GetLatestReleaseFunc = func(ctx context.Context, repo model.GitHubRepo) (*model.Release, error) {
			return nil, nil
		}

		uc := newTestUseCase(t, mockGH)
		_, err := uc.Promote(context.Background(), &model.PromoteInput{
			Project: testProject(types.StrategySemver),
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrNoRelease))
	})
}
