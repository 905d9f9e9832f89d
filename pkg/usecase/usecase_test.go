package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/secmon-lab/shipwright/pkg/domain/mock"
	"github.com/secmon-lab/shipwright/pkg/domain/model"
	"github.com/secmon-lab/shipwright/pkg/domain/types"
	"github.com/secmon-lab/shipwright/pkg/infra"
	"github.com/secmon-lab/shipwright/pkg/usecase"
	"github.com/secmon-lab/shipwright/pkg/utils/logging"
)

const (
	testOwner       = "secmon-lab"
	testRepo        = "shipwright"
	testHeadSHA     = types.CommitSHA("aaaa111122223333444455556666777788889999")
	testSelectedSHA = types.CommitSHA("bbbb111122223333444455556666777788889999")
)

func testProject(strategy types.VersioningStrategy) model.Project {
	return model.Project{
		GitHubRepo: model.GitHubRepo{
			Owner: testOwner,
			Name:  testRepo,
		},
		VersioningStrategy: strategy,
	}
}

func newTestUseCase(t *testing.T, mockGH *mock.GitHubClientMock, options ...usecase.Option) *usecase.UseCase {
	t.Helper()
	return usecase.New(infra.New(infra.WithGitHub(mockGH)), options...)
}

// testCtx pins the clock so that calver derivation is deterministic
func testCtx(now time.Time) context.Context {
	return logging.CtxWithTime(context.Background(), func() time.Time { return now })
}
