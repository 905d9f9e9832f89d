package ghclient_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/shipwright/pkg/domain/model"
	"github.com/secmon-lab/shipwright/pkg/domain/types"
	"github.com/secmon-lab/shipwright/pkg/infra/ghclient"
	"github.com/secmon-lab/shipwright/pkg/utils/testutil"
)

func TestNew(t *testing.T) {
	t.Run("empty token is rejected", func(t *testing.T) {
		_, err := ghclient.New("")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("token client", func(t *testing.T) {
		client, err := ghclient.New("ghp_dummy")
		gt.NoError(t, err)
		gt.Value(t, client).NotNil()
	})
}

func TestNewApp(t *testing.T) {
	testCases := map[string]struct {
		appID     types.GitHubAppID
		installID types.GitHubAppInstallID
		pem       types.GitHubAppPrivateKey
	}{
		"missing app id":     {installID: 123, pem: "pem"},
		"missing install id": {appID: 123, pem: "pem"},
		"missing pem":        {appID: 123, installID: 123},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := ghclient.NewApp(tc.appID, tc.installID, tc.pem)
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrInvalidOption))
		})
	}
}

// Integration test against the real GitHub API. Set TEST_GITHUB_TOKEN,
// TEST_GITHUB_OWNER and TEST_GITHUB_REPO to enable it.
func TestClientWithRealAPI(t *testing.T) {
	token := testutil.GetEnvOrSkip(t, "TEST_GITHUB_TOKEN")
	owner := testutil.GetEnvOrSkip(t, "TEST_GITHUB_OWNER")
	name := testutil.GetEnvOrSkip(t, "TEST_GITHUB_REPO")

	client := gt.R1(ghclient.New(types.GitHubToken(token))).NoError(t)
	ctx := context.Background()
	repo := model.GitHubRepo{Owner: owner, Name: name}

	repository := gt.R1(client.GetRepository(ctx, repo)).NoError(t)
	gt.V(t, repository.Name).Equal(name)
	gt.True(t, repository.DefaultBranch != "")

	branch := gt.R1(client.GetBranch(ctx, repo, repository.DefaultBranch)).NoError(t)
	gt.True(t, branch.HeadSHA != "")
	gt.True(t, branch.TreeSHA != "")

	commits := gt.R1(client.ListCommits(ctx, repo, repository.DefaultBranch, 5)).NoError(t)
	gt.True(t, len(commits) > 0)
	gt.True(t, commits[0].SHA != "")

	user := gt.R1(client.AuthenticatedUser(ctx)).NoError(t)
	gt.True(t, user.Login != "")
}
